package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"subscription_syncer/internal/domain"
)

type SupplierStore struct {
	db *sqlx.DB
}

func NewSupplierStore(db *sqlx.DB) *SupplierStore {
	return &SupplierStore{db: db}
}

// ListAuthorized returns suppliers holding a live API key.
func (s *SupplierStore) ListAuthorized(ctx context.Context) ([]domain.Supplier, error) {
	query := `
		SELECT id, name, url, api_key, user_id, authorized_at, created_at, updated_at
		FROM suppliers
		WHERE api_key IS NOT NULL
		ORDER BY id`

	var suppliers []domain.Supplier
	if err := s.db.SelectContext(ctx, &suppliers, query); err != nil {
		return nil, err
	}
	return suppliers, nil
}

// ClearAuthorization drops the supplier's credential, owning user and
// authorization timestamp, leaving it unauthorized.
func (s *SupplierStore) ClearAuthorization(ctx context.Context, supplierID int64) error {
	query := `
		UPDATE suppliers
		SET api_key = NULL, user_id = NULL, authorized_at = NULL, updated_at = NOW()
		WHERE id = $1`

	_, err := s.db.ExecContext(ctx, query, supplierID)
	return err
}
