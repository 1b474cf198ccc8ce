package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"subscription_syncer/internal/domain"
)

type ResourceStore struct {
	db *sqlx.DB
}

func NewResourceStore(db *sqlx.DB) *ResourceStore {
	return &ResourceStore{db: db}
}

func (s *ResourceStore) ListBySupplier(ctx context.Context, supplierID int64) ([]domain.Resource, error) {
	query := `
		SELECT id, supplier_id, name
		FROM resources
		WHERE supplier_id = $1
		ORDER BY id`

	var resources []domain.Resource
	if err := s.db.SelectContext(ctx, &resources, query, supplierID); err != nil {
		return nil, err
	}
	return resources, nil
}
