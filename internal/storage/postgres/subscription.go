package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"subscription_syncer/internal/domain"
)

type SubscriptionStore struct {
	db *sqlx.DB
}

func NewSubscriptionStore(db *sqlx.DB) *SubscriptionStore {
	return &SubscriptionStore{db: db}
}

// ListBySupplier returns every subscription belonging to the supplier via
// its resources, regardless of the subscribed flag.
func (s *SubscriptionStore) ListBySupplier(ctx context.Context, supplierID int64) ([]domain.Subscription, error) {
	query := `
		SELECT s.id, s.resource_id, s.subscription_id, s.subscription_type,
		       s.subscribed, s.created_at, s.updated_at
		FROM subscriptions s
		JOIN resources r ON r.id = s.resource_id
		WHERE r.supplier_id = $1
		ORDER BY s.id`

	var subscriptions []domain.Subscription
	if err := s.db.SelectContext(ctx, &subscriptions, query, supplierID); err != nil {
		return nil, err
	}
	return subscriptions, nil
}

func (s *SubscriptionStore) Create(ctx context.Context, sub *domain.Subscription) error {
	query := `
		INSERT INTO subscriptions (resource_id, subscription_id, subscription_type, subscribed)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at`

	return s.db.QueryRowContext(ctx, query,
		sub.ResourceID,
		sub.SubscriptionID,
		sub.SubscriptionType,
		sub.Subscribed,
	).Scan(&sub.ID, &sub.CreatedAt, &sub.UpdatedAt)
}

// SetSubscribed flips the subscribed flag and touches updated_at.
func (s *SubscriptionStore) SetSubscribed(ctx context.Context, id int64, subscribed bool) error {
	query := `
		UPDATE subscriptions
		SET subscribed = $2, updated_at = NOW()
		WHERE id = $1`

	_, err := s.db.ExecContext(ctx, query, id, subscribed)
	return err
}

// DeactivateBySupplier marks every subscription of the supplier as
// unsubscribed in one statement.
func (s *SubscriptionStore) DeactivateBySupplier(ctx context.Context, supplierID int64) error {
	query := `
		UPDATE subscriptions
		SET subscribed = FALSE, updated_at = NOW()
		WHERE resource_id IN (SELECT id FROM resources WHERE supplier_id = $1)`

	_, err := s.db.ExecContext(ctx, query, supplierID)
	return err
}
