package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"subscription_syncer/internal/domain"
	"subscription_syncer/internal/supplier"
)

type SupplierStore interface {
	ListAuthorized(ctx context.Context) ([]domain.Supplier, error)
	ClearAuthorization(ctx context.Context, supplierID int64) error
}

type ResourceStore interface {
	ListBySupplier(ctx context.Context, supplierID int64) ([]domain.Resource, error)
}

type SubscriptionStore interface {
	ListBySupplier(ctx context.Context, supplierID int64) ([]domain.Subscription, error)
	Create(ctx context.Context, sub *domain.Subscription) error
	SetSubscribed(ctx context.Context, id int64, subscribed bool) error
	DeactivateBySupplier(ctx context.Context, supplierID int64) error
}

type SupplierFetcher interface {
	FetchSubscriptions(ctx context.Context, s *domain.Supplier, resources []string) (*supplier.Response, *supplier.Failure)
}

type ErrorTracker interface {
	RecordFailure(ctx context.Context, kind domain.EntityKind, id int64, url string, response *domain.ResponseSnapshot) (bool, error)
}
