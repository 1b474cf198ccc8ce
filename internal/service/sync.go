package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"subscription_syncer/internal/config"
	"subscription_syncer/internal/domain"
	"subscription_syncer/internal/metrics"
	"subscription_syncer/internal/supplier"
)

// SyncService reconciles locally stored subscriptions against the snapshots
// fetched from authorized suppliers.
type SyncService struct {
	suppliers     SupplierStore
	resources     ResourceStore
	subscriptions SubscriptionStore
	fetcher       SupplierFetcher
	tracker       ErrorTracker
	metrics       metrics.Recorder
	logger        *slog.Logger
	cfg           config.SyncConfig
}

func NewSyncService(
	suppliers SupplierStore,
	resources ResourceStore,
	subscriptions SubscriptionStore,
	fetcher SupplierFetcher,
	tracker ErrorTracker,
	recorder metrics.Recorder,
	logger *slog.Logger,
	cfg config.SyncConfig,
) *SyncService {
	return &SyncService{
		suppliers:     suppliers,
		resources:     resources,
		subscriptions: subscriptions,
		fetcher:       fetcher,
		tracker:       tracker,
		metrics:       recorder,
		logger:        logger,
		cfg:           cfg,
	}
}

// Run syncs every authorized supplier and returns the aggregated result.
// Suppliers are processed independently; one supplier's failure never
// prevents the others from being synced. Errors are always logged, infos
// only under verbose logging.
func (s *SyncService) Run(ctx context.Context) *domain.SyncResult {
	result := domain.NewSyncResult()

	if !s.cfg.Enabled {
		s.logger.Debug("sync disabled, skipping run")
		return result
	}

	start := time.Now()

	suppliers, err := s.suppliers.ListAuthorized(ctx)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("list authorized suppliers: %s", err))
	} else if len(suppliers) == 0 {
		result.NoSuppliers()
	} else {
		result.Suppliers = len(suppliers)
		for i := range suppliers {
			s.syncSupplier(ctx, &suppliers[i], result)
		}
	}

	for _, msg := range result.Errors {
		s.logger.Error("sync error", "error", msg)
	}
	if s.cfg.VerboseLogs {
		for _, msg := range result.Infos {
			s.logger.Info("sync info", "info", msg)
		}
	}

	s.metrics.RecordRun(time.Since(start), result.Ok())
	s.metrics.RecordSubscriptions(result.Created, result.Updated, result.Deactivated)

	s.logger.Info("sync run completed",
		"suppliers", result.Suppliers,
		"created", result.Created,
		"updated", result.Updated,
		"deactivated", result.Deactivated,
		"failed_to_create", result.FailedToCreate,
		"errors", len(result.Errors),
		"duration", time.Since(start),
	)

	return result
}

// subscriptionData pairs one fetched record's match tuple with the local
// subscription it matched, if any.
type subscriptionData struct {
	resourceID       int64
	subscriptionID   string
	subscriptionType string

	subscription *domain.Subscription
}

func (d *subscriptionData) matches(sub *domain.Subscription) bool {
	return sub.ResourceID == d.resourceID &&
		sub.SubscriptionID == d.subscriptionID &&
		sub.SubscriptionType == d.subscriptionType
}

func (s *SyncService) syncSupplier(ctx context.Context, sup *domain.Supplier, result *domain.SyncResult) {
	logger := s.logger.With("supplier", sup.URL)

	resources, err := s.resources.ListBySupplier(ctx, sup.ID)
	if err != nil {
		result.Error(sup, fmt.Sprintf("list resources: %s", err))
		return
	}
	if len(resources) == 0 {
		return
	}

	names := make([]string, len(resources))
	for i, r := range resources {
		names[i] = r.Name
	}

	response, failure := s.fetcher.FetchSubscriptions(ctx, sup, names)
	if failure != nil {
		s.handleFetchFailure(ctx, sup, failure, result)
		return
	}
	if response == nil {
		// Malformed body on HTTP 200: nothing to reconcile.
		logger.Debug("fetch returned no data")
		return
	}

	data, convErr := collectSubscriptionData(response, resources)
	if convErr != "" {
		result.Error(sup, convErr)
		if err := s.subscriptions.DeactivateBySupplier(ctx, sup.ID); err != nil {
			result.Error(sup, fmt.Sprintf("deactivate subscriptions: %s", err))
		}
		return
	}

	existing, err := s.subscriptions.ListBySupplier(ctx, sup.ID)
	if err != nil {
		result.Error(sup, fmt.Sprintf("list subscriptions: %s", err))
		return
	}

	// Deactivate every local subscription the snapshot no longer contains.
	// Matching is a full scan in document order with exact field equality
	// over the match tuple; supplier subscription sets are small.
	for i := range existing {
		sub := &existing[i]
		matched := false
		for _, d := range data {
			if d.matches(sub) {
				d.subscription = sub
				matched = true
			}
		}
		if matched {
			continue
		}
		if err := s.subscriptions.SetSubscribed(ctx, sub.ID, false); err != nil {
			result.Error(sup, fmt.Sprintf("deactivate subscription %d: %s", sub.ID, err))
			continue
		}
		if sub.Subscribed {
			result.DeactivatedSubscription(sub)
		}
	}

	if len(data) == 0 {
		result.NoSubscriptions(sup)
		return
	}

	for _, d := range data {
		if d.subscription != nil {
			if err := s.subscriptions.SetSubscribed(ctx, d.subscription.ID, true); err != nil {
				result.Error(sup, fmt.Sprintf("update subscription %d: %s", d.subscription.ID, err))
				continue
			}
			result.UpdatedSubscription(sup, d.subscription)
			continue
		}

		sub := &domain.Subscription{
			ResourceID:       d.resourceID,
			SubscriptionID:   d.subscriptionID,
			SubscriptionType: d.subscriptionType,
			Subscribed:       true,
		}
		if err := s.subscriptions.Create(ctx, sub); err != nil {
			logger.Error("failed to create subscription",
				"subscription_type", d.subscriptionType,
				"subscription_id", d.subscriptionID,
				"error", err,
			)
			result.FailedToCreateSubscription(sup, d.subscriptionType, d.subscriptionID)
			continue
		}
		result.CreatedSubscription(sup, sub)
	}
}

// handleFetchFailure deactivates all of the supplier's subscriptions so an
// unreachable supplier is never left implicitly subscribed, then records the
// failure on the error ledger. The tracker raises the threshold notification
// itself; the cascade deactivation is already covered here.
func (s *SyncService) handleFetchFailure(ctx context.Context, sup *domain.Supplier, failure *supplier.Failure, result *domain.SyncResult) {
	if err := s.subscriptions.DeactivateBySupplier(ctx, sup.ID); err != nil {
		result.Error(sup, fmt.Sprintf("deactivate subscriptions: %s", err))
	}

	limitReached, err := s.tracker.RecordFailure(ctx, domain.KindSupplier, sup.ID,
		supplier.SubscriptionsURL(sup), failure.Response)
	if err != nil {
		result.Error(sup, fmt.Sprintf("record connection failure: %s", err))
	} else if limitReached {
		s.logger.Warn("supplier reached connection error limit",
			"supplier", sup.URL,
		)
	}

	s.metrics.RecordConnectionError(string(domain.KindSupplier))
	result.ConnectionError(sup)
}

// Deauthorize clears the supplier's credential and deactivates all of its
// subscriptions. Revoking the key with the remote supplier is handled by the
// authorization layer, not here.
func (s *SyncService) Deauthorize(ctx context.Context, supplierID int64) error {
	if err := s.suppliers.ClearAuthorization(ctx, supplierID); err != nil {
		return fmt.Errorf("clear authorization: %w", err)
	}
	if err := s.subscriptions.DeactivateBySupplier(ctx, supplierID); err != nil {
		return fmt.Errorf("deactivate subscriptions: %w", err)
	}
	return nil
}

// collectSubscriptionData resolves each fetched record's resource name
// against the supplier's resources. A record naming a resource the supplier
// does not own fails the whole snapshot.
func collectSubscriptionData(response *supplier.Response, resources []domain.Resource) ([]*subscriptionData, string) {
	byName := make(map[string]int64, len(resources))
	for _, r := range resources {
		byName[r.Name] = r.ID
	}

	data := make([]*subscriptionData, 0, len(response.Subscriptions))
	for _, entry := range response.Subscriptions {
		resourceID, ok := byName[entry.Resource]
		if !ok {
			return nil, fmt.Sprintf("unknown resource %q in response", entry.Resource)
		}
		data = append(data, &subscriptionData{
			resourceID:       resourceID,
			subscriptionID:   entry.SubscriptionID,
			subscriptionType: entry.SubscriptionType,
		})
	}

	return data, ""
}
