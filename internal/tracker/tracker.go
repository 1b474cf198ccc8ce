// Package tracker maintains the persistent per-entity connection error
// ledger: one live error record per (kind, id), incremented on each failure
// and expired on the next success.
package tracker

//go:generate mockgen -source=tracker.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"subscription_syncer/internal/domain"
)

// Namespace scopes error ledger keys in the key-value store.
const Namespace = "subscription_client_connection_error"

// Failure counts at which the notify-and-deactivate cascade fires. Checked
// with >= so a trigger is never missed on out-of-order counts.
var errorLimits = map[domain.EntityKind]int{
	domain.KindSupplier: 3,
	domain.KindResource: 5,
}

type ErrorStore interface {
	GetLive(ctx context.Context, namespace, key string) (*domain.ErrorRecord, error)
	Put(ctx context.Context, namespace, key string, record *domain.ErrorRecord) error
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type Notifier interface {
	NotifyConnectionError(ctx context.Context, kind domain.EntityKind, id int64) error
	NotifyErrorExpired(ctx context.Context, kind domain.EntityKind, id int64) error
}

type Tracker struct {
	store     ErrorStore
	txManager TransactionManager
	notifier  Notifier
	logger    *slog.Logger
}

func New(store ErrorStore, txManager TransactionManager, notifier Notifier, logger *slog.Logger) *Tracker {
	return &Tracker{
		store:     store,
		txManager: txManager,
		notifier:  notifier,
		logger:    logger,
	}
}

// RecordFailure creates or increments the live error record for (kind, id)
// and reports whether the failure count has reached the kind's limit. The
// read-modify-write runs in a single transaction so concurrent updates for
// the same key never interleave partial increments. When the limit is
// reached a connection error notification is raised; deactivating the
// supplier's subscriptions is the caller's responsibility.
func (t *Tracker) RecordFailure(ctx context.Context, kind domain.EntityKind, id int64, url string, response *domain.ResponseSnapshot) (bool, error) {
	if !kind.Valid() {
		return false, fmt.Errorf("invalid entity kind %q", kind)
	}

	var record *domain.ErrorRecord

	err := t.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		now := time.Now().UTC()

		existing, err := t.store.GetLive(txCtx, Namespace, Key(kind, id))
		if err != nil {
			return fmt.Errorf("get live error record: %w", err)
		}

		if existing != nil {
			record = existing
			record.Count++
			record.UpdatedAt = now
		} else {
			record = &domain.ErrorRecord{
				ID:        id,
				Type:      kind,
				Message:   fmt.Sprintf("failed to connect to %s", url),
				Count:     1,
				CreatedAt: now,
				UpdatedAt: now,
			}
		}

		if response != nil {
			record.Response = response
			if msg := errorMessage(response.Body); msg != "" {
				record.Message = msg
			}
		}

		if err := t.store.Put(txCtx, Namespace, Key(kind, id), record); err != nil {
			return fmt.Errorf("put error record: %w", err)
		}

		return nil
	})
	if err != nil {
		return false, err
	}

	limitReached := record.Count >= errorLimits[kind]

	if limitReached {
		if err := t.notifier.NotifyConnectionError(ctx, kind, id); err != nil {
			t.logger.Error("failed to notify connection error",
				"kind", kind,
				"id", id,
				"error", err,
			)
		}
	}

	return limitReached, nil
}

// RecordSuccess expires the live error record for (kind, id), if any. The
// record is kept as history; a later failure starts a new record at count 1.
func (t *Tracker) RecordSuccess(ctx context.Context, kind domain.EntityKind, id int64) error {
	if !kind.Valid() {
		return fmt.Errorf("invalid entity kind %q", kind)
	}

	var expired bool

	err := t.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		record, err := t.store.GetLive(txCtx, Namespace, Key(kind, id))
		if err != nil {
			return fmt.Errorf("get live error record: %w", err)
		}
		if record == nil {
			return nil
		}

		now := time.Now().UTC()
		record.ExpiredAt = &now

		if err := t.store.Put(txCtx, Namespace, Key(kind, id), record); err != nil {
			return fmt.Errorf("put error record: %w", err)
		}

		expired = true
		return nil
	})
	if err != nil {
		return err
	}

	if expired {
		if err := t.notifier.NotifyErrorExpired(ctx, kind, id); err != nil {
			t.logger.Error("failed to notify error expired",
				"kind", kind,
				"id", id,
				"error", err,
			)
		}
	}

	return nil
}

// CurrentError returns the live error record for (kind, id), or nil.
func (t *Tracker) CurrentError(ctx context.Context, kind domain.EntityKind, id int64) (*domain.ErrorRecord, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("invalid entity kind %q", kind)
	}
	return t.store.GetLive(ctx, Namespace, Key(kind, id))
}

// Key builds the ledger key for an entity.
func Key(kind domain.EntityKind, id int64) string {
	return fmt.Sprintf("%s_%d", kind, id)
}

// Limit returns the failure count at which the cascade fires for a kind.
func Limit(kind domain.EntityKind) int {
	return errorLimits[kind]
}

// errorMessage extracts the "error" field from a JSON response body, if
// present; suppliers use it to carry a human-readable failure message.
func errorMessage(body json.RawMessage) string {
	if len(body) == 0 {
		return ""
	}
	var parsed struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return ""
	}
	return parsed.Error
}
