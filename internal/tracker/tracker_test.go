package tracker

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"subscription_syncer/internal/domain"
	"subscription_syncer/internal/tracker/mocks"
)

type TrackerTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	store     *mocks.MockErrorStore
	txManager *mocks.MockTransactionManager
	notifier  *mocks.MockNotifier

	tracker *Tracker
}

func (s *TrackerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.store = mocks.NewMockErrorStore(s.ctrl)
	s.txManager = mocks.NewMockTransactionManager(s.ctrl)
	s.notifier = mocks.NewMockNotifier(s.ctrl)

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	s.tracker = New(s.store, s.txManager, s.notifier, logger)
}

func (s *TrackerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestTrackerTestSuite(t *testing.T) {
	suite.Run(t, new(TrackerTestSuite))
}

func (s *TrackerTestSuite) expectTransaction(ctx context.Context) {
	s.txManager.EXPECT().WithTransaction(ctx, gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	)
}

func (s *TrackerTestSuite) TestRecordFailure_FirstFailure() {
	ctx := context.Background()

	s.expectTransaction(ctx)
	s.store.EXPECT().GetLive(ctx, Namespace, "supplier_1").Return(nil, nil)

	var saved *domain.ErrorRecord
	s.store.EXPECT().Put(ctx, Namespace, "supplier_1", gomock.Any()).DoAndReturn(
		func(_ context.Context, _, _ string, record *domain.ErrorRecord) error {
			saved = record
			return nil
		},
	)

	limitReached, err := s.tracker.RecordFailure(ctx, domain.KindSupplier, 1, "https://supplier.test/path", nil)

	s.NoError(err)
	s.False(limitReached)
	s.Require().NotNil(saved)
	s.Equal(1, saved.Count)
	s.Equal(domain.KindSupplier, saved.Type)
	s.Equal(int64(1), saved.ID)
	s.Contains(saved.Message, "https://supplier.test/path")
	s.Nil(saved.ExpiredAt)
	s.Nil(saved.Response)
}

func (s *TrackerTestSuite) TestRecordFailure_IncrementsLiveRecord() {
	ctx := context.Background()

	existing := &domain.ErrorRecord{
		ID:      1,
		Type:    domain.KindSupplier,
		Message: "failed to connect to https://supplier.test",
		Count:   1,
	}

	s.expectTransaction(ctx)
	s.store.EXPECT().GetLive(ctx, Namespace, "supplier_1").Return(existing, nil)

	var saved *domain.ErrorRecord
	s.store.EXPECT().Put(ctx, Namespace, "supplier_1", gomock.Any()).DoAndReturn(
		func(_ context.Context, _, _ string, record *domain.ErrorRecord) error {
			saved = record
			return nil
		},
	)

	limitReached, err := s.tracker.RecordFailure(ctx, domain.KindSupplier, 1, "https://supplier.test", nil)

	s.NoError(err)
	s.False(limitReached)
	s.Equal(2, saved.Count)
}

func (s *TrackerTestSuite) TestRecordFailure_SupplierLimitReachedOnThird() {
	ctx := context.Background()

	existing := &domain.ErrorRecord{ID: 1, Type: domain.KindSupplier, Count: 2}

	s.expectTransaction(ctx)
	s.store.EXPECT().GetLive(ctx, Namespace, "supplier_1").Return(existing, nil)
	s.store.EXPECT().Put(ctx, Namespace, "supplier_1", gomock.Any()).Return(nil)
	s.notifier.EXPECT().NotifyConnectionError(ctx, domain.KindSupplier, int64(1)).Return(nil)

	limitReached, err := s.tracker.RecordFailure(ctx, domain.KindSupplier, 1, "https://supplier.test", nil)

	s.NoError(err)
	s.True(limitReached)
}

func (s *TrackerTestSuite) TestRecordFailure_SupplierLimitStillReachedPastThreshold() {
	ctx := context.Background()

	existing := &domain.ErrorRecord{ID: 1, Type: domain.KindSupplier, Count: 7}

	s.expectTransaction(ctx)
	s.store.EXPECT().GetLive(ctx, Namespace, "supplier_1").Return(existing, nil)
	s.store.EXPECT().Put(ctx, Namespace, "supplier_1", gomock.Any()).Return(nil)
	s.notifier.EXPECT().NotifyConnectionError(ctx, domain.KindSupplier, int64(1)).Return(nil)

	limitReached, err := s.tracker.RecordFailure(ctx, domain.KindSupplier, 1, "https://supplier.test", nil)

	s.NoError(err)
	s.True(limitReached)
}

func (s *TrackerTestSuite) TestRecordFailure_ResourceLimitIsFive() {
	ctx := context.Background()

	existing := &domain.ErrorRecord{ID: 9, Type: domain.KindResource, Count: 3}

	s.expectTransaction(ctx)
	s.store.EXPECT().GetLive(ctx, Namespace, "resource_9").Return(existing, nil)
	s.store.EXPECT().Put(ctx, Namespace, "resource_9", gomock.Any()).Return(nil)

	limitReached, err := s.tracker.RecordFailure(ctx, domain.KindResource, 9, "https://supplier.test", nil)

	s.NoError(err)
	s.False(limitReached)

	existing.Count = 4

	s.expectTransaction(ctx)
	s.store.EXPECT().GetLive(ctx, Namespace, "resource_9").Return(existing, nil)
	s.store.EXPECT().Put(ctx, Namespace, "resource_9", gomock.Any()).Return(nil)
	s.notifier.EXPECT().NotifyConnectionError(ctx, domain.KindResource, int64(9)).Return(nil)

	limitReached, err = s.tracker.RecordFailure(ctx, domain.KindResource, 9, "https://supplier.test", nil)

	s.NoError(err)
	s.True(limitReached)
}

func (s *TrackerTestSuite) TestRecordFailure_ResponseErrorOverridesMessage() {
	ctx := context.Background()

	response := &domain.ResponseSnapshot{
		Status: 403,
		Body:   json.RawMessage(`{"error": "invalid api key"}`),
	}

	s.expectTransaction(ctx)
	s.store.EXPECT().GetLive(ctx, Namespace, "supplier_1").Return(nil, nil)

	var saved *domain.ErrorRecord
	s.store.EXPECT().Put(ctx, Namespace, "supplier_1", gomock.Any()).DoAndReturn(
		func(_ context.Context, _, _ string, record *domain.ErrorRecord) error {
			saved = record
			return nil
		},
	)

	_, err := s.tracker.RecordFailure(ctx, domain.KindSupplier, 1, "https://supplier.test", response)

	s.NoError(err)
	s.Equal("invalid api key", saved.Message)
	s.Require().NotNil(saved.Response)
	s.Equal(403, saved.Response.Status)
}

func (s *TrackerTestSuite) TestRecordFailure_ResponseWithoutErrorKeepsDefaultMessage() {
	ctx := context.Background()

	response := &domain.ResponseSnapshot{
		Status: 500,
		Body:   json.RawMessage(`{"status": "unavailable"}`),
	}

	s.expectTransaction(ctx)
	s.store.EXPECT().GetLive(ctx, Namespace, "supplier_1").Return(nil, nil)

	var saved *domain.ErrorRecord
	s.store.EXPECT().Put(ctx, Namespace, "supplier_1", gomock.Any()).DoAndReturn(
		func(_ context.Context, _, _ string, record *domain.ErrorRecord) error {
			saved = record
			return nil
		},
	)

	_, err := s.tracker.RecordFailure(ctx, domain.KindSupplier, 1, "https://supplier.test", response)

	s.NoError(err)
	s.Contains(saved.Message, "failed to connect to")
}

func (s *TrackerTestSuite) TestRecordFailure_StoreErrorPropagates() {
	ctx := context.Background()

	s.expectTransaction(ctx)
	s.store.EXPECT().GetLive(ctx, Namespace, "supplier_1").Return(nil, errors.New("db down"))

	limitReached, err := s.tracker.RecordFailure(ctx, domain.KindSupplier, 1, "https://supplier.test", nil)

	s.Error(err)
	s.False(limitReached)
}

func (s *TrackerTestSuite) TestRecordFailure_InvalidKind() {
	_, err := s.tracker.RecordFailure(context.Background(), "banana", 1, "https://supplier.test", nil)
	s.Error(err)
}

func (s *TrackerTestSuite) TestRecordSuccess_ExpiresLiveRecord() {
	ctx := context.Background()

	existing := &domain.ErrorRecord{ID: 1, Type: domain.KindSupplier, Count: 2}

	s.expectTransaction(ctx)
	s.store.EXPECT().GetLive(ctx, Namespace, "supplier_1").Return(existing, nil)

	var saved *domain.ErrorRecord
	s.store.EXPECT().Put(ctx, Namespace, "supplier_1", gomock.Any()).DoAndReturn(
		func(_ context.Context, _, _ string, record *domain.ErrorRecord) error {
			saved = record
			return nil
		},
	)
	s.notifier.EXPECT().NotifyErrorExpired(ctx, domain.KindSupplier, int64(1)).Return(nil)

	err := s.tracker.RecordSuccess(ctx, domain.KindSupplier, 1)

	s.NoError(err)
	s.Require().NotNil(saved.ExpiredAt)
	s.True(saved.Expired())
}

func (s *TrackerTestSuite) TestRecordSuccess_NoLiveRecordIsNoop() {
	ctx := context.Background()

	s.expectTransaction(ctx)
	s.store.EXPECT().GetLive(ctx, Namespace, "supplier_1").Return(nil, nil)

	err := s.tracker.RecordSuccess(ctx, domain.KindSupplier, 1)

	s.NoError(err)
}

func (s *TrackerTestSuite) TestFreshRecordAfterExpiry() {
	ctx := context.Background()

	// Expiry left no live record behind, so the next failure starts over.
	s.expectTransaction(ctx)
	s.store.EXPECT().GetLive(ctx, Namespace, "supplier_1").Return(nil, nil)

	var saved *domain.ErrorRecord
	s.store.EXPECT().Put(ctx, Namespace, "supplier_1", gomock.Any()).DoAndReturn(
		func(_ context.Context, _, _ string, record *domain.ErrorRecord) error {
			saved = record
			return nil
		},
	)

	limitReached, err := s.tracker.RecordFailure(ctx, domain.KindSupplier, 1, "https://supplier.test", nil)

	s.NoError(err)
	s.False(limitReached)
	s.Equal(1, saved.Count)
}

func (s *TrackerTestSuite) TestCurrentError() {
	ctx := context.Background()

	existing := &domain.ErrorRecord{ID: 1, Type: domain.KindSupplier, Count: 1}
	s.store.EXPECT().GetLive(ctx, Namespace, "supplier_1").Return(existing, nil)

	record, err := s.tracker.CurrentError(ctx, domain.KindSupplier, 1)

	s.NoError(err)
	s.Equal(existing, record)
}

func (s *TrackerTestSuite) TestKey() {
	s.Equal("supplier_42", Key(domain.KindSupplier, 42))
	s.Equal("resource_7", Key(domain.KindResource, 7))
}

func (s *TrackerTestSuite) TestLimit() {
	s.Equal(3, Limit(domain.KindSupplier))
	s.Equal(5, Limit(domain.KindResource))
}
