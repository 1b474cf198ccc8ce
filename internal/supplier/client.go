package supplier

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"subscription_syncer/internal/domain"
)

const subscriptionsPath = "/subscription-server/user-subscriptions"

// SuccessRecorder expires any live connection error for an entity after a
// successful fetch.
type SuccessRecorder interface {
	RecordSuccess(ctx context.Context, kind domain.EntityKind, id int64) error
}

// Failure describes a failed fetch. Response is nil for network and timeout
// errors, and carries the status and body otherwise.
type Failure struct {
	Err      error
	Response *domain.ResponseSnapshot
}

// Config holds supplier client configuration.
type Config struct {
	Timeout   time.Duration
	OriginURL string
	Method    string
}

// Client fetches subscription data from supplier endpoints.
type Client struct {
	httpClient *http.Client
	tracker    SuccessRecorder
	originURL  string
	method     string
	logger     *slog.Logger
}

func NewClient(cfg Config, tracker SuccessRecorder, logger *slog.Logger) *Client {
	method := cfg.Method
	if method == "" {
		method = http.MethodGet
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		tracker:   tracker,
		originURL: cfg.OriginURL,
		method:    method,
		logger:    logger,
	}
}

// SubscriptionsURL returns the endpoint queried for a supplier.
func SubscriptionsURL(s *domain.Supplier) string {
	return s.URL + subscriptionsPath
}

// FetchSubscriptions requests the supplier's subscription snapshot for the
// given resource names. On HTTP 200 the live connection error for the
// supplier is expired before the body is parsed. A body that fails to parse
// as JSON yields neither data nor a failure: the fetch is a no-op and the
// caller has nothing to reconcile. Any other outcome returns a Failure the
// caller must record against the error ledger.
func (c *Client) FetchSubscriptions(ctx context.Context, s *domain.Supplier, resources []string) (*Response, *Failure) {
	u, err := url.Parse(SubscriptionsURL(s))
	if err != nil {
		return nil, &Failure{Err: fmt.Errorf("parse supplier url: %w", err)}
	}

	if len(resources) > 0 {
		q := u.Query()
		for _, name := range resources {
			q.Add("resources[]", name)
		}
		u.RawQuery = q.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, c.method, u.String(), nil)
	if err != nil {
		return nil, &Failure{Err: fmt.Errorf("create request: %w", err)}
	}

	if s.APIKey != nil {
		req.Header.Set("User-Api-Key", *s.APIKey)
	}
	req.Header.Set("Origin", c.originURL)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &Failure{Err: fmt.Errorf("execute request: %w", err)}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Failure{Err: fmt.Errorf("read response body: %w", err)}
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &Failure{
			Err:      fmt.Errorf("unexpected status: %d", resp.StatusCode),
			Response: snapshot(resp.StatusCode, body),
		}
	}

	if err := c.tracker.RecordSuccess(ctx, domain.KindSupplier, s.ID); err != nil {
		c.logger.Error("failed to record fetch success",
			"supplier", s.URL,
			"error", err,
		)
	}

	var parsed Response
	if err := json.Unmarshal(body, &parsed); err != nil {
		c.logger.Warn("supplier returned malformed response body",
			"supplier", s.URL,
			"error", err,
		)
		return nil, nil
	}

	return &parsed, nil
}

// snapshot captures a failed response for the error ledger. The body is kept
// only when it is valid JSON, matching what the ledger can store.
func snapshot(status int, body []byte) *domain.ResponseSnapshot {
	s := &domain.ResponseSnapshot{Status: status}
	if json.Valid(body) {
		s.Body = json.RawMessage(body)
	}
	return s
}
