package supplier

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"subscription_syncer/internal/domain"
)

type recordedSuccess struct {
	kind domain.EntityKind
	id   int64
}

type stubRecorder struct {
	successes []recordedSuccess
	err       error
}

func (r *stubRecorder) RecordSuccess(_ context.Context, kind domain.EntityKind, id int64) error {
	r.successes = append(r.successes, recordedSuccess{kind: kind, id: id})
	return r.err
}

type ClientTestSuite struct {
	suite.Suite
	recorder *stubRecorder
	logger   *slog.Logger
}

func (s *ClientTestSuite) SetupTest() {
	s.recorder = &stubRecorder{}
	s.logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestClientTestSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func (s *ClientTestSuite) newClient(timeout time.Duration) *Client {
	return NewClient(Config{
		Timeout:   timeout,
		OriginURL: "https://local.test",
	}, s.recorder, s.logger)
}

func (s *ClientTestSuite) supplierFor(serverURL string) *domain.Supplier {
	apiKey := "secret-key"
	return &domain.Supplier{
		ID:     1,
		URL:    serverURL,
		APIKey: &apiKey,
	}
}

func (s *ClientTestSuite) TestFetchSubscriptions_Success() {
	var gotRequest *http.Request
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotRequest = r.Clone(context.Background())
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"subscriptions": [
				{"resource": "widget", "subscription_id": "sub-1", "subscription_type": "business"}
			]
		}`))
	}))
	defer server.Close()

	client := s.newClient(5 * time.Second)
	response, failure := client.FetchSubscriptions(context.Background(), s.supplierFor(server.URL), []string{"widget", "gadget"})

	s.Nil(failure)
	s.Require().NotNil(response)
	s.Require().Len(response.Subscriptions, 1)
	s.Equal("widget", response.Subscriptions[0].Resource)
	s.Equal("sub-1", response.Subscriptions[0].SubscriptionID)
	s.Equal("business", response.Subscriptions[0].SubscriptionType)

	s.Require().NotNil(gotRequest)
	s.Equal("/subscription-server/user-subscriptions", gotRequest.URL.Path)
	s.Equal([]string{"widget", "gadget"}, gotRequest.URL.Query()["resources[]"])
	s.Equal("secret-key", gotRequest.Header.Get("User-Api-Key"))
	s.Equal("https://local.test", gotRequest.Header.Get("Origin"))

	s.Equal([]recordedSuccess{{kind: domain.KindSupplier, id: 1}}, s.recorder.successes)
}

func (s *ClientTestSuite) TestFetchSubscriptions_NonOKStatus() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error": "invalid api key"}`))
	}))
	defer server.Close()

	client := s.newClient(5 * time.Second)
	response, failure := client.FetchSubscriptions(context.Background(), s.supplierFor(server.URL), []string{"widget"})

	s.Nil(response)
	s.Require().NotNil(failure)
	s.Require().NotNil(failure.Response)
	s.Equal(http.StatusForbidden, failure.Response.Status)
	s.JSONEq(`{"error": "invalid api key"}`, string(failure.Response.Body))

	s.Empty(s.recorder.successes)
}

func (s *ClientTestSuite) TestFetchSubscriptions_NonJSONErrorBodyDropped() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`<html>bad gateway</html>`))
	}))
	defer server.Close()

	client := s.newClient(5 * time.Second)
	response, failure := client.FetchSubscriptions(context.Background(), s.supplierFor(server.URL), []string{"widget"})

	s.Nil(response)
	s.Require().NotNil(failure)
	s.Require().NotNil(failure.Response)
	s.Equal(http.StatusBadGateway, failure.Response.Status)
	s.Nil(failure.Response.Body)
}

func (s *ClientTestSuite) TestFetchSubscriptions_Timeout() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	client := s.newClient(20 * time.Millisecond)
	response, failure := client.FetchSubscriptions(context.Background(), s.supplierFor(server.URL), []string{"widget"})

	s.Nil(response)
	s.Require().NotNil(failure)
	s.Error(failure.Err)
	s.Nil(failure.Response)

	s.Empty(s.recorder.successes)
}

func (s *ClientTestSuite) TestFetchSubscriptions_MalformedBodyOn200() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json at all`))
	}))
	defer server.Close()

	client := s.newClient(5 * time.Second)
	response, failure := client.FetchSubscriptions(context.Background(), s.supplierFor(server.URL), []string{"widget"})

	// Nothing to reconcile, but the fetch itself succeeded: the live error
	// was expired before the body was parsed.
	s.Nil(response)
	s.Nil(failure)
	s.Equal([]recordedSuccess{{kind: domain.KindSupplier, id: 1}}, s.recorder.successes)
}

func (s *ClientTestSuite) TestFetchSubscriptions_NoResourcesOmitsQuery() {
	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		_, _ = w.Write([]byte(`{"subscriptions": []}`))
	}))
	defer server.Close()

	client := s.newClient(5 * time.Second)
	response, failure := client.FetchSubscriptions(context.Background(), s.supplierFor(server.URL), nil)

	s.Nil(failure)
	s.NotNil(response)
	s.Empty(gotQuery)
}
