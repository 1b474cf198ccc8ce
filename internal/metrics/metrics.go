// Package metrics collects and exposes Prometheus metrics for sync runs.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder is the interface the sync service reports through.
type Recorder interface {
	RecordRun(duration time.Duration, ok bool)
	RecordConnectionError(kind string)
	RecordSubscriptions(created, updated, deactivated int)
}

// Collector implements Recorder backed by Prometheus metrics.
type Collector struct {
	runs             *prometheus.CounterVec
	runDuration      prometheus.Histogram
	connectionErrors *prometheus.CounterVec
	created          prometheus.Counter
	updated          prometheus.Counter
	deactivated      prometheus.Counter
}

// NewCollector creates a Collector and registers its metrics on reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "subscription_syncer_runs_total",
			Help: "Total sync runs by outcome.",
		}, []string{"outcome"}),
		runDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "subscription_syncer_run_duration_seconds",
			Help:    "Duration of sync runs in seconds.",
			Buckets: prometheus.DefBuckets,
		}),
		connectionErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "subscription_syncer_connection_errors_total",
			Help: "Total recorded connection errors by entity kind.",
		}, []string{"kind"}),
		created: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "subscription_syncer_subscriptions_created_total",
			Help: "Total subscriptions created by reconciliation.",
		}),
		updated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "subscription_syncer_subscriptions_updated_total",
			Help: "Total subscriptions refreshed by reconciliation.",
		}),
		deactivated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "subscription_syncer_subscriptions_deactivated_total",
			Help: "Total subscriptions deactivated by reconciliation.",
		}),
	}

	reg.MustRegister(
		c.runs,
		c.runDuration,
		c.connectionErrors,
		c.created,
		c.updated,
		c.deactivated,
	)

	return c
}

func (c *Collector) RecordRun(duration time.Duration, ok bool) {
	outcome := "ok"
	if !ok {
		outcome = "error"
	}
	c.runs.WithLabelValues(outcome).Inc()
	c.runDuration.Observe(duration.Seconds())
}

func (c *Collector) RecordConnectionError(kind string) {
	c.connectionErrors.WithLabelValues(kind).Inc()
}

func (c *Collector) RecordSubscriptions(created, updated, deactivated int) {
	c.created.Add(float64(created))
	c.updated.Add(float64(updated))
	c.deactivated.Add(float64(deactivated))
}

// Handler returns the HTTP handler serving the /metrics endpoint.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	return mux
}
