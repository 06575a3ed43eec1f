// Package metrics exposes prometheus instrumentation for sync runs.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Page processing results.
const (
	ResultProcessed = "processed"
	ResultSkipped   = "skipped"
	ResultFailed    = "failed"
)

// SyncMetrics counts sync activity per datasource. A nil *SyncMetrics is
// a valid no-op receiver so callers never need nil checks.
type SyncMetrics struct {
	pages       *prometheus.CounterVec
	runs        *prometheus.CounterVec
	runDuration *prometheus.HistogramVec
}

func New(reg prometheus.Registerer) *SyncMetrics {
	factory := promauto.With(reg)
	return &SyncMetrics{
		pages: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pagesync",
			Name:      "pages_total",
			Help:      "Pages handled during sync runs, by result.",
		}, []string{"datasource", "result"}),
		runs: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pagesync",
			Name:      "runs_total",
			Help:      "Completed sync runs, by status.",
		}, []string{"datasource", "status"}),
		runDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "pagesync",
			Name:      "run_duration_seconds",
			Help:      "Wall-clock duration of sync runs.",
			Buckets:   prometheus.ExponentialBuckets(0.1, 2, 12),
		}, []string{"datasource"}),
	}
}

func (m *SyncMetrics) PageHandled(datasource, result string) {
	if m == nil {
		return
	}
	m.pages.WithLabelValues(datasource, result).Inc()
}

func (m *SyncMetrics) RunCompleted(datasource, status string, duration time.Duration) {
	if m == nil {
		return
	}
	m.runs.WithLabelValues(datasource, status).Inc()
	m.runDuration.WithLabelValues(datasource).Observe(duration.Seconds())
}
