// Package observability holds the Prometheus collectors shared across the workout service.
package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	summariesComputed = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "workout_service",
		Subsystem: "summary",
		Name:      "computed_total",
		Help:      "Number of workout summaries computed, labeled by workout code.",
	}, []string{"workout_type"})

	packagesRejected = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "workout_service",
		Subsystem: "summary",
		Name:      "packages_rejected_total",
		Help:      "Number of workout packages rejected as invalid input, labeled by workout code.",
	}, []string{"workout_type"})

	lastSummaryGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "workout_service",
		Subsystem: "summary",
		Name:      "last_summary_timestamp_seconds",
		Help:      "Unix timestamp of the most recent computed summary.",
	})
)

func init() {
	prometheus.MustRegister(summariesComputed, packagesRejected, lastSummaryGauge)
}

// RecordSummaryComputed increments the computed counter and moves the watermark gauge.
func RecordSummaryComputed(workoutType string, ts time.Time) {
	summariesComputed.WithLabelValues(workoutType).Inc()
	if ts.IsZero() {
		return
	}
	lastSummaryGauge.Set(float64(ts.Unix()))
}

// RecordPackageRejected increments the rejection counter.
func RecordPackageRejected(workoutType string) {
	packagesRejected.WithLabelValues(workoutType).Inc()
}

// SummariesComputed exposes the computed counter for the given code; used by tests.
func SummariesComputed(workoutType string) prometheus.Counter {
	return summariesComputed.WithLabelValues(workoutType)
}

// PackagesRejected exposes the rejection counter for the given code; used by tests.
func PackagesRejected(workoutType string) prometheus.Counter {
	return packagesRejected.WithLabelValues(workoutType)
}
