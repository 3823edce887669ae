package outbox

import "github.com/prometheus/client_golang/prometheus"

var (
	deliveredCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "workout_service",
		Subsystem: "publisher",
		Name:      "events_delivered_total",
		Help:      "Number of events successfully published to Kafka, labeled by topic.",
	}, []string{"topic"})

	failedCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "workout_service",
		Subsystem: "publisher",
		Name:      "events_failed_total",
		Help:      "Number of events that could not be published, labeled by topic.",
	}, []string{"topic"})

	publishDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "workout_service",
		Subsystem: "publisher",
		Name:      "publish_duration_seconds",
		Help:      "Time spent resolving schemas and writing a single event.",
		Buckets:   prometheus.ExponentialBuckets(0.001, 2, 12),
	})
)

func init() {
	prometheus.MustRegister(deliveredCounter, failedCounter, publishDuration)
}
