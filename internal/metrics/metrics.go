package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// AIRequests counts calls to the generative model by operation and outcome.
	AIRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "kolink_ai_requests_total",
		Help: "Total number of AI model requests by operation and outcome",
	}, []string{"operation", "outcome"})

	// AILatency records model round-trip time by operation.
	AILatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "kolink_ai_request_duration_seconds",
		Help:    "AI model request latency in seconds",
		Buckets: []float64{0.5, 1, 2, 5, 10, 20, 40, 60},
	}, []string{"operation"})

	// CreditsConsumed counts credits spent by operation.
	CreditsConsumed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "kolink_credits_consumed_total",
		Help: "Total credits consumed by operation",
	}, []string{"operation"})

	// CreditsRejected counts operations refused for lack of credits.
	CreditsRejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "kolink_credits_rejected_total",
		Help: "Operations refused because the balance was too low",
	}, []string{"operation"})

	InsightsGenerated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "kolink_insights_generated_total",
		Help: "Total number of insight sentences produced for statistics reports",
	})

	// StatsCacheLookups counts statistics cache lookups by result: hit, miss or stale.
	StatsCacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "kolink_stats_cache_lookups_total",
		Help: "Statistics cache lookups by result",
	}, []string{"result"})
)

const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
)

// ObserveAI records one model call.
func ObserveAI(operation string, started time.Time, err error) {
	outcome := OutcomeSuccess
	if err != nil {
		outcome = OutcomeError
	}
	AIRequests.WithLabelValues(operation, outcome).Inc()
	AILatency.WithLabelValues(operation).Observe(time.Since(started).Seconds())
}
