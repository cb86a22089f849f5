package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestCounter counts HTTP requests by status code, method, and path
	RequestCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "competition_hub_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"status", "method", "path"},
	)

	// RequestDuration measures HTTP request duration
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "competition_hub_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"status", "method", "path"},
	)

	// SourceReadDuration measures reads against the competition source
	SourceReadDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "competition_hub_source_read_duration_seconds",
			Help:    "Competition source read duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"source", "operation"},
	)

	// PhaseEvaluations counts derived competition phases
	PhaseEvaluations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "competition_hub_phase_evaluations_total",
			Help: "Number of competition views evaluated, by phase",
		},
		[]string{"phase"},
	)

	// ActionRejections counts vote and submit attempts refused before reaching the source
	ActionRejections = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "competition_hub_action_rejections_total",
			Help: "Total number of rejected vote/submit actions",
		},
		[]string{"action", "reason"},
	)
)

// RecordSourceRead records the duration of a source read
func RecordSourceRead(source, operation string, startTime time.Time) {
	SourceReadDuration.WithLabelValues(source, operation).Observe(time.Since(startTime).Seconds())
}
