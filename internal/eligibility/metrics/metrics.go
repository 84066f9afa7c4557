package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the eligibility module.
type Metrics struct {
	// Verdicts by outcome and deciding gate
	Verdicts *prometheus.CounterVec

	// Full evaluation latency including collaborator calls
	EvaluateLatency prometheus.Histogram
}

// New creates a new Metrics instance with all eligibility metrics registered.
func New() *Metrics {
	return &Metrics{
		Verdicts: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "crosscall_eligibility_verdicts_total",
			Help: "Total availability verdicts by outcome and deciding reason",
		}, []string{"verdict", "reason"}),

		EvaluateLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "crosscall_eligibility_evaluate_duration_seconds",
			Help:    "Duration of full availability evaluation including collaborator calls",
			Buckets: []float64{0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}),
	}
}

// IncrementVerdict records an evaluation outcome.
func (m *Metrics) IncrementVerdict(verdict, reason string) {
	if m != nil {
		m.Verdicts.WithLabelValues(verdict, reason).Inc()
	}
}

// ObserveEvaluateLatency records the total evaluation duration.
func (m *Metrics) ObserveEvaluateLatency(d time.Duration) {
	if m != nil {
		m.EvaluateLatency.Observe(d.Seconds())
	}
}
