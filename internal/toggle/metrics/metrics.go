package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the toggle module.
type Metrics struct {
	// Reads by result ("on", "off", "failed")
	Reads *prometheus.CounterVec

	// Writes by requested value and outcome
	Writes *prometheus.CounterVec
}

// New creates a new Metrics instance with all toggle metrics registered.
func New() *Metrics {
	return &Metrics{
		Reads: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "crosscall_toggle_reads_total",
			Help: "Total toggle state reads by result",
		}, []string{"result"}),

		Writes: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "crosscall_toggle_writes_total",
			Help: "Total toggle writes by requested value and outcome",
		}, []string{"value", "outcome"}),
	}
}

// IncrementRead records a toggle state read.
func (m *Metrics) IncrementRead(result string) {
	if m != nil {
		m.Reads.WithLabelValues(result).Inc()
	}
}

// IncrementWrite records a toggle write attempt.
func (m *Metrics) IncrementWrite(value, outcome string) {
	if m != nil {
		m.Writes.WithLabelValues(value, outcome).Inc()
	}
}
