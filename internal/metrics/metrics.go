package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics records puzzle timings and failures.
type Metrics struct {
	duration *prometheus.HistogramVec
	failures *prometheus.CounterVec
	runs     prometheus.Counter
}

// New registers the collectors on reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "advent",
			Name:      "puzzle_duration_seconds",
			Help:      "Wall-clock time spent solving one puzzle.",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10),
		}, []string{"puzzle"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "advent",
			Name:      "puzzle_failures_total",
			Help:      "Puzzles that returned an error.",
		}, []string{"puzzle"}),
		runs: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "advent",
			Name:      "runs_total",
			Help:      "Harness runs started.",
		}),
	}
	reg.MustRegister(m.duration, m.failures, m.runs)
	return m
}

// NewNoop returns metrics bound to a private registry.
func NewNoop() *Metrics { return New(prometheus.NewRegistry()) }

func (m *Metrics) ObserveSolve(puzzle string, d time.Duration, err error) {
	m.duration.WithLabelValues(puzzle).Observe(d.Seconds())
	if err != nil {
		m.failures.WithLabelValues(puzzle).Inc()
	}
}

func (m *Metrics) RunStarted() { m.runs.Inc() }
