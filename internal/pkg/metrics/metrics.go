package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels of a UI generation request
const (
	OutcomeGenerated        = "generated"
	OutcomeUnavailable      = "unavailable"
	OutcomeGenerationFailed = "generation_failed"
	OutcomeParseFailed      = "parse_failed"
	OutcomeError            = "error"
)

type Metrics struct {
	generations *prometheus.CounterVec
	duration    *prometheus.HistogramVec
	dataFetch   *prometheus.CounterVec
}

func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		generations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ux_generation_total",
				Help: "Total number of UI generation requests by outcome",
			},
			[]string{"page_type", "outcome"},
		),
		duration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "ux_generation_duration_seconds",
				Help:    "Duration of generator calls in seconds",
				Buckets: []float64{0.25, 0.5, 1, 2, 5, 10, 20, 30, 60},
			},
			[]string{"page_type"},
		),
		dataFetch: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ux_catalog_read_failures_total",
				Help: "Total number of catalog reads that failed and were replaced by empty results",
			},
			[]string{"source"},
		),
	}
}

func (m *Metrics) ObserveOutcome(pageType, outcome string) {
	if m == nil {
		return
	}
	m.generations.WithLabelValues(pageType, outcome).Inc()
}

func (m *Metrics) ObserveGeneration(pageType string, d time.Duration) {
	if m == nil {
		return
	}
	m.duration.WithLabelValues(pageType).Observe(d.Seconds())
}

func (m *Metrics) ObserveReadFailure(source string) {
	if m == nil {
		return
	}
	m.dataFetch.WithLabelValues(source).Inc()
}
