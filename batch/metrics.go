package batch

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics counts batch work. A nil *Metrics is valid and records nothing.
type Metrics struct {
	computationsTotal prometheus.Counter
	parseErrorsTotal  prometheus.Counter
	distanceValue     prometheus.Histogram

	registry *prometheus.Registry
}

// NewMetrics creates collectors on a private registry, see Gatherer.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	m := NewMetricsWithRegistry(registry)
	m.registry = registry
	return m
}

func NewMetricsWithRegistry(registry prometheus.Registerer) *Metrics {
	return &Metrics{
		computationsTotal: promauto.With(registry).NewCounter(
			prometheus.CounterOpts{
				Name: "manhattan_distance_computations_total",
				Help: "Total number of distances computed",
			},
		),
		parseErrorsTotal: promauto.With(registry).NewCounter(
			prometheus.CounterOpts{
				Name: "manhattan_parse_errors_total",
				Help: "Total number of input lines that failed to parse",
			},
		),
		distanceValue: promauto.With(registry).NewHistogram(
			prometheus.HistogramOpts{
				Name:    "manhattan_distance_value",
				Help:    "Distribution of computed distances",
				Buckets: prometheus.ExponentialBuckets(1, 4, 10),
			},
		),
	}
}

// Gatherer returns the private registry, or nil when the collectors were
// registered elsewhere.
func (m *Metrics) Gatherer() prometheus.Gatherer {
	if m == nil || m.registry == nil {
		return nil
	}
	return m.registry
}

func (m *Metrics) recordDistance(d int) {
	if m == nil {
		return
	}
	m.computationsTotal.Inc()
	m.distanceValue.Observe(float64(d))
}

func (m *Metrics) recordParseError() {
	if m == nil {
		return
	}
	m.parseErrorsTotal.Inc()
}
