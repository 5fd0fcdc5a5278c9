package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus instruments for the aggregation service.
type Metrics struct {
	RecomputeDuration prometheus.Histogram
	RowsNormalized    prometheus.Counter
	RowsDropped       prometheus.Counter

	IngestRows   *prometheus.CounterVec // label: source
	IngestErrors *prometheus.CounterVec // label: source

	WeatherRequests *prometheus.CounterVec // label: outcome={success,error}
	WeatherCache    *prometheus.CounterVec // label: result={hit,miss}
}

// NewMetrics creates and registers all service metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.RecomputeDuration,
		m.RowsNormalized,
		m.RowsDropped,
		m.IngestRows,
		m.IngestErrors,
		m.WeatherRequests,
		m.WeatherCache,
	)
	return m
}

// NewMetricsForTesting creates Metrics without registering them, so tests
// can construct them repeatedly without "already registered" panics.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		RecomputeDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "urban_rhythm",
			Name:      "recompute_duration_seconds",
			Help:      "Duration of a full normalize-aggregate-correlate-cluster pass.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
		RowsNormalized: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "urban_rhythm",
			Name:      "rows_normalized_total",
			Help:      "Raw rows successfully normalized across all datasets.",
		}),
		RowsDropped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "urban_rhythm",
			Name:      "rows_dropped_total",
			Help:      "Raw rows excluded for unparsable timestamps or unresolvable boroughs.",
		}),
		IngestRows: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "urban_rhythm",
			Name:      "ingest_rows_total",
			Help:      "Raw rows accepted by the ingest API, by source.",
		}, []string{"source"}),
		IngestErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "urban_rhythm",
			Name:      "ingest_errors_total",
			Help:      "Ingest payloads rejected, by source.",
		}, []string{"source"}),
		WeatherRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "urban_rhythm",
			Name:      "weather_requests_total",
			Help:      "Weather proxy requests by outcome.",
		}, []string{"outcome"}),
		WeatherCache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "urban_rhythm",
			Name:      "weather_cache_total",
			Help:      "Weather cache lookups by result.",
		}, []string{"result"}),
	}
}
