// Package observability exposes pipeline metrics and error classification.
package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "goalies"

// Metrics holds the pipeline collectors on their own registry, so tests and
// multiple pipelines in one process never collide on registration.
type Metrics struct {
	registry *prometheus.Registry

	partitions  *prometheus.CounterVec
	rowsLoaded  *prometheus.CounterVec
	rowsDropped *prometheus.CounterVec
	errors      *prometheus.CounterVec
	runDuration prometheus.Histogram
}

func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		partitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "partitions_total",
			Help:      "Partitions processed, by final state.",
		}, []string{"state"}),
		rowsLoaded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rows_loaded_total",
			Help:      "Rows appended to the target table.",
		}, []string{"source"}),
		rowsDropped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rows_dropped_total",
			Help:      "Rows excluded from a batch, by cause.",
		}, []string{"source", "reason"}),
		errors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "errors_total",
			Help:      "Errors seen by the pipeline.",
		}, []string{"type", "component"}),
		runDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "run_duration_seconds",
			Help:      "Wall time of a full pipeline run.",
			Buckets:   prometheus.ExponentialBuckets(0.05, 2, 12),
		}),
	}
	m.registry.MustRegister(m.partitions, m.rowsLoaded, m.rowsDropped, m.errors, m.runDuration)
	return m
}

func (m *Metrics) IncPartition(state string) {
	m.partitions.WithLabelValues(state).Inc()
}

func (m *Metrics) AddRowsLoaded(source string, n int) {
	if n <= 0 {
		return
	}
	m.rowsLoaded.WithLabelValues(source).Add(float64(n))
}

func (m *Metrics) IncRowDropped(source, reason string) {
	m.rowsDropped.WithLabelValues(source, orUnknown(reason)).Inc()
}

func (m *Metrics) IncError(errType, component string) {
	m.errors.WithLabelValues(orUnknown(errType), orUnknown(component)).Inc()
}

func (m *Metrics) ObserveRunDuration(seconds float64) {
	if seconds < 0 {
		return
	}
	m.runDuration.Observe(seconds)
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}
