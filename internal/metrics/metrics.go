// Package metrics exposes Prometheus counters for code issuance and date checks.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "curp"

// Metrics provides observability for the issuer and the HTTP API.
type Metrics struct {
	registry *prometheus.Registry

	// Codes issued by state code
	Generated *prometheus.CounterVec

	// Date validations by reason
	DateValidations *prometheus.CounterVec

	// Failed issuance attempts by kind: validation, date, state, sex, internal
	Failures *prometheus.CounterVec

	// Issuance latency
	IssueLatency prometheus.Histogram
}

// New registers every metric on a fresh registry, together with the Go
// runtime and process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return NewWithRegistry(reg)
}

// NewWithRegistry registers every metric on reg.
func NewWithRegistry(reg *prometheus.Registry) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		registry: reg,

		Generated: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "generated_total",
			Help:      "Total codes generated by state of birth",
		}, []string{"state"}),

		DateValidations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "date_validations_total",
			Help:      "Total date validations by outcome reason",
		}, []string{"reason"}),

		Failures: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "issue_failures_total",
			Help:      "Total failed issuance attempts by kind",
		}, []string{"kind"}),

		IssueLatency: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "issue_duration_seconds",
			Help:      "Duration of a full issuance including validation",
			Buckets:   []float64{0.0001, 0.00025, 0.0005, 0.001, 0.0025, 0.005, 0.01, 0.05},
		}),
	}
}

// IncGenerated records an issued code.
func (m *Metrics) IncGenerated(state string) {
	if m != nil {
		m.Generated.WithLabelValues(state).Inc()
	}
}

// IncDateValidation records a date validation outcome.
func (m *Metrics) IncDateValidation(reason string) {
	if m != nil {
		m.DateValidations.WithLabelValues(reason).Inc()
	}
}

// IncFailure records a failed issuance.
func (m *Metrics) IncFailure(kind string) {
	if m != nil {
		m.Failures.WithLabelValues(kind).Inc()
	}
}

// ObserveIssueLatency records the duration of one issuance.
func (m *Metrics) ObserveIssueLatency(d time.Duration) {
	if m != nil {
		m.IssueLatency.Observe(d.Seconds())
	}
}

// Handler serves the registry in the Prometheus exposition format.
// A nil Metrics serves an empty registry.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return promhttp.HandlerFor(prometheus.NewRegistry(), promhttp.HandlerOpts{})
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
