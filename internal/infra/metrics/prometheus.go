// Package metrics exposes credential operation counters to Prometheus.
package metrics

import (
	"net/http"

	"credkeeper/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "credkeeper"

// Recorder implements service.CredentialMetrics on its own registry.
type Recorder struct {
	registry   *prometheus.Registry
	operations *prometheus.CounterVec
}

var _ service.CredentialMetrics = (*Recorder)(nil)

// New creates a Recorder with the credential counters and the Go runtime collectors registered.
func New() *Recorder {
	registry := prometheus.NewRegistry()

	operations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "credential_operations_total",
		Help:      "Credential operations by operation and outcome.",
	}, []string{"operation", "outcome"})

	registry.MustRegister(
		operations,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return &Recorder{
		registry:   registry,
		operations: operations,
	}
}

// NewCredentialMetrics adapts a Recorder to the domain interface for injection.
func NewCredentialMetrics(r *Recorder) service.CredentialMetrics {
	return r
}

// ObserveOperation increments the counter for operation and outcome.
func (r *Recorder) ObserveOperation(operation, outcome string) {
	r.operations.WithLabelValues(operation, outcome).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}

// Gatherer returns the underlying registry.
func (r *Recorder) Gatherer() prometheus.Gatherer {
	return r.registry
}
