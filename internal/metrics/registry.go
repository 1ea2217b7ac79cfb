package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	defaultRegistry *prometheus.Registry
	defaultMetrics  *Metrics
	once            sync.Once
)

// Default returns the process-wide registry and metrics, creating them on first use.
func Default() (*prometheus.Registry, *Metrics) {
	once.Do(func() {
		defaultRegistry, defaultMetrics = NewRegistry()
	})
	return defaultRegistry, defaultMetrics
}

// NewRegistry creates a registry holding the router metrics plus the Go
// runtime and process collectors.
func NewRegistry() (*prometheus.Registry, *Metrics) {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg, NewMetrics(reg)
}

// HandlerFor returns an HTTP handler exposing reg in the Prometheus text format.
func HandlerFor(reg prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}

// Reset discards the process-wide instance (useful for testing)
func Reset() {
	defaultRegistry, defaultMetrics = nil, nil
	once = sync.Once{}
}
