package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the model router
type Metrics struct {
	// Routing decision metrics
	Decisions         *prometheus.CounterVec
	DecisionDuration  *prometheus.HistogramVec
	EstimatedTokens   *prometheus.HistogramVec
	ModalityFallbacks *prometheus.CounterVec
	CatalogModels     prometheus.Gauge

	// HTTP adapter metrics
	HTTPRequests        *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Error metrics (by error code from structured errors)
	Errors *prometheus.CounterVec
}

// NewMetrics creates a new Metrics instance with all metrics registered
func NewMetrics(registry prometheus.Registerer) *Metrics {
	factory := promauto.With(registry)

	return &Metrics{
		Decisions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "paikeys_routing_decisions_total",
				Help: "Total number of routing decisions by request and selected model",
			},
			[]string{"modality", "priority", "primary"},
		),
		DecisionDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "paikeys_routing_duration_seconds",
				Help:    "Time spent ranking the catalog for one request",
				Buckets: []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01},
			},
			[]string{"modality"},
		),
		EstimatedTokens: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "paikeys_estimated_prompt_tokens",
				Help:    "Estimated prompt size in tokens",
				Buckets: prometheus.ExponentialBuckets(16, 4, 8),
			},
			[]string{"modality"},
		),
		ModalityFallbacks: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "paikeys_modality_fallbacks_total",
				Help: "Requests for a modality no catalog model supports",
			},
			[]string{"modality"},
		),
		CatalogModels: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "paikeys_catalog_models",
				Help: "Number of models in the loaded catalog",
			},
		),

		HTTPRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "paikeys_http_requests_total",
				Help: "Total number of HTTP requests by route and status",
			},
			[]string{"method", "route", "status"},
		),
		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "paikeys_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),

		Errors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "paikeys_errors_total",
				Help: "Total number of errors by error code",
			},
			[]string{"error_code", "component"},
		),
	}
}

// RecordDecision records a successful routing decision.
func (m *Metrics) RecordDecision(modality, priority, primary string, fallback bool, tokens int, elapsed time.Duration) {
	m.Decisions.WithLabelValues(modality, priority, primary).Inc()
	m.DecisionDuration.WithLabelValues(modality).Observe(elapsed.Seconds())
	m.EstimatedTokens.WithLabelValues(modality).Observe(float64(tokens))
	if fallback {
		m.ModalityFallbacks.WithLabelValues(modality).Inc()
	}
}

// RecordError counts an error by structured code and the component that saw it.
func (m *Metrics) RecordError(code, component string) {
	if code == "" {
		code = "UNKNOWN"
	}
	m.Errors.WithLabelValues(code, component).Inc()
}

// ObserveHTTPRequest records one served HTTP request.
func (m *Metrics) ObserveHTTPRequest(method, route string, status int, elapsed time.Duration) {
	m.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}
