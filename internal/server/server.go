// Package server exposes the router over HTTP.
//
// Besides the routing API it serves the OpenAPI document, Prometheus
// metrics and Kubernetes-style health probes, and shuts down gracefully by
// failing readiness before draining connections.
package server

import (
	"context"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/paikeys/paikeys/internal/health"
	"github.com/paikeys/paikeys/internal/log"
	"github.com/paikeys/paikeys/internal/metrics"
	"github.com/paikeys/paikeys/internal/router"
)

// maxBodyBytes bounds POST /api/route-model request bodies.
const maxBodyBytes = 1 << 20

// Router is the selection engine the server dispatches to.
type Router interface {
	Route(req router.RoutingRequest) (*router.RoutingResult, error)
	Catalog() *router.Catalog
}

// Server provides the HTTP API.
type Server struct {
	httpServer      *http.Server
	router          Router
	probeManager    *health.ProbeManager
	logger          *log.Logger
	metrics         *metrics.Metrics
	gatherer        prometheus.Gatherer
	inShutdown      atomic.Bool
	shutdownTimeout time.Duration
}

// Config holds server configuration.
type Config struct {
	// Address is the listen address (e.g., ":8080", "0.0.0.0:8080")
	Address string

	// ShutdownTimeout is the maximum time to wait for connections to drain.
	// Defaults to 30 seconds.
	ShutdownTimeout time.Duration

	// ReadTimeout defaults to 10 seconds.
	ReadTimeout time.Duration

	// WriteTimeout defaults to 10 seconds.
	WriteTimeout time.Duration

	// IdleTimeout defaults to 60 seconds.
	IdleTimeout time.Duration
}

// Option customizes a Server.
type Option func(*Server)

// WithLogger sets the request logger. The default discards logs.
func WithLogger(logger *log.Logger) Option {
	return func(s *Server) { s.logger = logger }
}

// WithMetrics records into m and serves reg on /metrics.
// Without it the server uses a private registry.
func WithMetrics(reg prometheus.Gatherer, m *metrics.Metrics) Option {
	return func(s *Server) {
		s.gatherer = reg
		s.metrics = m
	}
}

// NewServer creates a new HTTP server for r.
func NewServer(r Router, probeManager *health.ProbeManager, cfg Config, opts ...Option) *Server {
	if cfg.ShutdownTimeout == 0 {
		cfg.ShutdownTimeout = 30 * time.Second
	}
	if cfg.ReadTimeout == 0 {
		cfg.ReadTimeout = 10 * time.Second
	}
	if cfg.WriteTimeout == 0 {
		cfg.WriteTimeout = 10 * time.Second
	}
	if cfg.IdleTimeout == 0 {
		cfg.IdleTimeout = 60 * time.Second
	}

	s := &Server{
		router:          r,
		probeManager:    probeManager,
		shutdownTimeout: cfg.ShutdownTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = log.Discard()
	}
	if s.metrics == nil {
		reg, m := metrics.NewRegistry()
		s.gatherer, s.metrics = reg, m
	}
	s.metrics.CatalogModels.Set(float64(r.Catalog().Len()))

	s.httpServer = &http.Server{
		Addr:         cfg.Address,
		Handler:      s.Handler(),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return s
}

// Handler returns the full middleware-wrapped handler tree.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/route-model", s.handleListModels)
	mux.HandleFunc("POST /api/route-model", s.handleRouteModel)
	mux.HandleFunc("GET /api/openapi.yaml", s.handleOpenAPI)
	mux.Handle("GET /metrics", metrics.HandlerFor(s.gatherer))

	mux.HandleFunc("GET /health/live", s.handleLiveness)
	mux.HandleFunc("GET /health/ready", s.handleReadiness)
	mux.HandleFunc("GET /health/startup", s.handleStartup)
	mux.HandleFunc("GET /healthz", s.handleReadiness)

	return s.withRequestID(s.withInstrumentation(s.withRecovery(withJSONFallback(mux))))
}

// Start listens and serves until the server is shut down.
// Returns http.ErrServerClosed after a graceful shutdown.
func (s *Server) Start() error {
	s.probeManager.MarkInitialized()
	return s.httpServer.ListenAndServe()
}

// Shutdown fails readiness, stops keep-alives and drains open connections
// for up to the configured shutdown timeout.
func (s *Server) Shutdown(ctx context.Context) error {
	s.inShutdown.Store(true)
	s.probeManager.MarkShutdown()
	s.httpServer.SetKeepAlivesEnabled(false)

	shutdownCtx, cancel := context.WithTimeout(ctx, s.shutdownTimeout)
	defer cancel()

	return s.httpServer.Shutdown(shutdownCtx)
}

// IsShuttingDown returns whether the server is shutting down.
func (s *Server) IsShuttingDown() bool {
	return s.inShutdown.Load()
}
