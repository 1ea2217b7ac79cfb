package cmd

import (
	"context"
	stderrors "errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/paikeys/paikeys/internal/apidoc"
	"github.com/paikeys/paikeys/internal/health"
	"github.com/paikeys/paikeys/internal/log"
	"github.com/paikeys/paikeys/internal/metrics"
	"github.com/paikeys/paikeys/internal/server"
	"github.com/paikeys/paikeys/internal/version"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP routing API",
	Long: `Start an HTTP server exposing the router.

Endpoints:
  GET  /api/route-model    - List the catalog (ETag: catalog digest)
  POST /api/route-model    - Route a {prompt, modality, priority} request
  GET  /api/openapi.yaml   - OpenAPI description
  GET  /metrics            - Prometheus metrics
  GET  /health/live        - Liveness probe
  GET  /health/ready       - Readiness probe (also /healthz)
  GET  /health/startup     - Startup probe

Every flag can also be set through a PAIKEYS_ environment variable, for
example PAIKEYS_PORT=9090 or PAIKEYS_LOG_LEVEL=debug. Flags win over the
environment.

The server drains connections gracefully on SIGTERM or SIGINT.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

// serveSettings is the merged flag and environment configuration of serve.
type serveSettings struct {
	Address         string        `mapstructure:"address"`
	Port            string        `mapstructure:"port"`
	Config          string        `mapstructure:"config"`
	Catalog         string        `mapstructure:"catalog"`
	LogLevel        string        `mapstructure:"log-level"`
	LogFormat       string        `mapstructure:"log-format"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown-timeout"`
	ReadTimeout     time.Duration `mapstructure:"read-timeout"`
	WriteTimeout    time.Duration `mapstructure:"write-timeout"`
	IdleTimeout     time.Duration `mapstructure:"idle-timeout"`
}

func init() {
	serveCmd.Flags().String("port", "8080", "Port to listen on")
	serveCmd.Flags().String("address", "0.0.0.0", "Address to bind to")
	serveCmd.Flags().Duration("shutdown-timeout", 30*time.Second, "Maximum time to wait for connections to drain during shutdown")
	serveCmd.Flags().Duration("read-timeout", 10*time.Second, "Maximum duration for reading the entire request")
	serveCmd.Flags().Duration("write-timeout", 10*time.Second, "Maximum duration before timing out writes of the response")
	serveCmd.Flags().Duration("idle-timeout", 60*time.Second, "Maximum amount of time to wait for the next request")

	rootCmd.AddCommand(serveCmd)
}

// loadServeSettings merges cmd's flags with PAIKEYS_* environment variables.
func loadServeSettings(cmd *cobra.Command) (*serveSettings, error) {
	v := viper.New()
	v.SetEnvPrefix("PAIKEYS")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return nil, fmt.Errorf("bind flags: %w", err)
	}

	var settings serveSettings
	if err := v.Unmarshal(&settings); err != nil {
		return nil, fmt.Errorf("read serve settings: %w", err)
	}
	return &settings, nil
}

func runServe(cmd *cobra.Command, args []string) error {
	settings, err := loadServeSettings(cmd)
	if err != nil {
		return err
	}

	info := version.GetInfo()
	logConfig := log.DefaultConfig()
	logConfig.Level = log.ParseLevel(settings.LogLevel)
	logConfig.Format = log.ParseFormat(settings.LogFormat)
	logConfig.Output = log.NewOutput(cmd.ErrOrStderr())
	logConfig.ServiceVersion = info.Version
	logger := log.New(logConfig)
	log.SetDefaultLogger(logger)

	// The HTTP API must match its published description.
	if _, err := apidoc.Load(cmd.Context()); err != nil {
		return err
	}

	configFile, catalogFile = settings.Config, settings.Catalog
	r, err := loadRouter()
	if err != nil {
		return err
	}

	pm := health.NewProbeManager(info.Version)
	pm.AddChecker(health.NewCatalogChecker(r))

	reg, m := metrics.Default()
	listenAddr := net.JoinHostPort(settings.Address, settings.Port)
	srv := server.NewServer(r, pm, server.Config{
		Address:         listenAddr,
		ShutdownTimeout: settings.ShutdownTimeout,
		ReadTimeout:     settings.ReadTimeout,
		WriteTimeout:    settings.WriteTimeout,
		IdleTimeout:     settings.IdleTimeout,
	}, server.WithLogger(logger), server.WithMetrics(reg, m))

	logger.Info("server starting",
		"address", listenAddr,
		"models", r.Catalog().Len(),
		"catalog_digest", r.Catalog().Digest(),
	)

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !stderrors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-serverErr:
		return fmt.Errorf("server error: %w", err)

	case <-ctx.Done():
		logger.Info("shutting down", "timeout", settings.ShutdownTimeout.String())

		shutdownCtx, cancel := context.WithTimeout(context.Background(), settings.ShutdownTimeout+5*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown error: %w", err)
		}

		logger.Info("server stopped")
		return nil
	}
}
