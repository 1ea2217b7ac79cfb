package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/paikeys/paikeys/internal/log"
	"github.com/paikeys/paikeys/internal/router"
	"github.com/paikeys/paikeys/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "paikeys",
	Short: "Deterministic AI model router",
	Long: `paikeys picks the best-suited AI model for a task from a static catalog.

Given a prompt, a modality (text, code, vision, audio, image, multimodal) and a
priority (intelligence, speed, economy) it ranks every eligible model and
explains the decision. Use 'paikeys serve' to expose the router over HTTP or
the route commands to try decisions from the terminal.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupLogging,
}

// Global flags
var (
	configFile  string
	catalogFile string
	logLevel    string
	logFormat   string
	format      string
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "router config file (YAML)")
	rootCmd.PersistentFlags().StringVar(&catalogFile, "catalog", "", "catalog file (YAML); overrides catalog_file in the config")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "log format (text, json)")
	rootCmd.PersistentFlags().StringVar(&format, "format", "text", "output format (text, json)")
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// ExecuteContext runs the root command with ctx, which is cancelled on interrupt.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func setupLogging(cmd *cobra.Command, args []string) error {
	config := log.DefaultConfig()
	config.Level = log.ParseLevel(logLevel)
	config.Format = log.ParseFormat(logFormat)
	config.Output = log.NewOutput(cmd.ErrOrStderr())
	config.ServiceVersion = version.Version
	log.SetDefaultLogger(log.New(config))
	return nil
}

// loadRouter builds a router from --config and --catalog, falling back to the
// built-in defaults.
func loadRouter() (*router.Router, error) {
	config := router.DefaultConfig()
	if configFile != "" {
		loaded, err := router.LoadConfig(configFile)
		if err != nil {
			return nil, err
		}
		config = loaded
	}
	if catalogFile != "" {
		config.CatalogFile = catalogFile
	}

	catalog, err := router.LoadCatalog(config)
	if err != nil {
		return nil, err
	}

	log.DefaultLogger().Debug("router loaded",
		"models", catalog.Len(),
		"digest", catalog.Digest(),
		"catalog_file", config.CatalogFile,
	)

	return router.NewRouter(catalog, config)
}
