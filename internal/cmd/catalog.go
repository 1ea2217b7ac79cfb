package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/paikeys/paikeys/internal/router"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Validate, export and fingerprint model catalogs",
	Long: `Work with YAML catalog files.

A catalog file lists models under a top-level 'models' key using the fields
id, name, provider, capabilities, strengths, context_window, cost_per_million
and open_source. Start from the built-in catalog with 'paikeys catalog export'.`,
}

var catalogValidateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Check a catalog file against every catalog invariant",
	Args:  cobra.ExactArgs(1),
	RunE:  runCatalogValidate,
}

var catalogExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the active catalog as YAML",
	Args:  cobra.NoArgs,
	RunE:  runCatalogExport,
}

var catalogHashCmd = &cobra.Command{
	Use:   "hash [file]",
	Short: "Print the catalog digest served as the HTTP ETag",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCatalogHash,
}

var catalogExportOut string

func init() {
	catalogExportCmd.Flags().StringVarP(&catalogExportOut, "out", "o", "", "write to file instead of stdout")

	catalogCmd.AddCommand(catalogValidateCmd)
	catalogCmd.AddCommand(catalogExportCmd)
	catalogCmd.AddCommand(catalogHashCmd)
	rootCmd.AddCommand(catalogCmd)
}

func runCatalogValidate(cmd *cobra.Command, args []string) error {
	catalog, err := router.LoadCatalogFile(args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if format == "json" {
		return writeJSON(out, map[string]any{
			"valid":  true,
			"models": catalog.Len(),
			"digest": catalog.Digest(),
		})
	}

	_, err = fmt.Fprintf(out, "✓ %s is valid: %d models from %d providers\n",
		args[0], catalog.Len(), len(catalog.Providers()))
	return err
}

func runCatalogExport(cmd *cobra.Command, args []string) error {
	r, err := loadRouter()
	if err != nil {
		return err
	}

	if catalogExportOut != "" {
		if err := router.SaveCatalogFile(r.Catalog(), catalogExportOut); err != nil {
			return err
		}
		_, err := fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %d models to %s\n", r.Catalog().Len(), catalogExportOut)
		return err
	}

	data, err := router.MarshalCatalog(r.Catalog())
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

func runCatalogHash(cmd *cobra.Command, args []string) error {
	var catalog *router.Catalog
	if len(args) == 1 {
		loaded, err := router.LoadCatalogFile(args[0])
		if err != nil {
			return err
		}
		catalog = loaded
	} else {
		r, err := loadRouter()
		if err != nil {
			return err
		}
		catalog = r.Catalog()
	}

	_, err := fmt.Fprintln(cmd.OutOrStdout(), catalog.Digest())
	return err
}
