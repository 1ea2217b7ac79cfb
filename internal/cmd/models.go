package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/paikeys/paikeys/internal/domain"
	"github.com/paikeys/paikeys/internal/errors"
	"github.com/paikeys/paikeys/internal/tui"
)

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List the model catalog",
	Long: `List every model in the catalog in declaration order.

Examples:
  paikeys models
  paikeys models --modality image
  paikeys models --format json`,
	Args: cobra.NoArgs,
	RunE: runModels,
}

var modelsModality string

func init() {
	modelsCmd.Flags().StringVarP(&modelsModality, "modality", "m", "", "only list models supporting this modality")
	rootCmd.AddCommand(modelsCmd)
}

func runModels(cmd *cobra.Command, args []string) error {
	r, err := loadRouter()
	if err != nil {
		return err
	}

	models := r.Catalog().Models()
	if modelsModality != "" {
		modality, err := domain.NewModality(modelsModality)
		if err != nil {
			return errors.NewInvalidModalityError(modelsModality)
		}
		models = r.Catalog().ByModality(modality)
	}

	out := cmd.OutOrStdout()
	if format == "json" {
		return writeJSON(out, map[string]any{"models": models})
	}

	if len(models) == 0 {
		_, err := fmt.Fprintf(out, "No models support %s.\n", modelsModality)
		return err
	}
	_, err = fmt.Fprintln(out, tui.RenderModels(models))
	return err
}
