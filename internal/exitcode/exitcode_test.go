package exitcode

import (
	"fmt"
	"testing"

	"github.com/paikeys/paikeys/internal/errors"
)

func TestDetermineExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, Success},
		{"missing prompt", errors.NewPromptRequiredError(), UsageError},
		{"wrapped invalid modality", fmt.Errorf("route: %w", errors.NewInvalidModalityError("video")), UsageError},
		{"duplicate model", errors.NewCatalogDuplicateError("gpt-4o"), CatalogError},
		{"catalog file", errors.NewCatalogFileError("x.yaml", fmt.Errorf("nope")), CatalogError},
		{"invalid config", errors.NewConfigInvalidError("bad"), ConfigError},
		{"internal", errors.NewInternalError(fmt.Errorf("boom")), GeneralError},
		{"unknown command", fmt.Errorf(`unknown command "rout" for "paikeys"`), UsageError},
		{"unknown flag", fmt.Errorf("unknown flag: --modalty"), UsageError},
		{"arg count", fmt.Errorf("accepts 1 arg(s), received 0"), UsageError},
		{"plain error", fmt.Errorf("disk full"), GeneralError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetermineExitCode(tt.err); got != tt.want {
				t.Errorf("DetermineExitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestDescription(t *testing.T) {
	for _, code := range []int{Success, GeneralError, UsageError, CatalogError, ConfigError, Interrupted} {
		if Description(code) == "Unknown error" {
			t.Errorf("code %d has no description", code)
		}
	}
	if Description(42) != "Unknown error" {
		t.Error("unexpected description for unknown code")
	}
}
