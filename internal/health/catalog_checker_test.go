package health

import (
	"context"
	"testing"

	"github.com/paikeys/paikeys/internal/domain"
	"github.com/paikeys/paikeys/internal/router"
)

func TestCatalogChecker(t *testing.T) {
	textOnly, err := router.NewCatalog([]router.ModelDefinition{{
		ID:             "small",
		Name:           "Small",
		Provider:       "Test",
		Capabilities:   []domain.Modality{domain.ModalityText},
		ContextWindow:  8000,
		CostPerMillion: 0.1,
	}})
	if err != nil {
		t.Fatalf("NewCatalog() error = %v", err)
	}

	tests := []struct {
		name    string
		catalog *router.Catalog
		want    Status
	}{
		{name: "built-in catalog", catalog: router.DefaultCatalog(), want: StatusHealthy},
		{name: "text-only catalog", catalog: textOnly, want: StatusDegraded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := router.NewRouter(tt.catalog, nil)
			if err != nil {
				t.Fatalf("NewRouter() error = %v", err)
			}

			checker := NewCatalogChecker(r)
			if checker.Name() != "catalog" {
				t.Errorf("Name() = %q", checker.Name())
			}

			result := checker.Check(context.Background())
			if result.Status != tt.want {
				t.Errorf("Check() status = %v, want %v (%s)", result.Status, tt.want, result.Message)
			}
			if result.Details["models"] != tt.catalog.Len() {
				t.Errorf("models detail = %v", result.Details["models"])
			}
			if result.Details["digest"] != tt.catalog.Digest() {
				t.Errorf("digest detail = %v", result.Details["digest"])
			}
		})
	}
}

func TestCatalogCheckerWithoutRouter(t *testing.T) {
	if got := NewCatalogChecker(nil).Check(context.Background()).Status; got != StatusUnhealthy {
		t.Errorf("Check() = %v, want unhealthy", got)
	}
}
