package router

import (
	"testing"

	"github.com/paikeys/paikeys/internal/domain"
)

// model builds a definition with neutral defaults for tests.
func model(id string, caps ...domain.Modality) ModelDefinition {
	if len(caps) == 0 {
		caps = []domain.Modality{domain.ModalityText}
	}
	return ModelDefinition{
		ID:             id,
		Name:           "Model " + id,
		Provider:       "Test",
		Capabilities:   caps,
		Strengths:      []string{"General purpose"},
		ContextWindow:  32000,
		CostPerMillion: 1.0,
	}
}

func mustCatalog(t testing.TB, models ...ModelDefinition) *Catalog {
	t.Helper()
	c, err := NewCatalog(models)
	if err != nil {
		t.Fatalf("NewCatalog() error = %v", err)
	}
	return c
}

func mustRouter(t testing.TB, c *Catalog) *Router {
	t.Helper()
	r, err := NewRouter(c, nil)
	if err != nil {
		t.Fatalf("NewRouter() error = %v", err)
	}
	return r
}
