package health

import (
	"context"

	"github.com/paikeys/paikeys/internal/domain"
	"github.com/paikeys/paikeys/internal/router"
)

// CatalogChecker verifies that the loaded catalog can answer a request for
// every modality. It routes a canary request through the live router.
type CatalogChecker struct {
	router *router.Router
}

// NewCatalogChecker creates a checker for r.
func NewCatalogChecker(r *router.Router) *CatalogChecker {
	return &CatalogChecker{router: r}
}

// Name returns the name of this health check.
func (c *CatalogChecker) Name() string {
	return "catalog"
}

// Check reports unhealthy if routing fails, degraded if some modality has no
// supporting model, healthy otherwise.
func (c *CatalogChecker) Check(ctx context.Context) *Result {
	if c.router == nil {
		return Unhealthy("no router configured")
	}
	catalog := c.router.Catalog()

	if _, err := c.router.Route(router.RoutingRequest{
		Prompt:   "health check",
		Modality: domain.ModalityText,
		Priority: domain.PrioritySpeed,
	}); err != nil {
		return Unhealthy("canary routing request failed").WithDetail("error", err.Error())
	}

	var uncovered []string
	for _, m := range domain.Modalities() {
		if len(catalog.ByModality(m)) == 0 {
			uncovered = append(uncovered, string(m))
		}
	}

	var result *Result
	if len(uncovered) > 0 {
		result = Degraded("some modalities fall back to the full catalog").
			WithDetail("uncovered_modalities", uncovered)
	} else {
		result = Healthy("catalog covers every modality")
	}

	return result.
		WithDetail("models", catalog.Len()).
		WithDetail("digest", catalog.Digest())
}
