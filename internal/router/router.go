package router

import (
	"strings"

	"github.com/paikeys/paikeys/internal/errors"
)

// Router ranks catalog models for routing requests. It holds no mutable
// state, so one Router serves any number of concurrent callers.
type Router struct {
	catalog *Catalog
	config  RouterConfig
	counter *TokenCounter
}

// NewRouter creates a router over catalog using config.
// A nil config selects DefaultConfig.
func NewRouter(catalog *Catalog, config *RouterConfig) (*Router, error) {
	if catalog == nil || catalog.Len() == 0 {
		return nil, errors.New(errors.ErrCodeCatalogEmpty, "router requires a non-empty catalog")
	}
	if config == nil {
		config = DefaultConfig()
	}
	if err := ValidateConfig(config); err != nil {
		return nil, err
	}

	return &Router{
		catalog: catalog,
		config:  *config,
		counter: &TokenCounter{CharsPerToken: config.CharsPerToken},
	}, nil
}

// Catalog returns the catalog the router ranks.
func (r *Router) Catalog() *Catalog {
	return r.catalog
}

// Config returns a copy of the router's configuration.
func (r *Router) Config() RouterConfig {
	return r.config
}

// Validate checks that a request is routable.
func (req RoutingRequest) Validate() error {
	if strings.TrimSpace(req.Prompt) == "" {
		return errors.NewPromptRequiredError()
	}
	if err := req.Modality.Validate(); err != nil {
		return errors.NewInvalidModalityError(string(req.Modality))
	}
	if err := req.Priority.Validate(); err != nil {
		return errors.NewInvalidPriorityError(string(req.Priority))
	}
	return nil
}

// EstimateTokens returns the router's token estimate for prompt.
func (r *Router) EstimateTokens(prompt string) int {
	return r.counter.EstimateTokens(prompt)
}

// Route selects the primary model and ranked contenders for req.
// It fails only with request errors (REQ-*); the result is a pure function of
// the catalog, the configuration and req.
func (r *Router) Route(req RoutingRequest) (*RoutingResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	candidates := r.catalog.ByModality(req.Modality)
	fallback := len(candidates) == 0
	if fallback {
		candidates = r.catalog.Models()
	}

	indexes := make([]int, len(candidates))
	for i, m := range candidates {
		indexes[i] = r.catalog.indexOf(m.ID)
	}

	tokens := r.counter.EstimateTokens(req.Prompt)
	weights := weightsFor(req.Priority, r.config.DominantWeight)
	ranking := scoreModels(candidates, indexes, weights, tokens)

	contenders := []ModelDefinition{}
	for _, s := range ranking[1:min(len(ranking), r.config.MaxContenders+1)] {
		contenders = append(contenders, s.Model)
	}

	return &RoutingResult{
		Primary:    ranking[0].Model,
		Contenders: contenders,
		Insights: Insights{
			EstimatedTokens: tokens,
			Reasoning: buildReasoning(decisionTrace{
				request:         req,
				weights:         weights,
				ranking:         ranking,
				eligible:        len(candidates),
				catalogSize:     r.catalog.Len(),
				fallback:        fallback,
				estimatedTokens: tokens,
			}),
		},
		ModalityFallback: fallback,
		Ranking:          ranking,
	}, nil
}
