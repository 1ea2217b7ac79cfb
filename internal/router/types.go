package router

import (
	"slices"

	"github.com/paikeys/paikeys/internal/domain"
)

// ModelDefinition is a catalog entry. Values are immutable once the catalog is built.
type ModelDefinition struct {
	ID             string            `json:"id" yaml:"id"`
	Name           string            `json:"name" yaml:"name"`
	Provider       string            `json:"provider" yaml:"provider"`
	Capabilities   []domain.Modality `json:"capabilities" yaml:"capabilities"`
	Strengths      []string          `json:"strengths" yaml:"strengths"` // First entry is the standout strength
	ContextWindow  int               `json:"contextWindow" yaml:"context_window"`    // Tokens
	CostPerMillion float64           `json:"costPerMillion" yaml:"cost_per_million"` // USD per million tokens
	OpenSource     bool              `json:"openSource" yaml:"open_source"`
}

// Supports reports whether the model lists m among its capabilities.
func (m ModelDefinition) Supports(modality domain.Modality) bool {
	return slices.Contains(m.Capabilities, modality)
}

// StandoutStrength returns the first strength, or "" when none are listed.
func (m ModelDefinition) StandoutStrength() string {
	if len(m.Strengths) == 0 {
		return ""
	}
	return m.Strengths[0]
}

// clone returns a deep copy so callers can never alias catalog slices.
func (m ModelDefinition) clone() ModelDefinition {
	m.Capabilities = slices.Clone(m.Capabilities)
	m.Strengths = slices.Clone(m.Strengths)
	return m
}

// RoutingRequest represents a request for model selection
type RoutingRequest struct {
	Prompt   string          `json:"prompt"`
	Modality domain.Modality `json:"modality"`
	Priority domain.Priority `json:"priority"`
}

// Insights is the explanatory payload attached to a decision.
type Insights struct {
	EstimatedTokens int      `json:"estimatedTokens"`
	Reasoning       []string `json:"reasoning"`
}

// RoutingResult represents the router's model selection
type RoutingResult struct {
	Primary    ModelDefinition   `json:"primary"`
	Contenders []ModelDefinition `json:"contenders"`
	Insights   Insights          `json:"insights"`

	// ModalityFallback is true when no model supported the requested
	// modality and the full catalog was ranked instead.
	ModalityFallback bool `json:"-"`

	// Ranking holds every eligible model with its factor breakdown, best first.
	Ranking []ScoredModel `json:"-"`
}

// ScoredModel is a model with the factor scores that produced its rank.
type ScoredModel struct {
	Model        ModelDefinition
	Score        float64
	Intelligence float64
	Speed        float64
	Economy      float64
	Capacity     float64 // Normalized context headroom used by intelligence and speed
	index        int     // Catalog declaration order
}
