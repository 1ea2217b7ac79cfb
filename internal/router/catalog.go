package router

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/zeebo/blake3"

	"github.com/paikeys/paikeys/internal/domain"
	"github.com/paikeys/paikeys/internal/errors"
)

// Catalog is an immutable, ordered registry of model definitions.
// It is built once and is safe for concurrent reads without locking.
type Catalog struct {
	models []ModelDefinition
	byID   map[string]int
	digest string
}

// NewCatalog validates models and returns a catalog holding a private copy of them.
func NewCatalog(models []ModelDefinition) (*Catalog, error) {
	if len(models) == 0 {
		return nil, errors.New(errors.ErrCodeCatalogEmpty, "catalog must contain at least one model").
			WithSuggestion("Remove the catalog_file setting to use the built-in catalog")
	}

	c := &Catalog{
		models: make([]ModelDefinition, 0, len(models)),
		byID:   make(map[string]int, len(models)),
	}

	for _, m := range models {
		if err := ValidateModel(m); err != nil {
			return nil, err
		}
		if _, exists := c.byID[m.ID]; exists {
			return nil, errors.NewCatalogDuplicateError(m.ID)
		}
		c.byID[m.ID] = len(c.models)
		c.models = append(c.models, m.clone())
	}

	digest, err := computeDigest(c.models)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeCatalogInvalid, "hash catalog", err)
	}
	c.digest = digest

	return c, nil
}

// ValidateModel checks a single definition against the catalog invariants.
func ValidateModel(m ModelDefinition) error {
	if m.ID == "" {
		return errors.NewCatalogInvalidError(m.Name, "id is required")
	}
	if m.Name == "" {
		return errors.NewCatalogInvalidError(m.ID, "name is required")
	}
	if len(m.Capabilities) == 0 {
		return errors.NewCatalogInvalidError(m.ID, "at least one capability is required")
	}
	for _, c := range m.Capabilities {
		if err := c.Validate(); err != nil {
			return errors.NewCatalogInvalidError(m.ID, err.Error())
		}
	}
	if m.ContextWindow <= 0 {
		return errors.NewCatalogInvalidError(m.ID, fmt.Sprintf("context window must be positive, got %d", m.ContextWindow))
	}
	if m.CostPerMillion < 0 || math.IsNaN(m.CostPerMillion) || math.IsInf(m.CostPerMillion, 0) {
		return errors.NewCatalogInvalidError(m.ID, fmt.Sprintf("cost per million must be a non-negative number, got %v", m.CostPerMillion))
	}
	return nil
}

// Models returns every entry in declaration order.
func (c *Catalog) Models() []ModelDefinition {
	out := make([]ModelDefinition, len(c.models))
	for i, m := range c.models {
		out[i] = m.clone()
	}
	return out
}

// ByModality returns the models whose capabilities include modality, in
// declaration order. No match yields an empty slice.
func (c *Catalog) ByModality(modality domain.Modality) []ModelDefinition {
	out := []ModelDefinition{}
	for _, m := range c.models {
		if m.Supports(modality) {
			out = append(out, m.clone())
		}
	}
	return out
}

// Get finds a model by its ID
func (c *Catalog) Get(id string) (ModelDefinition, bool) {
	i, ok := c.byID[id]
	if !ok {
		return ModelDefinition{}, false
	}
	return c.models[i].clone(), true
}

// Len returns the number of models in the catalog.
func (c *Catalog) Len() int {
	return len(c.models)
}

// Digest returns the blake3 hash of the catalog's canonical JSON encoding.
func (c *Catalog) Digest() string {
	return c.digest
}

// Providers returns the distinct providers in order of first appearance.
func (c *Catalog) Providers() []string {
	seen := make(map[string]bool)
	var out []string
	for _, m := range c.models {
		if !seen[m.Provider] {
			seen[m.Provider] = true
			out = append(out, m.Provider)
		}
	}
	return out
}

// indexOf returns the declaration index of id; callers only pass catalog ids.
func (c *Catalog) indexOf(id string) int {
	return c.byID[id]
}

func computeDigest(models []ModelDefinition) (string, error) {
	canonical, err := json.Marshal(models)
	if err != nil {
		return "", fmt.Errorf("canonicalize catalog: %w", err)
	}

	hasher := blake3.New()
	if _, err := hasher.Write(canonical); err != nil {
		return "", fmt.Errorf("hash catalog: %w", err)
	}

	return fmt.Sprintf("%x", hasher.Sum(nil)), nil
}
