package router

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/paikeys/paikeys/internal/errors"
)

// RouterConfig tunes the selection engine.
type RouterConfig struct {
	CatalogFile    string  `yaml:"catalog_file,omitempty" json:"catalog_file,omitempty"` // YAML catalog; empty uses the built-in catalog
	MaxContenders  int     `yaml:"max_contenders" json:"max_contenders"`                 // Alternatives returned after the primary
	DominantWeight float64 `yaml:"dominant_weight" json:"dominant_weight"`               // Weight of the requested priority's factor
	CharsPerToken  int     `yaml:"chars_per_token" json:"chars_per_token"`               // Token estimate divisor
}

// catalogFile is the on-disk shape of a YAML catalog.
type catalogFile struct {
	Models []ModelDefinition `yaml:"models"`
}

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *RouterConfig {
	return &RouterConfig{
		MaxContenders:  5,
		DominantWeight: 0.7,
		CharsPerToken:  DefaultCharsPerToken,
	}
}

// ValidateConfig validates a router configuration
func ValidateConfig(config *RouterConfig) error {
	if config.MaxContenders < 0 {
		return errors.NewConfigInvalidError("max_contenders must be non-negative")
	}

	// The requested priority must outweigh each of the other two factors.
	if config.DominantWeight <= 1.0/3 || config.DominantWeight > 1 {
		return errors.NewConfigInvalidError(fmt.Sprintf("dominant_weight must be in (0.333, 1], got %v", config.DominantWeight)).
			WithSuggestion("Use 0.7 to let the requested priority dominate while keeping secondary factors as tie-breakers")
	}

	if config.CharsPerToken <= 0 {
		return errors.NewConfigInvalidError("chars_per_token must be positive")
	}

	return nil
}

// LoadConfig loads router configuration from a YAML file.
// Fields missing from the file keep their default values.
func LoadConfig(path string) (*RouterConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeConfigFile, fmt.Sprintf("read config file: %s", path), err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, errors.Wrap(errors.ErrCodeConfigFile, fmt.Sprintf("unmarshal config: %s", path), err)
	}

	if err := ValidateConfig(config); err != nil {
		return nil, err
	}

	return config, nil
}

// SaveConfig saves router configuration to a YAML file
func SaveConfig(config *RouterConfig, path string) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

// LoadCatalog returns the catalog named by config, or the built-in catalog.
func LoadCatalog(config *RouterConfig) (*Catalog, error) {
	if config == nil || config.CatalogFile == "" {
		return DefaultCatalog(), nil
	}
	return LoadCatalogFile(config.CatalogFile)
}

// LoadCatalogFile reads and validates a YAML catalog.
func LoadCatalogFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewCatalogFileError(path, err)
	}
	return ParseCatalog(data, path)
}

// ParseCatalog decodes YAML catalog data. name labels errors.
func ParseCatalog(data []byte, name string) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, errors.NewCatalogFileError(name, err)
	}
	return NewCatalog(file.Models)
}

// MarshalCatalog encodes a catalog in the YAML catalog file format.
func MarshalCatalog(c *Catalog) ([]byte, error) {
	data, err := yaml.Marshal(catalogFile{Models: c.Models()})
	if err != nil {
		return nil, fmt.Errorf("marshal catalog: %w", err)
	}
	return data, nil
}

// SaveCatalogFile writes a catalog to path in YAML.
func SaveCatalogFile(c *Catalog, path string) error {
	data, err := MarshalCatalog(c)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write catalog file: %w", err)
	}
	return nil
}
