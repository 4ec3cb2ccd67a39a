// Package catalog loads and validates the feature knowledge base. The
// catalog is read once at engine construction and treated as immutable for
// the remaining process lifetime.
package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
)

//go:embed knowledge_base.json
var defaultCatalog []byte

// LoadError reports a catalog source that is missing, unreadable, or
// structurally invalid. Engine construction fails on it; the engine is never
// usable in a partially-loaded state.
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("loading catalog %s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Load reads and validates a catalog from a JSON file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Source: path, Err: err}
	}
	c, err := parse(data)
	if err != nil {
		return nil, &LoadError{Source: path, Err: err}
	}
	return c, nil
}

// Parse decodes and validates a catalog from JSON bytes.
func Parse(data []byte) (*Catalog, error) {
	c, err := parse(data)
	if err != nil {
		return nil, &LoadError{Source: "inline", Err: err}
	}
	return c, nil
}

// Default returns the knowledge base embedded in the binary.
func Default() (*Catalog, error) {
	c, err := parse(defaultCatalog)
	if err != nil {
		return nil, &LoadError{Source: "embedded", Err: err}
	}
	return c, nil
}

func parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

var validCategories = map[Category]bool{
	CategoryVoC:               true,
	CategoryAICustomerService: true,
	CategoryInsights:          true,
	CategoryCustomer360:       true,
	CategoryAIAutomation:      true,
}

var validComplexities = map[Complexity]bool{
	ComplexityLow:    true,
	ComplexityMedium: true,
	ComplexityHigh:   true,
}

// validate rejects malformed entries at parse time so that scoring never has
// to handle them.
func (c *Catalog) validate() error {
	if len(c.Features) == 0 {
		return fmt.Errorf("catalog has no features")
	}

	seen := make(map[string]bool, len(c.Features))
	for i, e := range c.Features {
		if e.ID == "" {
			return fmt.Errorf("feature %d: feature_id is required", i)
		}
		if seen[e.ID] {
			return fmt.Errorf("feature %d: duplicate feature_id %q", i, e.ID)
		}
		seen[e.ID] = true

		if e.Name == "" {
			return fmt.Errorf("feature %s: feature_name is required", e.ID)
		}
		if !validCategories[e.Category] {
			return fmt.Errorf("feature %s: unknown category %q", e.ID, e.Category)
		}
		if e.Description.Short == "" {
			return fmt.Errorf("feature %s: description.short is required", e.ID)
		}
		if !validComplexities[e.Implementation.Complexity] {
			return fmt.Errorf("feature %s: unknown complexity %q", e.ID, e.Implementation.Complexity)
		}
	}
	return nil
}
