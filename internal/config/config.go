// Package config loads and validates the agent configuration from
// .painpoint.yml with PAINPOINT_* environment overrides.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (PAINPOINT_*). A missing file is not an
// error; defaults apply.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	cfg := DefaultConfig()

	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	// PAINPOINT_MAX_SOLUTIONS -> max_solutions, PAINPOINT_SERVER.ADDR -> server.addr.
	if err := k.Load(env.Provider("PAINPOINT_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "PAINPOINT_"))
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// validFormats is the set of recognized output formats.
var validFormats = map[OutputFormat]bool{
	FormatJSON:     true,
	FormatMarkdown: true,
	FormatHTML:     true,
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.MaxSolutions < 0 {
		return fmt.Errorf("max_solutions must be non-negative")
	}

	if c.OutputFormat != "" && !validFormats[c.OutputFormat] {
		return fmt.Errorf("invalid output_format %q: must be one of json, markdown, html", c.OutputFormat)
	}

	s := c.Scoring
	for _, p := range []struct {
		name  string
		value float64
	}{
		{"base", s.Base},
		{"pattern_boost", s.PatternBoost},
		{"related_fraction", s.RelatedFraction},
		{"category_ceiling", s.CategoryCeiling},
		{"urgency_bonus", s.UrgencyBonus},
		{"scale_bonus", s.ScaleBonus},
		{"min_score", s.MinScore},
	} {
		if p.value < 0 || p.value > 1 {
			return fmt.Errorf("scoring.%s must be within [0, 1]", p.name)
		}
	}

	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr is required")
	}

	return nil
}
