package config

import "github.com/filumlabs/painpoint-agent/internal/engine"

// DefaultConfigFile is the conventional config file name.
const DefaultConfigFile = ".painpoint.yml"

// DefaultBatchIncludes are glob patterns matched against pain-point input
// files during batch analysis.
var DefaultBatchIncludes = []string{"**/*.json"}

// DefaultBatchExcludes are glob patterns skipped during batch analysis.
var DefaultBatchExcludes = []string{
	"**/*result*.json",
	"**/*report*.json",
	"node_modules/**",
	".git/**",
}

// DefaultConfig returns a Config with sensible defaults. The knowledge base
// path is left empty, meaning the embedded catalog is used.
func DefaultConfig() *Config {
	w := engine.DefaultWeights()
	return &Config{
		MaxSolutions: engine.DefaultMaxSolutions,
		OutputFormat: FormatJSON,
		Scoring: ScoringConfig{
			Base:            w.Base,
			PatternBoost:    w.PatternBoost,
			RelatedFraction: w.RelatedFraction,
			CategoryCeiling: w.CategoryCeiling,
			UrgencyBonus:    w.UrgencyBonus,
			ScaleBonus:      w.ScaleBonus,
			MinScore:        w.MinScore,
		},
		Server: ServerConfig{
			Addr:           ":8080",
			AllowedOrigins: []string{"*"},
			HistoryDB:      "painpoint-history.db",
		},
		Batch: BatchConfig{
			Include: DefaultBatchIncludes,
			Exclude: DefaultBatchExcludes,
		},
	}
}

// Weights converts the scoring section to engine weights. Unset (zero)
// values fall back to the built-in defaults so a partial scoring section
// never silently zeroes a parameter.
func (c *Config) Weights() engine.Weights {
	w := engine.DefaultWeights()
	if c.Scoring.Base != 0 {
		w.Base = c.Scoring.Base
	}
	if c.Scoring.PatternBoost != 0 {
		w.PatternBoost = c.Scoring.PatternBoost
	}
	if c.Scoring.RelatedFraction != 0 {
		w.RelatedFraction = c.Scoring.RelatedFraction
	}
	if c.Scoring.CategoryCeiling != 0 {
		w.CategoryCeiling = c.Scoring.CategoryCeiling
	}
	if c.Scoring.UrgencyBonus != 0 {
		w.UrgencyBonus = c.Scoring.UrgencyBonus
	}
	if c.Scoring.ScaleBonus != 0 {
		w.ScaleBonus = c.Scoring.ScaleBonus
	}
	if c.Scoring.MinScore != 0 {
		w.MinScore = c.Scoring.MinScore
	}
	return w
}
