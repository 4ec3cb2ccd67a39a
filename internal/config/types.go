package config

// OutputFormat identifies a report export format.
type OutputFormat string

const (
	FormatJSON     OutputFormat = "json"
	FormatMarkdown OutputFormat = "markdown"
	FormatHTML     OutputFormat = "html"
)

// ScoringConfig holds the relevance-scoring parameters. Zero values mean
// "use the built-in default"; they are resolved in Weights().
type ScoringConfig struct {
	Base            float64 `yaml:"base" koanf:"base"`
	PatternBoost    float64 `yaml:"pattern_boost" koanf:"pattern_boost"`
	RelatedFraction float64 `yaml:"related_fraction" koanf:"related_fraction"`
	CategoryCeiling float64 `yaml:"category_ceiling" koanf:"category_ceiling"`
	UrgencyBonus    float64 `yaml:"urgency_bonus" koanf:"urgency_bonus"`
	ScaleBonus      float64 `yaml:"scale_bonus" koanf:"scale_bonus"`
	MinScore        float64 `yaml:"min_score" koanf:"min_score"`
}

// ServerConfig holds the HTTP server settings.
type ServerConfig struct {
	Addr           string   `yaml:"addr" koanf:"addr"`
	AllowedOrigins []string `yaml:"allowed_origins" koanf:"allowed_origins"`
	HistoryDB      string   `yaml:"history_db" koanf:"history_db"`
}

// BatchConfig holds the batch-analysis settings.
type BatchConfig struct {
	Include []string `yaml:"include" koanf:"include"`
	Exclude []string `yaml:"exclude" koanf:"exclude"`
}

// Config is the top-level agent configuration, corresponding to .painpoint.yml.
type Config struct {
	KnowledgeBase string        `yaml:"knowledge_base" koanf:"knowledge_base"`
	MaxSolutions  int           `yaml:"max_solutions" koanf:"max_solutions"`
	OutputFormat  OutputFormat  `yaml:"output_format" koanf:"output_format"`
	Scoring       ScoringConfig `yaml:"scoring" koanf:"scoring"`
	Server        ServerConfig  `yaml:"server" koanf:"server"`
	Batch         BatchConfig   `yaml:"batch" koanf:"batch"`
}
