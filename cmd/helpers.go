package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/filumlabs/painpoint-agent/internal/catalog"
	"github.com/filumlabs/painpoint-agent/internal/config"
	"github.com/filumlabs/painpoint-agent/internal/engine"
	"github.com/filumlabs/painpoint-agent/internal/report"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `painpoint init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// buildEngine loads the knowledge base named by the config (or the embedded
// one) and constructs the engine with the configured weights.
func buildEngine(cfg *config.Config) (*engine.Engine, error) {
	var (
		cat *catalog.Catalog
		err error
	)
	if cfg.KnowledgeBase != "" {
		cat, err = catalog.Load(cfg.KnowledgeBase)
	} else {
		cat, err = catalog.Default()
	}
	if err != nil {
		return nil, fmt.Errorf("loading knowledge base: %w", err)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Loaded %d catalog entries\n", cat.Len())
	}
	return engine.New(cat, engine.WithWeights(cfg.Weights())), nil
}

// writeReport renders the report to the output path, or stdout for "-".
// The format is taken from the flag when set, else inferred from the path
// extension, else from the config.
func writeReport(r *report.Report, outputPath, formatFlag string, cfg *config.Config) error {
	format := cfg.OutputFormat
	if formatFlag != "" {
		format = config.OutputFormat(formatFlag)
	} else if outputPath != "" && outputPath != "-" {
		format = report.FormatForPath(outputPath)
	}

	var w io.Writer = os.Stdout
	if outputPath != "" && outputPath != "-" {
		f, err := os.Create(outputPath)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	if err := report.Write(w, r, format); err != nil {
		return err
	}
	if outputPath != "" && outputPath != "-" {
		fmt.Fprintf(os.Stderr, "Report written to %s\n", outputPath)
	}
	return nil
}
