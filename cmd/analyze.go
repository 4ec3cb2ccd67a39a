package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/filumlabs/painpoint-agent/internal/engine"
	"github.com/filumlabs/painpoint-agent/internal/painpoint"
	"github.com/filumlabs/painpoint-agent/internal/report"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a pain point and recommend solutions",
	Long: `Reads a pain point from a JSON file (or collects it interactively),
matches it against the knowledge base, and writes a recommendation report.`,
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringP("input", "i", "", "pain point JSON file")
	analyzeCmd.Flags().Bool("interactive", false, "collect the pain point interactively")
	analyzeCmd.Flags().StringP("output", "o", "", "output file (default stdout; extension picks the format)")
	analyzeCmd.Flags().String("format", "", "report format: json, markdown, or html")
	analyzeCmd.Flags().Int("max-solutions", 0, "maximum solutions to recommend (overrides config)")
	analyzeCmd.Flags().String("explain", "", "print the score breakdown for one feature id instead of a report")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	inputPath, _ := cmd.Flags().GetString("input")
	interactive, _ := cmd.Flags().GetBool("interactive")

	var in *painpoint.Input
	switch {
	case interactive:
		in, err = painpoint.CollectInteractive()
		if err != nil {
			return fmt.Errorf("collecting pain point: %w", err)
		}
	case inputPath != "":
		in, err = painpoint.Load(inputPath)
		if err != nil {
			return fmt.Errorf("reading pain point: %w", err)
		}
	default:
		return fmt.Errorf("either --input or --interactive is required")
	}

	eng, err := buildEngine(cfg)
	if err != nil {
		return err
	}

	if featureID, _ := cmd.Flags().GetString("explain"); featureID != "" {
		breakdown, err := eng.Explain(in, featureID)
		if err != nil {
			return err
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(breakdown)
	}

	maxResults := cfg.MaxSolutions
	if n, _ := cmd.Flags().GetInt("max-solutions"); n > 0 {
		maxResults = n
	}
	if maxResults <= 0 {
		maxResults = engine.DefaultMaxSolutions
	}

	out, err := eng.Analyze(in, maxResults)
	if err != nil {
		return err
	}

	outputPath, _ := cmd.Flags().GetString("output")
	formatFlag, _ := cmd.Flags().GetString("format")
	return writeReport(&report.Report{Input: in, Output: out}, outputPath, formatFlag, cfg)
}
