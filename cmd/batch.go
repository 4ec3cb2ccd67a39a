package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/filumlabs/painpoint-agent/internal/batch"
	"github.com/filumlabs/painpoint-agent/internal/config"
)

var batchCmd = &cobra.Command{
	Use:   "batch <dir>",
	Short: "Analyze every pain-point JSON file under a directory",
	Long: `Scans a directory for pain-point JSON files, analyzes each one, and
writes a result file next to each input. Per-file failures are reported
at the end without aborting the rest of the run.`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().StringSlice("include", nil, "glob patterns for input files (overrides config)")
	batchCmd.Flags().StringSlice("exclude", nil, "glob patterns to skip (overrides config)")
	batchCmd.Flags().String("format", "", "result format: json, markdown, or html")
	batchCmd.Flags().Int("max-solutions", 0, "maximum solutions per analysis (overrides config)")
	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	eng, err := buildEngine(cfg)
	if err != nil {
		return err
	}

	include, _ := cmd.Flags().GetStringSlice("include")
	if len(include) == 0 {
		include = cfg.Batch.Include
	}
	exclude, _ := cmd.Flags().GetStringSlice("exclude")
	if len(exclude) == 0 {
		exclude = cfg.Batch.Exclude
	}

	format := cfg.OutputFormat
	if f, _ := cmd.Flags().GetString("format"); f != "" {
		format = config.OutputFormat(f)
	}

	maxResults, _ := cmd.Flags().GetInt("max-solutions")
	if maxResults <= 0 {
		maxResults = cfg.MaxSolutions
	}

	summary, err := batch.Run(eng, batch.Options{
		RootDir:    args[0],
		Include:    include,
		Exclude:    exclude,
		Format:     format,
		MaxResults: maxResults,
	})
	if err != nil {
		return err
	}

	for _, r := range summary.Results {
		if r.Err != nil {
			fmt.Fprintf(os.Stderr, "failed: %s: %v\n", r.Path, r.Err)
		} else if verbose {
			fmt.Fprintf(os.Stderr, "analyzed: %s -> %s\n", r.Path, r.OutputPath)
		}
	}

	ok := len(summary.Results) - summary.Failed
	fmt.Fprintf(os.Stderr, "Batch complete: %d analyzed, %d failed\n", ok, summary.Failed)
	if summary.Failed > 0 {
		return fmt.Errorf("%d of %d files failed", summary.Failed, len(summary.Results))
	}
	return nil
}
