package cmd

import (
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "painpoint",
	Short: "Match business pain points to product solutions",
	Long: `Pain Point Agent analyzes a described business pain point against a
knowledge base of product features, ranks the most relevant solutions,
and produces a structured recommendation report with implementation
guidance, alternatives, and next steps.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".painpoint.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
