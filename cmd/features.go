package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var featuresCmd = &cobra.Command{
	Use:   "features",
	Short: "List the features in the knowledge base",
	RunE:  runFeatures,
}

func init() {
	featuresCmd.Flags().String("category", "", "only show features in this category")
	rootCmd.AddCommand(featuresCmd)
}

func runFeatures(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	eng, err := buildEngine(cfg)
	if err != nil {
		return err
	}

	category, _ := cmd.Flags().GetString("category")

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tCATEGORY\tCOMPLEXITY")
	shown := 0
	for _, entry := range eng.Catalog().Features {
		if category != "" && string(entry.Category) != category {
			continue
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", entry.ID, entry.Name, entry.Category, entry.Implementation.Complexity)
		shown++
	}
	if err := w.Flush(); err != nil {
		return err
	}
	if shown == 0 && category != "" {
		return fmt.Errorf("no features in category %q", category)
	}
	return nil
}
