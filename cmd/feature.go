package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var featureCmd = &cobra.Command{
	Use:   "feature <feature-id>",
	Short: "Show the details of one knowledge-base feature",
	Args:  cobra.ExactArgs(1),
	RunE:  runFeature,
}

func init() {
	rootCmd.AddCommand(featureCmd)
}

func runFeature(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	eng, err := buildEngine(cfg)
	if err != nil {
		return err
	}

	entry := eng.Catalog().FindByID(args[0])
	if entry == nil {
		return fmt.Errorf("unknown feature %q", args[0])
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s (%s)\n", entry.Name, entry.ID)
	fmt.Fprintf(out, "Category: %s\n", entry.Category)
	if entry.Subcategory != "" {
		fmt.Fprintf(out, "Subcategory: %s\n", entry.Subcategory)
	}
	fmt.Fprintf(out, "\n%s\n", entry.Description.Detailed)

	if len(entry.Capabilities) > 0 {
		fmt.Fprintln(out, "\nCapabilities:")
		for _, c := range entry.Capabilities {
			fmt.Fprintf(out, "  - %s: %s\n", c.Name, c.Description)
		}
	}

	fmt.Fprintf(out, "\nImplementation: %s complexity", entry.Implementation.Complexity)
	if entry.Implementation.SetupTime != "" {
		fmt.Fprintf(out, ", setup in %s", entry.Implementation.SetupTime)
	}
	fmt.Fprintln(out)
	if len(entry.Implementation.ResourcesNeeded) > 0 {
		fmt.Fprintf(out, "Resources: %s\n", strings.Join(entry.Implementation.ResourcesNeeded, ", "))
	}

	if len(entry.Benefits.Quantitative) > 0 {
		fmt.Fprintln(out, "\nBenefits:")
		for _, b := range entry.Benefits.Quantitative {
			fmt.Fprintf(out, "  - %s\n", b)
		}
		for _, b := range entry.Benefits.Qualitative {
			fmt.Fprintf(out, "  - %s\n", b)
		}
	}

	if len(entry.SuccessStories) > 0 {
		fmt.Fprintln(out, "\nSuccess stories:")
		for _, s := range entry.SuccessStories {
			fmt.Fprintf(out, "  - %s (%s): %s -> %s\n", s.Industry, s.CompanySize, s.Challenge, s.Results)
		}
	}
	return nil
}
