package cmd

import (
	"fmt"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/filumlabs/painpoint-agent/internal/engine"
	"github.com/filumlabs/painpoint-agent/internal/painpoint"
	"github.com/filumlabs/painpoint-agent/internal/report"
)

type demoSample struct {
	name  string
	input painpoint.Input
}

var demoSamples = []demoSample{
	{
		name: "E-commerce: feedback collection is difficult",
		input: painpoint.Input{
			PainPoint: painpoint.PainPoint{
				Description: "We have difficulty collecting customer feedback after they make purchases. Currently only about 5% of customers respond to email surveys.",
				Context: &painpoint.Context{
					Industry:     "E-commerce",
					CompanySize:  painpoint.SizeMedium,
					CurrentTools: []string{"Email marketing platform", "Basic CRM"},
					Urgency:      painpoint.UrgencyHigh,
				},
				AffectedAreas: []string{"customer_service", "marketing"},
				CurrentImpact: &painpoint.Impact{
					Description: "Lack of insights about customer experience, difficult to improve products and services",
					Metrics: &painpoint.ImpactMetrics{
						CustomerSatisfaction: "Unknown",
					},
				},
			},
		},
	},
	{
		name: "SaaS: support agents overloaded",
		input: painpoint.Input{
			PainPoint: painpoint.PainPoint{
				Description: "Support agents are overwhelmed by repetitive questions. Current average response time is 4 hours, customers are not satisfied.",
				Context: &painpoint.Context{
					Industry:     "SaaS",
					CompanySize:  painpoint.SizeSmall,
					CurrentTools: []string{"Zendesk", "Email support", "Phone support"},
					Urgency:      painpoint.UrgencyHigh,
				},
				AffectedAreas: []string{"customer_service"},
				CurrentImpact: &painpoint.Impact{
					Description: "Customer satisfaction decreases, agent burnout increases",
					Metrics: &painpoint.ImpactMetrics{
						ResponseTime:         "4 hours",
						CustomerSatisfaction: "3.2/5",
					},
				},
			},
		},
	},
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the analysis on a canned sample pain point",
	RunE:  runDemo,
}

func init() {
	demoCmd.Flags().String("format", "", "output format: json, markdown, or html")
	rootCmd.AddCommand(demoCmd)
}

func runDemo(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	eng, err := buildEngine(cfg)
	if err != nil {
		return err
	}

	names := make([]string, len(demoSamples))
	for i, s := range demoSamples {
		names[i] = s.name
	}
	samplePrompt := promptui.Select{
		Label: "Select a sample pain point",
		Items: names,
	}
	idx, _, err := samplePrompt.Run()
	if err != nil {
		return fmt.Errorf("sample selection: %w", err)
	}

	in := demoSamples[idx].input
	max := cfg.MaxSolutions
	if max <= 0 {
		max = engine.DefaultMaxSolutions
	}
	out, err := eng.Analyze(&in, max)
	if err != nil {
		return err
	}

	format, _ := cmd.Flags().GetString("format")
	return writeReport(&report.Report{Input: &in, Output: out}, "", format, cfg)
}
