package engine

import (
	"fmt"
	"math"
	"strings"

	"github.com/filumlabs/painpoint-agent/internal/catalog"
	"github.com/filumlabs/painpoint-agent/internal/painpoint"
)

// setupTimeEstimates is the fallback implementation-time table used when a
// catalog entry carries no setup-time string of its own.
var setupTimeEstimates = map[catalog.Complexity]map[painpoint.CompanySize]string{
	catalog.ComplexityLow: {
		painpoint.SizeStartup:    "1-2 weeks",
		painpoint.SizeSmall:      "2-3 weeks",
		painpoint.SizeMedium:     "3-4 weeks",
		painpoint.SizeLarge:      "4-6 weeks",
		painpoint.SizeEnterprise: "6-8 weeks",
	},
	catalog.ComplexityMedium: {
		painpoint.SizeStartup:    "3-4 weeks",
		painpoint.SizeSmall:      "4-6 weeks",
		painpoint.SizeMedium:     "6-8 weeks",
		painpoint.SizeLarge:      "8-12 weeks",
		painpoint.SizeEnterprise: "12-16 weeks",
	},
	catalog.ComplexityHigh: {
		painpoint.SizeStartup:    "6-8 weeks",
		painpoint.SizeSmall:      "8-12 weeks",
		painpoint.SizeMedium:     "12-16 weeks",
		painpoint.SizeLarge:      "16-24 weeks",
		painpoint.SizeEnterprise: "24-32 weeks",
	},
}

// EstimateSetupTime returns the implementation-time estimate for a
// complexity level and company size. An unknown size falls back to the
// medium-company column.
func EstimateSetupTime(complexity catalog.Complexity, size painpoint.CompanySize) string {
	row, ok := setupTimeEstimates[complexity]
	if !ok {
		row = setupTimeEstimates[catalog.ComplexityMedium]
	}
	if t, ok := row[size]; ok {
		return t
	}
	return row[painpoint.SizeMedium]
}

// synthesize turns a scored catalog entry into a complete Solution.
func (e *Engine) synthesize(entry *catalog.Entry, score float64, id string, in *painpoint.Input) Solution {
	return Solution{
		ID:   id,
		Name: entry.Name + " Solution",
		Features: []Feature{{
			Category:    entry.Category,
			Name:        entry.Name,
			Description: entry.Description.Short,
		}},
		Rationale:            rationale(entry, in),
		ImplementationSteps:  implementationSteps(entry),
		ExpectedOutcomes:     expectedOutcomes(entry),
		RelevanceScore:       math.Round(score*100) / 100,
		Complexity:           entry.Implementation.Complexity,
		EstimatedSetupTime:   setupTime(entry, in),
		ResourceRequirements: resourceRequirements(entry),
		SuccessMetrics:       successMetrics(entry),
		RelatedCaseStudies:   relatedCaseStudies(entry),
	}
}

// rationale explains how the entry helps, keyed on the dominant vocabulary
// of the pain description.
func rationale(entry *catalog.Entry, in *painpoint.Input) string {
	pain := lower(in.PainPoint.Description)

	switch {
	case strings.Contains(pain, "feedback") || strings.Contains(pain, "survey"):
		return fmt.Sprintf("%s automates feedback collection across multiple channels, ensuring you capture customer insights systematically instead of relying on manual outreach.", entry.Name)
	case strings.Contains(pain, "support") || strings.Contains(pain, "agent"):
		return fmt.Sprintf("%s reduces support workload by handling routine inquiries automatically and routing complex cases to the right agents.", entry.Name)
	case strings.Contains(pain, "analysis") || strings.Contains(pain, "analytics"):
		return fmt.Sprintf("%s eliminates manual analysis work by processing customer data automatically and surfacing actionable insights.", entry.Name)
	case strings.Contains(pain, "journey") || strings.Contains(pain, "experience"):
		return fmt.Sprintf("%s gives you visibility into the complete customer journey, revealing friction points and improvement opportunities.", entry.Name)
	default:
		return fmt.Sprintf("%s addresses your challenge by providing %s.", entry.Name, lower(entry.Description.Short))
	}
}

// implementationSteps builds the rollout plan: the generic sequence with one
// category-specific step inserted after discovery, capped at five steps.
func implementationSteps(entry *catalog.Entry) []string {
	steps := []string{
		"Schedule discovery call to map requirements",
		"Configure platform settings and user access",
		"Integrate with existing tools and data sources",
		"Train team on new workflows",
		"Launch pilot with a limited scope",
		"Review results and expand rollout",
		"Establish ongoing optimization cadence",
	}

	var categoryStep string
	switch {
	case strings.Contains(lower(entry.Name), "survey"):
		categoryStep = "Design survey templates and distribution schedule"
	case strings.Contains(lower(entry.Name), "ai"):
		categoryStep = "Train AI models on historical conversation data"
	case strings.Contains(lower(entry.Name), "analysis") || strings.Contains(lower(entry.Name), "analytics"):
		categoryStep = "Connect data sources and define analysis dimensions"
	}

	if categoryStep != "" {
		steps = append(steps[:2], append([]string{categoryStep}, steps[2:]...)...)
	}

	if len(steps) > 5 {
		steps = steps[:5]
	}
	return steps
}

func expectedOutcomes(entry *catalog.Entry) ExpectedOutcomes {
	outcomes := ExpectedOutcomes{}
	for i, b := range entry.Benefits.Quantitative {
		if i >= 2 {
			break
		}
		outcomes.ShortTerm = append(outcomes.ShortTerm, b)
	}
	for i, b := range entry.Benefits.Qualitative {
		if i >= 2 {
			break
		}
		outcomes.LongTerm = append(outcomes.LongTerm, b)
	}
	return outcomes
}

func setupTime(entry *catalog.Entry, in *painpoint.Input) string {
	if entry.Implementation.SetupTime != "" {
		return entry.Implementation.SetupTime
	}
	size := painpoint.SizeMedium
	if ctx := in.PainPoint.Context; ctx != nil && ctx.CompanySize != "" {
		size = ctx.CompanySize
	}
	return EstimateSetupTime(entry.Implementation.Complexity, size)
}

func resourceRequirements(entry *catalog.Entry) ResourceRequirements {
	technical := "Standard platform onboarding"
	if n := len(entry.Implementation.ResourcesNeeded); n > 0 {
		if n > 2 {
			n = 2
		}
		technical = strings.Join(entry.Implementation.ResourcesNeeded[:n], ", ")
	}
	return ResourceRequirements{
		Technical:          technical,
		Training:           "2-4 hours of team training",
		OngoingMaintenance: "Minimal ongoing maintenance required",
	}
}

// successMetrics combines universal metrics with up to two category-specific
// ones, capped at five.
func successMetrics(entry *catalog.Entry) []string {
	metrics := []string{
		"Customer satisfaction score improvement",
		"Time saved per week",
		"Team adoption rate",
	}

	var byCategory []string
	switch entry.Category {
	case catalog.CategoryVoC:
		byCategory = []string{"Survey response rate", "Feedback volume per month"}
	case catalog.CategoryAICustomerService:
		byCategory = []string{"Average response time", "Ticket deflection rate"}
	case catalog.CategoryInsights:
		byCategory = []string{"Insights generated per month", "Analysis turnaround time"}
	case catalog.CategoryCustomer360:
		byCategory = []string{"Profile completeness rate", "Context-switch time per inquiry"}
	case catalog.CategoryAIAutomation:
		byCategory = []string{"Workflows automated", "Manual steps eliminated"}
	}
	if len(byCategory) > 2 {
		byCategory = byCategory[:2]
	}
	metrics = append(metrics, byCategory...)

	if len(metrics) > 5 {
		metrics = metrics[:5]
	}
	return metrics
}

// relatedCaseStudies summarizes the first success story as a one-liner.
func relatedCaseStudies(entry *catalog.Entry) []string {
	if len(entry.SuccessStories) == 0 {
		return nil
	}
	s := entry.SuccessStories[0]
	return []string{fmt.Sprintf("%s (%s): %s -> %s", s.Industry, s.CompanySize, s.Challenge, s.Results)}
}
