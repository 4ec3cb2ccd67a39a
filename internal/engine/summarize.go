package engine

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/filumlabs/painpoint-agent/internal/painpoint"
	"github.com/filumlabs/painpoint-agent/internal/textutil"
)

// challengeRules maps description patterns to the key challenge they signal.
// Order matters: challenges are reported in rule order.
var challengeRules = []struct {
	re        *regexp.Regexp
	challenge string
}{
	{regexp.MustCompile(`slow|wait|delay|response time`), "Slow response times affecting customer satisfaction"},
	{regexp.MustCompile(`manual|by hand|spreadsheet`), "Manual processes consuming team capacity"},
	{regexp.MustCompile(`overload|overwhelm|too many|volume`), "High workload overwhelming the team"},
	{regexp.MustCompile(`feedback|survey|voice`), "Insufficient customer feedback collection"},
	{regexp.MustCompile(`insight|understand|visibility|unclear`), "Limited visibility into customer needs"},
	{regexp.MustCompile(`fragment|scattered|silo|disconnect`), "Fragmented customer data across systems"},
	{regexp.MustCompile(`churn|retention|leav|cancel`), "Customer retention at risk"},
}

// summarize builds the structured analysis of the pain point itself.
func (e *Engine) summarize(in *painpoint.Input) Analysis {
	return Analysis{
		Summary:          summaryText(in),
		KeyChallenges:    keyChallenges(in),
		ImpactAssessment: impactAssessment(in),
	}
}

// summaryText restates the pain point as one compact paragraph, folding in
// whatever context was provided.
func summaryText(in *painpoint.Input) string {
	parts := []string{textutil.Truncate(strings.TrimSpace(in.PainPoint.Description), 200)}

	if ctx := in.PainPoint.Context; ctx != nil {
		if ctx.Industry != "" {
			parts = append(parts, fmt.Sprintf("Industry: %s", ctx.Industry))
		}
		if ctx.CompanySize != "" {
			parts = append(parts, fmt.Sprintf("Company scale: %s", ctx.CompanySize))
		}
	}
	if len(in.PainPoint.AffectedAreas) > 0 {
		parts = append(parts, fmt.Sprintf("Affected areas: %s", strings.Join(in.PainPoint.AffectedAreas, ", ")))
	}
	return strings.Join(parts, ". ")
}

// keyChallenges extracts the challenges implied by the description and the
// affected areas, capped at four.
func keyChallenges(in *painpoint.Input) []string {
	pain := textutil.Normalize(in.PainPoint.Description)

	var challenges []string
	for _, rule := range challengeRules {
		if rule.re.MatchString(pain) {
			challenges = append(challenges, rule.challenge)
		}
	}

	for _, area := range in.PainPoint.AffectedAreas {
		switch lower(area) {
		case "customer_service", "customer service", "support":
			challenges = append(challenges, "Customer service operations under pressure")
		case "customer_retention", "retention":
			challenges = append(challenges, "Retention metrics trending downward")
		case "sales":
			challenges = append(challenges, "Sales effectiveness impacted by the issue")
		case "marketing":
			challenges = append(challenges, "Need to optimize marketing effectiveness")
		}
	}

	if len(challenges) == 0 {
		challenges = []string{
			"Operational inefficiency in current workflows",
			"Gap between current tooling and business needs",
		}
	}

	challenges = dedupe(challenges)
	if len(challenges) > 4 {
		challenges = challenges[:4]
	}
	return challenges
}

// impactAssessment composes the impact statement from condition rules, with
// a generic fallback when nothing specific applies.
func impactAssessment(in *painpoint.Input) string {
	var fragments []string

	if ctx := in.PainPoint.Context; ctx != nil {
		switch ctx.Urgency {
		case painpoint.UrgencyHigh:
			fragments = append(fragments, "The issue requires immediate attention to prevent further business impact")
		case painpoint.UrgencyMedium:
			fragments = append(fragments, "The issue is affecting operations and should be addressed in the near term")
		case painpoint.UrgencyLow:
			fragments = append(fragments, "The issue is a known friction point suitable for planned improvement")
		}
	}

	if len(in.PainPoint.AffectedAreas) > 2 {
		fragments = append(fragments, "the impact spans multiple business functions")
	}
	for _, area := range in.PainPoint.AffectedAreas {
		if a := lower(area); a == "customer_service" || a == "customer service" {
			fragments = append(fragments, "customer-facing operations are directly affected")
			break
		}
	}

	if impact := in.PainPoint.CurrentImpact; impact != nil && impact.Metrics != nil {
		m := impact.Metrics
		for _, v := range []string{m.CustomerSatisfaction, m.ResponseTime, m.Volume, m.Cost, m.Efficiency} {
			lv := lower(v)
			if strings.Contains(lv, "low") || strings.Contains(lv, "slow") || strings.Contains(lv, "high") {
				fragments = append(fragments, "reported metrics indicate measurable degradation")
				break
			}
		}
	}

	if ctx := in.PainPoint.Context; ctx != nil {
		if ctx.CompanySize == painpoint.SizeLarge || ctx.CompanySize == painpoint.SizeEnterprise {
			fragments = append(fragments, "at this organizational scale the cumulative cost is significant")
		}
	}

	if len(fragments) == 0 {
		return "The described issue creates operational friction that compounds over time if left unaddressed."
	}

	assessment := strings.Join(fragments, "; ")
	return strings.ToUpper(assessment[:1]) + assessment[1:] + "."
}

// alternatives proposes non-catalog approaches to the same problem, capped
// at two.
func (e *Engine) alternatives(in *painpoint.Input, solutions []Solution) []AlternativeApproach {
	pain := textutil.Normalize(in.PainPoint.Description)
	var alts []AlternativeApproach

	if strings.Contains(pain, "manual") || strings.Contains(pain, "process") {
		alts = append(alts, AlternativeApproach{
			Name:        "Internal process redesign",
			Description: "Restructure current workflows and responsibilities without new tooling.",
			ProsCons: ProsCons{
				Pros: []string{"No new software cost", "Team retains full control"},
				Cons: []string{"Does not scale with volume", "Improvement depends on sustained discipline"},
			},
		})
	}

	if len(solutions) > 0 {
		alts = append(alts, AlternativeApproach{
			Name:        "Point solutions from multiple vendors",
			Description: "Assemble separate best-of-breed tools for each facet of the problem.",
			ProsCons: ProsCons{
				Pros: []string{"Each tool optimized for its niche", "Incremental adoption possible"},
				Cons: []string{"Integration burden falls on your team", "Data stays fragmented across tools"},
			},
		})
	}

	if ctx := in.PainPoint.Context; ctx != nil {
		if ctx.CompanySize == painpoint.SizeLarge || ctx.CompanySize == painpoint.SizeEnterprise {
			alts = append(alts, AlternativeApproach{
				Name:        "In-house development",
				Description: "Build a custom solution tailored exactly to internal requirements.",
				ProsCons: ProsCons{
					Pros: []string{"Perfect fit for internal processes", "No vendor dependency"},
					Cons: []string{"High upfront engineering cost", "Long time to first value"},
				},
			})
		}
	}

	if len(alts) > 2 {
		alts = alts[:2]
	}
	return alts
}

// nextSteps assembles the recommended follow-up actions.
func (e *Engine) nextSteps(in *painpoint.Input, solutions []Solution) NextSteps {
	actions := []string{
		"Review the recommended solutions with stakeholders",
		"Quantify the current cost of the pain point",
		"Shortlist solutions for a pilot evaluation",
	}

	ctx := in.PainPoint.Context
	if ctx != nil && ctx.Urgency == painpoint.UrgencyHigh {
		actions = append([]string{"Escalate to leadership given the urgency"}, actions...)
	}
	if ctx == nil || len(ctx.CurrentTools) == 0 {
		actions = append(actions, "Audit current tooling to establish a baseline")
	}
	if len(solutions) > 0 {
		top := solutions[0]
		actions = append(actions, fmt.Sprintf("Learn more about %s (relevance %.2f)", top.Name, top.RelevanceScore))
	}
	if len(actions) > 4 {
		actions = actions[:4]
	}

	var demos []string
	for i, s := range solutions {
		if i >= 2 {
			break
		}
		demos = append(demos, s.Name)
	}

	return NextSteps{
		ImmediateActions:   actions,
		ConsultationNeeded: consultationNeeded(solutions),
		DemoRequests:       demos,
	}
}

// consultationNeeded flags the case where the recommended solutions skew
// complex: mean complexity above the low/medium midpoint. With no matching
// solutions at all, a consultation is the only path forward.
func consultationNeeded(solutions []Solution) bool {
	if len(solutions) == 0 {
		return true
	}
	total := 0.0
	for _, s := range solutions {
		switch s.Complexity {
		case "low":
			total += 1
		case "medium":
			total += 2
		case "high":
			total += 3
		default:
			total += 2
		}
	}
	return total/float64(len(solutions)) > 1.5
}

func dedupe(list []string) []string {
	seen := make(map[string]struct{}, len(list))
	var out []string
	for _, s := range list {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
