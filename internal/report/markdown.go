package report

import (
	"fmt"
	"io"
	"strings"
	"text/template"
)

// markdownTemplate mirrors the sections of the analysis output: the pain
// point summary, each recommended solution, alternatives, and next steps.
const markdownTemplate = `# Pain Point Analysis Report

## Summary

{{.Output.Analysis.Summary}}

{{- if .Output.Analysis.KeyChallenges}}

### Key Challenges
{{range .Output.Analysis.KeyChallenges}}
- {{.}}
{{- end}}
{{- end}}

### Impact Assessment

{{.Output.Analysis.ImpactAssessment}}

## Recommended Solutions
{{- if not .Output.Solutions}}

No matching solutions were found for this pain point.
{{- end}}
{{range $i, $s := .Output.Solutions}}
### {{inc $i}}. {{$s.Name}} (relevance {{printf "%.2f" $s.RelevanceScore}})

{{$s.Rationale}}

- **Complexity:** {{$s.Complexity}}
- **Estimated setup time:** {{$s.EstimatedSetupTime}}
{{- if $s.ImplementationSteps}}

**Implementation steps:**
{{range $j, $step := $s.ImplementationSteps}}
{{inc $j}}. {{$step}}
{{- end}}
{{- end}}
{{- if $s.ExpectedOutcomes.ShortTerm}}

**Short-term outcomes:**
{{range $s.ExpectedOutcomes.ShortTerm}}
- {{.}}
{{- end}}
{{- end}}
{{- if $s.ExpectedOutcomes.LongTerm}}

**Long-term outcomes:**
{{range $s.ExpectedOutcomes.LongTerm}}
- {{.}}
{{- end}}
{{- end}}
{{- if $s.SuccessMetrics}}

**Success metrics:**
{{range $s.SuccessMetrics}}
- {{.}}
{{- end}}
{{- end}}
{{- if $s.RelatedCaseStudies}}

**Case studies:**
{{range $s.RelatedCaseStudies}}
- {{.}}
{{- end}}
{{- end}}
{{end}}
{{- if .Output.Alternatives}}
## Alternative Approaches
{{range .Output.Alternatives}}
### {{.Name}}

{{.Description}}

Pros:
{{range .ProsCons.Pros}}
- {{.}}
{{- end}}

Cons:
{{range .ProsCons.Cons}}
- {{.}}
{{- end}}
{{end}}
{{- end}}
## Next Steps
{{range .Output.NextSteps.ImmediateActions}}
- {{.}}
{{- end}}
{{- if .Output.NextSteps.ConsultationNeeded}}

A consultation is recommended given the complexity of the suggested solutions.
{{- end}}
{{- if .Output.NextSteps.DemoRequests}}

Suggested demos: {{join .Output.NextSteps.DemoRequests ", "}}
{{- end}}
`

var mdTmpl = template.Must(template.New("markdown").Funcs(template.FuncMap{
	"inc":  func(i int) int { return i + 1 },
	"join": strings.Join,
}).Parse(markdownTemplate))

func writeMarkdown(w io.Writer, r *Report) error {
	if err := mdTmpl.Execute(w, r); err != nil {
		return fmt.Errorf("rendering markdown report: %w", err)
	}
	return nil
}
