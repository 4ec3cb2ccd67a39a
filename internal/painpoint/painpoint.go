// Package painpoint defines the typed pain-point input model, its JSON
// loading helpers, and the validation applied before any scoring runs.
package painpoint

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Urgency is the urgency level of a pain point.
type Urgency string

const (
	UrgencyLow    Urgency = "low"
	UrgencyMedium Urgency = "medium"
	UrgencyHigh   Urgency = "high"
)

// CompanySize is the scale of the company reporting the pain point.
type CompanySize string

const (
	SizeStartup    CompanySize = "startup"
	SizeSmall      CompanySize = "small"
	SizeMedium     CompanySize = "medium"
	SizeLarge      CompanySize = "large"
	SizeEnterprise CompanySize = "enterprise"
)

// ValidUrgencies lists the accepted urgency values, in severity order.
var ValidUrgencies = []Urgency{UrgencyLow, UrgencyMedium, UrgencyHigh}

// ValidCompanySizes lists the accepted company-size values, smallest first.
var ValidCompanySizes = []CompanySize{SizeStartup, SizeSmall, SizeMedium, SizeLarge, SizeEnterprise}

// Context carries the optional structured context of a pain point.
type Context struct {
	Industry     string      `json:"industry,omitempty"`
	CompanySize  CompanySize `json:"company_size,omitempty"`
	CurrentTools []string    `json:"current_tools,omitempty"`
	Urgency      Urgency     `json:"urgency_level,omitempty"`
	BudgetRange  string      `json:"budget_range,omitempty"`
}

// ImpactMetrics holds the user-reported metrics describing the current
// impact. Values are free-form strings ("low", "4 hours", "high cost").
type ImpactMetrics struct {
	CustomerSatisfaction string `json:"customer_satisfaction,omitempty"`
	ResponseTime         string `json:"response_time,omitempty"`
	Volume               string `json:"volume,omitempty"`
	Cost                 string `json:"cost,omitempty"`
	Efficiency           string `json:"efficiency,omitempty"`
}

// Impact describes the current impact of the pain point.
type Impact struct {
	Description string         `json:"description"`
	Metrics     *ImpactMetrics `json:"metrics,omitempty"`
}

// PainPoint is the user's problem statement plus optional context.
type PainPoint struct {
	Description   string   `json:"description"`
	Context       *Context `json:"context,omitempty"`
	AffectedAreas []string `json:"affected_areas,omitempty"`
	CurrentImpact *Impact  `json:"current_impact,omitempty"`
}

// Preferences captures optional user preferences for the recommendation.
type Preferences struct {
	SolutionTypes           []string `json:"solution_types,omitempty"`
	ImplementationTimeline  string   `json:"implementation_timeline,omitempty"`
	IntegrationRequirements string   `json:"integration_requirements,omitempty"`
}

// Input is the complete request payload handed to the engine.
type Input struct {
	PainPoint   PainPoint    `json:"pain_point"`
	Preferences *Preferences `json:"preferences,omitempty"`
}

// MinDescriptionLength is the minimum length of a pain-point description,
// in characters after trimming.
const MinDescriptionLength = 10

// ValidationError reports one or more problems with a pain-point input.
// It is always surfaced before any scoring runs.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	if len(e.Problems) == 1 {
		return "invalid pain point input: " + e.Problems[0]
	}
	return fmt.Sprintf("invalid pain point input: %s", strings.Join(e.Problems, "; "))
}

// Validate checks the input against the closed enums and the description
// requirements. It returns a *ValidationError listing every problem found,
// or nil when the input is well-formed.
func (in *Input) Validate() error {
	var problems []string

	desc := strings.TrimSpace(in.PainPoint.Description)
	if desc == "" {
		problems = append(problems, "pain_point.description is required")
	} else if len([]rune(desc)) < MinDescriptionLength {
		problems = append(problems, fmt.Sprintf("pain_point.description must be at least %d characters", MinDescriptionLength))
	}

	if ctx := in.PainPoint.Context; ctx != nil {
		if ctx.CompanySize != "" && !validCompanySize(ctx.CompanySize) {
			problems = append(problems, fmt.Sprintf("company_size %q must be one of %s", ctx.CompanySize, joinSizes()))
		}
		if ctx.Urgency != "" && !validUrgency(ctx.Urgency) {
			problems = append(problems, fmt.Sprintf("urgency_level %q must be one of %s", ctx.Urgency, joinUrgencies()))
		}
	}

	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}

func validCompanySize(s CompanySize) bool {
	for _, v := range ValidCompanySizes {
		if s == v {
			return true
		}
	}
	return false
}

func validUrgency(u Urgency) bool {
	for _, v := range ValidUrgencies {
		if u == v {
			return true
		}
	}
	return false
}

func joinSizes() string {
	parts := make([]string, len(ValidCompanySizes))
	for i, v := range ValidCompanySizes {
		parts[i] = string(v)
	}
	return strings.Join(parts, ", ")
}

func joinUrgencies() string {
	parts := make([]string, len(ValidUrgencies))
	for i, v := range ValidUrgencies {
		parts[i] = string(v)
	}
	return strings.Join(parts, ", ")
}

// Parse decodes and validates a pain-point input from JSON bytes.
func Parse(data []byte) (*Input, error) {
	var in Input
	if err := json.Unmarshal(data, &in); err != nil {
		return nil, &ValidationError{Problems: []string{fmt.Sprintf("malformed JSON: %v", err)}}
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}
	return &in, nil
}

// Load reads and validates a pain-point input from a JSON file.
func Load(path string) (*Input, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading pain point file: %w", err)
	}
	in, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return in, nil
}

// Save writes the input to a JSON file, creating parent directories
// as needed.
func (in *Input) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}
	data, err := json.MarshalIndent(in, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling pain point: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing pain point file: %w", err)
	}
	return nil
}
