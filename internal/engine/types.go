package engine

import "github.com/filumlabs/painpoint-agent/internal/catalog"

// Feature is the slice of a catalog entry referenced by a Solution.
type Feature struct {
	Category    catalog.Category `json:"feature_category"`
	Name        string           `json:"feature_name"`
	Description string           `json:"feature_description"`
}

// ExpectedOutcomes splits the expected results of a solution by horizon.
type ExpectedOutcomes struct {
	ShortTerm []string `json:"short_term,omitempty"`
	LongTerm  []string `json:"long_term,omitempty"`
}

// ResourceRequirements describes what implementing a solution takes.
type ResourceRequirements struct {
	Technical          string `json:"technical,omitempty"`
	Training           string `json:"training,omitempty"`
	OngoingMaintenance string `json:"ongoing_maintenance,omitempty"`
}

// Solution is the synthesized recommendation for one catalog entry.
type Solution struct {
	ID                   string               `json:"solution_id"`
	Name                 string               `json:"solution_name"`
	Features             []Feature            `json:"features"`
	Rationale            string               `json:"how_it_helps"`
	ImplementationSteps  []string             `json:"implementation_steps"`
	ExpectedOutcomes     ExpectedOutcomes     `json:"expected_outcomes"`
	RelevanceScore       float64              `json:"relevance_score"`
	Complexity           catalog.Complexity   `json:"complexity_level"`
	EstimatedSetupTime   string               `json:"estimated_setup_time,omitempty"`
	ResourceRequirements ResourceRequirements `json:"resource_requirements"`
	SuccessMetrics       []string             `json:"success_metrics,omitempty"`
	RelatedCaseStudies   []string             `json:"related_case_studies,omitempty"`
}

// Analysis is the structured summary of the pain point itself.
type Analysis struct {
	Summary          string   `json:"pain_point_summary"`
	KeyChallenges    []string `json:"key_challenges,omitempty"`
	ImpactAssessment string   `json:"impact_assessment"`
}

// ProsCons lists the trade-offs of an alternative approach.
type ProsCons struct {
	Pros []string `json:"pros,omitempty"`
	Cons []string `json:"cons,omitempty"`
}

// AlternativeApproach is a non-catalog approach to the same problem.
type AlternativeApproach struct {
	Name        string   `json:"approach_name"`
	Description string   `json:"description"`
	ProsCons    ProsCons `json:"pros_cons"`
}

// NextSteps lists the recommended follow-up actions.
type NextSteps struct {
	ImmediateActions   []string `json:"immediate_actions,omitempty"`
	ConsultationNeeded bool     `json:"consultation_needed"`
	DemoRequests       []string `json:"demo_requests,omitempty"`
}

// Output is the complete result of one engine invocation.
type Output struct {
	Analysis     Analysis              `json:"analysis"`
	Solutions    []Solution            `json:"recommended_solutions"`
	Alternatives []AlternativeApproach `json:"alternative_approaches,omitempty"`
	NextSteps    NextSteps             `json:"next_steps"`
}

// Breakdown explains how one entry's relevance score was assembled. The
// contributing signals sum (with the base, clamped) to Total; the advisory
// signals are computed for inspection but do not contribute.
type Breakdown struct {
	FeatureID   string  `json:"feature_id"`
	FeatureName string  `json:"feature_name"`
	Total       float64 `json:"total"`

	Base           float64 `json:"base"`
	PatternSignal  float64 `json:"pattern_signal"`
	CategorySignal float64 `json:"category_signal"`
	ContextSignal  float64 `json:"context_signal"`

	KeywordSimilarity   float64 `json:"keyword_similarity"`
	CategoryAlignment   float64 `json:"category_alignment"`
	ContextFit          float64 `json:"context_fit"`
	CapabilityAlignment float64 `json:"capability_alignment"`
	ComplexityFit       float64 `json:"complexity_fit"`
	IndustryTermHits    int     `json:"industry_term_hits"`
}
