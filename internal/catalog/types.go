package catalog

import "github.com/filumlabs/painpoint-agent/internal/painpoint"

// Category is one of the product pillars a feature belongs to.
type Category string

const (
	CategoryVoC               Category = "VoC"
	CategoryAICustomerService Category = "AI Customer Service"
	CategoryInsights          Category = "Insights"
	CategoryCustomer360       Category = "Customer 360"
	CategoryAIAutomation      Category = "AI & Automation"
)

// Complexity is the implementation complexity of a feature.
type Complexity string

const (
	ComplexityLow    Complexity = "low"
	ComplexityMedium Complexity = "medium"
	ComplexityHigh   Complexity = "high"
)

// PricingTier is the commercial tier a feature is sold in.
type PricingTier string

const (
	TierBasic      PricingTier = "basic"
	TierStandard   PricingTier = "standard"
	TierPremium    PricingTier = "premium"
	TierEnterprise PricingTier = "enterprise"
)

// Description holds the short and detailed descriptions of a feature.
type Description struct {
	Short          string `json:"short"`
	Detailed       string `json:"detailed"`
	TechnicalSpecs string `json:"technical_specs,omitempty"`
}

// PainAddressed describes one class of pain point a feature addresses.
type PainAddressed struct {
	PainCategory     string              `json:"pain_category"`
	Keywords         []string            `json:"keywords,omitempty"`
	SeverityLevels   []painpoint.Urgency `json:"severity_levels,omitempty"`
	BusinessContexts []string            `json:"business_contexts,omitempty"`
}

// Capability is a single capability of a feature.
type Capability struct {
	Name        string   `json:"capability_name"`
	Description string   `json:"description"`
	UseCases    []string `json:"use_cases,omitempty"`
}

// Integration lists the integration options of a feature.
type Integration struct {
	Channels        []string `json:"channels,omitempty"`
	ThirdPartyTools []string `json:"third_party_tools,omitempty"`
	APIsAvailable   bool     `json:"apis_available,omitempty"`
}

// Implementation describes how a feature is deployed.
type Implementation struct {
	Complexity      Complexity `json:"complexity"`
	SetupTime       string     `json:"setup_time,omitempty"`
	ResourcesNeeded []string   `json:"resources_needed,omitempty"`
	Prerequisites   []string   `json:"prerequisites,omitempty"`
}

// Benefits lists the quantitative and qualitative benefits of a feature.
type Benefits struct {
	Quantitative []string `json:"quantitative,omitempty"`
	Qualitative  []string `json:"qualitative,omitempty"`
}

// SuccessStory is a reference case study for a feature.
type SuccessStory struct {
	Industry    string                `json:"industry"`
	CompanySize painpoint.CompanySize `json:"company_size"`
	Challenge   string                `json:"challenge"`
	Solution    string                `json:"solution"`
	Results     string                `json:"results"`
}

// Entry is one unit of sellable capability in the knowledge base. Entries
// are loaded once and never mutated afterwards.
type Entry struct {
	ID              string          `json:"feature_id"`
	Name            string          `json:"feature_name"`
	Category        Category        `json:"category"`
	Subcategory     string          `json:"subcategory,omitempty"`
	Description     Description     `json:"description"`
	PainsAddressed  []PainAddressed `json:"pain_points_addressed,omitempty"`
	Capabilities    []Capability    `json:"capabilities,omitempty"`
	Integration     *Integration    `json:"integration_options,omitempty"`
	Implementation  Implementation  `json:"implementation"`
	Benefits        Benefits        `json:"benefits,omitempty"`
	SuccessStories  []SuccessStory  `json:"success_stories,omitempty"`
	PricingTier     PricingTier     `json:"pricing_tier,omitempty"`
	RelatedFeatures []string        `json:"related_features,omitempty"`
}

// PainCategoryInfo is one entry of the pain-point taxonomy shipped with the
// knowledge base.
type PainCategoryInfo struct {
	CategoryName   string   `json:"category_name"`
	Subcategories  []string `json:"subcategories,omitempty"`
	CommonKeywords []string `json:"common_keywords,omitempty"`
	Indicators     []string `json:"indicators,omitempty"`
}

// Taxonomy groups the pain-point categories of the knowledge base.
type Taxonomy struct {
	Categories []PainCategoryInfo `json:"categories,omitempty"`
}

// BusinessContexts lists the business contexts the catalog was written for.
type BusinessContexts struct {
	Industries     []string                `json:"industries,omitempty"`
	CompanySizes   []painpoint.CompanySize `json:"company_sizes,omitempty"`
	BusinessModels []string                `json:"business_models,omitempty"`
}

// Catalog is the full knowledge base document.
type Catalog struct {
	Features         []Entry           `json:"features"`
	Taxonomy         *Taxonomy         `json:"pain_point_taxonomy,omitempty"`
	BusinessContexts *BusinessContexts `json:"business_contexts,omitempty"`
}

// Len returns the number of catalog entries.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.Features)
}

// FindByID returns the entry with the given ID, or nil if absent.
func (c *Catalog) FindByID(id string) *Entry {
	if c == nil {
		return nil
	}
	for i := range c.Features {
		if c.Features[i].ID == id {
			return &c.Features[i]
		}
	}
	return nil
}
