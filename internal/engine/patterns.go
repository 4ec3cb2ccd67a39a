package engine

import "github.com/filumlabs/painpoint-agent/internal/catalog"

// painPattern maps a pain category to the textual patterns that indicate it
// and the feature names that are its canonical answer. Entries whose name
// contains a best-fit feature receive the full pattern boost; every other
// entry receives only the related fraction.
type painPattern struct {
	Category     string
	Patterns     []string
	BestFeatures []string
}

// painPatterns is ordered; scoring iterates it deterministically.
var painPatterns = []painPattern{
	{
		Category:     "support_response_time",
		Patterns:     []string{"time", "wait", "response time", "slow", "support", "reply"},
		BestFeatures: []string{"AI Inbox with Smart Routing", "AI Customer Service"},
	},
	{
		Category:     "support_overload",
		Patterns:     []string{"overload", "overwhelm", "volume", "many", "repetitive", "repeat"},
		BestFeatures: []string{"AI Inbox with Smart Routing", "AI Customer Service"},
	},
	{
		Category:     "feedback_collection",
		Patterns:     []string{"feedback", "response", "collect", "survey", "collection"},
		BestFeatures: []string{"Multi-Channel Surveys", "Voice of Customer"},
	},
	{
		Category:     "manual_analysis",
		Patterns:     []string{"manual", "analysis", "time consuming", "labor intensive"},
		BestFeatures: []string{"AI-Powered Conversation Analysis", "Customer Insights"},
	},
	{
		Category:     "customer_understanding",
		Patterns:     []string{"understand", "insight", "needs", "behavior", "behaviour"},
		BestFeatures: []string{"Customer Journey Analytics", "Customer Insights"},
	},
	{
		Category:     "customer_history",
		Patterns:     []string{"history", "profile", "single view", "unified", "consolidated", "interaction", "contact again"},
		BestFeatures: []string{"Customer 360", "Customer Profile"},
	},
}

// categoryPatterns maps each product pillar to the vocabulary that signals
// a pain point in its territory.
var categoryPatterns = map[catalog.Category][]string{
	catalog.CategoryAICustomerService: {"support", "agent", "customer service", "helpdesk"},
	catalog.CategoryVoC:               {"feedback", "voice", "survey", "opinion"},
	catalog.CategoryInsights:          {"insight", "analysis", "data", "report"},
	catalog.CategoryCustomer360:       {"profile", "history", "view", "360", "unified"},
	catalog.CategoryAIAutomation:      {"automation", "auto", "workflow"},
}

// painCategoryKeywords backs the optional category-alignment signal; the key
// is the pain_category declared on a catalog entry's pains-addressed list.
var painCategoryKeywords = map[string][]string{
	"feedback_collection":    {"feedback", "survey"},
	"support_overload":       {"support", "agent", "overload", "volume"},
	"support_response_time":  {"support", "slow", "wait", "response"},
	"customer_history":       {"profile", "history", "view", "unified", "single"},
	"customer_understanding": {"journey", "touchpoint", "experience", "friction"},
	"manual_analysis":        {"analysis", "insight", "manual", "data"},
}

// industryVocabulary lists characteristic terms per industry. The terms are
// informational: Explain reports how many appear in a description, but they
// do not contribute to the relevance score.
var industryVocabulary = map[string][]string{
	"e-commerce": {"online", "website", "cart", "checkout", "product", "order", "shipping"},
	"banking":    {"account", "transaction", "loan", "credit", "payment", "financial", "deposit"},
	"healthcare": {"patient", "doctor", "medical", "treatment", "appointment", "hospital", "clinic"},
	"retail":     {"store", "customer", "purchase", "sales", "inventory", "cashier", "pos"},
	"technology": {"software", "system", "platform", "user", "feature", "bug", "update"},
	"telecom":    {"network", "call", "data", "mobile", "internet", "signal", "subscriber"},
	"insurance":  {"policy", "claim", "coverage", "premium", "risk", "underwriting", "agent"},
}

// IndustryVocabulary returns the characteristic terms for an industry, or
// nil for an unknown one. Lookup is case-insensitive via the lowercased key.
func IndustryVocabulary(industry string) []string {
	return industryVocabulary[lower(industry)]
}
