package engine

import (
	"strings"

	"github.com/filumlabs/painpoint-agent/internal/catalog"
	"github.com/filumlabs/painpoint-agent/internal/painpoint"
	"github.com/filumlabs/painpoint-agent/internal/textutil"
)

func lower(s string) string { return strings.ToLower(s) }

// score computes the bounded relevance score for one (pain point, entry)
// pair. The result is always in [weights.Base, 1.0] and bit-reproducible for
// identical input and catalog state.
func (e *Engine) score(in *painpoint.Input, entry *catalog.Entry) float64 {
	w := e.weights
	painText := textutil.Normalize(in.PainPoint.Description)

	score := w.Base
	score += e.patternSignal(painText, entry)
	score += e.categorySignal(painText, entry)
	score += e.contextSignal(in.PainPoint.Context, entry)

	if score > 1.0 {
		score = 1.0
	}
	return score
}

// patternSignal rewards entries that are the canonical answer for a detected
// pain category with the full boost, and every other entry with the smaller
// related fraction, proportional to the pattern hit ratio.
func (e *Engine) patternSignal(painText string, entry *catalog.Entry) float64 {
	w := e.weights
	signal := 0.0

	for _, pp := range painPatterns {
		matches := 0
		for _, pattern := range pp.Patterns {
			if strings.Contains(painText, pattern) {
				matches++
			}
		}
		if matches == 0 {
			continue
		}

		ratio := float64(matches) / float64(len(pp.Patterns))
		if nameContainsAny(entry.Name, pp.BestFeatures) {
			signal += w.PatternBoost * ratio
		} else {
			signal += w.RelatedFraction * ratio
		}
	}
	return signal
}

// categorySignal measures how strongly the description speaks the vocabulary
// of the entry's product pillar, capped at the category ceiling.
func (e *Engine) categorySignal(painText string, entry *catalog.Entry) float64 {
	patterns := categoryPatterns[entry.Category]
	if len(patterns) == 0 {
		return 0
	}

	matches := 0
	for _, pattern := range patterns {
		if strings.Contains(painText, pattern) {
			matches++
		}
	}

	signal := e.weights.CategoryCeiling * float64(matches) / float64(len(patterns))
	if signal > e.weights.CategoryCeiling {
		signal = e.weights.CategoryCeiling
	}
	return signal
}

// contextSignal applies the urgency and company-size adjustments. High
// urgency favors AI/automation entries because they deploy faster than
// process redesign; large organizations get a flat bonus for any entry.
func (e *Engine) contextSignal(ctx *painpoint.Context, entry *catalog.Entry) float64 {
	if ctx == nil {
		return 0
	}

	signal := 0.0
	if ctx.Urgency == painpoint.UrgencyHigh {
		if strings.Contains(entry.Name, "AI") || strings.Contains(entry.Name, "Smart") {
			signal += e.weights.UrgencyBonus
		}
	}
	if ctx.CompanySize == painpoint.SizeLarge || ctx.CompanySize == painpoint.SizeEnterprise {
		signal += e.weights.ScaleBonus
	}
	return signal
}

func nameContainsAny(name string, candidates []string) bool {
	for _, c := range candidates {
		if strings.Contains(name, c) {
			return true
		}
	}
	return false
}

// breakdown assembles the full score explanation, including the advisory
// signals that are computed for inspection only.
func (e *Engine) breakdown(in *painpoint.Input, entry *catalog.Entry) Breakdown {
	painText := textutil.Normalize(in.PainPoint.Description)

	b := Breakdown{
		FeatureID:      entry.ID,
		FeatureName:    entry.Name,
		Base:           e.weights.Base,
		PatternSignal:  e.patternSignal(painText, entry),
		CategorySignal: e.categorySignal(painText, entry),
		ContextSignal:  e.contextSignal(in.PainPoint.Context, entry),

		KeywordSimilarity:   keywordSimilarity(in, entry),
		CategoryAlignment:   categoryAlignment(painText, entry),
		ContextFit:          contextFit(in.PainPoint.Context, entry),
		CapabilityAlignment: capabilityAlignment(in, entry),
		ComplexityFit:       complexityFit(in, entry),
	}
	b.Total = e.score(in, entry)

	if ctx := in.PainPoint.Context; ctx != nil && ctx.Industry != "" {
		for _, term := range IndustryVocabulary(ctx.Industry) {
			if strings.Contains(painText, term) {
				b.IndustryTermHits++
			}
		}
	}
	return b
}

// keywordSimilarity measures the overlap between the pain point's extracted
// keywords and the keywords declared on the entry's addressed pains,
// normalized by the number of pain keywords.
func keywordSimilarity(in *painpoint.Input, entry *catalog.Entry) float64 {
	painKeywords := textutil.ExtractKeywords(in.PainPoint.Description, textutil.DefaultMinKeywordLength)
	if len(painKeywords) == 0 {
		return 0
	}

	var entryKeywords []string
	for _, pa := range entry.PainsAddressed {
		for _, kw := range pa.Keywords {
			entryKeywords = append(entryKeywords, lower(kw))
		}
	}
	if len(entryKeywords) == 0 {
		return 0
	}

	matches := 0
	for _, pk := range painKeywords {
		for _, ek := range entryKeywords {
			if strings.Contains(ek, pk) || strings.Contains(pk, ek) {
				matches++
				break
			}
		}
	}
	return float64(matches) / float64(len(painKeywords))
}

// categoryAlignment returns the best hit ratio over the entry's declared
// pain categories against their keyword sets.
func categoryAlignment(painText string, entry *catalog.Entry) float64 {
	best := 0.0
	for _, pa := range entry.PainsAddressed {
		keywords := painCategoryKeywords[pa.PainCategory]
		if len(keywords) == 0 {
			continue
		}
		matches := 0
		for _, kw := range keywords {
			if strings.Contains(painText, kw) {
				matches++
			}
		}
		if ratio := float64(matches) / float64(len(keywords)); ratio > best {
			best = ratio
		}
	}
	return best
}

// complexitySizeFit maps each complexity level to the company sizes it suits.
var complexitySizeFit = map[catalog.Complexity][]painpoint.CompanySize{
	catalog.ComplexityLow:    {painpoint.SizeStartup, painpoint.SizeSmall},
	catalog.ComplexityMedium: {painpoint.SizeSmall, painpoint.SizeMedium, painpoint.SizeLarge},
	catalog.ComplexityHigh:   {painpoint.SizeMedium, painpoint.SizeLarge, painpoint.SizeEnterprise},
}

// urgencyComplexityFit scores how well a complexity level suits an urgency
// level: urgent problems prefer solutions that deploy quickly.
var urgencyComplexityFit = map[painpoint.Urgency]map[catalog.Complexity]float64{
	painpoint.UrgencyHigh:   {catalog.ComplexityLow: 1.0, catalog.ComplexityMedium: 0.6, catalog.ComplexityHigh: 0.3},
	painpoint.UrgencyMedium: {catalog.ComplexityLow: 0.8, catalog.ComplexityMedium: 1.0, catalog.ComplexityHigh: 0.7},
	painpoint.UrgencyLow:    {catalog.ComplexityLow: 0.6, catalog.ComplexityMedium: 0.8, catalog.ComplexityHigh: 1.0},
}

// contextFit averages industry, company-size, and urgency fit checks.
// Missing context degrades to the 0.5 neutral value, never to an error.
func contextFit(ctx *painpoint.Context, entry *catalog.Entry) float64 {
	if ctx == nil {
		return 0.5
	}

	score := 0.0
	count := 0

	if ctx.Industry != "" {
		count++
		for _, pa := range entry.PainsAddressed {
			if containsString(pa.BusinessContexts, ctx.Industry) {
				score += 1.0
				break
			}
		}
	}

	if ctx.CompanySize != "" {
		count++
		sizes := complexitySizeFit[entry.Implementation.Complexity]
		if containsSize(sizes, ctx.CompanySize) {
			score += 1.0
		} else {
			score += 0.3
		}
	}

	if ctx.Urgency != "" {
		count++
		if fit, ok := urgencyComplexityFit[ctx.Urgency][entry.Implementation.Complexity]; ok {
			score += fit
		} else {
			score += 0.5
		}
	}

	if count == 0 {
		return 0.5
	}
	return score / float64(count)
}

// capabilityAlignment measures keyword overlap between the pain point and
// the entry's capabilities, plus use-case hits against the affected areas.
func capabilityAlignment(in *painpoint.Input, entry *catalog.Entry) float64 {
	if len(entry.Capabilities) == 0 {
		return 0
	}

	painKeywords := textutil.ExtractKeywords(in.PainPoint.Description, textutil.DefaultMinKeywordLength)

	total := 0.0
	for _, cap := range entry.Capabilities {
		capKeywords := textutil.ExtractKeywords(cap.Description+" "+cap.Name, textutil.DefaultMinKeywordLength)

		matched := false
		for _, pk := range painKeywords {
			for _, ck := range capKeywords {
				if strings.Contains(ck, pk) || strings.Contains(pk, ck) {
					matched = true
					break
				}
			}
			if matched {
				break
			}
		}
		if matched {
			total += 1.0
		}

		for _, useCase := range cap.UseCases {
			uc := lower(useCase)
			for _, area := range in.PainPoint.AffectedAreas {
				if strings.Contains(uc, lower(area)) {
					total += 0.5
					break
				}
			}
		}
	}

	result := total / float64(len(entry.Capabilities))
	if result > 1.0 {
		result = 1.0
	}
	return result
}

// complexityFit scores the entry's complexity against the urgency and the
// user's stated timeline preference.
func complexityFit(in *painpoint.Input, entry *catalog.Entry) float64 {
	ctx := in.PainPoint.Context
	prefs := in.Preferences
	if ctx == nil && prefs == nil {
		return 0.7
	}

	complexity := entry.Implementation.Complexity
	score := 0.7

	if ctx != nil {
		switch {
		case ctx.Urgency == painpoint.UrgencyHigh && complexity == catalog.ComplexityLow:
			score = 1.0
		case ctx.Urgency == painpoint.UrgencyHigh && complexity == catalog.ComplexityHigh:
			score = 0.3
		case ctx.Urgency == painpoint.UrgencyMedium && complexity == catalog.ComplexityMedium:
			score = 1.0
		}
	}

	if prefs != nil && prefs.ImplementationTimeline != "" {
		timeline := lower(prefs.ImplementationTimeline)
		switch {
		case (strings.Contains(timeline, "quick") || strings.Contains(timeline, "fast")) && complexity == catalog.ComplexityHigh:
			score *= 0.5
		case (strings.Contains(timeline, "long") || strings.Contains(timeline, "detailed")) && complexity == catalog.ComplexityLow:
			score *= 0.8
		}
	}
	return score
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func containsSize(list []painpoint.CompanySize, s painpoint.CompanySize) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
