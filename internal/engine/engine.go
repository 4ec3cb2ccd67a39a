// Package engine implements the matching and ranking core: it scores catalog
// entries against a pain point, orders them, and synthesizes structured
// recommendations. Everything here is a pure computation over in-memory
// data; the loaded catalog is never mutated, so concurrent calls against one
// engine are safe.
package engine

import (
	"errors"
	"fmt"
	"sort"

	"github.com/filumlabs/painpoint-agent/internal/catalog"
	"github.com/filumlabs/painpoint-agent/internal/painpoint"
)

// ErrNotLoaded is returned when ranking is attempted before a catalog was
// loaded. It is always reported, never silently turned into an empty result.
var ErrNotLoaded = errors.New("knowledge base not loaded")

// DefaultMaxSolutions is the number of solutions returned when the caller
// does not ask for a specific count.
const DefaultMaxSolutions = 3

// Weights are the scoring parameters. The defaults reproduce the tuning the
// catalog was written against; they are surfaced as configuration because no
// ground-truth relevance dataset exists to validate alternatives.
type Weights struct {
	// Base is the floor score every entry starts from.
	Base float64
	// PatternBoost scales the pattern signal for best-fit entries.
	PatternBoost float64
	// RelatedFraction scales the pattern signal for non-best-fit entries.
	RelatedFraction float64
	// CategoryCeiling caps the category-alignment signal.
	CategoryCeiling float64
	// UrgencyBonus is added for AI/automation entries on high-urgency input.
	UrgencyBonus float64
	// ScaleBonus is added for any entry on large/enterprise input.
	ScaleBonus float64
	// MinScore is the inclusion threshold; entries scoring at or below it
	// are dropped from rankings.
	MinScore float64
}

// DefaultWeights returns the standard scoring parameters.
func DefaultWeights() Weights {
	return Weights{
		Base:            0.1,
		PatternBoost:    0.4,
		RelatedFraction: 0.1,
		CategoryCeiling: 0.3,
		UrgencyBonus:    0.1,
		ScaleBonus:      0.05,
		MinScore:        0.1,
	}
}

// Engine ranks catalog entries against pain points. Construct it with New;
// the catalog it holds is read-only for the engine's lifetime.
type Engine struct {
	cat     *catalog.Catalog
	weights Weights
}

// Option configures an Engine.
type Option func(*Engine)

// WithWeights overrides the default scoring weights.
func WithWeights(w Weights) Option {
	return func(e *Engine) { e.weights = w }
}

// New creates an engine over the given catalog. A nil catalog is accepted;
// ranking against it fails with ErrNotLoaded.
func New(cat *catalog.Catalog, opts ...Option) *Engine {
	e := &Engine{cat: cat, weights: DefaultWeights()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Catalog returns the loaded catalog, or nil.
func (e *Engine) Catalog() *catalog.Catalog { return e.cat }

// Weights returns the scoring parameters in effect.
func (e *Engine) Weights() Weights { return e.weights }

// Rank scores every catalog entry against the pain point, drops entries at
// or below the inclusion threshold, orders the rest by score descending
// (catalog order breaks ties), and synthesizes a Solution for each of the
// top maxResults entries. maxResults of 0 yields an empty list.
func (e *Engine) Rank(in *painpoint.Input, maxResults int) ([]Solution, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	if e.cat == nil || e.cat.Len() == 0 {
		return nil, ErrNotLoaded
	}
	if maxResults < 0 {
		return nil, fmt.Errorf("maxResults must be non-negative, got %d", maxResults)
	}

	type scored struct {
		entry *catalog.Entry
		score float64
	}

	var candidates []scored
	for i := range e.cat.Features {
		entry := &e.cat.Features[i]
		s := e.score(in, entry)
		if s > e.weights.MinScore {
			candidates = append(candidates, scored{entry: entry, score: s})
		}
	}

	// Stable sort keeps catalog insertion order for equal scores, so
	// repeated runs produce identical orderings.
	sort.SliceStable(candidates, func(a, b int) bool {
		return candidates[a].score > candidates[b].score
	})

	if len(candidates) > maxResults {
		candidates = candidates[:maxResults]
	}

	solutions := make([]Solution, 0, len(candidates))
	for i, c := range candidates {
		solutions = append(solutions, e.synthesize(c.entry, c.score, fmt.Sprintf("solution_%d", i+1), in))
	}
	return solutions, nil
}

// Analyze runs the full pipeline: validation, summarization, ranking,
// alternative approaches, and next steps. It is the engine's complete answer
// for one request.
func (e *Engine) Analyze(in *painpoint.Input, maxResults int) (*Output, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	if e.cat == nil || e.cat.Len() == 0 {
		return nil, ErrNotLoaded
	}

	solutions, err := e.Rank(in, maxResults)
	if err != nil {
		return nil, err
	}

	return &Output{
		Analysis:     e.summarize(in),
		Solutions:    solutions,
		Alternatives: e.alternatives(in, solutions),
		NextSteps:    e.nextSteps(in, solutions),
	}, nil
}

// Explain returns the score breakdown for a single catalog entry, including
// the advisory signals that do not contribute to the total.
func (e *Engine) Explain(in *painpoint.Input, featureID string) (*Breakdown, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	if e.cat == nil || e.cat.Len() == 0 {
		return nil, ErrNotLoaded
	}

	entry := e.cat.FindByID(featureID)
	if entry == nil {
		return nil, fmt.Errorf("unknown feature %q", featureID)
	}
	b := e.breakdown(in, entry)
	return &b, nil
}
