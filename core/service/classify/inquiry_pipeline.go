package classify

import (
	"inquiry_server/core/domain"
)

// =============================================================================
// Classification Pipeline (layered fallback)
// =============================================================================

// PipelineConfig holds the fuzzy fallback thresholds.
//
// Category fallback is tuned permissive on search but strict on acceptance;
// it matches against category names, not keyword lists, so it rarely fires
// and is documented as best-effort. Country fallback is much tighter since a
// wrong country tag is more visible than a missing one.
type PipelineConfig struct {
	CategoryFuzzyThreshold float64 // search breadth for category names
	CategoryFuzzyMaxScore  float64 // acceptance cutoff for category names
	CountryFuzzyThreshold  float64 // search breadth for country names
	CountryFuzzyMaxScore   float64 // acceptance cutoff for country names

	// EnableFuzzyFallback gates both fuzzy passes. Keyword results are
	// never altered by fuzzy matching either way.
	EnableFuzzyFallback bool
}

// DefaultPipelineConfig returns the tuned production thresholds.
func DefaultPipelineConfig() *PipelineConfig {
	return &PipelineConfig{
		CategoryFuzzyThreshold: 0.8,
		CategoryFuzzyMaxScore:  0.5,
		CountryFuzzyThreshold:  0.4,
		CountryFuzzyMaxScore:   0.25,
		EnableFuzzyFallback:    true,
	}
}

// Pipeline classifies inquiry text into category and country tags.
//
// It is a pure text function: no I/O, no shared mutable state, safe for
// concurrent use. Re-running Classify on identical input always yields the
// identical result.
type Pipeline struct {
	vocab    *domain.Vocabulary
	keywords *KeywordMatcher
	fuzzy    *FuzzyMatcher
	config   *PipelineConfig
}

// NewPipeline builds a pipeline over an immutable vocabulary.
func NewPipeline(vocab *domain.Vocabulary, config *PipelineConfig) *Pipeline {
	if config == nil {
		config = DefaultPipelineConfig()
	}
	return &Pipeline{
		vocab:    vocab,
		keywords: NewKeywordMatcher(vocab),
		fuzzy:    NewFuzzyMatcher(),
		config:   config,
	}
}

// Classify assigns categories and countries to one inquiry.
//
// Markup is stripped from the body only (subjects arrive plain). The keyword
// pass wins outright when it finds anything; the fuzzy pass runs only on an
// empty keyword result. Country candidates from either pass are re-filtered
// to whole-word matches.
func (p *Pipeline) Classify(subject, body string) domain.ClassificationResult {
	text := subject + " " + StripMarkup(body)

	categories := p.keywords.MatchCategories(text)
	if len(categories) == 0 && p.config.EnableFuzzyFallback {
		categories = p.fuzzy.Match(text, p.vocab.CategoryNames,
			p.config.CategoryFuzzyThreshold, p.config.CategoryFuzzyMaxScore)
	}

	countries := filterWholeWord(text, p.keywords.MatchCountries(text))
	if len(countries) == 0 && p.config.EnableFuzzyFallback {
		candidates := p.fuzzy.Match(text, p.vocab.Countries,
			p.config.CountryFuzzyThreshold, p.config.CountryFuzzyMaxScore)
		countries = filterWholeWord(text, candidates)
	}

	return domain.ClassificationResult{
		Categories: dedup(categories),
		Countries:  dedup(countries),
	}
}

// filterWholeWord keeps only candidates that occur as whole words in text.
// The keyword matcher already guarantees this; the fuzzy matcher does not.
func filterWholeWord(text string, candidates []string) []string {
	var kept []string
	for _, c := range candidates {
		if ContainsWholeWord(text, c) {
			kept = append(kept, c)
		}
	}
	return kept
}

// dedup removes duplicates preserving first-seen order and never returns nil.
func dedup(values []string) []string {
	result := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		result = append(result, v)
	}
	return result
}
