package classify

import (
	"regexp"

	"inquiry_server/core/domain"
)

// KeywordMatcher performs whole-word, case-insensitive matching of the
// vocabulary's keywords and country names. All patterns are compiled once
// at construction; the matcher is immutable and safe for concurrent use.
type KeywordMatcher struct {
	categories []categoryPatterns
	countries  []countryPattern
}

type categoryPatterns struct {
	name     string
	keywords []*regexp.Regexp
}

type countryPattern struct {
	name    string
	pattern *regexp.Regexp
}

// wholeWordPattern compiles a case-insensitive whole-word pattern for a
// literal phrase. QuoteMeta keeps phrases like "p&l" or "roll-on roll-off"
// literal; multi-word phrases match as contiguous sequences.
func wholeWordPattern(phrase string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(phrase) + `\b`)
}

// NewKeywordMatcher compiles matchers for every keyword and country in the
// vocabulary. An empty vocabulary yields a matcher that never matches.
func NewKeywordMatcher(vocab *domain.Vocabulary) *KeywordMatcher {
	m := &KeywordMatcher{}

	for _, name := range vocab.CategoryNames {
		cp := categoryPatterns{name: name}
		for _, kw := range vocab.Categories[name] {
			if kw == "" {
				continue
			}
			cp.keywords = append(cp.keywords, wholeWordPattern(kw))
		}
		m.categories = append(m.categories, cp)
	}

	for _, country := range vocab.Countries {
		if country == "" {
			continue
		}
		m.countries = append(m.countries, countryPattern{
			name:    country,
			pattern: wholeWordPattern(country),
		})
	}

	return m
}

// MatchCategories returns every category with at least one keyword present
// as a whole word in text. Evaluation short-circuits per category: the first
// matching keyword wins and the remaining keywords are skipped.
func (m *KeywordMatcher) MatchCategories(text string) []string {
	if text == "" {
		return nil
	}
	var matches []string
	for _, cat := range m.categories {
		for _, kw := range cat.keywords {
			if kw.MatchString(text) {
				matches = append(matches, cat.name)
				break
			}
		}
	}
	return matches
}

// MatchCountries returns every country name present as a whole-word,
// case-insensitive match in text.
func (m *KeywordMatcher) MatchCountries(text string) []string {
	if text == "" {
		return nil
	}
	var matches []string
	for _, c := range m.countries {
		if c.pattern.MatchString(text) {
			matches = append(matches, c.name)
		}
	}
	return matches
}

// ContainsWholeWord reports whether word occurs in text as a whole-word,
// case-insensitive match. Used to reject fuzzy candidates that only occur
// as substrings ("Chad" inside "Chadwick").
func ContainsWholeWord(text, word string) bool {
	if text == "" || word == "" {
		return false
	}
	return wholeWordPattern(word).MatchString(text)
}
