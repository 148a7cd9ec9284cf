package domain

import "github.com/google/uuid"

// ClassificationResult holds the tags produced for one inquiry.
// It has no lifecycle of its own: it is recomputed on demand and the caller
// overwrites any previously persisted tags via upsert.
type ClassificationResult struct {
	Categories []string `json:"categories"`
	Countries  []string `json:"countries"`
}

// IsEmpty reports whether classification produced no tags at all.
func (r *ClassificationResult) IsEmpty() bool {
	return len(r.Categories) == 0 && len(r.Countries) == 0
}

// CategoryTag is one row of the inquiry_categories association table.
type CategoryTag struct {
	InquiryID uuid.UUID
	Category  string
}

// CountryTag is one row of the inquiry_countries association table.
type CountryTag struct {
	InquiryID uuid.UUID
	Country   string
}

// Vocabulary is the controlled vocabulary driving classification.
// It is constructed once at startup and treated as immutable afterwards;
// the classification pipeline only ever reads it. Adding a category or a
// country is a data change, never a pipeline change.
type Vocabulary struct {
	// Categories maps a category name to its keyword list. Keyword phrases
	// may contain spaces and punctuation ("freight collect", "p&l").
	Categories map[string][]string

	// CategoryNames preserves a stable iteration order over Categories.
	CategoryNames []string

	// Countries is the canonical English country display-name list.
	Countries []string
}

// Validate reports vocabulary misconfiguration. An invalid vocabulary is
// not fatal: classification degrades to empty results, but the caller
// should log a configuration warning.
func (v *Vocabulary) Validate() []string {
	var warnings []string
	if len(v.Categories) == 0 {
		warnings = append(warnings, "vocabulary has no categories")
	}
	for _, name := range v.CategoryNames {
		if len(v.Categories[name]) == 0 {
			warnings = append(warnings, "category has no keywords: "+name)
		}
	}
	if len(v.Countries) == 0 {
		warnings = append(warnings, "vocabulary has no countries")
	}
	return warnings
}
