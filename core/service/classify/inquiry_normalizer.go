// Package classify implements the layered inquiry classification pipeline:
// markup stripping, whole-word keyword matching over a controlled vocabulary,
// and a best-effort fuzzy fallback for categories and countries.
package classify

import (
	"regexp"
	"strings"
)

var (
	markupTagRe     = regexp.MustCompile(`<[^>]*>`)
	whitespaceRe    = regexp.MustCompile(`\s+`)
	leadingJunkRe   = regexp.MustCompile(`^[^a-zA-Z0-9?]+`)
	trailingJunkRe  = regexp.MustCompile(`[^a-zA-Z0-9?]+$`)
)

// StripMarkup removes every markup tag, replacing each with a single space
// so adjacent words do not fuse. Entities are left as-is.
func StripMarkup(text string) string {
	return markupTagRe.ReplaceAllString(text, " ")
}

// NormalizeSentence collapses whitespace runs to single spaces, trims,
// strips leading/trailing characters that are neither alphanumeric nor '?',
// and lower-cases. Pure and deterministic.
func NormalizeSentence(text string) string {
	s := whitespaceRe.ReplaceAllString(text, " ")
	s = strings.TrimSpace(s)
	s = leadingJunkRe.ReplaceAllString(s, "")
	s = trailingJunkRe.ReplaceAllString(s, "")
	return strings.ToLower(s)
}
