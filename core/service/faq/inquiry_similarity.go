// Package faq extracts candidate customer questions from inquiry bodies and
// groups near-duplicates into ranked clusters for the analytics FAQ view.
package faq

import "strings"

// Similarity returns the Sørensen–Dice coefficient over character bigrams
// of the two strings with whitespace removed: 0 means disjoint, 1 identical.
func Similarity(a, b string) float64 {
	a = removeWhitespace(a)
	b = removeWhitespace(b)

	if a == b {
		return 1
	}
	if len(a) < 2 || len(b) < 2 {
		return 0
	}

	bigrams := make(map[string]int, len(a)-1)
	for i := 0; i < len(a)-1; i++ {
		bigrams[a[i:i+2]]++
	}

	matches := 0
	for i := 0; i < len(b)-1; i++ {
		bg := b[i : i+2]
		if bigrams[bg] > 0 {
			bigrams[bg]--
			matches++
		}
	}

	return 2 * float64(matches) / float64(len(a)+len(b)-2)
}

func removeWhitespace(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for _, r := range s {
		switch r {
		case ' ', '\t', '\n', '\r', '\v', '\f':
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
