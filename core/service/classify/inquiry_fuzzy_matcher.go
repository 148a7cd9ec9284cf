package classify

import (
	"strings"
	"unicode"
)

// FuzzyMatcher is the second-pass approximate matcher. For each choice it
// slides a window of the same word count over the text and scores the best
// window by normalized edit distance (0 = identical, 1 = disjoint).
//
// Two knobs mirror the first implementation of this matcher:
//   - threshold: search breadth; windows scoring above it are not considered
//     candidates at all.
//   - maxScore: acceptance cutoff; only candidates at or below it are kept.
//
// This is a weak, best-effort signal. It never fails: pathological input
// degrades to an empty result.
type FuzzyMatcher struct{}

// NewFuzzyMatcher creates a FuzzyMatcher.
func NewFuzzyMatcher() *FuzzyMatcher {
	return &FuzzyMatcher{}
}

// Match returns the choices whose best window score is within both the
// search threshold and the acceptance cutoff, in choice-list order.
func (m *FuzzyMatcher) Match(text string, choices []string, threshold, maxScore float64) (matched []string) {
	// Fuzzy fallback must never abort classification.
	defer func() {
		if r := recover(); r != nil {
			matched = nil
		}
	}()

	words := tokenizeWords(text)
	if len(words) == 0 || len(choices) == 0 {
		return nil
	}

	for _, choice := range choices {
		choiceWords := tokenizeWords(choice)
		if len(choiceWords) == 0 {
			continue
		}
		score := bestWindowScore(words, choiceWords)
		if score <= threshold && score <= maxScore {
			matched = append(matched, choice)
		}
	}
	return matched
}

// tokenizeWords lower-cases and splits on any non-alphanumeric rune.
func tokenizeWords(s string) []string {
	return strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// bestWindowScore returns the lowest normalized edit distance between the
// choice and any window of len(choiceWords) consecutive text words.
func bestWindowScore(words, choiceWords []string) float64 {
	n := len(choiceWords)
	if len(words) < n {
		return normalizedDistance(strings.Join(words, " "), strings.Join(choiceWords, " "))
	}

	choice := strings.Join(choiceWords, " ")
	best := 1.0
	for i := 0; i+n <= len(words); i++ {
		window := strings.Join(words[i:i+n], " ")
		if d := normalizedDistance(window, choice); d < best {
			best = d
			if best == 0 {
				break
			}
		}
	}
	return best
}

// normalizedDistance is the Levenshtein distance divided by the longer
// string's length, clamped to [0, 1].
func normalizedDistance(a, b string) float64 {
	if a == b {
		return 0
	}
	longest := len(a)
	if len(b) > longest {
		longest = len(b)
	}
	if longest == 0 {
		return 0
	}
	return float64(levenshtein(a, b)) / float64(longest)
}

// levenshtein computes the edit distance with a single-row DP table.
func levenshtein(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	curr := make([]int, len(b)+1)

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = minInt(curr[j-1]+1, minInt(prev[j]+1, prev[j-1]+cost))
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
