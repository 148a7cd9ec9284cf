package faq

import (
	"regexp"
	"strings"

	"inquiry_server/core/service/classify"
)

// Extraction filter bounds. A candidate outside these is noise, not a FAQ.
const (
	minQuestionLength = 10
	maxQuestionLength = 150
	minQuestionTokens = 3
	minLetterRatio    = 0.5
)

var urlOrDomainRe = regexp.MustCompile(`https?://|www\.|\.com|\.net|\.org|\.io`)

// ExtractQuestions pulls normalized candidate questions out of inquiry
// bodies, in encounter order (body order, then within-body order).
// Duplicates are kept; clustering aggregates them later.
func ExtractQuestions(bodies []string) []string {
	var questions []string
	for _, body := range bodies {
		plain := classify.StripMarkup(body)
		for _, unit := range splitSentences(plain) {
			unit = strings.TrimSpace(unit)
			if !strings.HasSuffix(unit, "?") {
				continue
			}
			normalized := classify.NormalizeSentence(unit)
			if !keepQuestion(normalized) {
				continue
			}
			questions = append(questions, normalized)
		}
	}
	return questions
}

// splitSentences cuts text into sentence-ish units: a cut immediately after
// every '?' and a cut at every newline run.
func splitSentences(text string) []string {
	var units []string
	var sb strings.Builder
	flush := func() {
		if sb.Len() > 0 {
			units = append(units, sb.String())
			sb.Reset()
		}
	}
	for _, r := range text {
		switch r {
		case '?':
			sb.WriteRune(r)
			flush()
		case '\n', '\r':
			flush()
		default:
			sb.WriteRune(r)
		}
	}
	flush()
	return units
}

// keepQuestion applies the exclusion filters, in order, to a normalized
// candidate. Letter ratio uses >= so a string with exactly half letters
// survives.
func keepQuestion(q string) bool {
	if urlOrDomainRe.MatchString(q) {
		return false
	}
	if len(q) < minQuestionLength || len(q) > maxQuestionLength {
		return false
	}
	if len(strings.Fields(q)) < minQuestionTokens {
		return false
	}

	letters := 0
	for _, r := range q {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			letters++
		}
	}
	return float64(letters)/float64(len(q)) >= minLetterRatio
}
