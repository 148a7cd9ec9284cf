package faq

import (
	"reflect"
	"strings"
	"testing"
)

func TestExtractQuestionsBasics(t *testing.T) {
	bodies := []string{
		"<p>What is your FOB rate to Vietnam? We ship monthly.</p>",
		"Can you send the price list?\nThanks,\nBob",
	}

	got := ExtractQuestions(bodies)
	want := []string{
		"what is your fob rate to vietnam?",
		"can you send the price list?",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ExtractQuestions = %v, want %v", got, want)
	}
}

func TestExtractQuestionsOrderAndDuplicates(t *testing.T) {
	bodies := []string{
		"What is the transit time? What is the demurrage charge?",
		"What is the transit time?",
	}

	got := ExtractQuestions(bodies)
	want := []string{
		"what is the transit time?",
		"what is the demurrage charge?",
		"what is the transit time?",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ExtractQuestions = %v, want %v (order preserved, duplicates kept)", got, want)
	}
}

func TestExtractQuestionsFilters(t *testing.T) {
	tests := []struct {
		name string
		body string
		kept bool
	}{
		{name: "statement without question mark", body: "we ship weekly to Rotterdam", kept: false},
		{name: "contains url", body: "have you seen https://example.test/rates maybe?", kept: false},
		{name: "contains www domain", body: "is www.example.test still down today?", kept: false},
		{name: "contains com suffix", body: "should we buy example.com this year?", kept: false},
		{name: "too few tokens", body: "really true?", kept: false},
		{name: "mostly digits", body: "40 20 4512 88?", kept: false},
		{name: "normal question", body: "what is the rate to Hamburg?", kept: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractQuestions([]string{tt.body})
			if kept := len(got) == 1; kept != tt.kept {
				t.Errorf("ExtractQuestions(%q) kept=%v, want kept=%v (got %v)", tt.body, kept, tt.kept, got)
			}
		})
	}
}

func TestQuestionLengthBoundaries(t *testing.T) {
	tests := []struct {
		name string
		q    string // already normalized form
		kept bool
	}{
		{name: "length 9 dropped", q: "is it ok?", kept: false},
		{name: "length 10 kept", q: "why is it?", kept: true},
		{name: "length 150 kept", q: "what is " + strings.Repeat("x", 141) + "?", kept: true},
		{name: "length 151 dropped", q: "what is " + strings.Repeat("x", 142) + "?", kept: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			switch len(tt.q) {
			case 9, 10, 150, 151:
			default:
				t.Fatalf("bad fixture length %d for %q", len(tt.q), tt.q)
			}
			if got := keepQuestion(tt.q); got != tt.kept {
				t.Errorf("keepQuestion(%q) = %v, want %v", tt.q, got, tt.kept)
			}
		})
	}
}

func TestQuestionLetterDensityBoundary(t *testing.T) {
	// Exactly 50% letters survives; just below does not.
	exactlyHalf := "abc def 123?" // 12 chars, 6 letters
	if !keepQuestion(exactlyHalf) {
		t.Errorf("keepQuestion(%q) = false, want true at exactly 50%% letters", exactlyHalf)
	}

	justBelow := "ab cde 1234?" // 12 chars, 5 letters
	if keepQuestion(justBelow) {
		t.Errorf("keepQuestion(%q) = true, want false below 50%% letters", justBelow)
	}
}

func TestExtractQuestionsEmptyInput(t *testing.T) {
	if got := ExtractQuestions(nil); len(got) != 0 {
		t.Errorf("ExtractQuestions(nil) = %v, want empty", got)
	}
	if got := ExtractQuestions([]string{"", "   "}); len(got) != 0 {
		t.Errorf("ExtractQuestions(blank bodies) = %v, want empty", got)
	}
}

func TestSplitSentences(t *testing.T) {
	got := splitSentences("First one? Second here\nthird line? tail")
	want := []string{"First one?", " Second here", "third line?", " tail"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("splitSentences = %q, want %q", got, want)
	}
}
