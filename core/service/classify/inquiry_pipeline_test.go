package classify

import (
	"reflect"
	"testing"

	"inquiry_server/core/domain"
)

func TestClassifyEndToEnd(t *testing.T) {
	p := NewPipeline(DefaultVocabulary(), nil)

	result := p.Classify(
		"Container quote",
		"<p>Hi, what is your FOB price for 20GP containers to Vietnam?</p>",
	)

	if !contains(result.Categories, "sales") {
		t.Errorf("categories = %v, want to include %q", result.Categories, "sales")
	}
	if !contains(result.Countries, "Vietnam") {
		t.Errorf("countries = %v, want to include %q", result.Countries, "Vietnam")
	}
}

func TestClassifyIdempotent(t *testing.T) {
	p := NewPipeline(DefaultVocabulary(), nil)

	subject := "RFQ: reefer rates to Germany"
	body := "<div>We need a freight quote for reefer containers. Also invoice terms?</div>"

	first := p.Classify(subject, body)
	for i := 0; i < 3; i++ {
		got := p.Classify(subject, body)
		if !reflect.DeepEqual(got, first) {
			t.Fatalf("classify run %d = %+v, want %+v", i, got, first)
		}
	}
}

func TestClassifyCategoryShortCircuit(t *testing.T) {
	// When the keyword pass finds a category, the fuzzy fallback must not
	// change the result: with and without fuzzy enabled the output is equal.
	vocab := testVocabulary()

	withFuzzy := NewPipeline(vocab, DefaultPipelineConfig())
	noFuzzy := NewPipeline(vocab, &PipelineConfig{EnableFuzzyFallback: false})

	subject := "Invoice overdue"
	body := "the fob invoice from last month is overdue"

	a := withFuzzy.Classify(subject, body)
	b := noFuzzy.Classify(subject, body)

	if len(a.Categories) == 0 {
		t.Fatal("expected keyword pass to find categories")
	}
	if !reflect.DeepEqual(a.Categories, b.Categories) {
		t.Errorf("fuzzy fallback altered keyword result: %v vs %v", a.Categories, b.Categories)
	}
}

func TestClassifyWholeWordCountryInvariant(t *testing.T) {
	p := NewPipeline(DefaultVocabulary(), nil)

	tests := []struct {
		name    string
		subject string
		body    string
		exclude string
	}{
		{
			name:    "country name embedded in surname",
			subject: "Introduction",
			body:    "My name is Tom Chadwick, I run a trucking company.",
			exclude: "Chad",
		},
		{
			name:    "country name embedded in word",
			subject: "Question",
			body:    "We are Indiana-based importers.", // must not tag India
			exclude: "India",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := p.Classify(tt.subject, tt.body)
			if contains(result.Countries, tt.exclude) {
				t.Errorf("countries = %v, must not include %q", result.Countries, tt.exclude)
			}
			for _, c := range result.Countries {
				if !ContainsWholeWord(tt.subject+" "+StripMarkup(tt.body), c) {
					t.Errorf("country %q tagged without a whole-word occurrence", c)
				}
			}
		})
	}
}

func TestClassifyEmptyInput(t *testing.T) {
	p := NewPipeline(DefaultVocabulary(), nil)

	result := p.Classify("", "")
	if len(result.Categories) != 0 || len(result.Countries) != 0 {
		t.Errorf("classify of empty input = %+v, want empty sets", result)
	}
	if result.Categories == nil || result.Countries == nil {
		t.Error("result sets must be empty, not nil")
	}
}

func TestClassifyEmptyVocabulary(t *testing.T) {
	p := NewPipeline(&domain.Vocabulary{}, nil)

	result := p.Classify("Invoice", "invoice for shipment to Vietnam")
	if len(result.Categories) != 0 || len(result.Countries) != 0 {
		t.Errorf("classify with empty vocabulary = %+v, want empty sets", result)
	}
}

func TestClassifyStripsBodyMarkupOnly(t *testing.T) {
	vocab := &domain.Vocabulary{
		CategoryNames: []string{"sales"},
		Categories:    map[string][]string{"sales": {"quote"}},
	}
	p := NewPipeline(vocab, nil)

	// The keyword is only reachable once tags are stripped from the body.
	result := p.Classify("hello", "<span>quote</span>")
	if !contains(result.Categories, "sales") {
		t.Errorf("categories = %v, want [sales]", result.Categories)
	}
}

func TestVocabularyValidate(t *testing.T) {
	empty := &domain.Vocabulary{}
	if warnings := empty.Validate(); len(warnings) == 0 {
		t.Error("empty vocabulary should produce warnings")
	}

	if warnings := DefaultVocabulary().Validate(); len(warnings) != 0 {
		t.Errorf("default vocabulary produced warnings: %v", warnings)
	}
}

func contains(values []string, want string) bool {
	for _, v := range values {
		if v == want {
			return true
		}
	}
	return false
}
