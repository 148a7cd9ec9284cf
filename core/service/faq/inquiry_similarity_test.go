package faq

import "testing"

func TestSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want float64
	}{
		{name: "identical", a: "what is the eta?", b: "what is the eta?", want: 1},
		{name: "identical ignoring whitespace", a: "a b", b: "ab", want: 1},
		{name: "both empty", a: "", b: "", want: 1},
		{name: "one too short", a: "a", b: "something", want: 0},
		{name: "fully disjoint", a: "abcd", b: "wxyz", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Similarity(tt.a, tt.b); got != tt.want {
				t.Errorf("Similarity(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestSimilaritySymmetric(t *testing.T) {
	a := "what is the eta for my shipment?"
	b := "what's the eta on my shipment?"
	if Similarity(a, b) != Similarity(b, a) {
		t.Errorf("similarity is not symmetric for %q / %q", a, b)
	}
}

func TestSimilarityNearDuplicates(t *testing.T) {
	// The pair from the FAQ grouping requirement: near-identical phrasings
	// must clear the clustering threshold, unrelated questions must not.
	near := Similarity("what is the eta for my shipment?", "what's the eta on my shipment?")
	if near < 0.3 {
		t.Errorf("near-duplicate similarity = %v, want >= 0.3", near)
	}

	far := Similarity("what is the eta?", "do you accept returns?")
	if far >= 0.3 {
		t.Errorf("unrelated similarity = %v, want < 0.3", far)
	}
}
