package classify

import (
	"reflect"
	"testing"
)

func TestFuzzyMatch(t *testing.T) {
	m := NewFuzzyMatcher()

	tests := []struct {
		name      string
		text      string
		choices   []string
		threshold float64
		maxScore  float64
		want      []string
	}{
		{
			name:      "near miss within cutoff",
			text:      "please confirm shipment to Vietnm next week",
			choices:   []string{"Vietnam"},
			threshold: 0.4,
			maxScore:  0.25,
			want:      []string{"Vietnam"},
		},
		{
			name:      "exact word scores zero",
			text:      "vietnam routing requested",
			choices:   []string{"Vietnam"},
			threshold: 0.4,
			maxScore:  0.25,
			want:      []string{"Vietnam"},
		},
		{
			name:      "unrelated text matches nothing",
			text:      "completely different subject",
			choices:   []string{"Vietnam", "Germany"},
			threshold: 0.4,
			maxScore:  0.25,
			want:      nil,
		},
		{
			name:      "acceptance cutoff stricter than threshold",
			text:      "vitnm",
			choices:   []string{"Vietnam"},
			threshold: 0.4,
			maxScore:  0.25,
			// distance 2/7 > 0.25: searched but not accepted
			want: nil,
		},
		{
			name:      "multi word choice uses matching window",
			text:      "rates to the united sttes please",
			choices:   []string{"United States"},
			threshold: 0.4,
			maxScore:  0.25,
			want:      []string{"United States"},
		},
		{
			name:      "empty text",
			text:      "",
			choices:   []string{"Vietnam"},
			threshold: 0.8,
			maxScore:  0.5,
			want:      nil,
		},
		{
			name:      "empty choices",
			text:      "some text",
			choices:   nil,
			threshold: 0.8,
			maxScore:  0.5,
			want:      nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := m.Match(tt.text, tt.choices, tt.threshold, tt.maxScore)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Match(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestNormalizedDistance(t *testing.T) {
	tests := []struct {
		a, b string
		want float64
	}{
		{"vietnam", "vietnam", 0},
		{"", "", 0},
		{"abc", "", 1},
		{"vietnam", "vietnm", 1.0 / 7.0},
	}

	for _, tt := range tests {
		if got := normalizedDistance(tt.a, tt.b); got != tt.want {
			t.Errorf("normalizedDistance(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"abc", "", 3},
		{"", "abc", 3},
		{"kitten", "sitting", 3},
		{"vietnam", "vietnm", 1},
		{"same", "same", 0},
	}

	for _, tt := range tests {
		if got := levenshtein(tt.a, tt.b); got != tt.want {
			t.Errorf("levenshtein(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}
