package classify

import (
	"reflect"
	"testing"

	"inquiry_server/core/domain"
)

func testVocabulary() *domain.Vocabulary {
	return &domain.Vocabulary{
		CategoryNames: []string{"sales", "accounting"},
		Categories: map[string][]string{
			"sales":      {"port", "freight collect", "fob"},
			"accounting": {"invoice", "p&l"},
		},
		Countries: []string{"Chad", "Vietnam", "United States"},
	}
}

func TestMatchCategoriesWholeWord(t *testing.T) {
	m := NewKeywordMatcher(testVocabulary())

	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "whole word matches",
			text: "arriving at the port tomorrow",
			want: []string{"sales"},
		},
		{
			name: "substring does not match",
			text: "please review my portfolio",
			want: nil,
		},
		{
			name: "case insensitive",
			text: "FOB terms requested",
			want: []string{"sales"},
		},
		{
			name: "multi-word phrase matches contiguously",
			text: "terms are freight collect for this lane",
			want: []string{"sales"},
		},
		{
			name: "multiple categories",
			text: "invoice attached for the fob order",
			want: []string{"sales", "accounting"},
		},
		{
			name: "empty text",
			text: "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := m.MatchCategories(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("MatchCategories(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestMatchCountriesWholeWord(t *testing.T) {
	m := NewKeywordMatcher(testVocabulary())

	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "whole word country",
			text: "shipping to Vietnam next week",
			want: []string{"Vietnam"},
		},
		{
			name: "country inside a longer word is rejected",
			text: "regards, Mr. Chadwick",
			want: nil,
		},
		{
			name: "case insensitive",
			text: "exporting to VIETNAM",
			want: []string{"Vietnam"},
		},
		{
			name: "multi-word country",
			text: "customers in the United States ask about rates",
			want: []string{"United States"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := m.MatchCountries(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("MatchCountries(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestEmptyVocabularyNeverMatches(t *testing.T) {
	m := NewKeywordMatcher(&domain.Vocabulary{})
	if got := m.MatchCategories("invoice for the port shipment"); got != nil {
		t.Errorf("MatchCategories on empty vocabulary = %v, want nil", got)
	}
	if got := m.MatchCountries("shipping to Vietnam"); got != nil {
		t.Errorf("MatchCountries on empty vocabulary = %v, want nil", got)
	}
}

func TestContainsWholeWord(t *testing.T) {
	tests := []struct {
		text string
		word string
		want bool
	}{
		{"going to Chad tomorrow", "Chad", true},
		{"regards Chadwick", "Chad", false},
		{"VIETNAM bound", "Vietnam", true},
		{"", "Chad", false},
		{"some text", "", false},
	}

	for _, tt := range tests {
		if got := ContainsWholeWord(tt.text, tt.word); got != tt.want {
			t.Errorf("ContainsWholeWord(%q, %q) = %v, want %v", tt.text, tt.word, got, tt.want)
		}
	}
}
