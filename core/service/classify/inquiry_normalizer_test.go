package classify

import "testing"

func TestStripMarkup(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "tags replaced by single space",
			in:   "<p>Hello</p><br/>world",
			want: " Hello  world",
		},
		{
			name: "attributes inside tag",
			in:   `<a href="https://example.com">link</a>`,
			want: " link ",
		},
		{
			name: "no entity decoding",
			in:   "rates &amp; surcharges",
			want: "rates &amp; surcharges",
		},
		{
			name: "plain text untouched",
			in:   "no markup here",
			want: "no markup here",
		},
		{
			name: "empty input",
			in:   "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripMarkup(tt.in); got != tt.want {
				t.Errorf("StripMarkup(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeSentence(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "collapses whitespace and lowercases",
			in:   "What   is\tthe \n ETA?",
			want: "what is the eta?",
		},
		{
			name: "strips leading and trailing junk",
			in:   "-- What is the rate? --",
			want: "what is the rate?",
		},
		{
			name: "keeps trailing question mark",
			in:   "  is this correct?  ",
			want: "is this correct?",
		},
		{
			name: "empty input",
			in:   "",
			want: "",
		},
		{
			name: "only junk",
			in:   "*** ---",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeSentence(tt.in); got != tt.want {
				t.Errorf("NormalizeSentence(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeSentenceDeterministic(t *testing.T) {
	in := " <odd>  Mixed   INPUT with junk!!  "
	first := NormalizeSentence(in)
	for i := 0; i < 5; i++ {
		if got := NormalizeSentence(in); got != first {
			t.Fatalf("NormalizeSentence not deterministic: %q vs %q", got, first)
		}
	}
}
