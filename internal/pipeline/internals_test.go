package pipeline

import (
	"testing"
)

// ---------------------------------------------------------------------------
// TestCleanMathInternals - transcription artifacts inside math
// ---------------------------------------------------------------------------

func TestCleanMathInternals(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"semicolon relation", "$a;<;b$", "$a < b$"},
		{"lone semicolon", "$a ; b$", "$a b$"},
		{"comma before close", "$f(x,)$", "$f(x)$"},
		{"comma before differential", `$\int f(x),dx$`, `$\int f(x) dx$`},
		{"comma before letter", "$x,y$", "$x y$"},
		{"comma before command", `$a,\beta$`, `$a \beta$`},
		{"plus comma", "$a+,b$", "$a+ b$"},
		{"command bang before paren", `$\alpha!(x)$`, `$\alpha\ (x)$`},
		{"command bang before frac", `$\alpha!\frac{1}{2}$`, `$\alpha\\frac{1}{2}$`},
		{"bang before command", `$a!\beta$`, `$a\beta$`},
		{"comma before paren", "$f,(x)$", "$f (x)$"},
		{"bang minus bang", "$a !-! b$", "$a - b$"},
		{"bang before paren", "$S_0!(x)$", "$S_0 (x)$"},
		{"stray bang", "$x = ! y$", "$x = y$"},
		{"display block", "$$\na;<;b\n$$", "$$\na < b\n$$"},
		{"prose untouched", "a ; b, c", "a ; b, c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := CleanMathInternals(tt.input); got != tt.want {
				t.Errorf("CleanMathInternals(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestFixThinSpaces - \x! before sizing commands
// ---------------------------------------------------------------------------

func TestFixThinSpaces(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"single-letter command", `$\a!\Big($`, `$\a\!\Big($`},
		{"before left", `$\x!\left($`, `$\x\!\left($`},
		{"longer command untouched", `$\alpha!\left x$`, `$\alpha!\left x$`},
		{"outside math untouched", `\a!\big(`, `\a!\big(`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := FixThinSpaces(tt.input); got != tt.want {
				t.Errorf("FixThinSpaces(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
