package pipeline

import (
	"strings"
	"testing"
)

func TestSanitizeCSS(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty string", "", ""},
		{"no escape needed", "body { color: red; }", "body { color: red; }"},
		{"escapes style close", "</style>", `<\/style>`},
		{"multiple occurrences", "</a></b>", `<\/a><\/b>`},
		{"case variation", "</STYLE>", `<\/STYLE>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := sanitizeCSS(tt.input); got != tt.expected {
				t.Errorf("sanitizeCSS(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestInjectStyle - insertion point selection
// ---------------------------------------------------------------------------

func TestInjectStyle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		html string
		css  string
		want string
	}{
		{
			name: "before head close",
			html: "<html><head></head><body></body></html>",
			css:  "p{}",
			want: "<html><head><style>p{}</style></head><body></body></html>",
		},
		{
			name: "after body open",
			html: `<body class="x"><p>hi</p></body>`,
			css:  "p{}",
			want: `<body class="x"><style>p{}</style><p>hi</p></body>`,
		},
		{
			name: "prepended to fragment",
			html: "<p>hi</p>",
			css:  "p{}",
			want: "<style>p{}</style><p>hi</p>",
		},
		{
			name: "empty css",
			html: "<p>hi</p>",
			css:  "",
			want: "<p>hi</p>",
		},
		{
			name: "uppercase head",
			html: "<HEAD></HEAD>",
			css:  "a{}",
			want: "<HEAD><style>a{}</style></HEAD>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := InjectStyle(tt.html, tt.css); got != tt.want {
				t.Errorf("InjectStyle() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSetTitle(t *testing.T) {
	t.Parallel()

	page := "<head><title>Document</title></head>"

	if got := SetTitle(page, "Notes <1>"); got != "<head><title>Notes &lt;1&gt;</title></head>" {
		t.Errorf("SetTitle() = %q", got)
	}
	if got := SetTitle(page, ""); got != page {
		t.Errorf("SetTitle(empty) = %q, want unchanged", got)
	}
	if got := SetTitle("<p>no title</p>", "x"); got != "<p>no title</p>" {
		t.Errorf("SetTitle(no title element) = %q, want unchanged", got)
	}
}

func TestHighlightCSS(t *testing.T) {
	t.Parallel()

	for _, style := range []string{"", "monokai", "no-such-style"} {
		css, err := HighlightCSS(style)
		if err != nil {
			t.Fatalf("HighlightCSS(%q) error = %v", style, err)
		}
		if !strings.Contains(css, ".chroma") {
			t.Errorf("HighlightCSS(%q) missing .chroma rules", style)
		}
	}
}
