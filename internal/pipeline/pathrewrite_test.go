package pipeline

// Notes:
// - Tests RelinkAssets through its public API, plus the small path helpers
// - Directories are built with filepath.Join from t.TempDir so the
//   expectations hold on every OS

import (
	"path/filepath"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestRelinkAssets - paths resolved from the preview directory
// ---------------------------------------------------------------------------

func TestRelinkAssets(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	sourceDir := filepath.Join(root, "notes")
	previewDir := filepath.Join(root, "out")

	tests := []struct {
		name         string
		html         string
		wantContains []string
	}{
		{
			name:         "relative image",
			html:         `<img src="img/fig.png">`,
			wantContains: []string{`src="../notes/img/fig.png"`},
		},
		{
			name:         "dot slash image",
			html:         `<img src="./fig.png">`,
			wantContains: []string{`src="../notes/fig.png"`},
		},
		{
			name:         "relative link keeps fragment",
			html:         `<a href="ch2.md#proof">Proof</a>`,
			wantContains: []string{`href="../notes/ch2.md#proof"`},
		},
		{
			name:         "anchor unchanged",
			html:         `<a href="#eq1">eq</a>`,
			wantContains: []string{`href="#eq1"`},
		},
		{
			name:         "external link unchanged",
			html:         `<a href="https://example.com">x</a>`,
			wantContains: []string{`href="https://example.com"`},
		},
		{
			name:         "data URI unchanged",
			html:         `<img src="data:image/png;base64,AAA">`,
			wantContains: []string{`src="data:image/png;base64,AAA"`},
		},
		{
			name:         "absolute path unchanged",
			html:         `<img src="/abs/fig.png">`,
			wantContains: []string{`src="/abs/fig.png"`},
		},
		{
			name:         "traversal left alone",
			html:         `<img src="../../etc/passwd">`,
			wantContains: []string{`src="../../etc/passwd"`},
		},
		{
			name:         "script not rewritten",
			html:         `<script src="./app.js"></script>`,
			wantContains: []string{`src="./app.js"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := RelinkAssets(tt.html, sourceDir, previewDir)
			if err != nil {
				t.Fatalf("RelinkAssets() error = %v", err)
			}
			for _, want := range tt.wantContains {
				if !strings.Contains(got, want) {
					t.Errorf("RelinkAssets() = %q, want to contain %q", got, want)
				}
			}
		})
	}
}

func TestRelinkAssets_NoOp(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	page := `<img src="fig.png">`

	tests := []struct {
		name       string
		sourceDir  string
		previewDir string
	}{
		{"same directory", dir, dir},
		{"no source dir", "", dir},
		{"no preview dir", dir, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := RelinkAssets(page, tt.sourceDir, tt.previewDir)
			if err != nil {
				t.Fatal(err)
			}
			if got != page {
				t.Errorf("RelinkAssets() = %q, want unchanged", got)
			}
		})
	}
}

func TestRelinkAssets_FullDocument(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	page := "<!DOCTYPE html><html><head><title>T</title></head><body><img src=\"a.png\"></body></html>"

	got, err := RelinkAssets(page, filepath.Join(root, "src"), root)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got, `src="src/a.png"`) {
		t.Errorf("image not relinked: %q", got)
	}
	if !strings.Contains(strings.ToLower(got), "<!doctype html>") {
		t.Errorf("doctype lost: %q", got)
	}
}

func TestIsRelativePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want bool
	}{
		{"img/a.png", true},
		{"./a.png", true},
		{"../a.png", true},
		{"", false},
		{"#top", false},
		{"//cdn.example.com/a.png", false},
		{"https://example.com/a.png", false},
		{"mailto:someone@example.com", false},
		{"/abs/a.png", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()
			if got := isRelativePath(tt.path); got != tt.want {
				t.Errorf("isRelativePath(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestIsPathUnderDir(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "docs")

	if !isPathUnderDir(filepath.Join(dir, "a", "b.png"), dir) {
		t.Error("child path should be under dir")
	}
	if !isPathUnderDir(dir, dir) {
		t.Error("dir itself should count as under dir")
	}
	if isPathUnderDir(dir+"-other", dir) {
		t.Error("sibling with shared prefix should not be under dir")
	}
	if isPathUnderDir(filepath.Join(dir, "..", "x"), dir) {
		t.Error("parent traversal should not be under dir")
	}
}
