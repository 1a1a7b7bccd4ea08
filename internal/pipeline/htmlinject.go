package pipeline

import (
	"errors"
	"fmt"
	"html"
	"strings"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/styles"
)

// ErrHighlightCSS indicates the syntax highlighting stylesheet could not be generated.
var ErrHighlightCSS = errors.New("highlight stylesheet generation failed")

// DefaultHighlightStyle is the chroma style used when none is configured.
const DefaultHighlightStyle = "github"

// HighlightCSS returns the stylesheet for code blocks rendered with CSS
// classes. Unknown style names fall back to chroma's default style.
func HighlightCSS(style string) (string, error) {
	if style == "" {
		style = DefaultHighlightStyle
	}
	var buf strings.Builder
	formatter := chromahtml.New(chromahtml.WithClasses(true))
	if err := formatter.WriteCSS(&buf, styles.Get(style)); err != nil {
		return "", fmt.Errorf("%w: %v", ErrHighlightCSS, err)
	}
	return buf.String(), nil
}

// InjectStyle inserts a <style> block into an HTML document.
// Tries </head> first, then <body>, then prepends.
func InjectStyle(htmlContent, css string) string {
	if css == "" {
		return htmlContent
	}

	styleBlock := "<style>" + sanitizeCSS(css) + "</style>"
	lower := strings.ToLower(htmlContent)

	if idx := strings.Index(lower, "</head>"); idx != -1 {
		return htmlContent[:idx] + styleBlock + htmlContent[idx:]
	}
	if idx := strings.Index(lower, "<body"); idx != -1 {
		if closeIdx := strings.Index(htmlContent[idx:], ">"); closeIdx != -1 {
			pos := idx + closeIdx + 1
			return htmlContent[:pos] + styleBlock + htmlContent[pos:]
		}
	}
	return styleBlock + htmlContent
}

// sanitizeCSS escapes </ so the stylesheet cannot close its <style> element.
func sanitizeCSS(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}

// SetTitle replaces the text of the document's first <title> element.
// Documents without one are returned unchanged.
func SetTitle(htmlContent, title string) string {
	if title == "" {
		return htmlContent
	}
	lower := strings.ToLower(htmlContent)
	open := strings.Index(lower, "<title>")
	if open == -1 {
		return htmlContent
	}
	start := open + len("<title>")
	end := strings.Index(lower[start:], "</title>")
	if end == -1 {
		return htmlContent
	}
	return htmlContent[:start] + html.EscapeString(title) + htmlContent[start+end:]
}
