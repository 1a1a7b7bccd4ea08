package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// ErrHTMLConversion indicates HTML conversion failed.
var ErrHTMLConversion = errors.New("HTML conversion failed")

const mathJaxCDN = "https://cdn.jsdelivr.net/npm/mathjax@3/es5/tex-chtml.js"

// mathJaxConfig must agree with the delimiters mathRenderer writes.
const mathJaxConfig = `window.MathJax = {tex: {inlineMath: [['\\(', '\\)']], displayMath: [['\\[', '\\]']]}};`

// previewHead is the fixed <head> of every preview page. SetTitle and
// InjectStyle edit it after rendering.
var previewHead = strings.Join([]string{
	`<meta charset="utf-8">`,
	`<meta name="viewport" content="width=device-width, initial-scale=1">`,
	`<title>Document</title>`,
	`<script>` + mathJaxConfig + `</script>`,
	`<script defer src="` + mathJaxCDN + `"></script>`,
}, "\n")

// wrapPage places a rendered fragment in a standalone page.
func wrapPage(body []byte) string {
	var b strings.Builder
	b.Grow(len(body) + len(previewHead) + 64)
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n")
	b.WriteString(previewHead)
	b.WriteString("\n</head>\n<body>\n")
	b.Write(body)
	b.WriteString("</body>\n</html>")
	return b.String()
}

// HTMLConverter renders converted Markdown as a preview page.
type HTMLConverter interface {
	ToHTML(ctx context.Context, content string) (string, error)
}

// GoldmarkConverter renders preview pages with goldmark.
type GoldmarkConverter struct {
	md goldmark.Markdown
}

// NewGoldmarkConverter returns a converter that understands the Markdown
// this module emits: GFM, footnotes, $ math and fenced code.
func NewGoldmarkConverter() *GoldmarkConverter {
	return &GoldmarkConverter{md: goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			extension.Footnote,
			MathExtension,
			highlighting.NewHighlighting(
				highlighting.WithFormatOptions(chromahtml.WithClasses(true)),
			),
		),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		// Raw HTML stays escaped; math is escaped by mathRenderer.
		goldmark.WithRendererOptions(html.WithXHTML()),
	)}
}

// ToHTML renders content as a standalone page. goldmark has no context
// support, so rendering runs in a goroutine and ctx only bounds the wait.
func (c *GoldmarkConverter) ToHTML(ctx context.Context, content string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	type rendered struct {
		page string
		err  error
	}
	out := make(chan rendered, 1)

	go func() {
		var body bytes.Buffer
		if err := c.md.Convert([]byte(content), &body); err != nil {
			out <- rendered{err: fmt.Errorf("%w: %v", ErrHTMLConversion, err)}
			return
		}
		out <- rendered{page: wrapPage(body.Bytes())}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-out:
		return r.page, r.err
	}
}
