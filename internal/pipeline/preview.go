package pipeline

import (
	"context"
	"fmt"
)

// PreviewOptions configures RenderPreview.
type PreviewOptions struct {
	Title          string // document <title>; empty keeps the default
	HighlightStyle string // chroma style for code blocks
	Stylesheet     string // page CSS injected before the highlight CSS
	SourceDir      string // directory the Markdown came from
	PreviewDir     string // directory the preview is written to
}

// RenderPreview renders converted Markdown as a standalone HTML page with
// MathJax, page and highlight CSS, and asset links resolved from
// opts.PreviewDir.
func RenderPreview(ctx context.Context, conv HTMLConverter, markdown string, opts PreviewOptions) (string, error) {
	page, err := conv.ToHTML(ctx, markdown)
	if err != nil {
		return "", err
	}

	css, err := HighlightCSS(opts.HighlightStyle)
	if err != nil {
		return "", err
	}
	page = SetTitle(page, opts.Title)
	page = InjectStyle(page, opts.Stylesheet)
	page = InjectStyle(page, css)

	page, err = RelinkAssets(page, opts.SourceDir, opts.PreviewDir)
	if err != nil {
		return "", fmt.Errorf("%w: relinking assets: %v", ErrHTMLConversion, err)
	}
	return page, nil
}
