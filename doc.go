// Package latex2md rewrites LaTeX-flavored Markdown, typically pasted from
// a chat assistant or a PDF transcription, into Markdown whose math uses
// $...$ and $$...$$ delimiters.
//
// # Quick Start
//
// The package-level function uses the default profile:
//
//	md := latex2md.Convert(`The roots are \(x = \pm 1\).`)
//	// The roots are $x = \pm 1$.
//
// Conversion never fails. Input the rewriter does not recognize passes
// through unchanged.
//
// # Profiles and Stages
//
// A conversion is an ordered list of named stages. Two profiles exist:
//
//   - full (default): front matter removal, [2pt] breaks, bracket blocks,
//     \[ \] \( \) and environments, \big/\left de-sizing, paren-to-math,
//     comment removal, math cleanup, whitespace collapsing, heading demotion
//   - basic: the lighter rewriter without pt breaks, math cleanup or
//     heading demotion, plus the \x! thin-space fix
//
// Use options to choose a profile and edit it:
//
//	conv, err := latex2md.NewConverter(
//	    latex2md.WithProfile("basic"),
//	    latex2md.WithoutStages("whitespace"),
//	    latex2md.WithLineEndingNormalization(),
//	)
//	if err != nil {
//	    log.Fatal(err) // unknown profile or stage name
//	}
//	md := conv.Convert(input)
//
// # Front Matter
//
// ConvertDocument also returns the decoded YAML front matter that the
// front-matter stage removes:
//
//	res := conv.ConvertDocument(input)
//	title, _ := res.FrontMatter["title"].(string)
//
// # Preview
//
// Preview renders converted Markdown as a standalone HTML page that loads
// MathJax, so the result can be checked in a browser.
//
// # Concurrency
//
// A Converter is immutable after construction and safe for concurrent use.
package latex2md
