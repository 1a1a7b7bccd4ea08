package pipeline

import (
	"regexp"
	"strings"
)

// displayEnvironments are the LaTeX environments rewritten to display math.
// The environment name is dropped from the output.
var displayEnvironments = []string{
	"equation", "equation*",
	"align", "align*",
	"gather", "gather*",
	"eqnarray", "eqnarray*",
	"displaymath",
}

// sizeCommand matches \big \Big \bigg \Bigg and their l, r, gl, gr variants.
const sizeCommand = `\\(?:big|Big|bigg|Bigg)(?:gl|gr|l|r)?\s*`

var (
	// [2pt], [ 12 PT ]
	ptBreak = regexp.MustCompile(`(?i)\[\s*\d+\s*pt\s*\]`)

	// [ alone on a line ... ] alone on a line
	multilineBracketBlock = regexp.MustCompile(`(?ms)^\s*\[\s*\n(.*?)\n\s*\]\s*$`)

	// [ ... ] as the whole line
	singleLineBracketBlock = regexp.MustCompile(`(?m)^\s*\[\s*(.+?)\s*\]\s*$`)

	// \[ ... \] and \( ... \)
	latexDisplayDelims = regexp.MustCompile(`(?s)\\\[\s*(.*?)\s*\\\]`)
	latexInlineDelims  = regexp.MustCompile(`(?s)\\\((.+?)\\\)`)

	environmentPatterns = compileEnvironmentPatterns(displayEnvironments)

	// Sizing commands and \left/\right pairs, each mapped to a plain paren
	desizeRules = []struct {
		re          *regexp.Regexp
		replacement string
	}{
		{regexp.MustCompile(sizeCommand + `\{`), "("},
		{regexp.MustCompile(sizeCommand + `\}`), ")"},
		{regexp.MustCompile(sizeCommand + `\(`), "("},
		{regexp.MustCompile(sizeCommand + `\)`), ")"},
		{regexp.MustCompile(`\\left\s*\(`), "("},
		{regexp.MustCompile(`\\right\s*\)`), ")"},
		{regexp.MustCompile(`\\left\s*\{`), "("},
		{regexp.MustCompile(`\\right\s*\}`), ")"},
	}
)

func compileEnvironmentPatterns(envs []string) []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, len(envs))
	for i, env := range envs {
		name := regexp.QuoteMeta(env)
		patterns[i] = regexp.MustCompile(`(?s)\\begin\{` + name + `\}\s*(.*?)\s*\\end\{` + name + `\}`)
	}
	return patterns
}

// ReplacePtBreaks turns spacing markers like [2pt] into a forced line break.
func ReplacePtBreaks(content string) string {
	return ptBreak.ReplaceAllLiteralString(content, `\\`)
}

// ConvertBracketBlocks rewrites bare square-bracket blocks as display math.
// Matching is line based: the first ] alone on a line closes the block.
func ConvertBracketBlocks(content string) string {
	content = replaceSubmatchFunc(multilineBracketBlock, content, func(m []string) string {
		return displayBlock(strings.Trim(m[1], "\n"))
	})
	return replaceSubmatchFunc(singleLineBracketBlock, content, func(m []string) string {
		return displayBlock(m[1])
	})
}

// ConvertLatexDelimiters rewrites \[..\], \(..\) and display environments.
func ConvertLatexDelimiters(content string) string {
	content = replaceSubmatchFunc(latexDisplayDelims, content, func(m []string) string {
		return displayBlock(m[1])
	})
	content = replaceSubmatchFunc(latexInlineDelims, content, func(m []string) string {
		return "$" + m[1] + "$"
	})
	for _, re := range environmentPatterns {
		content = replaceSubmatchFunc(re, content, func(m []string) string {
			return displayBlock(m[1])
		})
	}
	return content
}

// DesizeDelimiters replaces sized and \left/\right delimiters with plain
// parentheses. Braces become parentheses as well.
func DesizeDelimiters(content string) string {
	for _, r := range desizeRules {
		content = r.re.ReplaceAllLiteralString(content, r.replacement)
	}
	return content
}
