package pipeline

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Precompiled regex patterns for performance.
var (
	// Line ending normalization
	crlfOrCR = regexp.MustCompile(`\r\n?`)

	// Leading YAML front matter, body captured
	frontMatterPattern = regexp.MustCompile(`(?s)^\s*---\s*\n(.*?)\n---\s*\n`)

	// Standalone horizontal rule lines
	tripleDashLine = regexp.MustCompile(`(?m)^\s*---\s*$`)

	// \label{...} with flat braces
	labelCommand = regexp.MustCompile(`\\label\{[^{}]*\}`)

	// Unescaped % through end of line; group 1 is the preserved character
	latexComment = regexp.MustCompile(`(?m)(^|[^\\])%.*?$`)

	// Whitespace cleanup
	trailingBlanks     = regexp.MustCompile(`[ \t]+\n`)
	multipleBlankLines = regexp.MustCompile(`\n{3,}`)
	horizontalRuns     = regexp.MustCompile(`[ \t]{2,}`)

	// Level-1 ATX heading
	topLevelHeading = regexp.MustCompile(`(?m)^# `)
)

// NormalizeLineEndings converts \r\n and \r to \n.
func NormalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}

// NormalizeUnicode converts content to Unicode NFC so that decomposed
// accented letters compare equal to their precomposed forms.
func NormalizeUnicode(content string) string {
	return norm.NFC.String(content)
}

// StripFrontMatter removes a leading YAML front matter block and every
// remaining standalone --- line.
func StripFrontMatter(content string) string {
	stripped, _ := SplitFrontMatter(content)
	return stripped
}

// SplitFrontMatter is StripFrontMatter that also returns the raw body of the
// removed front matter block ("" when there was none). A block without a
// closing --- line is not treated as front matter.
func SplitFrontMatter(content string) (stripped, frontMatter string) {
	stripped = content
	if strings.HasPrefix(strings.TrimLeftFunc(content, unicode.IsSpace), "---") {
		if loc := frontMatterPattern.FindStringSubmatchIndex(content); loc != nil {
			frontMatter = content[loc[2]:loc[3]]
			stripped = content[loc[1]:]
		}
	}
	return tripleDashLine.ReplaceAllString(stripped, ""), frontMatter
}

// StripLatexNoise removes \label{...} commands and % comments.
func StripLatexNoise(content string) string {
	content = labelCommand.ReplaceAllString(content, "")
	return latexComment.ReplaceAllString(content, "${1}")
}

// NormalizeWhitespace drops trailing blanks, compresses blank lines to one,
// trims the text and terminates it with a single newline.
func NormalizeWhitespace(content string) string {
	content = trailingBlanks.ReplaceAllString(content, "\n")
	content = multipleBlankLines.ReplaceAllString(content, "\n\n")
	return strings.TrimSpace(content) + "\n"
}

// NormalizeWhitespaceCollapsing is NormalizeWhitespace that also collapses
// runs of spaces and tabs to a single space.
func NormalizeWhitespaceCollapsing(content string) string {
	content = trailingBlanks.ReplaceAllString(content, "\n")
	content = multipleBlankLines.ReplaceAllString(content, "\n\n")
	content = horizontalRuns.ReplaceAllString(content, " ")
	return strings.TrimSpace(content) + "\n"
}

// DemoteHeadings turns level-1 headings into level-2 headings; the
// surrounding document owns the title.
func DemoteHeadings(content string) string {
	return topLevelHeading.ReplaceAllString(content, "## ")
}
