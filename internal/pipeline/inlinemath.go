package pipeline

import (
	"regexp"
	"strings"

	"github.com/dlclark/regexp2"
)

var (
	// Signals of math notation: commands, relations, scripts, escaped
	// braces, sizing, fractions, digits touching letters.
	mathHint = regexp.MustCompile(`\\[A-Za-z]+|[=<>^_]|\\\{|\\\}|\\left|\\right|\\frac|\d[A-Za-z]|[A-Za-z]\d`)

	// A whitespace-led word of two or more letters (Spanish accents
	// included) followed by whitespace, punctuation or the end.
	proseHint = mustLookaround(`\s[A-Za-zÁÉÍÓÚáéíóúñÑ]{2,}(?=\s|[.,;:)]|$)`)
)

func mustLookaround(pattern string) *regexp2.Regexp {
	re := regexp2.MustCompile(pattern, regexp2.None)
	re.MatchTimeout = lookaroundTimeout
	return re
}

// LooksLikeMath classifies the content of a parenthesized group. The whole
// group is judged: one English-looking word anywhere makes it prose.
func LooksLikeMath(inner string) bool {
	if strings.Contains(inner, "$") || !mathHint.MatchString(inner) {
		return false
	}
	prose, err := proseHint.MatchString(inner)
	if err != nil {
		return false
	}
	return !prose
}

// ConvertInlineMath rewrites parenthesized expressions that look like math
// as $...$, leaving existing $...$ and $$...$$ regions untouched.
func ConvertInlineMath(content string) string {
	spans := FindMathSpans(content)
	return newParenScanner(content, spans).rewrite()
}

// parenScanner resolves every ( in one linear pass before rewriting.
//
// A ( is matched by the ) that brings the depth counted from it back to
// zero. A newline met at depth one before that point disqualifies the
// group, keeping the rewrite to single-line parentheticals. Protected math
// spans are skipped as opaque atoms: their parens and newlines do not count.
type parenScanner struct {
	text    string
	atoms   map[int]int // span start -> span end
	partner map[int]int // ( offset -> matching ) offset
}

func newParenScanner(text string, spans []MathSpan) *parenScanner {
	atoms := make(map[int]int, len(spans))
	for _, s := range spans {
		atoms[s.Start] = s.End
	}
	p := &parenScanner{text: text, atoms: atoms, partner: make(map[int]int)}
	p.matchParens()
	return p
}

func (p *parenScanner) matchParens() {
	var stack []int
	broken := make(map[int]bool)

	for i := 0; i < len(p.text); {
		if end, ok := p.atoms[i]; ok {
			i = end
			continue
		}
		switch p.text[i] {
		case '(':
			stack = append(stack, i)
		case ')':
			if n := len(stack); n > 0 {
				open := stack[n-1]
				stack = stack[:n-1]
				if !broken[open] {
					p.partner[open] = i
				}
			}
		case '\n':
			if n := len(stack); n > 0 {
				broken[stack[n-1]] = true
			}
		}
		i++
	}
}

func (p *parenScanner) rewrite() string {
	var b strings.Builder
	b.Grow(len(p.text))

	for i := 0; i < len(p.text); {
		if end, ok := p.atoms[i]; ok {
			b.WriteString(p.text[i:end])
			i = end
			continue
		}
		if p.text[i] == '(' {
			if closing, ok := p.partner[i]; ok {
				inner := p.text[i+1 : closing]
				if LooksLikeMath(inner) {
					b.WriteString("$" + inner + "$")
				} else {
					b.WriteString("(" + inner + ")")
				}
				i = closing + 1
				continue
			}
		}
		b.WriteByte(p.text[i])
		i++
	}
	return b.String()
}
