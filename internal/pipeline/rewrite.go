package pipeline

import (
	"regexp"
	"strings"
	"time"

	"github.com/dlclark/regexp2"
)

// lookaroundTimeout bounds a single regexp2 evaluation. regexp2 backtracks,
// so a pathological input could otherwise stall a conversion.
const lookaroundTimeout = 2 * time.Second

// replaceSubmatchFunc replaces every non-overlapping match of re in s with
// the value returned by fn. groups[0] is the whole match, groups[i] the i-th
// capture ("" when the group did not participate).
func replaceSubmatchFunc(re *regexp.Regexp, s string, fn func(groups []string) string) string {
	locs := re.FindAllStringSubmatchIndex(s, -1)
	if len(locs) == 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	last := 0
	for _, loc := range locs {
		b.WriteString(s[last:loc[0]])
		groups := make([]string, len(loc)/2)
		for g := range groups {
			if loc[2*g] >= 0 {
				groups[g] = s[loc[2*g]:loc[2*g+1]]
			}
		}
		b.WriteString(fn(groups))
		last = loc[1]
	}
	b.WriteString(s[last:])
	return b.String()
}

// displayBlock formats body as a display math block.
func displayBlock(body string) string {
	return "$$\n" + body + "\n$$"
}

// lookaroundRule is a rewrite that needs lookahead or lookbehind, which the
// standard library engine does not support.
type lookaroundRule struct {
	re          *regexp2.Regexp
	replacement string // .NET substitution syntax: $1, $$ for a literal dollar
}

func newLookaroundRule(pattern, replacement string) lookaroundRule {
	re := regexp2.MustCompile(pattern, regexp2.None)
	re.MatchTimeout = lookaroundTimeout
	return lookaroundRule{re: re, replacement: replacement}
}

// apply rewrites s. On a match timeout s is returned unchanged.
func (r lookaroundRule) apply(s string) string {
	out, err := r.re.Replace(s, r.replacement, -1, -1)
	if err != nil {
		return s
	}
	return out
}

// applyRules runs rules over s in order.
func applyRules(s string, rules []lookaroundRule) string {
	for _, r := range rules {
		s = r.apply(s)
	}
	return s
}
