package pipeline

import (
	"regexp"
	"sort"
)

// maskByte stands in for display math while inline spans are located.
// Any byte other than '$' works; the masked copy keeps byte offsets intact.
const maskByte = '#'

var (
	displayMathSpan = regexp.MustCompile(`(?s)\$\$(.*?)\$\$`)
	inlineMathSpan  = regexp.MustCompile(`(?s)\$(.+?)\$`)
)

// MathSpan is the byte range [Start, End) of an already delimited math
// region, delimiters included.
type MathSpan struct {
	Start   int
	End     int
	Display bool
}

// FindMathSpans locates existing $$...$$ and $...$ regions in text.
//
// Display spans are found first. Inline spans are then found in a copy of
// text where display spans are masked, so a $ inside a display block never
// pairs with one outside it. An inline span may therefore enclose display
// spans; only top-level spans are returned, sorted by offset.
func FindMathSpans(text string) []MathSpan {
	display := displayMathSpan.FindAllStringIndex(text, -1)

	masked := text
	if len(display) > 0 {
		buf := []byte(text)
		for _, loc := range display {
			for i := loc[0]; i < loc[1]; i++ {
				buf[i] = maskByte
			}
		}
		masked = string(buf)
	}
	inline := inlineMathSpan.FindAllStringIndex(masked, -1)

	spans := make([]MathSpan, 0, len(display)+len(inline))
	for _, loc := range inline {
		spans = append(spans, MathSpan{Start: loc[0], End: loc[1]})
	}
	j := 0
	for _, loc := range display {
		for j < len(inline) && inline[j][1] <= loc[0] {
			j++
		}
		if j < len(inline) && inline[j][0] <= loc[0] && loc[1] <= inline[j][1] {
			continue
		}
		spans = append(spans, MathSpan{Start: loc[0], End: loc[1], Display: true})
	}
	sort.Slice(spans, func(i, j int) bool { return spans[i].Start < spans[j].Start })
	return spans
}
