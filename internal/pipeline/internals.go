package pipeline

import "regexp"

// displayMathBody re-matches display regions on the rewritten text. It
// absorbs the newlines next to the fences so they are not cleaned.
var displayMathBody = regexp.MustCompile(`(?s)\$\$\n?(.*?)\n?\$\$`)

// mathCleanupRules undo transcription artifacts inside math: stray
// semicolons, commas and ! spacing tokens. Order matters.
var mathCleanupRules = []lookaroundRule{
	// ; < ;  ->  <
	newLookaroundRule(`\s*;\s*([<>]=?)\s*;\s*`, " $1 "),
	// lone ;
	newLookaroundRule(`\s*;\s*`, " "),
	// ,)  ,]
	newLookaroundRule(`,\s*(?=[)\]])`, ""),
	// ,dx  ,\mathrm{d}x
	newLookaroundRule(`,\s*(?=(?:d|\\mathrm\s*\{\s*d\s*\})\s*[A-Za-z])`, " "),
	// ,\cmd
	newLookaroundRule(`,\s*(?=\\[A-Za-z])`, " "),
	newLookaroundRule(`\+,\s*`, "+ "),
	// \cmd! before grouping or sizing -> \cmd\!
	newLookaroundRule(`(\\[A-Za-z]+)!(?=\s*(\(|\[|\\frac|\\left|\\right|\\Big|\\big|\\Bigg|\\bigg))`, `$1\!`),
	// !\cmd
	newLookaroundRule(`!\s*(?=\\[A-Za-z])`, ""),
	// !-!
	newLookaroundRule(`\s*!\s*-\s*!\s*`, " - "),
	// S_0!( -> S_0 (
	newLookaroundRule(`(?<=[\w}\]])\s*!\s*(?=[\(\[])`, " "),
	newLookaroundRule(`(?<![\w)])\s*!\s*(?=\S)`, " "),
	// ,(
	newLookaroundRule(`,\s*(?=\()`, " "),
	// ,x
	newLookaroundRule(`,\s*(?=[A-Za-z])`, " "),
}

// thinSpaceRules is the light cleanup of the basic profile.
var thinSpaceRules = []lookaroundRule{
	newLookaroundRule(`(?<=\\[A-Za-z])!(?=\\(Big|big|left|right))`, `\!`),
}

// CleanMathInternals applies mathCleanupRules inside every math region.
//
// Display regions are rewritten first. The inline pass then runs over the
// result and may pair the fences of a display block; the rules tolerate
// being applied twice.
func CleanMathInternals(content string) string {
	return rewriteMathBodies(content, func(body string) string {
		return applyRules(body, mathCleanupRules)
	})
}

// FixThinSpaces turns \x! before a sizing or \left/\right command into the
// \x\! thin space it was transcribed from.
func FixThinSpaces(content string) string {
	return rewriteMathBodies(content, func(body string) string {
		return applyRules(body, thinSpaceRules)
	})
}

func rewriteMathBodies(content string, fix func(string) string) string {
	content = replaceSubmatchFunc(displayMathBody, content, func(m []string) string {
		return displayBlock(fix(m[1]))
	})
	return replaceSubmatchFunc(inlineMathSpan, content, func(m []string) string {
		return "$" + fix(m[1]) + "$"
	})
}
