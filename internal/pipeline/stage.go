package pipeline

import (
	"errors"
	"fmt"
	"slices"
	"sort"
)

// Sentinel errors for profile and stage lookup.
var (
	ErrUnknownProfile = errors.New("unknown profile")
	ErrUnknownStage   = errors.New("unknown stage")
)

// Stage names. They are stable identifiers used by config files and flags.
const (
	StageLineEndings     = "line-endings"
	StageUnicodeNFC      = "unicode-nfc"
	StageFrontMatter     = "front-matter"
	StagePtBreaks        = "pt-breaks"
	StageBracketBlocks   = "bracket-blocks"
	StageLatexDelimiters = "latex-delimiters"
	StageDesize          = "desize"
	StageInlineMath      = "inline-math"
	StageLatexNoise      = "latex-noise"
	StageThinSpace       = "thin-space"
	StageMathInternals   = "math-internals"
	StageWhitespace      = "whitespace"
	StageHeadingDemotion = "heading-demotion"
)

// Profile names.
const (
	ProfileBasic = "basic"
	ProfileFull  = "full"

	DefaultProfile = ProfileFull
)

// Stage is one rewrite pass of the conversion pipeline.
type Stage struct {
	Name  string
	Apply func(string) string
}

// Profile is a named, ordered list of stages.
type Profile struct {
	Name   string
	Stages []Stage
}

var (
	frontMatterStage     = Stage{Name: StageFrontMatter, Apply: StripFrontMatter}
	ptBreaksStage        = Stage{Name: StagePtBreaks, Apply: ReplacePtBreaks}
	bracketBlocksStage   = Stage{Name: StageBracketBlocks, Apply: ConvertBracketBlocks}
	latexDelimitersStage = Stage{Name: StageLatexDelimiters, Apply: ConvertLatexDelimiters}
	desizeStage          = Stage{Name: StageDesize, Apply: DesizeDelimiters}
	inlineMathStage      = Stage{Name: StageInlineMath, Apply: ConvertInlineMath}
	latexNoiseStage      = Stage{Name: StageLatexNoise, Apply: StripLatexNoise}
	thinSpaceStage       = Stage{Name: StageThinSpace, Apply: FixThinSpaces}
	mathInternalsStage   = Stage{Name: StageMathInternals, Apply: CleanMathInternals}
	headingDemotionStage = Stage{Name: StageHeadingDemotion, Apply: DemoteHeadings}

	lineEndingsStage = Stage{Name: StageLineEndings, Apply: NormalizeLineEndings}
	unicodeNFCStage  = Stage{Name: StageUnicodeNFC, Apply: NormalizeUnicode}
)

// profiles holds the built-in profiles. The basic profile is the lighter
// rewriter; full adds pt breaks, math cleanup and heading demotion.
var profiles = map[string]Profile{
	ProfileBasic: {
		Name: ProfileBasic,
		Stages: []Stage{
			frontMatterStage,
			bracketBlocksStage,
			latexDelimitersStage,
			desizeStage,
			inlineMathStage,
			latexNoiseStage,
			thinSpaceStage,
			{Name: StageWhitespace, Apply: NormalizeWhitespace},
		},
	},
	ProfileFull: {
		Name: ProfileFull,
		Stages: []Stage{
			frontMatterStage,
			ptBreaksStage,
			bracketBlocksStage,
			latexDelimitersStage,
			desizeStage,
			inlineMathStage,
			latexNoiseStage,
			mathInternalsStage,
			{Name: StageWhitespace, Apply: NormalizeWhitespaceCollapsing},
			headingDemotionStage,
		},
	},
}

// LookupProfile returns a copy of the named profile.
func LookupProfile(name string) (Profile, error) {
	p, ok := profiles[name]
	if !ok {
		return Profile{}, fmt.Errorf("%w: %q (available: %v)", ErrUnknownProfile, name, ProfileNames())
	}
	return Profile{Name: p.Name, Stages: slices.Clone(p.Stages)}, nil
}

// ProfileNames returns the built-in profile names, sorted.
func ProfileNames() []string {
	names := make([]string, 0, len(profiles))
	for name := range profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// StageNames returns every stage name known to the pipeline, sorted.
// Includes the opt-in normalization stages.
func StageNames() []string {
	names := []string{
		StageLineEndings,
		StageUnicodeNFC,
		StageFrontMatter,
		StagePtBreaks,
		StageBracketBlocks,
		StageLatexDelimiters,
		StageDesize,
		StageInlineMath,
		StageLatexNoise,
		StageThinSpace,
		StageMathInternals,
		StageWhitespace,
		StageHeadingDemotion,
	}
	sort.Strings(names)
	return names
}

// IsStageName reports whether name is a known stage.
func IsStageName(name string) bool {
	return slices.Contains(StageNames(), name)
}

// Names returns the stage names of p in execution order.
func (p Profile) Names() []string {
	names := make([]string, len(p.Stages))
	for i, s := range p.Stages {
		names[i] = s.Name
	}
	return names
}

// Without returns p minus the named stages. Unknown names are an error so
// that typos in config files are not silently ignored.
func (p Profile) Without(names ...string) (Profile, error) {
	for _, n := range names {
		if !IsStageName(n) {
			return Profile{}, fmt.Errorf("%w: %q", ErrUnknownStage, n)
		}
	}
	kept := make([]Stage, 0, len(p.Stages))
	for _, s := range p.Stages {
		if !slices.Contains(names, s.Name) {
			kept = append(kept, s)
		}
	}
	return Profile{Name: p.Name, Stages: kept}, nil
}

// WithNormalization prepends the opt-in normalization stages.
// Line endings run before Unicode normalization.
func (p Profile) WithNormalization(lineEndings, unicode bool) Profile {
	var pre []Stage
	if lineEndings {
		pre = append(pre, lineEndingsStage)
	}
	if unicode {
		pre = append(pre, unicodeNFCStage)
	}
	if len(pre) == 0 {
		return p
	}
	return Profile{Name: p.Name, Stages: append(pre, p.Stages...)}
}

// Run applies the stages of p to text in order.
func (p Profile) Run(text string) string {
	for _, s := range p.Stages {
		text = s.Apply(text)
	}
	return text
}
