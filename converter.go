package latex2md

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/alnah/go-latex2md/internal/assets"
	"github.com/alnah/go-latex2md/internal/pipeline"
	"github.com/alnah/go-latex2md/internal/yamlutil"
)

// Compile-time interface implementation check.
var _ pipeline.HTMLConverter = (*pipeline.GoldmarkConverter)(nil)

// Profile names.
const (
	ProfileBasic   = pipeline.ProfileBasic
	ProfileFull    = pipeline.ProfileFull
	DefaultProfile = pipeline.DefaultProfile
)

// Converter runs a fixed list of rewrite stages.
// Create with NewConverter; the zero value is not usable.
type Converter struct {
	profile        pipeline.Profile
	logger         zerolog.Logger
	htmlConverter  pipeline.HTMLConverter
	highlightStyle string
	stylesheet     string
}

// Result is the outcome of ConvertDocument.
type Result struct {
	// Markdown is the converted text.
	Markdown string

	// FrontMatter holds the decoded YAML front matter removed from the
	// input. Nil when there was none or it was not a YAML mapping.
	FrontMatter map[string]any
}

// PreviewOptions configures Converter.Preview.
type PreviewOptions struct {
	Title      string // page title; empty keeps "Document"
	SourceDir  string // directory relative links in the Markdown refer to
	PreviewDir string // directory the page will be written to
}

// NewConverter builds a Converter from the default profile and opts.
// Returns ErrUnknownProfile or ErrUnknownStage for bad names, and
// ErrStyleNotFound or ErrInvalidAssetPath for bad preview style settings.
func NewConverter(opts ...Option) (*Converter, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	profile, err := pipeline.LookupProfile(cfg.profile)
	if err != nil {
		return nil, err
	}
	if len(cfg.disabled) > 0 {
		if profile, err = profile.Without(cfg.disabled...); err != nil {
			return nil, err
		}
	}
	profile = profile.WithNormalization(cfg.lineEndings, cfg.unicode)

	resolver, err := assets.NewAssetResolver(cfg.assetPath)
	if err != nil {
		return nil, err
	}
	stylesheet, err := resolver.ResolveStyle(cfg.previewStyle)
	if err != nil {
		return nil, err
	}

	logger := cfg.logger.With().Str("component", "converter").Str("profile", profile.Name).Logger()
	logger.Debug().
		Strs("stages", profile.Names()).
		Bool("custom_assets", resolver.HasCustomLoader()).
		Msg("converter ready")

	return &Converter{
		profile:        profile,
		logger:         logger,
		htmlConverter:  pipeline.NewGoldmarkConverter(),
		highlightStyle: cfg.highlightStyle,
		stylesheet:     stylesheet,
	}, nil
}

// defaultConverter backs the package-level Convert.
var defaultConverter = mustConverter()

func mustConverter() *Converter {
	c, err := NewConverter()
	if err != nil {
		panic(fmt.Sprintf("latex2md: default converter: %v", err))
	}
	return c
}

// Convert rewrites input with the default profile.
func Convert(input string) string {
	return defaultConverter.Convert(input)
}

// PreviewStyles returns the names of the built-in preview styles, sorted.
func PreviewStyles() []string {
	return assets.StyleNames()
}

// Profiles returns the names of the built-in profiles, sorted.
func Profiles() []string {
	return pipeline.ProfileNames()
}

// StageNames returns every known stage name, sorted.
func StageNames() []string {
	return pipeline.StageNames()
}

// Convert applies the converter's stages to input in order.
func (c *Converter) Convert(input string) string {
	text := input
	for _, s := range c.profile.Stages {
		out := s.Apply(text)
		if e := c.logger.Debug(); e.Enabled() {
			e.Str("stage", s.Name).
				Int("in_bytes", len(text)).
				Int("out_bytes", len(out)).
				Bool("changed", out != text).
				Msg("stage applied")
		}
		text = out
	}
	return text
}

// ConvertDocument converts input and also returns its front matter.
//
// Front matter is read from the input after the optional normalization
// stages, so CRLF files are recognized when line endings are normalized.
// Malformed front matter is logged and left out of the result.
func (c *Converter) ConvertDocument(input string) *Result {
	res := &Result{Markdown: c.Convert(input)}

	pre := input
	for _, s := range c.profile.Stages {
		if s.Name != pipeline.StageLineEndings && s.Name != pipeline.StageUnicodeNFC {
			break
		}
		pre = s.Apply(pre)
	}

	_, raw := pipeline.SplitFrontMatter(pre)
	if raw == "" {
		return res
	}
	fm, err := yamlutil.UnmarshalMapping([]byte(raw))
	if err != nil {
		c.logger.Warn().Err(err).Msg("ignoring front matter")
		return res
	}
	res.FrontMatter = fm
	return res
}

// Stages returns the stage names of this converter in execution order.
func (c *Converter) Stages() []string {
	return c.profile.Names()
}

// Profile returns the name of the profile the converter was built from.
func (c *Converter) Profile() string {
	return c.profile.Name
}

// Preview renders converted Markdown as a standalone HTML page with
// MathJax and syntax highlighting. The context bounds rendering time.
func (c *Converter) Preview(ctx context.Context, markdown string, opts PreviewOptions) (string, error) {
	page, err := pipeline.RenderPreview(ctx, c.htmlConverter, markdown, pipeline.PreviewOptions{
		Title:          opts.Title,
		HighlightStyle: c.highlightStyle,
		Stylesheet:     c.stylesheet,
		SourceDir:      opts.SourceDir,
		PreviewDir:     opts.PreviewDir,
	})
	if err != nil {
		return "", fmt.Errorf("rendering preview: %w", err)
	}
	return page, nil
}
