package latex2md

import "github.com/rs/zerolog"

// Option configures a Converter.
type Option func(*converterConfig)

// converterConfig holds the settings collected from options.
type converterConfig struct {
	profile        string
	disabled       []string
	lineEndings    bool
	unicode        bool
	logger         zerolog.Logger
	highlightStyle string
	previewStyle   string
	assetPath      string
}

func defaultConfig() converterConfig {
	return converterConfig{
		profile: DefaultProfile,
		logger:  zerolog.Nop(),
	}
}

// WithProfile selects a built-in profile by name ("basic" or "full").
// An empty name keeps the default.
func WithProfile(name string) Option {
	return func(c *converterConfig) {
		if name != "" {
			c.profile = name
		}
	}
}

// WithoutStages removes the named stages from the selected profile.
// Can be given more than once; names accumulate.
func WithoutStages(names ...string) Option {
	return func(c *converterConfig) {
		c.disabled = append(c.disabled, names...)
	}
}

// WithLineEndingNormalization converts CRLF and CR line endings to LF
// before any other stage.
func WithLineEndingNormalization() Option {
	return func(c *converterConfig) {
		c.lineEndings = true
	}
}

// WithUnicodeNormalization applies Unicode NFC before the rewrite stages,
// so decomposed accents match the prose detector.
func WithUnicodeNormalization() Option {
	return func(c *converterConfig) {
		c.unicode = true
	}
}

// WithLogger sets the logger used for per-stage debug events.
// The default discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(c *converterConfig) {
		c.logger = l
	}
}

// WithHighlightStyle sets the chroma style used for code blocks in
// previews. Unknown names fall back to chroma's default.
func WithHighlightStyle(name string) Option {
	return func(c *converterConfig) {
		c.highlightStyle = name
	}
}

// WithPreviewStyle selects the page stylesheet for previews: a built-in
// name ("default", "serif"), a .css file path, or "none".
func WithPreviewStyle(nameOrPath string) Option {
	return func(c *converterConfig) {
		c.previewStyle = nameOrPath
	}
}

// WithAssetPath sets a directory whose styles/{name}.css files override
// the built-in preview styles.
func WithAssetPath(dir string) Option {
	return func(c *converterConfig) {
		c.assetPath = dir
	}
}
