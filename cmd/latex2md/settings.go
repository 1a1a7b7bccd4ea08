package main

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	latex2md "github.com/alnah/go-latex2md"
	"github.com/alnah/go-latex2md/internal/config"
	"github.com/alnah/go-latex2md/internal/fileutil"
	"github.com/alnah/go-latex2md/internal/hints"
)

// loadEffectiveConfig loads the config named by the flag or LATEX2MD_CONFIG
// and applies the environment on top.
// Precedence: flags > environment > config file > defaults.
func loadEffectiveConfig(configFlag string, envCfg *envConfig) (*config.Config, error) {
	name := configFlag
	if name == "" {
		name = envCfg.ConfigPath
	}

	cfg := config.DefaultConfig()
	if name != "" {
		loaded, err := config.LoadConfig(name)
		if err != nil {
			hint := ""
			if errors.Is(err, config.ErrConfigNotFound) && !fileutil.IsFilePath(name) {
				hint = hints.ForConfigNotFound(config.SearchPaths(name))
			}
			return nil, fmt.Errorf("loading config: %w%s", err, hint)
		}
		cfg = loaded
	}

	applyEnvConfig(envCfg, cfg)
	return cfg, nil
}

// mergePipelineFlags merges stage selection flags into cfg. Disabled
// stages accumulate with the config file's list.
func mergePipelineFlags(f pipelineFlags, cfg *config.Config) {
	if f.profile != "" {
		cfg.Profile = f.profile
	}
	cfg.Stages.Disable = append(cfg.Stages.Disable, f.disable...)
	if f.crlf {
		cfg.Normalize.LineEndings = true
	}
	if f.nfc {
		cfg.Normalize.Unicode = true
	}
}

// mergePreviewFlags merges preview flags into cfg.
func mergePreviewFlags(f previewFlags, cfg *config.Config) {
	if f.html {
		cfg.Output.Format = config.FormatHTML
	}
	if f.style != "" {
		cfg.Preview.Style = f.style
	}
	if f.assetPath != "" {
		cfg.Preview.AssetPath = f.assetPath
	}
	if f.highlightStyle != "" {
		cfg.Preview.HighlightStyle = f.highlightStyle
	}
}

// newConverter validates cfg and builds the library converter from it.
func newConverter(cfg *config.Config, logger zerolog.Logger) (*latex2md.Converter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	opts := []latex2md.Option{
		latex2md.WithProfile(cfg.Profile),
		latex2md.WithoutStages(cfg.Stages.Disable...),
		latex2md.WithLogger(logger),
		latex2md.WithHighlightStyle(cfg.Preview.HighlightStyle),
		latex2md.WithPreviewStyle(cfg.Preview.Style),
		latex2md.WithAssetPath(cfg.Preview.AssetPath),
	}
	if cfg.Normalize.LineEndings {
		opts = append(opts, latex2md.WithLineEndingNormalization())
	}
	if cfg.Normalize.Unicode {
		opts = append(opts, latex2md.WithUnicodeNormalization())
	}

	conv, err := latex2md.NewConverter(opts...)
	if err != nil {
		return nil, fmt.Errorf("building converter: %w", err)
	}
	return conv, nil
}
