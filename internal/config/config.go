// Package config loads latex2md configuration files.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/alnah/go-latex2md/internal/fileutil"
	"github.com/alnah/go-latex2md/internal/pipeline"
	"github.com/alnah/go-latex2md/internal/yamlutil"
)

// Sentinel errors for configuration loading.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidConfig   = errors.New("invalid config")
)

// Field length limits.
const (
	MaxPathLength      = 4096
	MaxStyleLength     = 50
	MaxExtensionLength = 16
)

// MaxWorkers bounds the configured worker count.
const MaxWorkers = 32

// Output formats.
const (
	FormatMarkdown = "markdown"
	FormatHTML     = "html"
)

// DefaultExtensions are the input file extensions picked up from directories.
var DefaultExtensions = []string{".md", ".markdown", ".tex", ".txt"}

// configDirName is the directory under os.UserConfigDir searched for configs.
const configDirName = "go-latex2md"

// Config is the top-level configuration file.
type Config struct {
	Profile   string          `yaml:"profile"`
	Stages    StagesConfig    `yaml:"stages"`
	Normalize NormalizeConfig `yaml:"normalize"`
	Input     InputConfig     `yaml:"input"`
	Output    OutputConfig    `yaml:"output"`
	Preview   PreviewConfig   `yaml:"preview"`
	Workers   int             `yaml:"workers"` // 0 = auto
}

// StagesConfig edits the selected profile.
type StagesConfig struct {
	Disable []string `yaml:"disable"`
}

// NormalizeConfig enables the opt-in normalization stages.
type NormalizeConfig struct {
	LineEndings bool `yaml:"lineEndings"`
	Unicode     bool `yaml:"unicode"`
}

type InputConfig struct {
	DefaultDir string   `yaml:"defaultDir"` // used when no input is given and stdin is a terminal
	Extensions []string `yaml:"extensions"` // empty = DefaultExtensions
}

type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // empty = next to the source
	Format     string `yaml:"format"`     // "markdown" (default) or "html"
}

type PreviewConfig struct {
	HighlightStyle string `yaml:"highlightStyle"` // chroma style name
	Style          string `yaml:"style"`          // built-in name, .css path or "none"
	AssetPath      string `yaml:"assetPath"`      // directory with styles/{name}.css overrides
}

// DefaultConfig returns the configuration used when no file is loaded.
func DefaultConfig() *Config {
	return &Config{
		Profile: pipeline.DefaultProfile,
		Output:  OutputConfig{Format: FormatMarkdown},
	}
}

// InputExtensions returns the configured extensions or DefaultExtensions.
func (c *Config) InputExtensions() []string {
	if len(c.Input.Extensions) == 0 {
		return DefaultExtensions
	}
	return c.Input.Extensions
}

// Validate checks names against the pipeline and bounds free-form fields.
func (c *Config) Validate() error {
	if c.Profile != "" && !slices.Contains(pipeline.ProfileNames(), c.Profile) {
		return fmt.Errorf("%w: profile %q: %w (available: %s)",
			ErrInvalidConfig, c.Profile, pipeline.ErrUnknownProfile, strings.Join(pipeline.ProfileNames(), ", "))
	}
	for _, name := range c.Stages.Disable {
		if !pipeline.IsStageName(name) {
			return fmt.Errorf("%w: stages.disable %q: %w", ErrInvalidConfig, name, pipeline.ErrUnknownStage)
		}
	}

	switch c.Output.Format {
	case "", FormatMarkdown, FormatHTML:
	default:
		return fmt.Errorf("%w: output.format: invalid value %q (must be %s or %s)",
			ErrInvalidConfig, c.Output.Format, FormatMarkdown, FormatHTML)
	}

	if c.Workers < 0 || c.Workers > MaxWorkers {
		return fmt.Errorf("%w: workers: must be between 0 and %d, got %d", ErrInvalidConfig, MaxWorkers, c.Workers)
	}

	if err := validateFieldLength("input.defaultDir", c.Input.DefaultDir, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("output.defaultDir", c.Output.DefaultDir, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("preview.highlightStyle", c.Preview.HighlightStyle, MaxStyleLength); err != nil {
		return err
	}
	if err := validateFieldLength("preview.style", c.Preview.Style, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("preview.assetPath", c.Preview.AssetPath, MaxPathLength); err != nil {
		return err
	}

	for i, ext := range c.Input.Extensions {
		field := fmt.Sprintf("input.extensions[%d]", i)
		if err := validateFieldLength(field, ext, MaxExtensionLength); err != nil {
			return err
		}
		if !strings.HasPrefix(ext, ".") || len(ext) < 2 || strings.ContainsAny(ext, "/\\\x00") {
			return fmt.Errorf("%w: %s: invalid extension %q (want e.g. \".md\")", ErrInvalidConfig, field, ext)
		}
	}
	return nil
}

func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// LoadConfig loads a configuration by name or path.
//
// A value containing a path separator is read as a file. Otherwise it is a
// name looked up as <name>.yaml then <name>.yml in the working directory,
// then in the user config directory under go-latex2md/.
// Unknown fields are rejected. Fields left out keep their defaults.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if len(bytes.TrimSpace(data)) == 0 {
		return cfg, nil
	}
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrConfigParse, configPath, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SearchPaths returns the candidate files for a config name, in lookup order.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)
	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, configDirName, name+ext))
		}
	}
	return paths
}

func resolveConfigPath(name string) (string, error) {
	tried := SearchPaths(name)
	for _, p := range tried {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(tried, ", "))
}
