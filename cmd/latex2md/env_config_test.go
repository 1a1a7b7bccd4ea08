package main

// Notes:
// - loadEnvConfig: we test every LATEX2MD_* variable and that invalid or
//   non-positive numbers and durations are ignored.
// - applyEnvConfig and loadEffectiveConfig: we test precedence between the
//   config file and the environment.
// - Tests use t.Setenv() which prevents t.Parallel() at parent level.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alnah/go-latex2md/internal/config"
)

// ---------------------------------------------------------------------------
// TestLoadEnvConfig - Environment variable loading
// ---------------------------------------------------------------------------

func TestLoadEnvConfig(t *testing.T) {
	t.Run("all variables", func(t *testing.T) {
		t.Setenv("LATEX2MD_CONFIG", "/path/to/config.yaml")
		t.Setenv("LATEX2MD_PROFILE", "basic")
		t.Setenv("LATEX2MD_WORKERS", "4")
		t.Setenv("LATEX2MD_INPUT_DIR", "/input")
		t.Setenv("LATEX2MD_OUTPUT_DIR", "/output")
		t.Setenv("LATEX2MD_STYLE", "serif")
		t.Setenv("LATEX2MD_TIMEOUT", "2m")

		cfg := loadEnvConfig()

		assert.Equal(t, "/path/to/config.yaml", cfg.ConfigPath)
		assert.Equal(t, "basic", cfg.Profile)
		assert.Equal(t, 4, cfg.Workers)
		assert.Equal(t, "/input", cfg.InputDir)
		assert.Equal(t, "/output", cfg.OutputDir)
		assert.Equal(t, "serif", cfg.Style)
		assert.Equal(t, 2*time.Minute, cfg.Timeout)
	})

	t.Run("invalid numbers ignored", func(t *testing.T) {
		t.Setenv("LATEX2MD_WORKERS", "many")
		t.Setenv("LATEX2MD_TIMEOUT", "soon")

		cfg := loadEnvConfig()

		assert.Zero(t, cfg.Workers)
		assert.Zero(t, cfg.Timeout)
	})

	t.Run("non-positive numbers ignored", func(t *testing.T) {
		t.Setenv("LATEX2MD_WORKERS", "-2")
		t.Setenv("LATEX2MD_TIMEOUT", "-5s")

		cfg := loadEnvConfig()

		assert.Zero(t, cfg.Workers)
		assert.Zero(t, cfg.Timeout)
	})
}

// ---------------------------------------------------------------------------
// TestUnknownEnvVars - Typo detection
// ---------------------------------------------------------------------------

func TestUnknownEnvVars(t *testing.T) {
	t.Parallel()

	environ := []string{
		"HOME=/home/user",
		"LATEX2MD_PROFILE=basic",
		"LATEX2MD_WORKER=2",
		"LATEX2MD_STYEL=serif",
		"LATEX2MD_OUTPUT_DIR=/out",
	}

	assert.Equal(t, []string{"LATEX2MD_STYEL", "LATEX2MD_WORKER"}, unknownEnvVars(environ))
	assert.Empty(t, unknownEnvVars([]string{"LATEX2MD_CONFIG=x", "PATH=/bin"}))
}

// ---------------------------------------------------------------------------
// TestApplyEnvConfig - Environment overrides the config file
// ---------------------------------------------------------------------------

func TestApplyEnvConfig(t *testing.T) {
	t.Parallel()

	t.Run("set values override", func(t *testing.T) {
		t.Parallel()

		cfg := config.DefaultConfig()
		cfg.Preview.Style = "default"
		applyEnvConfig(&envConfig{
			Profile:   "basic",
			Workers:   3,
			InputDir:  "in",
			OutputDir: "out",
			Style:     "serif",
		}, cfg)

		assert.Equal(t, "basic", cfg.Profile)
		assert.Equal(t, 3, cfg.Workers)
		assert.Equal(t, "in", cfg.Input.DefaultDir)
		assert.Equal(t, "out", cfg.Output.DefaultDir)
		assert.Equal(t, "serif", cfg.Preview.Style)
	})

	t.Run("unset values keep config", func(t *testing.T) {
		t.Parallel()

		cfg := config.DefaultConfig()
		cfg.Output.DefaultDir = "from-file"
		applyEnvConfig(&envConfig{}, cfg)

		assert.Equal(t, "from-file", cfg.Output.DefaultDir)
		assert.Equal(t, config.DefaultConfig().Profile, cfg.Profile)
	})
}

// ---------------------------------------------------------------------------
// TestLoadEffectiveConfig - Flag, environment and file precedence
// ---------------------------------------------------------------------------

func TestLoadEffectiveConfig(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	flagPath := writeFile(t, dir, "flag.yaml", "profile: basic\noutput:\n  defaultDir: file-out\n")
	envPath := writeFile(t, dir, "env.yaml", "profile: full\n")

	t.Run("no config uses defaults", func(t *testing.T) {
		t.Parallel()

		cfg, err := loadEffectiveConfig("", &envConfig{})
		require.NoError(t, err)
		assert.Equal(t, config.DefaultConfig(), cfg)
	})

	t.Run("flag wins over env path", func(t *testing.T) {
		t.Parallel()

		cfg, err := loadEffectiveConfig(flagPath, &envConfig{ConfigPath: envPath})
		require.NoError(t, err)
		assert.Equal(t, "basic", cfg.Profile)
	})

	t.Run("env path used without flag", func(t *testing.T) {
		t.Parallel()

		cfg, err := loadEffectiveConfig("", &envConfig{ConfigPath: envPath})
		require.NoError(t, err)
		assert.Equal(t, "full", cfg.Profile)
	})

	t.Run("env values override file", func(t *testing.T) {
		t.Parallel()

		cfg, err := loadEffectiveConfig(flagPath, &envConfig{OutputDir: "env-out"})
		require.NoError(t, err)
		assert.Equal(t, "env-out", cfg.Output.DefaultDir)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := loadEffectiveConfig(filepath.Join(dir, "missing.yaml"), &envConfig{})
		require.ErrorIs(t, err, config.ErrConfigNotFound)
	})
}
