package main

import (
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/alnah/go-latex2md/internal/config"
)

// envPrefix marks the variables this tool reads.
const envPrefix = "LATEX2MD_"

// envConfig holds configuration from environment variables.
type envConfig struct {
	ConfigPath string        // LATEX2MD_CONFIG: config file name or path
	Profile    string        // LATEX2MD_PROFILE: basic or full
	Workers    int           // LATEX2MD_WORKERS: parallel workers
	InputDir   string        // LATEX2MD_INPUT_DIR: default input directory
	OutputDir  string        // LATEX2MD_OUTPUT_DIR: default output directory
	Style      string        // LATEX2MD_STYLE: preview stylesheet
	Timeout    time.Duration // LATEX2MD_TIMEOUT: overall time limit
}

// knownEnvVars lists valid LATEX2MD_* environment variables.
var knownEnvVars = map[string]bool{
	"LATEX2MD_CONFIG":     true,
	"LATEX2MD_PROFILE":    true,
	"LATEX2MD_WORKERS":    true,
	"LATEX2MD_INPUT_DIR":  true,
	"LATEX2MD_OUTPUT_DIR": true,
	"LATEX2MD_STYLE":      true,
	"LATEX2MD_TIMEOUT":    true,
}

// loadEnvConfig reads configuration from environment variables.
// Unparsable numbers and durations are ignored.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath: os.Getenv("LATEX2MD_CONFIG"),
		Profile:    os.Getenv("LATEX2MD_PROFILE"),
		InputDir:   os.Getenv("LATEX2MD_INPUT_DIR"),
		OutputDir:  os.Getenv("LATEX2MD_OUTPUT_DIR"),
		Style:      os.Getenv("LATEX2MD_STYLE"),
	}

	if workers := os.Getenv("LATEX2MD_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}
	if timeout := os.Getenv("LATEX2MD_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil && d > 0 {
			cfg.Timeout = d
		}
	}
	return cfg
}

// unknownEnvVars returns the sorted LATEX2MD_* names that are not recognized.
func unknownEnvVars(environ []string) []string {
	var unknown []string
	for _, kv := range environ {
		if !strings.HasPrefix(kv, envPrefix) {
			continue
		}
		name, _, _ := strings.Cut(kv, "=")
		if !knownEnvVars[name] {
			unknown = append(unknown, name)
		}
	}
	sort.Strings(unknown)
	return unknown
}

// warnUnknownEnvVars logs a warning per unrecognized LATEX2MD_* variable.
func warnUnknownEnvVars(logger zerolog.Logger) {
	for _, name := range unknownEnvVars(os.Environ()) {
		logger.Warn().Str("name", name).Msg("unknown environment variable (typo?)")
	}
}

// applyEnvConfig overrides config file values with set environment
// variables. Flags are merged afterwards and win over both.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.Profile != "" {
		cfg.Profile = env.Profile
	}
	if env.Workers > 0 {
		cfg.Workers = env.Workers
	}
	if env.InputDir != "" {
		cfg.Input.DefaultDir = env.InputDir
	}
	if env.OutputDir != "" {
		cfg.Output.DefaultDir = env.OutputDir
	}
	if env.Style != "" {
		cfg.Preview.Style = env.Style
	}
}
