package main

// Notes:
// - newLogger: we test level filtering and that output to a buffer carries
//   no color escapes. Timestamp formatting is left to zerolog.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

// ---------------------------------------------------------------------------
// TestLevelFor - Flag to level mapping
// ---------------------------------------------------------------------------

func TestLevelFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		f    commonFlags
		want zerolog.Level
	}{
		{"default", commonFlags{}, zerolog.WarnLevel},
		{"verbose", commonFlags{verbose: true}, zerolog.DebugLevel},
		{"quiet", commonFlags{quiet: true}, zerolog.Disabled},
		{"quiet wins", commonFlags{quiet: true, verbose: true}, zerolog.Disabled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, levelFor(tt.f))
		})
	}
}

func TestLevelFromArgs(t *testing.T) {
	t.Parallel()

	assert.Equal(t, zerolog.DebugLevel, levelFromArgs([]string{"convert", "-v", "a.tex"}))
	assert.Equal(t, zerolog.Disabled, levelFromArgs([]string{"clip", "--quiet"}))
	assert.Equal(t, zerolog.WarnLevel, levelFromArgs([]string{"convert"}))
}

// ---------------------------------------------------------------------------
// TestNewLogger - Console output
// ---------------------------------------------------------------------------

func TestNewLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := newLogger(&buf, zerolog.WarnLevel)

	logger.Debug().Msg("hidden")
	logger.Warn().Str("name", "LATEX2MD_STYEL").Msg("unknown environment variable")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "unknown environment variable")
	assert.Contains(t, out, "name=LATEX2MD_STYEL")
	assert.NotContains(t, out, "\x1b[")
}
