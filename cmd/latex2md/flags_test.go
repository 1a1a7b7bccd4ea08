package main

// Notes:
// - parse*Flags: we test short and long forms, repeated --disable, and the
//   mapping of parse errors to ErrUsage. pflag itself is not re-tested.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"io"
	"testing"
	"time"

	flag "github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// TestParseConvertFlags - convert command flags
// ---------------------------------------------------------------------------

func TestParseConvertFlags(t *testing.T) {
	t.Parallel()

	t.Run("all flags", func(t *testing.T) {
		t.Parallel()

		f, args, err := parseConvertFlags([]string{
			"-o", "out", "-w", "4", "-t", "30s", "-c", "notes", "-q",
			"-p", "basic", "--disable", "desize", "--disable", "latex-noise", "--crlf", "--nfc",
			"--html", "--title", "T", "--style", "serif", "--asset-path", "assets", "--highlight-style", "monokai",
			"a.tex", "dir",
		}, io.Discard)
		require.NoError(t, err)

		assert.Equal(t, []string{"a.tex", "dir"}, args)
		assert.Equal(t, "out", f.output)
		assert.Equal(t, 4, f.workers)
		assert.Equal(t, 30*time.Second, f.timeout)
		assert.Equal(t, commonFlags{config: "notes", quiet: true}, f.common)
		assert.Equal(t, pipelineFlags{profile: "basic", disable: []string{"desize", "latex-noise"}, crlf: true, nfc: true}, f.pipeline)
		assert.Equal(t, previewFlags{html: true, title: "T", style: "serif", assetPath: "assets", highlightStyle: "monokai"}, f.preview)
	})

	t.Run("comma separated disable", func(t *testing.T) {
		t.Parallel()

		f, _, err := parseConvertFlags([]string{"--disable", "desize,latex-noise"}, io.Discard)
		require.NoError(t, err)
		assert.Equal(t, []string{"desize", "latex-noise"}, f.pipeline.disable)
	})

	t.Run("bad duration", func(t *testing.T) {
		t.Parallel()

		_, _, err := parseConvertFlags([]string{"-t", "soon"}, io.Discard)
		require.ErrorIs(t, err, ErrUsage)
	})

	t.Run("help passes through", func(t *testing.T) {
		t.Parallel()

		_, _, err := parseConvertFlags([]string{"-h"}, io.Discard)
		require.ErrorIs(t, err, flag.ErrHelp)
	})
}

// ---------------------------------------------------------------------------
// TestParseOtherFlags - clip, stages and config flags
// ---------------------------------------------------------------------------

func TestParseOtherFlags(t *testing.T) {
	t.Parallel()

	clip, err := parseClipFlags([]string{"--watch", "--print", "-v"}, io.Discard)
	require.NoError(t, err)
	assert.True(t, clip.watch)
	assert.True(t, clip.print)
	assert.True(t, clip.common.verbose)

	stages, err := parseStagesFlags([]string{"-l", "-p", "full"}, io.Discard)
	require.NoError(t, err)
	assert.True(t, stages.list)
	assert.Equal(t, "full", stages.pipeline.profile)

	cfg, err := parseConfigFlags([]string{"--config", "x.yaml"}, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, "x.yaml", cfg.common.config)

	_, err = parseConfigFlags([]string{"--html"}, io.Discard)
	require.ErrorIs(t, err, ErrUsage)
}
