package main

// Notes:
// - runStages: we test the effective order per profile and the effect of
//   --disable and the opt-in stages. Exact order is pinned by the pipeline
//   package; here we check membership and relative position.
// - runConfig: we test that the effective configuration round-trips as YAML.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	latex2md "github.com/alnah/go-latex2md"
	"github.com/alnah/go-latex2md/internal/config"
	"github.com/alnah/go-latex2md/internal/yamlutil"
)

func stageLines(out string) []string {
	return strings.Fields(out)
}

// ---------------------------------------------------------------------------
// TestRunStages - Stage order output
// ---------------------------------------------------------------------------

func TestRunStages(t *testing.T) {
	t.Parallel()

	t.Run("full profile", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv()
		require.NoError(t, runStages(nil, env.Environment))

		names := stageLines(env.stdout.String())
		assert.Contains(t, names, "heading-demotion")
		assert.NotContains(t, names, "line-endings")
		assert.Less(t, slices.Index(names, "latex-delimiters"), slices.Index(names, "inline-math"))
	})

	t.Run("basic profile drops heading demotion", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv()
		require.NoError(t, runStages([]string{"-p", "basic"}, env.Environment))
		assert.NotContains(t, stageLines(env.stdout.String()), "heading-demotion")
	})

	t.Run("disable and opt-in", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv()
		require.NoError(t, runStages([]string{"--disable", "math-internals", "--crlf", "--nfc"}, env.Environment))

		names := stageLines(env.stdout.String())
		assert.NotContains(t, names, "math-internals")
		assert.Equal(t, "line-endings", names[0])
		assert.Contains(t, names, "unicode-nfc")
	})

	t.Run("list", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv()
		require.NoError(t, runStages([]string{"--list"}, env.Environment))

		out := env.stdout.String()
		assert.Contains(t, out, "Profiles: "+strings.Join(latex2md.Profiles(), ", "))
		for _, name := range latex2md.StageNames() {
			assert.Contains(t, out, "  "+name+"\n")
		}
	})

	t.Run("unknown stage", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv()
		err := runStages([]string{"--disable", "nope"}, env.Environment)
		require.ErrorIs(t, err, latex2md.ErrUnknownStage)
	})
}

// ---------------------------------------------------------------------------
// TestRunConfig - Effective configuration output
// ---------------------------------------------------------------------------

func TestRunConfig(t *testing.T) {
	t.Parallel()

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv()
		require.NoError(t, runConfig(nil, env.Environment))

		var got config.Config
		require.NoError(t, yamlutil.UnmarshalStrict(env.stdout.Bytes(), &got))
		assert.Equal(t, config.DefaultConfig().Profile, got.Profile)
	})

	t.Run("from file", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, t.TempDir(), "notes.yaml", "profile: basic\nworkers: 3\n")
		env := newTestEnv()
		require.NoError(t, runConfig([]string{"-c", path}, env.Environment))

		var got config.Config
		require.NoError(t, yamlutil.UnmarshalStrict(env.stdout.Bytes(), &got))
		assert.Equal(t, "basic", got.Profile)
		assert.Equal(t, 3, got.Workers)
	})
}
