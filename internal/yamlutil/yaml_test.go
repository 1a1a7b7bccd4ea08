package yamlutil_test

// Notes:
// - Marshal's error branch is not tested: yaml.Marshal only fails on
//   channels and funcs, which no caller passes.
// - TestInputSizeLimit mutates MaxInputSize and therefore does not run in
//   parallel.

import (
	"errors"
	"strings"
	"testing"

	"github.com/alnah/go-latex2md/internal/yamlutil"
)

type testConfig struct {
	Profile string   `yaml:"profile"`
	Workers int      `yaml:"workers"`
	Disable []string `yaml:"disable"`
}

// ---------------------------------------------------------------------------
// TestUnmarshalStrict - config-style decoding
// ---------------------------------------------------------------------------

func TestUnmarshalStrict(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    []byte
		dest    any
		wantErr error
		wantMsg string
	}{
		{
			name: "known fields",
			data: []byte("profile: basic\nworkers: 2\ndisable: [whitespace]"),
			dest: &testConfig{},
		},
		{
			name:    "unknown field",
			data:    []byte("profile: basic\nprofil: full"),
			dest:    &testConfig{},
			wantMsg: "yamlutil:",
		},
		{
			name:    "nil data",
			data:    nil,
			dest:    &testConfig{},
			wantErr: yamlutil.ErrNilData,
		},
		{
			name:    "nil destination",
			data:    []byte("profile: basic"),
			dest:    nil,
			wantErr: yamlutil.ErrNilDestination,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := yamlutil.UnmarshalStrict(tt.data, tt.dest)
			switch {
			case tt.wantErr != nil:
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("error = %v, want %v", err, tt.wantErr)
				}
			case tt.wantMsg != "":
				if err == nil || !strings.Contains(err.Error(), tt.wantMsg) {
					t.Fatalf("error = %v, want containing %q", err, tt.wantMsg)
				}
			default:
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				cfg := tt.dest.(*testConfig)
				if cfg.Profile != "basic" || cfg.Workers != 2 || len(cfg.Disable) != 1 {
					t.Errorf("decoded = %+v", cfg)
				}
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestUnmarshalMapping - front matter decoding
// ---------------------------------------------------------------------------

func TestUnmarshalMapping(t *testing.T) {
	t.Parallel()

	t.Run("mapping", func(t *testing.T) {
		t.Parallel()
		m, err := yamlutil.UnmarshalMapping([]byte("title: Notes\ntags: [a, b]\nweek: 3"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if m["title"] != "Notes" {
			t.Errorf("title = %v, want Notes", m["title"])
		}
		if tags, ok := m["tags"].([]any); !ok || len(tags) != 2 {
			t.Errorf("tags = %#v, want two items", m["tags"])
		}
	})

	t.Run("scalar rejected", func(t *testing.T) {
		t.Parallel()
		_, err := yamlutil.UnmarshalMapping([]byte("just text"))
		if !errors.Is(err, yamlutil.ErrNotMapping) {
			t.Errorf("error = %v, want ErrNotMapping", err)
		}
	})

	t.Run("sequence rejected", func(t *testing.T) {
		t.Parallel()
		_, err := yamlutil.UnmarshalMapping([]byte("- a\n- b"))
		if !errors.Is(err, yamlutil.ErrNotMapping) {
			t.Errorf("error = %v, want ErrNotMapping", err)
		}
	})

	t.Run("syntax error keeps prefix", func(t *testing.T) {
		t.Parallel()
		_, err := yamlutil.UnmarshalMapping([]byte("title: [unclosed"))
		if err == nil || !strings.HasPrefix(err.Error(), "yamlutil:") {
			t.Errorf("error = %v, want yamlutil prefix", err)
		}
	})

	t.Run("empty", func(t *testing.T) {
		t.Parallel()
		_, err := yamlutil.UnmarshalMapping(nil)
		if !errors.Is(err, yamlutil.ErrNilData) {
			t.Errorf("error = %v, want ErrNilData", err)
		}
	})
}

func TestMarshal(t *testing.T) {
	t.Parallel()

	data, err := yamlutil.Marshal(&testConfig{Profile: "full", Workers: 4})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s := string(data)
	for _, want := range []string{"profile: full", "workers: 4"} {
		if !strings.Contains(s, want) {
			t.Errorf("output missing %q, got: %s", want, s)
		}
	}
}

// ---------------------------------------------------------------------------
// TestInputSizeLimit - MaxInputSize enforcement
// ---------------------------------------------------------------------------

func TestInputSizeLimit(t *testing.T) {
	originalMax := yamlutil.MaxInputSize
	t.Cleanup(func() { yamlutil.MaxInputSize = originalMax })

	yamlutil.MaxInputSize = 50
	data := make([]byte, 100)
	copy(data, "profile: x")

	err := yamlutil.UnmarshalStrict(data, &testConfig{})
	if !errors.Is(err, yamlutil.ErrInputTooLarge) {
		t.Fatalf("UnmarshalStrict error = %v, want ErrInputTooLarge", err)
	}
	if msg := err.Error(); !strings.Contains(msg, "100 bytes") || !strings.Contains(msg, "max 50") {
		t.Errorf("error should report sizes, got: %s", msg)
	}

	_, err = yamlutil.UnmarshalMapping(data)
	if !errors.Is(err, yamlutil.ErrInputTooLarge) {
		t.Errorf("UnmarshalMapping error = %v, want ErrInputTooLarge", err)
	}
}
