package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"
)

// ---------------------------------------------------------------------------
// Test Infrastructure - environment and clipboard fakes
// ---------------------------------------------------------------------------

// testEnv bundles an Environment with its captured output.
type testEnv struct {
	*Environment
	stdout *bytes.Buffer
	stderr *bytes.Buffer
	clip   *fakeClipboard
}

// newTestEnv returns an environment with a terminal stdin.
func newTestEnv() *testEnv {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	clip := &fakeClipboard{}
	return &testEnv{
		Environment: &Environment{
			Now:             func() time.Time { return time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC) },
			Stdin:           strings.NewReader(""),
			Stdout:          stdout,
			Stderr:          stderr,
			StdinIsTerminal: func() bool { return true },
			Clipboard:       clip,
		},
		stdout: stdout,
		stderr: stderr,
		clip:   clip,
	}
}

// newPipedEnv returns an environment whose stdin carries input.
func newPipedEnv(input string) *testEnv {
	env := newTestEnv()
	env.Stdin = strings.NewReader(input)
	env.StdinIsTerminal = func() bool { return false }
	return env
}

// fakeClipboard is an in-memory Clipboard.
type fakeClipboard struct {
	mu      sync.Mutex
	data    []byte
	writes  int
	readErr error
	events  chan []byte
}

func (c *fakeClipboard) ReadText() ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.readErr != nil {
		return nil, c.readErr
	}
	return append([]byte(nil), c.data...), nil
}

func (c *fakeClipboard) WriteText(data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data = append([]byte(nil), data...)
	c.writes++
	return nil
}

func (c *fakeClipboard) WatchText(_ context.Context) (<-chan []byte, error) {
	if c.readErr != nil {
		return nil, c.readErr
	}
	return c.events, nil
}

func (c *fakeClipboard) text() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return string(c.data)
}

func (c *fakeClipboard) writeCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.writes
}

var _ Clipboard = (*fakeClipboard)(nil)

// writeFile creates dir/name with content and returns its path.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// readFile returns the content of path.
func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path) // #nosec G304 -- test path
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}
