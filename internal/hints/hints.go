// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"os"
	"runtime"
	"strings"
)

// HasDisplay reports whether a graphical session is likely available.
// Replaceable in tests.
var HasDisplay = func() bool {
	if runtime.GOOS != "linux" && runtime.GOOS != "freebsd" {
		return true
	}
	return os.Getenv("DISPLAY") != "" || os.Getenv("WAYLAND_DISPLAY") != ""
}

// ForClipboard returns hints for clipboard access errors.
func ForClipboard() string {
	var hints []string
	if !HasDisplay() {
		hints = append(hints, "no DISPLAY or WAYLAND_DISPLAY set; the clipboard needs a graphical session")
	}
	if runtime.GOOS == "linux" {
		hints = append(hints, "install the X11 development libraries (libx11-dev) if missing")
	}
	hints = append(hints, "pipe text instead: latex2md convert < in.md > out.md")
	return formatHints(hints)
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config and creating a config in the user config directory.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"
	for _, p := range searchedPaths {
		if strings.Contains(toSlash(p), "/go-latex2md/") {
			hint += " or create " + p
			break
		}
	}
	return format(hint)
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForUnknownName returns hints listing the valid names for a profile or stage.
func ForUnknownName(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", "))
}

// ForNoInput returns a hint when convert has nothing to read.
func ForNoInput() string {
	return format("pass files or directories, pipe text on stdin, or set input.defaultDir in the config")
}

func toSlash(p string) string {
	return strings.ReplaceAll(p, `\`, "/")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
