package main

import (
	"io"
	"slices"

	"github.com/rs/zerolog"
)

// newLogger builds the stderr diagnostic logger.
// Results and summaries are not logged; they go to Stdout/Stderr directly.
func newLogger(w io.Writer, level zerolog.Level) zerolog.Logger {
	out := zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    !isTerminal(w),
		TimeFormat: "15:04:05",
	}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}

// levelFor maps -q/-v to a log level; quiet wins.
func levelFor(f commonFlags) zerolog.Level {
	switch {
	case f.quiet:
		return zerolog.Disabled
	case f.verbose:
		return zerolog.DebugLevel
	default:
		return zerolog.WarnLevel
	}
}

// levelFromArgs scans raw arguments for -q/-v before any command parses
// them, so start-up messages honor the same switches.
func levelFromArgs(args []string) zerolog.Level {
	return levelFor(commonFlags{
		quiet:   slices.Contains(args, "-q") || slices.Contains(args, "--quiet"),
		verbose: slices.Contains(args, "-v") || slices.Contains(args, "--verbose"),
	})
}
