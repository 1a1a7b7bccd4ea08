package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"slices"
	"strings"

	flag "github.com/spf13/pflag"
	"go.uber.org/automaxprocs/maxprocs"

	"github.com/alnah/go-latex2md/internal/fileutil"
)

// Version is set at build time via ldflags.
var Version = "dev"

// ErrUnknownCommand is returned for an argument that is neither a command
// nor an input path.
var ErrUnknownCommand = errors.New("unknown command")

// commands lists the subcommand names.
var commands = []string{"convert", "clip", "stages", "config", "completion", "version", "help"}

func main() {
	env := DefaultEnv()

	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply.
	logger := newLogger(env.Stderr, levelFromArgs(os.Args[1:]))
	_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...any) {
		logger.Debug().Msgf(format, args...)
	}))

	os.Exit(runMain(os.Args, env))
}

// runMain runs the CLI and returns the process exit code.
func runMain(args []string, env *Environment) int {
	ctx, stop := notifyContext(context.Background())
	defer stop()

	err := run(ctx, args[1:], env)
	if err == nil || errors.Is(err, flag.ErrHelp) {
		return ExitSuccess
	}
	fmt.Fprintf(env.Stderr, "error: %v%s\n", err, hintFor(err))
	return exitCodeFor(err)
}

// run dispatches to a command. A first argument that is not a command
// but looks like input or a flag runs an implicit convert.
func run(ctx context.Context, args []string, env *Environment) error {
	if len(args) == 0 {
		if !env.StdinIsTerminal() {
			return runConvert(ctx, nil, env)
		}
		printUsage(env.Stdout)
		return nil
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "convert":
		return runConvert(ctx, rest, env)
	case "clip":
		return runClip(ctx, rest, env)
	case "stages":
		return runStages(rest, env)
	case "config":
		return runConfig(rest, env)
	case "completion":
		return runCompletion(rest, env)
	case "version", "--version":
		fmt.Fprintf(env.Stdout, "latex2md %s\n", Version)
		return nil
	case "help", "-h", "--help":
		return runHelp(rest, env)
	}

	if strings.HasPrefix(cmd, "-") || looksLikeInput(cmd) {
		return runConvert(ctx, args, env)
	}
	printUsage(env.Stderr)
	return fmt.Errorf("%w: %q", ErrUnknownCommand, cmd)
}

// notifyContext returns a context canceled on the first shutdown signal.
// Call stop to release resources.
func notifyContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, shutdownSignals...)
}

// isCommand reports whether arg names a subcommand.
func isCommand(arg string) bool {
	return slices.Contains(commands, arg)
}

// looksLikeInput reports whether arg is plausibly a file or directory:
// it exists, contains a path separator, or has an extension.
func looksLikeInput(arg string) bool {
	if arg == "" || isCommand(arg) {
		return false
	}
	if fileutil.FileExists(arg) || fileutil.DirExists(arg) {
		return true
	}
	return strings.ContainsAny(arg, `/\`) || strings.Contains(arg, ".")
}
