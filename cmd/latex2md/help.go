package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: latex2md <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Rewrite LaTeX-style math into $...$ Markdown math.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  convert      Convert files, directories, or stdin (default)")
	fmt.Fprintln(w, "  clip         Convert the system clipboard in place")
	fmt.Fprintln(w, "  stages       Show the stage order of a profile")
	fmt.Fprintln(w, "  config       Print the effective configuration")
	fmt.Fprintln(w, "  completion   Generate shell completion script")
	fmt.Fprintln(w, "  version      Show version information")
	fmt.Fprintln(w, "  help         Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'latex2md help <command>' for details on a specific command.")
}

// printConvertUsage prints usage for the convert command.
func printConvertUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: latex2md convert [flags] [input...]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert files or directories. Without input, read stdin and write stdout.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    File or directory (.md, .markdown, .tex, .txt by default)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>          Output file or directory")
	fmt.Fprintln(w, "  -c, --config <name>          Config file name or path")
	fmt.Fprintln(w, "  -w, --workers <n>            Parallel workers (0 = auto)")
	fmt.Fprintln(w, "  -t, --timeout <d>            Overall time limit (e.g. 30s, 2m)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Pipeline:")
	fmt.Fprintln(w, "  -p, --profile <name>         Stage profile: basic, full (default full)")
	fmt.Fprintln(w, "      --disable <list>         Stages to skip, e.g. heading-demotion")
	fmt.Fprintln(w, "      --crlf                   Normalize CRLF/CR line endings first")
	fmt.Fprintln(w, "      --nfc                    Apply Unicode NFC first")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Preview:")
	fmt.Fprintln(w, "      --html                   Write an HTML page with MathJax instead")
	fmt.Fprintln(w, "      --title <s>              Page title (default: front matter or file name)")
	fmt.Fprintln(w, "      --style <name|path>      Page stylesheet: default, serif, none, or .css file")
	fmt.Fprintln(w, "      --asset-path <dir>       Directory with styles/{name}.css overrides")
	fmt.Fprintln(w, "      --highlight-style <s>    Chroma style for code blocks (default github)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet                  Only show errors")
	fmt.Fprintln(w, "  -v, --verbose                Show per-stage debug logs")
}

// printClipUsage prints usage for the clip command.
func printClipUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: latex2md clip [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Read text from the system clipboard, convert it, and write it back.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "      --print                  Also write the converted text to stdout")
	fmt.Fprintln(w, "      --watch                  Keep running; convert each new clipboard text")
	fmt.Fprintln(w, "  -p, --profile <name>         Stage profile: basic, full")
	fmt.Fprintln(w, "      --disable <list>         Stages to skip")
	fmt.Fprintln(w, "      --crlf                   Normalize CRLF/CR line endings first")
	fmt.Fprintln(w, "      --nfc                    Apply Unicode NFC first")
	fmt.Fprintln(w, "  -c, --config <name>          Config file name or path")
	fmt.Fprintln(w, "  -q, --quiet                  Only show errors")
	fmt.Fprintln(w, "  -v, --verbose                Show per-stage debug logs")
}

// printStagesUsage prints usage for the stages command.
func printStagesUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: latex2md stages [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print the stages that run, in order, one per line.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -l, --list                   List every profile and stage name")
	fmt.Fprintln(w, "  -p, --profile <name>         Stage profile: basic, full")
	fmt.Fprintln(w, "      --disable <list>         Stages to skip")
	fmt.Fprintln(w, "      --crlf, --nfc            Include the normalization stages")
	fmt.Fprintln(w, "  -c, --config <name>          Config file name or path")
}

// printConfigUsage prints usage for the config command.
func printConfigUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: latex2md config [-c name]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print the configuration after the config file and LATEX2MD_* variables")
	fmt.Fprintln(w, "are applied, as YAML.")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) error {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return nil
	}

	switch args[0] {
	case "convert":
		printConvertUsage(env.Stdout)
	case "clip":
		printClipUsage(env.Stdout)
	case "stages":
		printStagesUsage(env.Stdout)
	case "config":
		printConfigUsage(env.Stdout)
	case "completion":
		printCompletionUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: latex2md version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: latex2md help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		printUsage(env.Stderr)
		return fmt.Errorf("%w: %q", ErrUnknownCommand, args[0])
	}
	return nil
}
