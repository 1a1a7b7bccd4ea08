package main

import (
	"errors"
	"fmt"
	"io"
	"time"

	flag "github.com/spf13/pflag"
)

// ErrUsage wraps flag parsing errors.
var ErrUsage = errors.New("invalid usage")

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// pipelineFlags edit the stage list.
type pipelineFlags struct {
	profile string
	disable []string
	crlf    bool
	nfc     bool
}

// previewFlags control HTML output.
type previewFlags struct {
	html           bool
	title          string
	style          string
	assetPath      string
	highlightStyle string
}

// convertFlags holds all flags for the convert command.
type convertFlags struct {
	common   commonFlags
	pipeline pipelineFlags
	preview  previewFlags
	output   string
	workers  int
	timeout  time.Duration
}

// clipFlags holds flags for the clip command.
type clipFlags struct {
	common   commonFlags
	pipeline pipelineFlags
	print    bool
	watch    bool
}

// stagesFlags holds flags for the stages command.
type stagesFlags struct {
	common   commonFlags
	pipeline pipelineFlags
	list     bool
}

// configFlags holds flags for the config command.
type configFlags struct {
	common commonFlags
}

func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show per-stage debug logs")
}

func addPipelineFlags(fs *flag.FlagSet, f *pipelineFlags) {
	fs.StringVarP(&f.profile, "profile", "p", "", "stage profile: basic, full")
	fs.StringSliceVar(&f.disable, "disable", nil, "stages to skip (comma-separated)")
	fs.BoolVar(&f.crlf, "crlf", false, "normalize CRLF and CR line endings first")
	fs.BoolVar(&f.nfc, "nfc", false, "apply Unicode NFC before the rewrite stages")
}

func addPreviewFlags(fs *flag.FlagSet, f *previewFlags) {
	fs.BoolVar(&f.html, "html", false, "write an HTML preview instead of Markdown")
	fs.StringVar(&f.title, "title", "", "preview page title (default: front matter title or file name)")
	fs.StringVar(&f.style, "style", "", "preview stylesheet name, .css path, or none")
	fs.StringVar(&f.assetPath, "asset-path", "", "directory with styles/{name}.css overrides")
	fs.StringVar(&f.highlightStyle, "highlight-style", "", "chroma style for code blocks")
}

// newFlagSet creates a FlagSet that reports errors instead of exiting.
func newFlagSet(name string, w io.Writer, usage func(io.Writer)) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(w)
	fs.Usage = func() { usage(w) }
	return fs
}

// parseArgs parses args and maps pflag errors to ErrUsage.
// flag.ErrHelp passes through so callers can exit cleanly.
func parseArgs(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	return nil
}

func buildConvertFlagSet(w io.Writer, f *convertFlags) *flag.FlagSet {
	fs := newFlagSet("convert", w, printConvertUsage)
	fs.StringVarP(&f.output, "output", "o", "", "output file or directory")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.DurationVarP(&f.timeout, "timeout", "t", 0, "overall time limit (e.g. 30s, 2m)")
	addCommonFlags(fs, &f.common)
	addPipelineFlags(fs, &f.pipeline)
	addPreviewFlags(fs, &f.preview)
	return fs
}

// parseConvertFlags parses convert command flags and returns positional args.
func parseConvertFlags(args []string, w io.Writer) (*convertFlags, []string, error) {
	f := &convertFlags{}
	fs := buildConvertFlagSet(w, f)
	if err := parseArgs(fs, args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

func buildClipFlagSet(w io.Writer, f *clipFlags) *flag.FlagSet {
	fs := newFlagSet("clip", w, printClipUsage)
	fs.BoolVar(&f.print, "print", false, "also write the converted text to stdout")
	fs.BoolVar(&f.watch, "watch", false, "keep running and convert every new clipboard text")
	addCommonFlags(fs, &f.common)
	addPipelineFlags(fs, &f.pipeline)
	return fs
}

func parseClipFlags(args []string, w io.Writer) (*clipFlags, error) {
	f := &clipFlags{}
	fs := buildClipFlagSet(w, f)
	if err := parseArgs(fs, args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("%w: clip takes no arguments, got %q", ErrUsage, fs.Arg(0))
	}
	return f, nil
}

func buildStagesFlagSet(w io.Writer, f *stagesFlags) *flag.FlagSet {
	fs := newFlagSet("stages", w, printStagesUsage)
	fs.BoolVarP(&f.list, "list", "l", false, "list every profile and stage name")
	addCommonFlags(fs, &f.common)
	addPipelineFlags(fs, &f.pipeline)
	return fs
}

func parseStagesFlags(args []string, w io.Writer) (*stagesFlags, error) {
	f := &stagesFlags{}
	fs := buildStagesFlagSet(w, f)
	if err := parseArgs(fs, args); err != nil {
		return nil, err
	}
	return f, nil
}

func buildConfigFlagSet(w io.Writer, f *configFlags) *flag.FlagSet {
	fs := newFlagSet("config", w, printConfigUsage)
	addCommonFlags(fs, &f.common)
	return fs
}

func parseConfigFlags(args []string, w io.Writer) (*configFlags, error) {
	f := &configFlags{}
	fs := buildConfigFlagSet(w, f)
	if err := parseArgs(fs, args); err != nil {
		return nil, err
	}
	return f, nil
}
