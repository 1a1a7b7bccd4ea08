package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	latex2md "github.com/alnah/go-latex2md"
	"github.com/alnah/go-latex2md/internal/config"
	"github.com/alnah/go-latex2md/internal/fileutil"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput         = errors.New("no input specified")
	ErrReadInput       = errors.New("failed to read input")
	ErrWriteOutput     = errors.New("failed to write output")
	ErrCreateOutputDir = errors.New("failed to create output directory")
	ErrConversions     = errors.New("conversions failed")
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// DocumentConverter is the slice of *latex2md.Converter the CLI uses.
type DocumentConverter interface {
	ConvertDocument(input string) *latex2md.Result
	Preview(ctx context.Context, markdown string, opts latex2md.PreviewOptions) (string, error)
}

var _ DocumentConverter = (*latex2md.Converter)(nil)

// outputOptions control what convertFile writes.
type outputOptions struct {
	html  bool
	title string // explicit --title; empty derives one per file
}

// runConvert orchestrates the convert command.
func runConvert(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseConvertFlags(args, env.Stderr)
	if err != nil {
		return err
	}

	logger := newLogger(env.Stderr, levelFor(flags.common))
	warnUnknownEnvVars(logger)

	envCfg := loadEnvConfig()
	cfg, err := loadEffectiveConfig(flags.common.config, envCfg)
	if err != nil {
		return err
	}
	mergePipelineFlags(flags.pipeline, cfg)
	mergePreviewFlags(flags.preview, cfg)
	if flags.workers != 0 {
		cfg.Workers = flags.workers
	}
	if err := validateWorkers(cfg.Workers); err != nil {
		return err
	}

	conv, err := newConverter(cfg, logger)
	if err != nil {
		return err
	}

	timeout := flags.timeout
	if timeout == 0 {
		timeout = envCfg.Timeout
	}
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	opts := outputOptions{
		html:  cfg.Output.Format == config.FormatHTML,
		title: flags.preview.title,
	}

	if len(positional) == 0 && !env.StdinIsTerminal() {
		return convertStream(ctx, conv, env, flags.output, opts)
	}

	inputs := positional
	if len(inputs) == 0 {
		if cfg.Input.DefaultDir == "" {
			return ErrNoInput
		}
		inputs = []string{cfg.Input.DefaultDir}
	}

	outputDir := flags.output
	if outputDir == "" {
		outputDir = cfg.Output.DefaultDir
	}
	ext := ".md"
	if opts.html {
		ext = ".html"
	}

	files, err := discoverFiles(inputs, outputDir, ext, cfg.InputExtensions())
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("%w: no files with extensions %s in %s",
			ErrNoInput, strings.Join(cfg.InputExtensions(), ", "), strings.Join(inputs, ", "))
	}

	workers := resolvePoolSize(cfg.Workers)
	logger.Debug().Int("files", len(files)).Int("workers", workers).Msg("starting batch")

	results := convertBatch(ctx, conv, files, workers, opts)
	failed := printResultsWithWriter(results, flags.common.quiet, flags.common.verbose, env)
	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", ErrConversions, failed, len(results))
	}
	return nil
}

// convertStream converts stdin to stdout, or to outputPath when set.
func convertStream(ctx context.Context, conv DocumentConverter, env *Environment, outputPath string, opts outputOptions) error {
	data, err := io.ReadAll(env.Stdin)
	if err != nil {
		return fmt.Errorf("%w: stdin: %v", ErrReadInput, err)
	}

	res := conv.ConvertDocument(string(data))
	out := res.Markdown
	if opts.html {
		previewDir := ""
		if outputPath != "" {
			previewDir = filepath.Dir(outputPath)
		}
		out, err = conv.Preview(ctx, out, latex2md.PreviewOptions{
			Title:      documentTitle(opts.title, res, ""),
			PreviewDir: previewDir,
		})
		if err != nil {
			return err
		}
	}

	if outputPath == "" {
		if _, err := io.WriteString(env.Stdout, out); err != nil {
			return fmt.Errorf("%w: stdout: %v", ErrWriteOutput, err)
		}
		return nil
	}
	return writeOutput(outputPath, out)
}

// writeOutput creates the parent directory and writes content atomically.
func writeOutput(path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), dirPermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrCreateOutputDir, err)
	}
	// #nosec G306 -- converted notes are meant to be readable
	if err := fileutil.WriteFileAtomic(path, []byte(content), filePermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	return nil
}

// documentTitle picks the preview title: explicit flag, then a string
// "title" in the front matter, then fallback.
func documentTitle(explicit string, res *latex2md.Result, fallback string) string {
	if explicit != "" {
		return explicit
	}
	if t, ok := res.FrontMatter["title"].(string); ok && strings.TrimSpace(t) != "" {
		return strings.TrimSpace(t)
	}
	return fallback
}
