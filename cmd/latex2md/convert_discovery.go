package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/alnah/go-latex2md/internal/config"
)

// Sentinel errors for file discovery.
var (
	ErrInvalidExtension   = errors.New("unsupported input file extension")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
	ErrOutputConflict     = errors.New("output path conflict")
)

// FileToConvert represents a single file to process.
type FileToConvert struct {
	InputPath  string
	OutputPath string
}

// discoverFiles expands inputs into files to convert. Directories are
// walked for files whose extension is in exts; hidden directories are
// skipped. Explicit files must also carry one of exts.
// An output that would overwrite an input of the batch, or another
// output, is rejected before anything is written.
func discoverFiles(inputs []string, outputDir, outExt string, exts []string) ([]FileToConvert, error) {
	var files []FileToConvert
	for _, input := range inputs {
		found, err := discoverInput(input, outputDir, outExt, exts)
		if err != nil {
			return nil, err
		}
		files = append(files, found...)
	}
	if err := checkOutputConflicts(files); err != nil {
		return nil, err
	}
	return files, nil
}

func discoverInput(inputPath, outputDir, outExt string, exts []string) ([]FileToConvert, error) {
	info, err := os.Stat(inputPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadInput, err)
	}

	if !info.IsDir() {
		if !hasExtension(inputPath, exts) {
			return nil, fmt.Errorf("%w: %s (want one of %s)", ErrInvalidExtension, inputPath, strings.Join(exts, ", "))
		}
		outPath := resolveOutputPath(inputPath, outputDir, "", outExt)
		return []FileToConvert{{InputPath: inputPath, OutputPath: outPath}}, nil
	}

	var files []FileToConvert
	err = filepath.WalkDir(inputPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("scanning %s: %w", path, err)
		}
		if d.IsDir() {
			if path != inputPath && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if !hasExtension(path, exts) || isPreviousOutput(path) {
			return nil
		}
		outPath := resolveOutputPath(path, outputDir, inputPath, outExt)
		files = append(files, FileToConvert{InputPath: path, OutputPath: outPath})
		return nil
	})
	return files, err
}

// resolveOutputPath determines the output path for an input file.
// Without outputDir the result sits next to the input. An outputDir
// ending in outExt is taken as the output file itself. An output equal
// to its input becomes <base>.out<ext>.
func resolveOutputPath(inputPath, outputDir, baseInputDir, outExt string) string {
	ext := filepath.Ext(inputPath)
	base := strings.TrimSuffix(filepath.Base(inputPath), ext)

	var out string
	switch {
	case outputDir == "":
		out = filepath.Join(filepath.Dir(inputPath), base+outExt)
	case strings.EqualFold(filepath.Ext(outputDir), outExt):
		out = outputDir
	case baseInputDir != "":
		if relPath, err := filepath.Rel(baseInputDir, inputPath); err == nil {
			out = filepath.Join(outputDir, filepath.Dir(relPath), base+outExt)
		} else {
			out = filepath.Join(outputDir, base+outExt)
		}
	default:
		out = filepath.Join(outputDir, base+outExt)
	}

	if samePath(out, inputPath) {
		out = filepath.Join(filepath.Dir(out), base+".out"+outExt)
	}
	return out
}

// checkOutputConflicts rejects batches where an output overwrites an
// input or two inputs share an output.
func checkOutputConflicts(files []FileToConvert) error {
	inputs := make(map[string]bool, len(files))
	for _, f := range files {
		inputs[cleanAbs(f.InputPath)] = true
	}
	outputs := make(map[string]string, len(files))
	for _, f := range files {
		out := cleanAbs(f.OutputPath)
		if inputs[out] {
			return fmt.Errorf("%w: %s would overwrite input %s", ErrOutputConflict, f.InputPath, f.OutputPath)
		}
		if prev, ok := outputs[out]; ok {
			return fmt.Errorf("%w: %s and %s both write %s", ErrOutputConflict, prev, f.InputPath, f.OutputPath)
		}
		outputs[out] = f.InputPath
	}
	return nil
}

// validateWorkers checks that the worker count is within valid bounds.
func validateWorkers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d (must be >= 0, 0 means auto)", ErrInvalidWorkerCount, n)
	}
	if n > config.MaxWorkers {
		return fmt.Errorf("%w: %d (maximum is %d)", ErrInvalidWorkerCount, n, config.MaxWorkers)
	}
	return nil
}

func hasExtension(path string, exts []string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext != "" && slices.ContainsFunc(exts, func(e string) bool { return strings.EqualFold(e, ext) })
}

// isPreviousOutput reports files written by an earlier run for an input
// that shared its output name.
func isPreviousOutput(path string) bool {
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return strings.HasSuffix(base, ".out")
}

func samePath(a, b string) bool {
	return cleanAbs(a) == cleanAbs(b)
}

func cleanAbs(p string) string {
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return filepath.Clean(p)
}
