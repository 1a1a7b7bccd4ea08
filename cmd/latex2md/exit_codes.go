package main

import (
	"errors"
	"os"

	latex2md "github.com/alnah/go-latex2md"
	"github.com/alnah/go-latex2md/internal/config"
	"github.com/alnah/go-latex2md/internal/fileutil"
	"github.com/alnah/go-latex2md/internal/hints"
)

// Exit codes for the latex2md CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess   = 0 // Successful conversion
	ExitGeneral   = 1 // General/unexpected error
	ExitUsage     = 2 // Invalid flags, config, or names
	ExitIO        = 3 // File not found, permission denied
	ExitClipboard = 4 // Clipboard unavailable
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	if errors.Is(err, ErrClipboard) {
		return ExitClipboard
	}

	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, fileutil.ErrEmptyPath) ||
		errors.Is(err, ErrReadInput) ||
		errors.Is(err, ErrWriteOutput) ||
		errors.Is(err, ErrCreateOutputDir) ||
		errors.Is(err, ErrNoInput) {
		return ExitIO
	}

	if errors.Is(err, ErrUsage) ||
		errors.Is(err, ErrUnknownCommand) ||
		errors.Is(err, ErrUnsupportedShell) ||
		errors.Is(err, ErrInvalidWorkerCount) ||
		errors.Is(err, ErrInvalidExtension) ||
		errors.Is(err, ErrOutputConflict) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidConfig) ||
		errors.Is(err, latex2md.ErrUnknownProfile) ||
		errors.Is(err, latex2md.ErrUnknownStage) ||
		errors.Is(err, latex2md.ErrStyleNotFound) ||
		errors.Is(err, latex2md.ErrInvalidAssetPath) ||
		errors.Is(err, latex2md.ErrInvalidAssetName) ||
		errors.Is(err, latex2md.ErrHighlightCSS) {
		return ExitUsage
	}

	return ExitGeneral
}

// hintFor returns the actionable hint for err, or "".
func hintFor(err error) string {
	switch {
	case errors.Is(err, ErrClipboard):
		return hints.ForClipboard()
	case errors.Is(err, ErrNoInput):
		return hints.ForNoInput()
	case errors.Is(err, ErrCreateOutputDir):
		return hints.ForOutputDirectory()
	case errors.Is(err, latex2md.ErrUnknownProfile):
		return hints.ForUnknownName(latex2md.Profiles())
	case errors.Is(err, latex2md.ErrUnknownStage):
		return hints.ForUnknownName(latex2md.StageNames())
	case errors.Is(err, latex2md.ErrStyleNotFound):
		return hints.ForUnknownName(latex2md.PreviewStyles())
	}
	return ""
}
