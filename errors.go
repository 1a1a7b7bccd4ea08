package latex2md

import (
	"github.com/alnah/go-latex2md/internal/assets"
	"github.com/alnah/go-latex2md/internal/pipeline"
)

// Sentinel errors for library operations.
var (
	// Construction errors from NewConverter.
	ErrUnknownProfile = pipeline.ErrUnknownProfile
	ErrUnknownStage   = pipeline.ErrUnknownStage

	// Preview style errors from NewConverter.
	ErrStyleNotFound    = assets.ErrStyleNotFound
	ErrInvalidAssetPath = assets.ErrInvalidBasePath
	ErrInvalidAssetName = assets.ErrInvalidAssetName

	// Preview errors.
	ErrHTMLConversion = pipeline.ErrHTMLConversion
	ErrHighlightCSS   = pipeline.ErrHighlightCSS
)
