package assets

import (
	"fmt"
	"strings"
	"unicode"
)

// maxNameLength bounds style names.
const maxNameLength = 64

// ValidateAssetName checks that name can be used as a file stem.
// Separators, dots, whitespace and control characters are rejected.
func ValidateAssetName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	if len(name) > maxNameLength {
		return fmt.Errorf("%w: longer than %d characters", ErrInvalidAssetName, maxNameLength)
	}
	if strings.ContainsAny(name, "/\\.") || strings.IndexFunc(name, func(r rune) bool {
		return unicode.IsSpace(r) || unicode.IsControl(r)
	}) >= 0 {
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	return nil
}
