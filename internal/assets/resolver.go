package assets

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/alnah/go-latex2md/internal/fileutil"
)

// AssetResolver tries a custom directory first and falls back to the
// embedded styles when the custom directory lacks the requested name.
type AssetResolver struct {
	custom   AssetLoader // nil without a custom path
	embedded AssetLoader
}

// NewAssetResolver creates an AssetResolver. An empty customBasePath uses
// the embedded styles only; an invalid one is an error.
func NewAssetResolver(customBasePath string) (*AssetResolver, error) {
	resolver := &AssetResolver{embedded: NewEmbeddedLoader()}
	if customBasePath != "" {
		fsLoader, err := NewFilesystemLoader(customBasePath)
		if err != nil {
			return nil, err
		}
		resolver.custom = fsLoader
	}
	return resolver, nil
}

// LoadStyle loads a style by name, custom directory first.
// Only not-found errors fall back; validation and I/O errors are returned.
func (r *AssetResolver) LoadStyle(name string) (string, error) {
	if r.custom == nil {
		return r.embedded.LoadStyle(name)
	}
	content, err := r.custom.LoadStyle(name)
	if err == nil {
		return content, nil
	}
	if !errors.Is(err, ErrStyleNotFound) {
		return "", err
	}
	return r.embedded.LoadStyle(name)
}

// ResolveStyle returns the CSS for a style name or a .css file path.
// Empty selects DefaultStyleName; NoStyle returns no CSS.
func (r *AssetResolver) ResolveStyle(nameOrPath string) (string, error) {
	switch {
	case nameOrPath == "":
		return r.LoadStyle(DefaultStyleName)
	case nameOrPath == NoStyle:
		return "", nil
	case fileutil.IsFilePath(nameOrPath) || strings.HasSuffix(nameOrPath, ".css"):
		content, err := os.ReadFile(nameOrPath) // #nosec G304 -- stylesheet path is user-provided
		if err != nil {
			if os.IsNotExist(err) {
				return "", fmt.Errorf("%w: %s", ErrStyleNotFound, nameOrPath)
			}
			return "", fmt.Errorf("%w: %v", ErrAssetRead, err)
		}
		return string(content), nil
	default:
		return r.LoadStyle(nameOrPath)
	}
}

// HasCustomLoader reports whether a custom directory is configured.
func (r *AssetResolver) HasCustomLoader() bool {
	return r.custom != nil
}

var _ AssetLoader = (*AssetResolver)(nil)
