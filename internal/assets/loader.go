package assets

// Style names with special meaning.
const (
	DefaultStyleName = "default"
	NoStyle          = "none" // preview without a page stylesheet
)

// AssetLoader loads preview stylesheets by name (without .css).
// Implementations return ErrStyleNotFound for unknown names and
// ErrInvalidAssetName for names that are not plain file stems.
type AssetLoader interface {
	LoadStyle(name string) (string, error)
}
