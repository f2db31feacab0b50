package assets

// DefaultStyleName is the name of the built-in stylesheet.
const DefaultStyleName = "default"

// StyleLoader loads a CSS stylesheet by name (without .css extension).
// Implementations return ErrStyleNotFound when the style does not exist and
// ErrInvalidAssetName when the name is unsafe.
type StyleLoader interface {
	LoadStyle(name string) (string, error)
}

// defaultLoader serves the package-level LoadStyle.
var defaultLoader = NewEmbeddedLoader()

// LoadStyle loads a built-in stylesheet by name.
func LoadStyle(name string) (string, error) {
	return defaultLoader.LoadStyle(name)
}
