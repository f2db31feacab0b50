package assets

import "errors"

// StyleResolver tries a custom style directory first and falls back to the
// embedded styles when the custom directory lacks the requested name.
type StyleResolver struct {
	custom   StyleLoader // nil without a custom directory
	embedded StyleLoader
}

// NewStyleResolver creates a StyleResolver. An empty styleDir uses only the
// embedded styles; a non-empty one must be a readable directory.
func NewStyleResolver(styleDir string) (*StyleResolver, error) {
	r := &StyleResolver{embedded: NewEmbeddedLoader()}

	if styleDir != "" {
		dir, err := NewDirLoader(styleDir)
		if err != nil {
			return nil, err
		}
		r.custom = dir
	}

	return r, nil
}

// LoadStyle loads a stylesheet, custom directory first.
// Only ErrStyleNotFound falls back; validation and I/O errors are returned.
func (r *StyleResolver) LoadStyle(name string) (string, error) {
	if r.custom == nil {
		return r.embedded.LoadStyle(name)
	}

	css, err := r.custom.LoadStyle(name)
	if err == nil {
		return css, nil
	}
	if !errors.Is(err, ErrStyleNotFound) {
		return "", err
	}

	return r.embedded.LoadStyle(name)
}

// HasCustomDir reports whether a custom style directory is configured.
func (r *StyleResolver) HasCustomDir() bool {
	return r.custom != nil
}

// Compile-time interface check.
var _ StyleLoader = (*StyleResolver)(nil)
