// Package assets provides the stylesheets embedded in HTML previews.
//
// # Loader Architecture
//
//	StyleLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - built-in styles compiled in with go:embed
//	    ├── DirLoader         - *.css files from a directory on disk
//	    └── StyleResolver     - custom directory first, embedded fallback
//
// The built-in styles are "default" and "compact". Both carry rules for the
// mention, highlight, search, channel-link and emoji markup the preview
// renderer emits.
//
// # Security
//
// Style names are validated to prevent path traversal. DirLoader resolves
// symlinks and verifies every path stays within its directory.
package assets
