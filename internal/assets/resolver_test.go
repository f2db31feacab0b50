package assets

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeStyle creates dir/name.css with content.
func writeStyle(t *testing.T, dir, name, content string) {
	t.Helper()

	if err := os.WriteFile(filepath.Join(dir, name+".css"), []byte(content), 0600); err != nil {
		t.Fatalf("setup: %v", err)
	}
}

// ---------------------------------------------------------------------------
// DirLoader
// ---------------------------------------------------------------------------

func TestNewDirLoader(t *testing.T) {
	t.Parallel()

	file := filepath.Join(t.TempDir(), "file.css")
	if err := os.WriteFile(file, []byte("x"), 0600); err != nil {
		t.Fatalf("setup: %v", err)
	}

	tests := []struct {
		name    string
		dir     string
		wantErr bool
	}{
		{name: "valid directory", dir: t.TempDir()},
		{name: "empty path", dir: "", wantErr: true},
		{name: "nonexistent directory", dir: "/nonexistent/path/abc123xyz", wantErr: true},
		{name: "file instead of directory", dir: file, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			loader, err := NewDirLoader(tt.dir)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidStyleDir) {
					t.Errorf("NewDirLoader(%q) error = %v, want ErrInvalidStyleDir", tt.dir, err)
				}
				return
			}
			if err != nil || loader == nil {
				t.Fatalf("NewDirLoader(%q) = %v, %v", tt.dir, loader, err)
			}
		})
	}
}

func TestDirLoader_LoadStyle(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeStyle(t, dir, "brand", ".mention { color: red; }")

	loader, err := NewDirLoader(dir)
	if err != nil {
		t.Fatalf("NewDirLoader() error = %v", err)
	}

	t.Run("loads existing style", func(t *testing.T) {
		t.Parallel()

		got, err := loader.LoadStyle("brand")
		if err != nil {
			t.Fatalf("LoadStyle() error = %v", err)
		}
		if got != ".mention { color: red; }" {
			t.Errorf("LoadStyle() = %q", got)
		}
	})

	t.Run("returns ErrStyleNotFound for nonexistent", func(t *testing.T) {
		t.Parallel()

		_, err := loader.LoadStyle("missing")
		if !errors.Is(err, ErrStyleNotFound) {
			t.Errorf("LoadStyle() error = %v, want ErrStyleNotFound", err)
		}
	})

	t.Run("returns ErrInvalidAssetName for traversal", func(t *testing.T) {
		t.Parallel()

		_, err := loader.LoadStyle("../brand")
		if !errors.Is(err, ErrInvalidAssetName) {
			t.Errorf("LoadStyle() error = %v, want ErrInvalidAssetName", err)
		}
	})
}

func TestDirLoader_PathContainment(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	secretFile := filepath.Join(t.TempDir(), "secret.css")
	if err := os.WriteFile(secretFile, []byte("secret content"), 0600); err != nil {
		t.Fatalf("setup: %v", err)
	}
	if err := os.Symlink(secretFile, filepath.Join(dir, "evil.css")); err != nil {
		t.Skipf("symlink creation not supported: %v", err)
	}

	loader, err := NewDirLoader(dir)
	if err != nil {
		t.Fatalf("NewDirLoader() error = %v", err)
	}

	_, err = loader.LoadStyle("evil")
	if !errors.Is(err, ErrPathTraversal) {
		t.Errorf("LoadStyle() with symlink escape error = %v, want ErrPathTraversal", err)
	}
}

// ---------------------------------------------------------------------------
// StyleResolver
// ---------------------------------------------------------------------------

func TestNewStyleResolver(t *testing.T) {
	t.Parallel()

	t.Run("empty dir uses embedded only", func(t *testing.T) {
		t.Parallel()

		r, err := NewStyleResolver("")
		if err != nil {
			t.Fatalf("NewStyleResolver(\"\") error = %v", err)
		}
		if r.HasCustomDir() {
			t.Error("HasCustomDir() = true, want false")
		}
	})

	t.Run("valid custom dir", func(t *testing.T) {
		t.Parallel()

		r, err := NewStyleResolver(t.TempDir())
		if err != nil {
			t.Fatalf("NewStyleResolver() error = %v", err)
		}
		if !r.HasCustomDir() {
			t.Error("HasCustomDir() = false, want true")
		}
	})

	t.Run("invalid custom dir returns error", func(t *testing.T) {
		t.Parallel()

		_, err := NewStyleResolver("/nonexistent/path/abc123xyz")
		if !errors.Is(err, ErrInvalidStyleDir) {
			t.Errorf("NewStyleResolver() error = %v, want ErrInvalidStyleDir", err)
		}
	})
}

func TestStyleResolver_LoadStyle(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeStyle(t, dir, "brand", "/* brand */")
	writeStyle(t, dir, "default", "/* overridden */")

	r, err := NewStyleResolver(dir)
	if err != nil {
		t.Fatalf("NewStyleResolver() error = %v", err)
	}

	tests := []struct {
		name         string
		style        string
		wantContains string
		wantErr      error
	}{
		{name: "custom style", style: "brand", wantContains: "/* brand */"},
		{name: "custom overrides embedded", style: "default", wantContains: "/* overridden */"},
		{name: "falls back to embedded", style: "compact", wantContains: ".mention--highlight"},
		{name: "missing everywhere", style: "nowhere", wantErr: ErrStyleNotFound},
		{name: "validation error not fallen back", style: "../x", wantErr: ErrInvalidAssetName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := r.LoadStyle(tt.style)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("LoadStyle(%q) error = %v, want %v", tt.style, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadStyle(%q) error = %v", tt.style, err)
			}
			if !strings.Contains(got, tt.wantContains) {
				t.Errorf("LoadStyle(%q) = %q, want it to contain %q", tt.style, got, tt.wantContains)
			}
		})
	}
}
