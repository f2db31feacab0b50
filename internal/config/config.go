package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/teamup/mdtransform/internal/fileutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// Field length and count limits.
const (
	MaxKeyLength    = 64   // Usernames and highlight keywords
	MaxKeys         = 256  // Per section
	MaxSearchLength = 256  // One search term or quoted phrase
	MaxSearchTerms  = 64   // Search terms
	MaxDirLength    = 4096 // PATH_MAX on Linux
	MaxStyleLength  = 50   // Style name
	MaxWorkers      = 256  // Upper bound for the batch worker count
)

// Output formats.
const (
	FormatTree = "tree"
	FormatJSON = "json"
	FormatHTML = "html"
)

// Built-in preview stylesheets.
const (
	StyleDefault = "default"
	StyleCompact = "compact"
)

// Config holds the configuration for a transform run.
type Config struct {
	Mentions   []KeyConfig  `yaml:"mentions"`
	Highlights []KeyConfig  `yaml:"highlights"`
	Search     []string     `yaml:"search"`
	Output     OutputConfig `yaml:"output"`
	Workers    int          `yaml:"workers"` // 0 = GOMAXPROCS
	Verify     bool         `yaml:"verify"`
}

// KeyConfig is one mention or highlight key.
type KeyConfig struct {
	Key           string `yaml:"key"`
	CaseSensitive bool   `yaml:"caseSensitive"`
}

// OutputConfig defines how results are written.
type OutputConfig struct {
	Format   string `yaml:"format"`   // "tree", "json", "html" (default: "tree")
	Style    string `yaml:"style"`    // "default", "compact", or a name in StyleDir (html only)
	StyleDir string `yaml:"styleDir"` // Directory of custom {name}.css files
	Dir      string `yaml:"dir"`      // Empty = stdout
}

// Validate checks field lengths and enum values.
// Called automatically by LoadConfig, but available for callers
// who build a Config by hand.
func (c *Config) Validate() error {
	if err := validateKeys("mentions", c.Mentions); err != nil {
		return err
	}
	if err := validateKeys("highlights", c.Highlights); err != nil {
		return err
	}

	if len(c.Search) > MaxSearchTerms {
		return fmt.Errorf("%w: search: %d terms (max %d)", ErrInvalidValue, len(c.Search), MaxSearchTerms)
	}
	for i, term := range c.Search {
		if err := validateFieldLength(fmt.Sprintf("search[%d]", i), term, MaxSearchLength); err != nil {
			return err
		}
	}

	if err := validateFieldLength("output.dir", c.Output.Dir, MaxDirLength); err != nil {
		return err
	}
	if err := validateFieldLength("output.styleDir", c.Output.StyleDir, MaxDirLength); err != nil {
		return err
	}
	if err := validateFieldLength("output.style", c.Output.Style, MaxStyleLength); err != nil {
		return err
	}
	if c.Output.Format != "" {
		switch strings.ToLower(c.Output.Format) {
		case FormatTree, FormatJSON, FormatHTML:
			// valid
		default:
			return fmt.Errorf("%w: output.format %q (must be tree, json, or html)", ErrInvalidValue, c.Output.Format)
		}
	}
	// Custom directories may add any style name; the loader validates it.
	if c.Output.Style != "" && c.Output.StyleDir == "" {
		switch strings.ToLower(c.Output.Style) {
		case StyleDefault, StyleCompact:
			// valid
		default:
			return fmt.Errorf("%w: output.style %q (must be default or compact)", ErrInvalidValue, c.Output.Style)
		}
	}

	if c.Workers < 0 || c.Workers > MaxWorkers {
		return fmt.Errorf("%w: workers must be between 0 and %d, got %d", ErrInvalidValue, MaxWorkers, c.Workers)
	}

	return nil
}

func validateKeys(section string, keys []KeyConfig) error {
	if len(keys) > MaxKeys {
		return fmt.Errorf("%w: %s: %d keys (max %d)", ErrInvalidValue, section, len(keys), MaxKeys)
	}
	for i, k := range keys {
		if err := validateFieldLength(fmt.Sprintf("%s[%d].key", section, i), k.Key, MaxKeyLength); err != nil {
			return err
		}
	}
	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns a configuration with no keys and tree output.
func DefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{Format: FormatTree, Style: StyleDefault},
	}
}

// FormatOrDefault returns the lower-cased output format, or tree when unset.
func (c *Config) FormatOrDefault() string {
	if c.Output.Format == "" {
		return FormatTree
	}
	return strings.ToLower(c.Output.Format)
}

// StyleOrDefault returns the lower-cased style name, or default when unset.
func (c *Config) StyleOrDefault() string {
	if c.Output.Style == "" {
		return StyleDefault
	}
	return strings.ToLower(c.Output.Style)
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := decodeStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrConfigParse, configPath, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// SearchPaths returns the paths tried for a config name, in order:
// current directory, then <user config dir>/mdtransform/, each with
// .yaml before .yml.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}

	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, "mdtransform", name+ext))
		}
	}

	return paths
}

// resolveConfigPath returns the first existing path from SearchPaths.
func resolveConfigPath(name string) (string, error) {
	paths := SearchPaths(name)
	for _, p := range paths {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(paths, ", "))
}
