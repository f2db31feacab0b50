package main

import (
	"log/slog"
	"strconv"
	"strings"

	"github.com/teamup/mdtransform/internal/config"
)

const envPrefix = "MDTRANSFORM_"

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string // MDTRANSFORM_CONFIG: config file name or path
	Format     string // MDTRANSFORM_FORMAT: tree, json, html
	Style      string // MDTRANSFORM_STYLE: preview style name
	StyleDir   string // MDTRANSFORM_STYLE_DIR: custom style directory
	OutputDir  string // MDTRANSFORM_OUTPUT_DIR: output directory
	Workers    int    // MDTRANSFORM_WORKERS: parallel workers
	LogLevel   string // MDTRANSFORM_LOG_LEVEL: debug, info, warn, error
}

// knownEnvVars lists valid MDTRANSFORM_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"MDTRANSFORM_CONFIG":     true,
	"MDTRANSFORM_FORMAT":     true,
	"MDTRANSFORM_STYLE":      true,
	"MDTRANSFORM_STYLE_DIR":  true,
	"MDTRANSFORM_OUTPUT_DIR": true,
	"MDTRANSFORM_WORKERS":    true,
	"MDTRANSFORM_LOG_LEVEL":  true,
}

// loadEnvConfig reads configuration from environment variables.
func loadEnvConfig(env *Environment) *envConfig {
	cfg := &envConfig{
		ConfigPath: env.Getenv("MDTRANSFORM_CONFIG"),
		Format:     env.Getenv("MDTRANSFORM_FORMAT"),
		Style:      env.Getenv("MDTRANSFORM_STYLE"),
		StyleDir:   env.Getenv("MDTRANSFORM_STYLE_DIR"),
		OutputDir:  env.Getenv("MDTRANSFORM_OUTPUT_DIR"),
		LogLevel:   env.Getenv("MDTRANSFORM_LOG_LEVEL"),
	}

	// Invalid or non-positive values are ignored.
	if workers := env.Getenv("MDTRANSFORM_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}

	return cfg
}

// warnUnknownEnvVars logs a warning for each unrecognized MDTRANSFORM_* variable.
func warnUnknownEnvVars(env *Environment, logger *slog.Logger) {
	for _, kv := range env.Environ() {
		if !strings.HasPrefix(kv, envPrefix) {
			continue
		}
		name, _, _ := strings.Cut(kv, "=")
		if !knownEnvVars[name] {
			logger.Warn("unknown environment variable (typo?)", slog.String("name", name))
		}
	}
}

// applyEnvConfig applies environment variable values to config.
// Only sets values if the env var is set AND the config value is empty/zero.
// This ensures: CLI flags > env vars > config file > defaults
// (CLI flags are applied later via mergeFlags)
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.Format != "" && cfg.Output.Format == "" {
		cfg.Output.Format = env.Format
	}
	if env.Style != "" && cfg.Output.Style == "" {
		cfg.Output.Style = env.Style
	}
	if env.StyleDir != "" && cfg.Output.StyleDir == "" {
		cfg.Output.StyleDir = env.StyleDir
	}
	if env.OutputDir != "" && cfg.Output.Dir == "" {
		cfg.Output.Dir = env.OutputDir
	}
	if env.Workers > 0 && cfg.Workers == 0 {
		cfg.Workers = env.Workers
	}
}
