package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"
)

const defaultLogLevel = "info"

var logLevels = map[string]log.Level{
	"debug": log.DebugLevel,
	"info":  log.InfoLevel,
	"warn":  log.WarnLevel,
	"error": log.ErrorLevel,
}

// newLogger returns an slog logger backed by a charmbracelet/log handler.
func newLogger(w io.Writer, level string, noColor bool) (*slog.Logger, error) {
	lvl, ok := logLevels[strings.ToLower(level)]
	if !ok {
		return nil, fmt.Errorf("%w: log level %q (must be debug, info, warn, or error)", ErrInvalidFlag, level)
	}

	logHandler := log.NewWithOptions(w, log.Options{
		Prefix:          "mdtransform",
		ReportTimestamp: lvl == log.DebugLevel,
	})
	logHandler.SetLevel(lvl)
	if noColor {
		logHandler.SetColorProfile(termenv.Ascii)
	}

	return slog.New(logHandler), nil
}

// resolveLogLevel picks the level: --quiet and --verbose win over
// --log-level, which wins over MDTRANSFORM_LOG_LEVEL.
func resolveLogLevel(flags *cliFlags, env *envConfig) string {
	switch {
	case flags.common.quiet:
		return "error"
	case flags.common.verbose:
		return "debug"
	case flags.common.logLevel != "":
		return flags.common.logLevel
	case env.LogLevel != "":
		return env.LogLevel
	default:
		return defaultLogLevel
	}
}
