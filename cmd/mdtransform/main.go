package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	flag "github.com/spf13/pflag"
	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	os.Exit(runMain(os.Args, DefaultEnv()))
}

// runMain parses args, runs the command, and returns the process exit code.
func runMain(args []string, env *Environment) int {
	if len(args) > 1 {
		switch args[1] {
		case "version":
			fmt.Fprintf(env.Stdout, "mdtransform %s\n", Version)
			return ExitSuccess
		case "help":
			printUsage(env.Stdout)
			return ExitSuccess
		}
	}

	flags, positional, err := parseFlags(args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitSuccess
		}
		fmt.Fprintln(env.Stderr, err)
		return ExitUsage
	}

	if flags.version {
		fmt.Fprintf(env.Stdout, "mdtransform %s\n", Version)
		return ExitSuccess
	}

	envCfg := loadEnvConfig(env)

	logger, err := newLogger(env.Stderr, resolveLogLevel(flags, envCfg), flags.common.noColor)
	if err != nil {
		fmt.Fprintln(env.Stderr, err)
		return exitCodeFor(err)
	}

	setMaxProcs(logger)
	warnUnknownEnvVars(env, logger)

	ctx, stop := notifyContext(context.Background())
	defer stop()

	if err := run(ctx, positional, flags, envCfg, env, logger); err != nil {
		logger.Error(err.Error() + hintFor(err, configName(flags, envCfg)))
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// configName returns the config selected by flag or environment.
func configName(flags *cliFlags, envCfg *envConfig) string {
	if flags.common.config != "" {
		return flags.common.config
	}
	return envCfg.ConfigPath
}

// setMaxProcs adjusts GOMAXPROCS to the container CPU quota.
// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
// in which case Go runtime defaults apply and the program continues safely.
func setMaxProcs(logger *slog.Logger) {
	_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...any) {
		logger.Debug(fmt.Sprintf(format, args...))
	}))
}
