package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/teamup/mdtransform"
	"github.com/teamup/mdtransform/internal/config"
)

// run loads the effective config and processes every input.
func run(ctx context.Context, args []string, flags *cliFlags, envCfg *envConfig, env *Environment, logger *slog.Logger) error {
	cfg, err := loadConfig(configName(flags, envCfg))
	if err != nil {
		return err
	}

	// CLI flags > env vars > config file > defaults
	applyEnvConfig(envCfg, cfg)
	mergeFlags(flags, cfg)
	applyDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return err
	}

	if flags.printConfig {
		data, err := cfg.Marshal()
		if err != nil {
			return err
		}
		_, err = env.Stdout.Write(data)
		return err
	}

	proc, err := newProcessor(cfg, logger)
	if err != nil {
		return err
	}

	format := cfg.FormatOrDefault()
	files, err := discoverFiles(args, cfg.Output.Dir, format)
	if err != nil {
		return err
	}

	workers := mdtransform.ResolveWorkers(cfg.Workers)
	logger.Debug("starting",
		slog.Int("files", len(files)),
		slog.Int("workers", workers),
		slog.String("format", format),
	)

	results := processBatch(ctx, proc, files, workers, newBatchParams(format, env.Stdin))
	return printResults(results, env, logger)
}

// loadConfig loads the named config. Without a name, an empty config is
// returned so env vars can fill it.
func loadConfig(name string) (*config.Config, error) {
	if name == "" {
		return &config.Config{}, nil
	}

	cfg, err := config.LoadConfig(name)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// mergeFlags applies CLI flags to config. Keys are appended; scalar
// flags override when set.
func mergeFlags(flags *cliFlags, cfg *config.Config) {
	for _, k := range flags.keys.mentions {
		cfg.Mentions = append(cfg.Mentions, config.KeyConfig{Key: k})
	}
	for _, k := range flags.keys.mentionsCS {
		cfg.Mentions = append(cfg.Mentions, config.KeyConfig{Key: k, CaseSensitive: true})
	}
	for _, k := range flags.keys.highlights {
		cfg.Highlights = append(cfg.Highlights, config.KeyConfig{Key: k})
	}
	cfg.Search = append(cfg.Search, flags.keys.search...)

	if flags.output.format != "" {
		cfg.Output.Format = flags.output.format
	}
	if flags.output.style != "" {
		cfg.Output.Style = flags.output.style
	}
	if flags.output.styleDir != "" {
		cfg.Output.StyleDir = flags.output.styleDir
	}
	if flags.output.dir != "" {
		cfg.Output.Dir = flags.output.dir
	}
	if flags.workers != 0 {
		cfg.Workers = flags.workers
	}
	if flags.verify {
		cfg.Verify = true
	}
}

// applyDefaults fills the output fields left empty by every source.
func applyDefaults(cfg *config.Config) {
	cfg.Output.Format = cfg.FormatOrDefault()
	if cfg.Output.Style == "" {
		cfg.Output.Style = config.StyleDefault
	}
}

// newProcessor builds the pipeline from the effective config.
func newProcessor(cfg *config.Config, logger *slog.Logger) (*mdtransform.Processor, error) {
	return mdtransform.NewProcessor(
		mdtransform.WithMentionKeys(toKeys(cfg.Mentions)...),
		mdtransform.WithHighlightKeys(toKeys(cfg.Highlights)...),
		mdtransform.WithSearchTerms(cfg.Search...),
		mdtransform.WithLogger(logger),
		mdtransform.WithVerify(cfg.Verify),
		mdtransform.WithStyle(cfg.Output.Style),
		mdtransform.WithStyleDir(cfg.Output.StyleDir),
	)
}

func toKeys(keys []config.KeyConfig) []mdtransform.Key {
	out := make([]mdtransform.Key, 0, len(keys))
	for _, k := range keys {
		out = append(out, mdtransform.Key{Text: k.Key, CaseSensitive: k.CaseSensitive})
	}
	return out
}
