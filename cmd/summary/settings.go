package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"summary/internal/config"
	"summary/internal/language"
	"summary/internal/logging"
	"summary/internal/service"
	"summary/internal/summarizer"
)

// loadSettings resolves configuration in order: file, environment, flags.
func loadSettings(cmd *cobra.Command) (*config.AppConfig, error) {
	path, _ := cmd.Flags().GetString("config")
	var (
		cfg *config.AppConfig
		err error
	)
	if path == "" {
		cfg, _, err = config.LoadDefault()
	} else {
		cfg, err = config.Load(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := config.ApplyEnv(cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("language") {
		cfg.Summarizer.Language, _ = flags.GetString("language")
	}
	if flags.Changed("strategy") {
		cfg.Summarizer.Strategy, _ = flags.GetString("strategy")
	}
	if flags.Changed("log-level") {
		cfg.Logging.Level, _ = flags.GetString("log-level")
	}
	if jsonOut, _ := flags.GetBool("json"); jsonOut {
		cfg.Output.Format = "json"
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// engineFactory returns a constructor for summarizers sharing cfg's strategy.
func engineFactory(cfg *config.AppConfig, logger *slog.Logger) func(name string) (service.Engine, error) {
	return func(name string) (service.Engine, error) {
		strategy, err := summarizer.ParseStrategy(cfg.Summarizer.Strategy)
		if err != nil {
			return nil, err
		}
		opts := []summarizer.Option{summarizer.WithStrategy(strategy), summarizer.WithLogger(logger)}
		if strings.EqualFold(strings.TrimSpace(name), config.Agnostic) {
			return summarizer.NewLanguageAgnostic(opts...), nil
		}
		lang, err := language.Parse(name)
		if err != nil {
			return nil, err
		}
		return summarizer.New(lang, opts...)
	}
}

func newLogger(cfg *config.AppConfig, w io.Writer) *slog.Logger {
	return logging.NewLogger(cfg.Logging.Level, w)
}
