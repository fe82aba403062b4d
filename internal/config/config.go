package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"summary/internal/language"
)

// Agnostic is the configured language name for the language-agnostic summarizer.
const Agnostic = "agnostic"

// SummarizerConfig selects and configures the summarizer.
type SummarizerConfig struct {
	Language  string  `yaml:"language" validate:"required,language"`
	Sentences int     `yaml:"sentences" validate:"gte=1"`
	Ratio     float64 `yaml:"ratio" validate:"gte=0,lte=1"`
	Strategy  string  `yaml:"strategy" validate:"omitempty,oneof=frequency centrality"`
}

// OutputConfig controls how the CLI prints summaries.
type OutputConfig struct {
	Format string `yaml:"format" validate:"omitempty,oneof=text json"`
}

// LoggingConfig controls diagnostic output on stderr.
type LoggingConfig struct {
	Level string `yaml:"level" validate:"omitempty,oneof=debug info warn error"`
}

// AppConfig is the root application configuration structure.
type AppConfig struct {
	Summarizer SummarizerConfig `yaml:"summarizer"`
	Output     OutputConfig     `yaml:"output"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// Load reads a config from a specified path. If the file does not exist, returns defaults.
func Load(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return defaultConfig(), nil
		}
		return nil, err
	}
	// Keys absent from the file keep their defaults; explicit zeros are
	// left for Validate to judge.
	cfg := defaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	applyConfigDefaults(cfg)
	return cfg, nil
}

// LoadDefault tries ./summary.yaml first, then ~/.config/summary/config.yaml.
// If neither exists, it writes defaults to ~/.config/summary/config.yaml and returns them.
func LoadDefault() (*AppConfig, string, error) {
	cwdPath := "summary.yaml"
	if _, err := os.Stat(cwdPath); err == nil {
		cfg, err := Load(cwdPath)
		return cfg, cwdPath, err
	}
	userPath, err := defaultUserConfigPath()
	if err != nil {
		return nil, "", err
	}
	if _, err := os.Stat(userPath); err == nil {
		cfg, err := Load(userPath)
		return cfg, userPath, err
	}
	cfg := defaultConfig()
	if err := Save(userPath, cfg); err != nil {
		return nil, "", err
	}
	return cfg, userPath, nil
}

// Save writes the config to the given path, creating directories as needed.
func Save(path string, cfg *AppConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// ApplyEnv overrides cfg from SUMMARY_* environment variables.
func ApplyEnv(cfg *AppConfig) error {
	if v, ok := os.LookupEnv("SUMMARY_LANGUAGE"); ok {
		cfg.Summarizer.Language = v
	}
	if v, ok := os.LookupEnv("SUMMARY_SENTENCES"); ok {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("SUMMARY_SENTENCES: %w", err)
		}
		cfg.Summarizer.Sentences = n
	}
	if v, ok := os.LookupEnv("SUMMARY_RATIO"); ok {
		r, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return fmt.Errorf("SUMMARY_RATIO: %w", err)
		}
		cfg.Summarizer.Ratio = r
	}
	if v, ok := os.LookupEnv("SUMMARY_STRATEGY"); ok {
		cfg.Summarizer.Strategy = v
	}
	if v, ok := os.LookupEnv("SUMMARY_LOG_LEVEL"); ok {
		cfg.Logging.Level = v
	}
	return nil
}

// Validate checks field constraints, including that the language is supported.
func (c *AppConfig) Validate() error {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("language", validLanguage); err != nil {
		return err
	}
	return v.Struct(c)
}

func validLanguage(fl validator.FieldLevel) bool {
	name := fl.Field().String()
	if strings.EqualFold(name, Agnostic) {
		return true
	}
	_, err := language.Parse(name)
	return err == nil
}

func defaultUserConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "summary", "config.yaml"), nil
}

func defaultConfig() *AppConfig {
	return &AppConfig{
		Summarizer: SummarizerConfig{Language: "english", Sentences: 3, Ratio: 0.2, Strategy: "frequency"},
		Output:     OutputConfig{Format: "text"},
		Logging:    LoggingConfig{Level: "info"},
	}
}

// applyConfigDefaults fills names the file sets to empty strings. Numeric
// zeros are meaningful and kept.
func applyConfigDefaults(cfg *AppConfig) {
	def := defaultConfig()
	if cfg.Summarizer.Language == "" {
		cfg.Summarizer.Language = def.Summarizer.Language
	}
	if cfg.Summarizer.Strategy == "" {
		cfg.Summarizer.Strategy = def.Summarizer.Strategy
	}
	if cfg.Output.Format == "" {
		cfg.Output.Format = def.Output.Format
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = def.Logging.Level
	}
}
