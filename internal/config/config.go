// Package config loads tizhi settings from a YAML file and TIZHI_*
// environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap/zapcore"

	"github.com/abhisek/tizhi/internal/bank"
	"github.com/abhisek/tizhi/internal/report"
)

// Config is the full application configuration.
type Config struct {
	Respondent RespondentConfig `koanf:"respondent"`
	Output     OutputConfig     `koanf:"output"`
	Score      ScoreConfig      `koanf:"score"`
	Log        LogConfig        `koanf:"log"`
}

// RespondentConfig holds product-level respondent defaults.
type RespondentConfig struct {
	// DefaultSex is used when neither a flag nor the answer document names one.
	DefaultSex string `koanf:"default_sex"`
}

// OutputConfig controls report rendering.
type OutputConfig struct {
	Format string `koanf:"format"`
	Width  int    `koanf:"width"`
	Plain  bool   `koanf:"plain"`
}

// ScoreConfig tunes batch scoring.
type ScoreConfig struct {
	Workers int `koanf:"workers"`
}

// LogConfig configures the zap logger.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"` // json or console
	File   string `koanf:"file"`   // empty disables logging in the TUI
}

// Defaults.
const (
	DefaultSex       = "female"
	DefaultFormat    = "text"
	DefaultWidth     = 80
	DefaultWorkers   = 4
	DefaultLogLevel  = "info"
	DefaultLogFormat = "console"
)

// Default returns the configuration used when nothing is set.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

func applyDefaults(cfg *Config) {
	if cfg.Respondent.DefaultSex == "" {
		cfg.Respondent.DefaultSex = DefaultSex
	}
	if cfg.Output.Format == "" {
		cfg.Output.Format = DefaultFormat
	}
	if cfg.Output.Width == 0 {
		cfg.Output.Width = DefaultWidth
	}
	if cfg.Score.Workers == 0 {
		cfg.Score.Workers = DefaultWorkers
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = DefaultLogFormat
	}
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var errs []error
	if _, err := bank.ParseSex(c.Respondent.DefaultSex); err != nil {
		errs = append(errs, fmt.Errorf("respondent.default_sex: %w", err))
	}
	if _, err := report.ParseFormat(c.Output.Format); err != nil {
		errs = append(errs, fmt.Errorf("output.format: %w", err))
	}
	if c.Output.Width < 20 {
		errs = append(errs, fmt.Errorf("output.width must be at least 20, got %d", c.Output.Width))
	}
	if c.Score.Workers < 1 {
		errs = append(errs, fmt.Errorf("score.workers must be positive, got %d", c.Score.Workers))
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}
	if f := strings.ToLower(c.Log.Format); f != "json" && f != "console" {
		errs = append(errs, fmt.Errorf("log.format must be 'json' or 'console', got %q", c.Log.Format))
	}
	return errors.Join(errs...)
}

// Sex returns the parsed default respondent sex.
func (c *Config) Sex() bank.Sex {
	s, err := bank.ParseSex(c.Respondent.DefaultSex)
	if err != nil {
		return bank.Female
	}
	return s
}

// Format returns the parsed default output format.
func (c *Config) Format() report.Format {
	f, err := report.ParseFormat(c.Output.Format)
	if err != nil {
		return report.FormatText
	}
	return f
}
