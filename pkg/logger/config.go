package logger

import (
	"errors"
	"fmt"
	"log/slog"
)

// Config holds logger settings loaded from the environment with package config.
// Empty Level and Format fall back to the environment preset, then to info and json.
type Config struct {
	Level       string `env:"COMMONS_LOG_LEVEL"`
	Format      string `env:"COMMONS_LOG_FORMAT"`
	Environment string `env:"COMMONS_ENV"`
	Service     string `env:"COMMONS_SERVICE_NAME"`
}

// NewFromConfig builds a logger from cfg. Environment defaults are applied
// first, then the explicit level and format, then opts.
func NewFromConfig(cfg Config, opts ...Option) (*slog.Logger, error) {
	var level slog.Level
	if cfg.Level != "" {
		if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
			return nil, errors.Join(ErrInvalidLevel, err)
		}
	}

	format := Format(cfg.Format)
	switch format {
	case "", FormatJSON, FormatText:
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidFormat, cfg.Format)
	}

	base := make([]Option, 0, len(opts)+3)
	if cfg.Environment != "" && cfg.Service != "" {
		base = append(base, WithEnvironment(cfg.Environment, cfg.Service))
	}
	if cfg.Level != "" {
		base = append(base, WithLevel(level))
	}
	if format != "" {
		base = append(base, WithFormat(format))
	}

	return New(append(base, opts...)...), nil
}
