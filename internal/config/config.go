package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Environment string `env:"BATTLE_ENV" envDefault:"development"`
	LogLevel    string `env:"BATTLE_LOG_LEVEL" envDefault:"warn"`
	// Seed fixes the battle's random draws. 0 means a fresh crypto seed per run.
	Seed int64 `env:"BATTLE_SEED" envDefault:"0"`
	// Scenario is an optional JSON or YAML file; empty uses the built-in duel.
	Scenario string `env:"BATTLE_SCENARIO"`
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &cfg, nil
}

// Level returns the slog level named by LogLevel.
func (c *Config) Level() slog.Level {
	return parseLogLevel(c.LogLevel)
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
