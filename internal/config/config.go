package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds process-wide settings read from the environment.
type Config struct {
	LogLevel string `env:"TIPCALC_LOG_LEVEL" envDefault:"info"`
	Locale   string `env:"TIPCALC_LOCALE" envDefault:"en-US"`
	AppID    string `env:"TIPCALC_APP_ID" envDefault:"com.example.tipcalculator"`

	// Level is LogLevel parsed by Load.
	Level slog.Level
}

// Load reads an optional .env file and then the environment.
func Load(envFiles ...string) (Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load env file: %w", err)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	level, err := ParseLevel(cfg.LogLevel)
	if err != nil {
		return Config{}, err
	}
	cfg.Level = level
	return cfg, nil
}

// ParseLevel maps a level name to a slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}
