package main

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
)

// config is read from the environment; a .env file in the working
// directory is loaded first by godotenv/autoload.
type config struct {
	Port           string        `env:"PORT" envDefault:"8080"`
	ContactEmail   string        `env:"CONTACT_EMAIL"`
	ImagesDir      string        `env:"IMAGES_DIR" envDefault:"./images"`
	ContentFile    string        `env:"CONTENT_FILE"`
	RevealSpeed    time.Duration `env:"REVEAL_SPEED" envDefault:"80ms"`
	RevealPreDelay time.Duration `env:"REVEAL_PRE_DELAY" envDefault:"300ms"`
	LogLevel       slog.Level    `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat      string        `env:"LOG_FORMAT" envDefault:"text"`
	LogHashSalt    string        `env:"LOG_HASH_SALT"`
}

func loadConfig() (config, error) {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return cfg, fmt.Errorf("LOG_FORMAT must be text or json, got %q", cfg.LogFormat)
	}
	if cfg.RevealSpeed <= 0 {
		return cfg, fmt.Errorf("REVEAL_SPEED must be positive, got %s", cfg.RevealSpeed)
	}
	if cfg.RevealPreDelay < 0 {
		return cfg, fmt.Errorf("REVEAL_PRE_DELAY must not be negative, got %s", cfg.RevealPreDelay)
	}
	return cfg, nil
}

func newLogger(cfg config, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.LogLevel}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
