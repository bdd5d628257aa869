package main

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds everything the site reads from the environment. A .env file in
// the working directory is loaded first by godotenv/autoload in main.go.
type Config struct {
	Port    string `env:"PORT" envDefault:"8080"`
	GinMode string `env:"GIN_MODE" envDefault:"debug"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Contact relay. An empty API key is allowed at start-up; the relay
	// reports it per submission instead.
	SendGridAPIKey    string        `env:"SENDGRID_API_KEY"`
	SendGridHost      string        `env:"SENDGRID_HOST" envDefault:"https://api.sendgrid.com"`
	ContactToEmail    string        `env:"CONTACT_TO_EMAIL" envDefault:"rick.imai@gmail.com"`
	ContactFromEmail  string        `env:"CONTACT_FROM_EMAIL" envDefault:"no-reply@rickimai.com"`
	ContactFromName   string        `env:"CONTACT_FROM_NAME" envDefault:"rickimai.com"`
	ContactSubjectTag string        `env:"CONTACT_SUBJECT_TAG" envDefault:"rickimai.com"`
	ProviderTimeout   time.Duration `env:"PROVIDER_TIMEOUT" envDefault:"10s"`

	DatabasePath     string        `env:"DATABASE_PATH" envDefault:"site.db"`
	ResumeDir        string        `env:"RESUME_DIR" envDefault:"./resumes"`
	VisitorRetention time.Duration `env:"VISITOR_RETENTION" envDefault:"8760h"`

	AdminUsername string `env:"ADMIN_USERNAME"`
	AdminPassword string `env:"ADMIN_PASSWORD"`
}

func loadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.ProviderTimeout <= 0 {
		return Config{}, fmt.Errorf("PROVIDER_TIMEOUT must be positive, got %s", cfg.ProviderTimeout)
	}
	if cfg.VisitorRetention <= 0 {
		return Config{}, fmt.Errorf("VISITOR_RETENTION must be positive, got %s", cfg.VisitorRetention)
	}
	return cfg, nil
}

func (c Config) slogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (c Config) adminEnabled() bool {
	return c.AdminUsername != "" && c.AdminPassword != ""
}
