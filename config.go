package main

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is read from the environment (and .env, loaded in main.go).
type Config struct {
	Port         string `env:"PORT" envDefault:"8080"`
	GinMode      string `env:"GIN_MODE" envDefault:"release"`
	Debug        bool   `env:"DEBUG"`
	DatabasePath string `env:"DATABASE_PATH" envDefault:"portfolio.db"`
	// Optional YAML catalog replacing the compiled-in projects.
	ProjectsFile string `env:"PROJECTS_FILE"`

	SMTP  SMTPConfig  `envPrefix:"SMTP_"`
	Admin AdminConfig `envPrefix:"ADMIN_"`

	// Where contact form messages are delivered.
	ToEmail string `env:"TO_EMAIL" envDefault:"hello@ahzammaqsood.com"`

	VisitorRetention time.Duration `env:"VISITOR_RETENTION" envDefault:"8760h"`
	CleanupInterval  time.Duration `env:"CLEANUP_INTERVAL" envDefault:"24h"`
	ShutdownTimeout  time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

type SMTPConfig struct {
	Host string `env:"HOST" envDefault:"smtp.gmail.com"`
	Port string `env:"PORT" envDefault:"587"`
	User string `env:"USER"`
	Pass string `env:"PASS"`
}

// Enabled reports whether credentials are configured.
func (c SMTPConfig) Enabled() bool {
	return c.User != "" && c.Pass != ""
}

const (
	defaultAdminUsername = "admin"
	defaultAdminPassword = "admin123"
)

type AdminConfig struct {
	Username string `env:"USERNAME" envDefault:"admin"`
	Password string `env:"PASSWORD" envDefault:"admin123"`
}

// UsesDefaults reports whether the development credentials are in effect.
func (c AdminConfig) UsesDefaults() bool {
	return c.Username == defaultAdminUsername || c.Password == defaultAdminPassword
}

func loadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.VisitorRetention <= 0 {
		return fmt.Errorf("VISITOR_RETENTION must be positive, got %s", c.VisitorRetention)
	}
	if c.CleanupInterval <= 0 {
		return fmt.Errorf("CLEANUP_INTERVAL must be positive, got %s", c.CleanupInterval)
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("SHUTDOWN_TIMEOUT must be positive, got %s", c.ShutdownTimeout)
	}
	return nil
}

// Addr is the HTTP listen address.
func (c Config) Addr() string {
	return ":" + c.Port
}
