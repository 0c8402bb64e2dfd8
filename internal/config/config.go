package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	ClientID        string `env:"CLIENT_ID"`
	ClientSecret    string `env:"CLIENT_SECRET"`
	RedirectURI     string `env:"OAUTH_REDIRECT_URI"`
	ProviderBaseURL string `env:"PROVIDER_BASE_URL" envDefault:"https://my.mlh.io"`

	SuccessURL string `env:"SUCCESS_URL"`
	FailureURL string `env:"FAILURE_URL"`

	WebhookURL      string `env:"WEBHOOK_URL"`
	WebhookChannel  string `env:"WEBHOOK_CHANNEL" envDefault:"#signups"`
	WebhookUsername string `env:"WEBHOOK_USERNAME" envDefault:"Signup bot"`
	WebhookIcon     string `env:"WEBHOOK_ICON" envDefault:":hackcwru:"`

	DatabaseURL string        `env:"DATABASE_URL"`
	BindAddr    string        `env:"BIND_ADDR" envDefault:"127.0.0.1:8080"`
	SignupYear  int           `env:"SIGNUP_YEAR"`
	HTTPTimeout time.Duration `env:"HTTP_TIMEOUT" envDefault:"10s"`
}

// Load reads configuration from environment variables and validates required fields.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) validate() error {
	required := []struct {
		name, value string
	}{
		{"CLIENT_ID", c.ClientID},
		{"CLIENT_SECRET", c.ClientSecret},
		{"OAUTH_REDIRECT_URI", c.RedirectURI},
		{"SUCCESS_URL", c.SuccessURL},
		{"FAILURE_URL", c.FailureURL},
		{"DATABASE_URL", c.DatabaseURL},
	}
	for _, r := range required {
		if r.value == "" {
			return fmt.Errorf("%s is required", r.name)
		}
	}
	if c.SignupYear == 0 {
		return fmt.Errorf("SIGNUP_YEAR is required")
	}
	return nil
}
