package config

import (
	"fmt"
	"os"

	"github.com/hairday/salon-booking/internal/timeutil"
)

type Config struct {
	ServerPort  string
	Environment string

	SMTPHost string
	SMTPPort string
	MailFrom string

	DefaultOpen  timeutil.TimeOfDay
	DefaultClose timeutil.TimeOfDay

	// Services maps service name to duration in minutes. The catalog is
	// static for the process lifetime and validated at startup.
	Services map[string]int
}

func Load() (*Config, error) {
	cfg := &Config{
		ServerPort:  getEnv("SERVER_PORT", "3000"),
		Environment: getEnv("APP_ENV", "development"),
		SMTPHost:    getEnv("SMTP_HOST", "localhost"),
		SMTPPort:    getEnv("SMTP_PORT", "1025"),
		MailFrom:    getEnv("MAIL_FROM", "no-reply@salon.local"),
		Services: map[string]int{
			"Haircut":        30,
			"Beard Trim":     30,
			"Hair Styling":   30,
			"Hair Colouring": 60,
		},
	}

	open, err := timeutil.Parse(getEnv("DEFAULT_OPENING_HOUR", "09:00"))
	if err != nil {
		return nil, fmt.Errorf("invalid DEFAULT_OPENING_HOUR: %w", err)
	}
	closing, err := timeutil.Parse(getEnv("DEFAULT_CLOSING_HOUR", "18:00"))
	if err != nil {
		return nil, fmt.Errorf("invalid DEFAULT_CLOSING_HOUR: %w", err)
	}
	if open >= closing {
		return nil, fmt.Errorf("default opening hour must precede closing hour")
	}
	cfg.DefaultOpen = open
	cfg.DefaultClose = closing

	for name, duration := range cfg.Services {
		if name == "" {
			return nil, fmt.Errorf("service catalog contains an empty name")
		}
		if duration <= 0 {
			return nil, fmt.Errorf("service %q has non-positive duration %d", name, duration)
		}
	}

	return cfg, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}
