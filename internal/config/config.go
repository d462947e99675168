package config

import (
	"errors"
	"os"
	"strconv"
	"time"

	"kissthecheff/internal/payment"
)

type Config struct {
	Port         string
	DatabaseURL  string
	JWTSecret    string
	ConfirmDelay time.Duration
	SeedMenu     bool
}

func Load() (*Config, error) {
	cfg := &Config{
		Port:         os.Getenv("PORT"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		JWTSecret:    os.Getenv("JWT_SECRET"),
		ConfirmDelay: payment.DefaultConfirmDelay,
		SeedMenu:     true,
	}

	if cfg.Port == "" {
		cfg.Port = "8000"
	}

	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET is not set")
	}

	if raw := os.Getenv("CONFIRM_DELAY_MS"); raw != "" {
		ms, err := strconv.Atoi(raw)
		if err != nil || ms <= 0 {
			return nil, errors.New("CONFIRM_DELAY_MS must be a positive integer")
		}
		cfg.ConfirmDelay = time.Duration(ms) * time.Millisecond
	}

	if os.Getenv("SEED_MENU") == "false" {
		cfg.SeedMenu = false
	}

	return cfg, nil
}
