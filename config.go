package main

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port         string
	Mode         string
	LogLevel     string
	LogPretty    bool
	SessionTTL   time.Duration
	SessionSweep time.Duration
}

// loadConfig reads settings from the environment (.env is loaded by
// godotenv/autoload before main runs).
func loadConfig() (Config, error) {
	cfg := Config{
		Port:         os.Getenv("PORT"),
		Mode:         os.Getenv("GIN_MODE"),
		LogLevel:     os.Getenv("LOG_LEVEL"),
		SessionTTL:   30 * time.Minute,
		SessionSweep: time.Minute,
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.Mode == "" {
		cfg.Mode = "release"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	if v := os.Getenv("LOG_PRETTY"); v != "" {
		pretty, err := strconv.ParseBool(v)
		if err != nil {
			return cfg, fmt.Errorf("LOG_PRETTY: %w", err)
		}
		cfg.LogPretty = pretty
	}

	var err error
	if cfg.SessionTTL, err = durationEnv("SESSION_TTL", cfg.SessionTTL); err != nil {
		return cfg, err
	}
	if cfg.SessionSweep, err = durationEnv("SESSION_SWEEP", cfg.SessionSweep); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func durationEnv(name string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(name)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s: must be positive, got %s", name, v)
	}
	return d, nil
}
