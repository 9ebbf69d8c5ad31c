package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the server settings. Values come from an optional YAML
// file, with environment variables taking precedence.
type Config struct {
	Addr               string `yaml:"addr"`
	RedisAddr          string `yaml:"redis_addr"`
	RateLimit          int    `yaml:"rate_limit"`
	RateLimitWindowSec int    `yaml:"rate_limit_window_seconds"`
}

// RateLimitWindow is the refill window for the rate limiter.
func (c Config) RateLimitWindow() time.Duration {
	return time.Duration(c.RateLimitWindowSec) * time.Second
}

// Default returns the built-in settings: local server, no redis (mock
// cache), 5 requests per minute per client.
func Default() Config {
	return Config{
		Addr:               ":8080",
		RateLimit:          5,
		RateLimitWindowSec: 60,
	}
}

// Load reads the config file at path (if non-empty) and then applies
// environment overrides DEAL_ADDR, DEAL_REDIS_ADDR, DEAL_RATE_LIMIT.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config file: %w", err)
		}
	}

	if v := os.Getenv("DEAL_ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv("DEAL_REDIS_ADDR"); v != "" {
		cfg.RedisAddr = v
	}
	if v := os.Getenv("DEAL_RATE_LIMIT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid DEAL_RATE_LIMIT: %w", err)
		}
		cfg.RateLimit = n
	}

	if cfg.RateLimit <= 0 {
		return Config{}, fmt.Errorf("rate limit must be positive, got %d", cfg.RateLimit)
	}
	if cfg.RateLimitWindowSec <= 0 {
		cfg.RateLimitWindowSec = 60
	}

	return cfg, nil
}
