// Package config loads site settings from a YAML file and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"tripable/pkg/reveal"
)

// Config is the full runtime configuration.
type Config struct {
	Addr           string        `yaml:"addr"`
	BaseURL        string        `yaml:"base_url"`
	Dev            bool          `yaml:"dev"`
	LogLevel       string        `yaml:"log_level"`
	ContentPath    string        `yaml:"content_path"`
	WatchContent   bool          `yaml:"watch_content"`
	SessionTTL     time.Duration `yaml:"session_ttl"`
	RequestTimeout time.Duration `yaml:"request_timeout"`
	Reveal         reveal.Config `yaml:"reveal"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Addr:           ":8080",
		LogLevel:       "info",
		SessionTTL:     24 * time.Hour,
		RequestTimeout: 15 * time.Second,
		Reveal:         reveal.DefaultConfig(),
	}
}

// Load reads path (if non-empty) over the defaults, then applies
// environment overrides.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	cfg.ApplyEnv(os.Getenv)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ApplyEnv overrides fields from PORT, BASE_URL and TRIPABLE_DEV.
func (c *Config) ApplyEnv(getenv func(string) string) {
	if port := strings.TrimSpace(getenv("PORT")); port != "" {
		c.Addr = ":" + port
	}
	if base := strings.TrimSpace(getenv("BASE_URL")); base != "" {
		c.BaseURL = strings.TrimRight(base, "/")
	}
	if dev, err := strconv.ParseBool(strings.TrimSpace(getenv("TRIPABLE_DEV"))); err == nil {
		c.Dev = dev
	}
}

// Validate checks the configuration for values the server cannot run with.
func (c Config) Validate() error {
	if c.Addr == "" {
		return errors.New("config: addr is required")
	}
	switch strings.ToLower(c.LogLevel) {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: unknown log level %q", c.LogLevel)
	}
	if c.WatchContent && c.ContentPath == "" {
		return errors.New("config: watch_content needs content_path")
	}
	if err := c.Reveal.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}
