// Package config holds server configuration. Values come from an optional
// YAML file, then EXTRAMOCK_* environment variables, then flags, with
// later sources winning.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Defaults.
const (
	DefaultPort    = 4010
	DefaultDelayMs = 300
)

// Config is the full server configuration.
type Config struct {
	Host    string `yaml:"host" env:"EXTRAMOCK_HOST"`
	Port    int    `yaml:"port" env:"EXTRAMOCK_PORT"`
	DelayMs int    `yaml:"delay_ms" env:"EXTRAMOCK_DELAY_MS"`

	LogLevel  string `yaml:"log_level" env:"EXTRAMOCK_LOG_LEVEL"`
	LogFormat string `yaml:"log_format" env:"EXTRAMOCK_LOG_FORMAT"`

	CORS CORSConfig `yaml:"cors"`
}

// CORSConfig controls the CORS middleware on the onboarding API.
type CORSConfig struct {
	Enabled        bool     `yaml:"enabled" env:"EXTRAMOCK_CORS_ENABLED"`
	AllowedOrigins []string `yaml:"allowed_origins" env:"EXTRAMOCK_CORS_ORIGINS"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Host:      "0.0.0.0",
		Port:      DefaultPort,
		DelayMs:   DefaultDelayMs,
		LogLevel:  "info",
		LogFormat: "text",
		CORS: CORSConfig{
			Enabled:        true,
			AllowedOrigins: []string{"*"},
		},
	}
}

// Load builds the configuration from defaults, an optional YAML file, and
// environment overrides. An empty path skips the file stage.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks ranges that would otherwise fail at listen time.
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("port %d out of range", c.Port)
	}
	if c.DelayMs < 0 {
		return errors.New("delay_ms cannot be negative")
	}
	return nil
}

// Addr returns the listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
