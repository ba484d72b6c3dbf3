// Package config loads knightpath settings from defaults, an optional YAML
// file and KNIGHTPATH_* environment variables, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// envPrefix is prepended to every environment override.
const envPrefix = "KNIGHTPATH_"

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

// ServerConfig holds HTTP service settings.
type ServerConfig struct {
	Address      string        `yaml:"address" validate:"required"`
	ReadTimeout  time.Duration `yaml:"read_timeout" validate:"gt=0"`
	WriteTimeout time.Duration `yaml:"write_timeout" validate:"gt=0"`
}

// MetricsConfig holds Prometheus settings.
type MetricsConfig struct {
	Enabled   bool   `yaml:"enabled"`
	Namespace string `yaml:"namespace" validate:"required_if=Enabled true"`
}

// Config holds all application configuration.
type Config struct {
	Environment string `yaml:"environment" validate:"oneof=development production"`
	LogLevel    string `yaml:"log_level" validate:"oneof=debug info warn error"`

	// Notation selects how squares are printed: "coords" (0,0) or "algebraic" a1.
	Notation string `yaml:"notation" validate:"oneof=coords algebraic"`
	// VisitPolicy selects BFS visit marking: "enqueue" or "dequeue".
	VisitPolicy string `yaml:"visit_policy" validate:"oneof=enqueue dequeue"`

	Server  ServerConfig  `yaml:"server"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Environment: "development",
		LogLevel:    "info",
		Notation:    "coords",
		VisitPolicy: "enqueue",
		Server: ServerConfig{
			Address:      ":8080",
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
		},
		Metrics: MetricsConfig{
			Enabled:   true,
			Namespace: "knightpath",
		},
	}
}

// Load builds a Config from defaults, then the YAML file at path (skipped
// when path is empty), then environment overrides, and validates the result.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(raw, cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyEnv overrides fields from KNIGHTPATH_* variables. Unparseable bool
// or duration values are reported as ErrInvalid rather than ignored.
func (c *Config) applyEnv() error {
	var errs []error
	c.Environment = getEnv("ENVIRONMENT", c.Environment)
	c.LogLevel = getEnv("LOG_LEVEL", c.LogLevel)
	c.Notation = getEnv("NOTATION", c.Notation)
	c.VisitPolicy = getEnv("VISIT_POLICY", c.VisitPolicy)
	c.Server.Address = getEnv("SERVER_ADDRESS", c.Server.Address)
	c.Server.ReadTimeout = getEnvDuration("SERVER_READ_TIMEOUT", c.Server.ReadTimeout, &errs)
	c.Server.WriteTimeout = getEnvDuration("SERVER_WRITE_TIMEOUT", c.Server.WriteTimeout, &errs)
	c.Metrics.Enabled = getEnvBool("METRICS_ENABLED", c.Metrics.Enabled, &errs)
	c.Metrics.Namespace = getEnv("METRICS_NAMESPACE", c.Metrics.Namespace)

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
	}

	return nil
}

// Validate checks field constraints.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	return nil
}

// IsDevelopment reports whether the environment is "development".
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// getEnv gets an environment variable with a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(envPrefix + key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool gets a boolean environment variable with a default value.
// A value that does not parse is appended to errs and the default is kept.
func getEnvBool(key string, defaultValue bool, errs *[]error) bool {
	value := os.Getenv(envPrefix + key)
	if value == "" {
		return defaultValue
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s%s=%q: not a boolean", envPrefix, key, value))
		return defaultValue
	}
	return b
}

// getEnvDuration gets a duration environment variable with a default value.
// A value that does not parse is appended to errs and the default is kept.
func getEnvDuration(key string, defaultValue time.Duration, errs *[]error) time.Duration {
	value := os.Getenv(envPrefix + key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s%s=%q: not a duration", envPrefix, key, value))
		return defaultValue
	}
	return d
}
