// SPDX-License-Identifier: MIT

// Package config holds the cphb command-line settings: how many tasks run
// at once, how long each may take, the log level and the report format.
//
// Values are resolved in order: defaults, then the YAML file, then the
// CPHB_WORKERS and CPHB_TIMEOUT environment variables. Command-line flags
// are applied last by the caller.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// Environment variables that override the file.
const (
	EnvWorkers = "CPHB_WORKERS"
	EnvTimeout = "CPHB_TIMEOUT"
)

// Report formats.
const (
	OutputYAML = "yaml"
	OutputJSON = "json"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid value")

// Config is the runner configuration.
type Config struct {
	// Workers bounds how many tasks run concurrently.
	Workers int `yaml:"workers"`
	// Timeout limits a single task; it is a Go duration such as "30s".
	Timeout time.Duration `yaml:"timeout"`
	// LogLevel is a zap level name: debug, info, warn or error.
	LogLevel string `yaml:"log_level"`
	// Output selects the report encoding: yaml or json.
	Output string `yaml:"output"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Workers:  4,
		Timeout:  10 * time.Second,
		LogLevel: "info",
		Output:   OutputYAML,
	}
}

// Load reads the YAML file at path over the defaults and applies the
// environment overrides. An empty path or a missing file yields the
// defaults (plus environment).
//
// The result is not validated: callers apply their own overrides (such as
// command-line flags) and then call Validate once.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
			}
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv(EnvWorkers); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalid, EnvWorkers, v, err)
		}
		c.Workers = n
	}
	if v := os.Getenv(EnvTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalid, EnvTimeout, v, err)
		}
		c.Timeout = d
	}

	return nil
}

// Validate checks every field.
func (c Config) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("%w: workers must be >= 1, got %d", ErrInvalid, c.Workers)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("%w: timeout must be positive, got %s", ErrInvalid, c.Timeout)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	if c.Output != OutputYAML && c.Output != OutputJSON {
		return fmt.Errorf("%w: output must be %q or %q, got %q", ErrInvalid, OutputYAML, OutputJSON, c.Output)
	}

	return nil
}

// Level parses LogLevel.
func (c Config) Level() (zapcore.Level, error) {
	lvl, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return zapcore.InfoLevel, fmt.Errorf("%w: log_level: %v", ErrInvalid, err)
	}

	return lvl, nil
}
