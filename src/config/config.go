// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/H0llyW00dzZ/complog/src/logger"
	"gopkg.in/yaml.v3"
)

const (
	// EnvConfigFile names the configuration file used when Load gets an empty path.
	EnvConfigFile = "COMPLOG_CONFIG_FILE"
	// EnvSeverity overrides the default maximum severity of the file.
	EnvSeverity = "COMPLOG_SEVERITY"
)

// configFormat represents supported configuration file formats.
type configFormat int

const (
	// configFormatJSON represents JSON configuration format (.json)
	configFormatJSON configFormat = iota
	// configFormatYAML represents YAML configuration format (.yaml, .yml)
	configFormatYAML
)

// LoggerConfig holds the settings of a single named logger.
type LoggerConfig struct {
	// MaxSeverity: most verbose severity accepted (error, warning, info, debug)
	MaxSeverity string `json:"maxSeverity,omitempty" yaml:"maxSeverity,omitempty"`
	// Console: per-logger console override; absent means use the hub default
	Console *bool `json:"console,omitempty" yaml:"console,omitempty"`
}

// Config represents the logging configuration.
type Config struct {
	// Console: hub-wide console default (true when absent)
	Console *bool `json:"console,omitempty" yaml:"console,omitempty"`
	// MaxSeverity: default threshold for loggers without their own setting
	MaxSeverity string `json:"maxSeverity,omitempty" yaml:"maxSeverity,omitempty"`
	// Loggers: per-logger settings keyed by logger id
	Loggers map[string]LoggerConfig `json:"loggers,omitempty" yaml:"loggers,omitempty"`
}

// detectConfigFormat determines the configuration file format based on file extension.
// Matching is case-insensitive; anything other than .yaml or .yml is read as JSON.
func detectConfigFormat(configPath string) configFormat {
	ext := strings.ToLower(filepath.Ext(configPath))
	switch ext {
	case ".yaml", ".yml":
		return configFormatYAML
	default:
		return configFormatJSON
	}
}

// unmarshalConfig unmarshals configuration data based on the specified format.
func unmarshalConfig(data []byte, config *Config, format configFormat) error {
	switch format {
	case configFormatYAML:
		if err := yaml.Unmarshal(data, config); err != nil {
			return fmt.Errorf("failed to parse YAML config file: %w", err)
		}
	default:
		if err := json.Unmarshal(data, config); err != nil {
			return fmt.Errorf("failed to parse JSON config file: %w", err)
		}
	}
	return nil
}

// Load reads the configuration from configPath, or from the file named by
// COMPLOG_CONFIG_FILE when configPath is empty. With neither set it returns
// an empty Config, under which every logger keeps its built-in defaults.
//
// Configuration Priority:
//  1. Built-in defaults (console on, logger.DefaultMaxSeverity)
//  2. Config file values
//  3. COMPLOG_SEVERITY overrides the file's default maxSeverity
//
// Every severity string is validated; errors wrap logger.ErrInvalidSeverity.
func Load(configPath string) (*Config, error) {
	config := &Config{}

	if configPath == "" {
		configPath = os.Getenv(EnvConfigFile)
	}

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		format := detectConfigFormat(configPath)
		if err := unmarshalConfig(data, config, format); err != nil {
			return nil, err
		}
	}

	if s := os.Getenv(EnvSeverity); s != "" {
		config.MaxSeverity = s
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate checks every severity string of the configuration.
func (c *Config) Validate() error {
	if c.MaxSeverity != "" {
		if _, err := logger.ParseSeverity(c.MaxSeverity); err != nil {
			return fmt.Errorf("maxSeverity: %w", err)
		}
	}
	for id, lc := range c.Loggers {
		if lc.MaxSeverity == "" {
			continue
		}
		if _, err := logger.ParseSeverity(lc.MaxSeverity); err != nil {
			return fmt.Errorf("loggers.%s.maxSeverity: %w", id, err)
		}
	}
	return nil
}

// Apply sets the hub-wide console default, if configured.
func (c *Config) Apply(hub *logger.Hub) {
	if c.Console != nil {
		hub.SetConsoleDefault(*c.Console)
	}
}

// Options returns the logger options configured for the logger named id.
// Settings of the named logger take precedence over the file defaults.
// Call Validate (or use Load) first; invalid severities are skipped here.
func (c *Config) Options(id string) []logger.Option {
	var opts []logger.Option

	severity := c.MaxSeverity
	lc, ok := c.Loggers[id]
	if ok && lc.MaxSeverity != "" {
		severity = lc.MaxSeverity
	}
	if severity != "" {
		if s, err := logger.ParseSeverity(severity); err == nil {
			opts = append(opts, logger.WithMaxSeverity(s))
		}
	}

	if ok && lc.Console != nil {
		opts = append(opts, logger.WithConsole(*lc.Console))
	}
	return opts
}

// NewLogger creates a logger on hub configured for id.
// Extra options are applied after the configured ones.
func (c *Config) NewLogger(hub *logger.Hub, id string, extra ...logger.Option) *logger.Logger {
	return hub.New(id, append(c.Options(id), extra...)...)
}
