// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// EnvVar names the environment variable [Load] reads the config path from.
const EnvVar = "ACONNECT_CONFIG"

// Config is the aconnect configuration.
type Config struct {
	// Device is the sequencer device node.
	// Default: /dev/snd/seq
	Device string `yaml:"device"`

	// ClientName is the name aconnect registers for its own sequencer
	// client before connecting or disconnecting.
	// Default: ALSA Connector
	ClientName string `yaml:"client_name"`

	// LogLevel is the minimum level of diagnostic log records on stderr.
	// Values: debug, info, warn, error. Default: warn
	LogLevel string `yaml:"log_level"`

	// Color controls styling of the listing.
	// Values: auto, always, never. Default: auto
	Color string `yaml:"color"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Device:     "/dev/snd/seq",
		ClientName: "ALSA Connector",
		LogLevel:   "warn",
		Color:      "auto",
	}
}

// Load loads configuration from the file named by ACONNECT_CONFIG, or
// returns the defaults when the variable is unset.
func Load() (*Config, error) {
	configPath := os.Getenv(EnvVar)
	if configPath == "" {
		return Default(), nil
	}
	return LoadFile(configPath)
}

// LoadFile loads configuration from a specific file path. Fields the
// file leaves out keep their defaults.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	if err := cfg.loadFile(path); err != nil {
		return nil, fmt.Errorf("loading config %s: %w", path, err)
	}

	cfg.expandVariables()

	return cfg, nil
}

// loadFile loads a single configuration file, merging into the current config.
func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".jsonc":
		data = jsonc.ToJSON(data)
	}

	return yaml.Unmarshal(data, c)
}

func (c *Config) expandVariables() {
	c.Device = expandVars(c.Device)
}

var varPattern = regexp.MustCompile(`\$\{([^}:]+)(?::-([^}]*))?\}`)

// expandVars expands ${VAR} and ${VAR:-default} patterns from the
// environment.
func expandVars(s string) string {
	return varPattern.ReplaceAllStringFunc(s, func(match string) string {
		parts := varPattern.FindStringSubmatch(match)
		if len(parts) < 2 {
			return match
		}

		name := parts[1]
		defaultValue := ""
		if len(parts) >= 3 {
			defaultValue = parts[2]
		}

		if value := os.Getenv(name); value != "" {
			return value
		}
		return defaultValue
	})
}

var (
	logLevels  = []string{"debug", "info", "warn", "error"}
	colorModes = []string{"auto", "always", "never"}
)

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	var errs []error

	if c.Device == "" {
		errs = append(errs, fmt.Errorf("device is required"))
	}

	if c.ClientName == "" {
		errs = append(errs, fmt.Errorf("client_name is required"))
	}

	if !slices.Contains(logLevels, c.LogLevel) {
		errs = append(errs, fmt.Errorf("log_level must be one of: %v", logLevels))
	}

	if !slices.Contains(colorModes, c.Color) {
		errs = append(errs, fmt.Errorf("color must be one of: %v", colorModes))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// SlogLevel returns LogLevel as a slog.Level. Unknown values map to
// warn; Validate reports them.
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
