// Package config loads the pocketcube YAML configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DirName is the per-user directory holding config, state and database.
const DirName = ".pocketcube"

// Config is the on-disk configuration.
type Config struct {
	// DBPath is the sqlite database file. Empty means <home>/.pocketcube/pocketcube.db.
	DBPath string `yaml:"db_path"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`

	// HistoryLimit caps the in-memory move history of recorded sessions. 0 is unlimited.
	HistoryLimit int `yaml:"history_limit"`

	// Colors maps a sticker letter (W G R Y B O) to a terminal color
	// (ANSI 256 index or #rrggbb).
	Colors map[string]string `yaml:"colors"`
}

// Default returns the configuration written on first run.
func Default() *Config {
	return &Config{
		LogLevel:     "info",
		HistoryLimit: 0,
		Colors: map[string]string{
			"W": "#ffffff",
			"G": "#00a651",
			"R": "#d7263d",
			"Y": "#ffd500",
			"B": "#0051ba",
			"O": "#ff8c00",
		},
	}
}

// Dir returns <home>/.pocketcube, creating it if needed.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	dir := filepath.Join(home, DirName)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}
	return dir, nil
}

// DefaultPath returns <home>/.pocketcube/config.yaml.
func DefaultPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads the config at path, writing the defaults there first if the file
// does not exist. Missing keys keep their default values.
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := writeDefault(path); err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks value ranges and color keys.
func (c *Config) Validate() error {
	if c.HistoryLimit < 0 {
		return fmt.Errorf("history_limit must not be negative, got %d", c.HistoryLimit)
	}
	switch c.LogLevel {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("unknown log_level %q", c.LogLevel)
	}
	for k := range c.Colors {
		switch k {
		case "W", "G", "R", "Y", "B", "O":
		default:
			return fmt.Errorf("unknown sticker letter %q in colors", k)
		}
	}
	return nil
}

// ResolveDBPath returns DBPath or the default location.
func (c *Config) ResolveDBPath() (string, error) {
	if c.DBPath != "" {
		return c.DBPath, nil
	}
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "pocketcube.db"), nil
}

func writeDefault(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(Default())
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
