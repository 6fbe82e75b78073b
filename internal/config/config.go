// Package config loads the optional settings file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Config holds the application configuration.
// The todos endpoint is a loader constant, not a setting.
type Config struct {
	Theme        string    `yaml:"theme" toml:"theme"`
	FetchTimeout string    `yaml:"fetch_timeout" toml:"fetch_timeout"` // e.g. "30s"; "0" disables
	AltScreen    bool      `yaml:"alt_screen" toml:"alt_screen"`
	CharLimit    int       `yaml:"char_limit" toml:"char_limit"`
	Log          LogConfig `yaml:"log" toml:"log"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level" toml:"level"`
	Format string `yaml:"format" toml:"format"` // text | json | logfmt
	File   string `yaml:"file" toml:"file"`
}

// Defaults returns a Config with sensible defaults.
func Defaults() Config {
	return Config{
		Theme:        "classic",
		FetchTimeout: "30s",
		AltScreen:    true,
		CharLimit:    200,
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Dir returns the configuration directory (~/.config/todosearch).
// It can be overridden with the TODOSEARCH_CONFIG_DIR environment variable.
func Dir() string {
	if d := os.Getenv("TODOSEARCH_CONFIG_DIR"); d != "" {
		return d
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".config", "todosearch")
	}
	return filepath.Join(home, ".config", "todosearch")
}

// ConfigFile returns the path to config.yaml.
func ConfigFile() string {
	return filepath.Join(Dir(), "config.yaml")
}

// TOMLFile returns the path to config.toml, read only when config.yaml is absent.
func TOMLFile() string {
	return filepath.Join(Dir(), "config.toml")
}

// Load reads the config from the config directory. Missing files yield defaults.
func Load() (Config, error) {
	for _, p := range []string{ConfigFile(), TOMLFile()} {
		if _, err := os.Stat(p); err == nil {
			return LoadFile(p)
		} else if !os.IsNotExist(err) {
			return Defaults(), fmt.Errorf("stat %s: %w", p, err)
		}
	}
	return Defaults(), nil
}

// LoadFile reads a single config file; the format follows the extension.
func LoadFile(path string) (Config, error) {
	cfg := Defaults()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return Defaults(), fmt.Errorf("parse %s: %w", path, err)
		}
	default:
		data, err := os.ReadFile(path)
		if err != nil {
			return Defaults(), fmt.Errorf("read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Defaults(), fmt.Errorf("parse %s: %w", path, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return Defaults(), fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks values that cannot be repaired silently.
func (c Config) Validate() error {
	if _, err := c.Timeout(); err != nil {
		return err
	}
	if c.CharLimit < 0 {
		return fmt.Errorf("char_limit must not be negative, got %d", c.CharLimit)
	}
	return nil
}

// Timeout parses FetchTimeout. Empty and "0" both mean no timeout.
func (c Config) Timeout() (time.Duration, error) {
	s := strings.TrimSpace(c.FetchTimeout)
	if s == "" || s == "0" {
		return 0, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid fetch_timeout %q: %w", c.FetchTimeout, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("fetch_timeout must not be negative, got %s", d)
	}
	return d, nil
}
