// Package config handles loading and saving user configuration for wordle-demo.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/f3rmion/wordle-demo/internal/api"
	"gopkg.in/yaml.v3"
)

// FileName is the config file inside the config directory.
const FileName = "config.yaml"

// Config holds all user configuration.
type Config struct {
	API    APIConfig    `yaml:"api"`
	Future FutureConfig `yaml:"future"`
	UI     UIConfig     `yaml:"ui"`
	Log    LogConfig    `yaml:"log"`
}

// APIConfig holds settings for the remote API.
type APIConfig struct {
	BaseURL   string        `yaml:"base_url"`
	Timeout   time.Duration `yaml:"timeout"`    // e.g., "30s"
	RateLimit float64       `yaml:"rate_limit"` // requests per second, 0 = unpaced
	Burst     int           `yaml:"burst"`
	UserAgent string        `yaml:"user_agent,omitempty"`
}

// FutureConfig controls the future words lookup.
type FutureConfig struct {
	MaxDays int `yaml:"max_days"` // 0 = keep going until the API runs out
}

// UIConfig holds TUI display preferences.
type UIConfig struct {
	Banner bool `yaml:"banner"` // Render the solution in block letters
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `yaml:"level"` // zerolog level name
	File  string `yaml:"file"`  // Relative paths resolve against the config dir
}

// Default returns the configuration used when no file exists.
func Default() Config {
	d := api.DefaultConfig()
	return Config{
		API: APIConfig{
			BaseURL:   d.BaseURL,
			Timeout:   d.Timeout,
			RateLimit: d.RateLimit,
			Burst:     d.Burst,
		},
		UI:  UIConfig{Banner: true},
		Log: LogConfig{Level: "info", File: "wordle-demo.log"},
	}
}

// ClientConfig converts the API section into client settings.
func (c Config) ClientConfig() api.Config {
	return api.Config{
		BaseURL:   c.API.BaseURL,
		Timeout:   c.API.Timeout,
		RateLimit: c.API.RateLimit,
		Burst:     c.API.Burst,
		UserAgent: c.API.UserAgent,
	}
}

// LogPath resolves the log file against dir.
func (c Config) LogPath(dir string) string {
	if c.Log.File == "" || filepath.IsAbs(c.Log.File) {
		return c.Log.File
	}
	return filepath.Join(dir, c.Log.File)
}

// Load reads a config file on top of the defaults. A missing file is not
// an error.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parsing config file: %w", err)
	}

	return cfg, nil
}

// Save writes cfg to path.
func Save(path string, cfg Config) error {
	out, err := yaml.Marshal(&cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, out, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// GetConfigDir returns the default configuration directory.
func GetConfigDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "wordle-demo"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "wordle-demo"), nil
}

// EnsureDir creates dir if it doesn't exist.
func EnsureDir(dir string) error {
	return os.MkdirAll(dir, 0755)
}
