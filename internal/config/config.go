// Package config loads thai-lotto settings from a YAML file.
//
// A missing file is not an error: DefaultConfig is used. Command-line flags are
// applied on top of the loaded values by the cli package.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultPath    = "~/.config/thai-lotto/config.yaml"
	DefaultDataDir = "./data"
)

// Config holds scraper, export and logging settings
type Config struct {
	BaseURL        string `yaml:"base_url" json:"base_url"`
	UserAgent      string `yaml:"user_agent" json:"user_agent"`
	TimeoutSeconds int    `yaml:"timeout_seconds" json:"timeout_seconds"`
	MaxRetries     int    `yaml:"max_retries" json:"max_retries"`
	RetryDelayMs   int    `yaml:"retry_delay_ms" json:"retry_delay_ms"`
	RequestDelayMs int    `yaml:"request_delay_ms" json:"request_delay_ms"`

	DataDir  string `yaml:"data_dir" json:"data_dir"`
	LogLevel string `yaml:"log_level" json:"log_level"`
}

func DefaultConfig() *Config {
	return &Config{
		BaseURL:        "https://myhora.com/หวย",
		UserAgent:      "thai-lotto/1.0 (github.com/pfrederiksen/thai-lotto)",
		TimeoutSeconds: 30,
		MaxRetries:     3,
		RetryDelayMs:   500,
		RequestDelayMs: 250,
		DataDir:        DefaultDataDir,
		LogLevel:       "info",
	}
}

// ExpandHome replaces a leading "~/" with the user's home directory
func ExpandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, path[2:]), nil
}

// Load reads the YAML file at path over the defaults. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	path, err := ExpandHome(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that numeric settings are usable
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("invalid config: base_url is empty")
	}
	if c.TimeoutSeconds <= 0 {
		return fmt.Errorf("invalid config: timeout_seconds must be positive, got %d", c.TimeoutSeconds)
	}
	if c.MaxRetries < 0 || c.RetryDelayMs < 0 || c.RequestDelayMs < 0 {
		return fmt.Errorf("invalid config: max_retries, retry_delay_ms and request_delay_ms must not be negative")
	}
	return nil
}

// Save writes the config as YAML, creating parent directories
func (c *Config) Save(path string) error {
	path, err := ExpandHome(path)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

func (c *Config) RetryDelay() time.Duration {
	return time.Duration(c.RetryDelayMs) * time.Millisecond
}

func (c *Config) RequestDelay() time.Duration {
	return time.Duration(c.RequestDelayMs) * time.Millisecond
}
