// Package config provides centralized configuration management using Viper.
package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration values for onboardr.
type Config struct {
	Brand        string        `mapstructure:"brand" yaml:"brand"`
	DashboardURL string        `mapstructure:"dashboard_url" yaml:"dashboard_url"`
	APIKeyDelay  time.Duration `mapstructure:"api_key_delay" yaml:"api_key_delay"`
	ThemeStyle   string        `mapstructure:"theme_style" yaml:"theme_style"`
	AltScreen    bool          `mapstructure:"alt_screen" yaml:"alt_screen"`
	LogLevel     string        `mapstructure:"log_level" yaml:"log_level"`
	LogFile      string        `mapstructure:"log_file" yaml:"log_file"`
}

// Defaults returns the built-in configuration.
func Defaults() *Config {
	return &Config{
		Brand:        "PayFlow",
		DashboardURL: "https://dashboard.payflow.com/test/payments",
		APIKeyDelay:  time.Second,
		ThemeStyle:   "dark",
		AltScreen:    true,
		LogLevel:     "info",
		LogFile:      "",
	}
}

// envKeys lists the keys bound to ONBOARDR_* variables.
var envKeys = []string{
	"brand",
	"dashboard_url",
	"api_key_delay",
	"theme_style",
	"alt_screen",
	"log_level",
	"log_file",
}

// Load loads configuration with full precedence:
// CLI flags > ENV vars > project config > XDG global config > defaults
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigName("onboardr")

	d := Defaults()
	v.SetDefault("brand", d.Brand)
	v.SetDefault("dashboard_url", d.DashboardURL)
	v.SetDefault("api_key_delay", d.APIKeyDelay)
	v.SetDefault("theme_style", d.ThemeStyle)
	v.SetDefault("alt_screen", d.AltScreen)
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("log_file", d.LogFile)

	// Setup ENV binding with ONBOARDR_ prefix
	v.SetEnvPrefix("ONBOARDR")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Explicit ENV bindings for better bool/duration parsing
	for _, key := range envKeys {
		if err := v.BindEnv(key, "ONBOARDR_"+strings.ToUpper(key)); err != nil {
			return nil, fmt.Errorf("binding %s env: %w", key, err)
		}
	}

	// Load global config first (if exists)
	globalPath := GlobalPath()
	if fileExists(globalPath) {
		v.SetConfigFile(globalPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading global config: %w", err)
		}
	}

	// Merge project config on top (if exists)
	projectPath := ProjectPath()
	if fileExists(projectPath) {
		v.SetConfigFile(projectPath)
		if err := v.MergeInConfig(); err != nil {
			return nil, fmt.Errorf("merging project config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks values that would otherwise fail at run time.
func (c *Config) Validate() error {
	if c.APIKeyDelay <= 0 {
		return fmt.Errorf("invalid api_key_delay %s: must be positive", c.APIKeyDelay)
	}
	if c.DashboardURL != "" {
		u, err := url.Parse(c.DashboardURL)
		if err != nil {
			return fmt.Errorf("invalid dashboard_url: %w", err)
		}
		if u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("invalid dashboard_url %q: must be absolute", c.DashboardURL)
		}
	}
	return nil
}

// Exists returns true if any config file exists (global or project).
func Exists() bool {
	return fileExists(GlobalPath()) || fileExists(ProjectPath())
}

// GlobalPath returns the XDG global config path.
// Returns ~/.config/onboardr/onboardr.yml or $XDG_CONFIG_HOME/onboardr/onboardr.yml.
func GlobalPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "onboardr", "onboardr.yml")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "onboardr", "onboardr.yml")
}

// ProjectPath returns the project-local config path.
// Returns ./onboardr.yml in the current working directory.
func ProjectPath() string {
	return "onboardr.yml"
}

// WriteGlobal writes the config to the XDG global location.
func WriteGlobal(cfg *Config) error {
	path := GlobalPath()

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	return write(path, cfg)
}

// WriteProject writes the config to the project-local location.
func WriteProject(cfg *Config) error {
	return write(ProjectPath(), cfg)
}

func write(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// fileExists checks if a file exists.
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
