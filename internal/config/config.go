package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/xlc-dev/chromatic/internal/config/colors"
	"gopkg.in/yaml.v3"
)

// ThemeFileEnv names an optional YAML file merged over the configured theme
const ThemeFileEnv = "CHROMATIC_THEME_FILE"

// Config represents the application configuration
type Config struct {
	Theme    Theme  `yaml:"theme"`
	LogLevel string `yaml:"log_level"`
}

// Theme is a preset name plus optional per-color overrides
type Theme struct {
	Preset             string `yaml:"preset"`
	colors.ColorScheme `yaml:",inline"`
}

// Default returns the configuration used when no file exists
func Default() *Config {
	return &Config{
		Theme:    Theme{Preset: "default", ColorScheme: colors.Default()},
		LogLevel: "info",
	}
}

// loadThemeFile merges the theme from CHROMATIC_THEME_FILE, if set.
// A file that does not exist is skipped.
func loadThemeFile(config *Config) error {
	themeFile := os.Getenv(ThemeFileEnv)
	if themeFile == "" {
		return nil
	}

	themeData, err := os.ReadFile(themeFile)
	if errors.Is(err, fs.ErrNotExist) {
		slog.Debug("theme file not found", "path", themeFile)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read theme file %s: %w", themeFile, err)
	}

	var themeConfig struct {
		Theme Theme `yaml:"theme"`
	}

	if err := yaml.Unmarshal(themeData, &themeConfig); err != nil {
		return fmt.Errorf("failed to parse theme file %s: %w", themeFile, err)
	}

	// A preset named in the theme file replaces the base colors before overrides apply
	if themeConfig.Theme.Preset != "" && themeConfig.Theme.Preset != config.Theme.Preset {
		config.Theme.Preset = themeConfig.Theme.Preset
		config.Theme.ColorScheme = colors.ColorScheme{}
	}
	config.Theme.MergeFrom(themeConfig.Theme.ColorScheme)
	return nil
}

// Load loads config from the user's config directory
// Returns default config if file doesn't exist
func Load() (*Config, error) {
	config := Default()

	configPath, err := Path()
	if err == nil {
		data, readErr := os.ReadFile(configPath)
		switch {
		case errors.Is(readErr, fs.ErrNotExist):
		case readErr != nil:
			return nil, fmt.Errorf("failed to read config %s: %w", configPath, readErr)
		default:
			config = &Config{}
			if err := yaml.Unmarshal(data, config); err != nil {
				return nil, fmt.Errorf("failed to parse config %s: %w", configPath, err)
			}
		}
	}

	if err := loadThemeFile(config); err != nil {
		return nil, err
	}

	// Fill in any missing values with defaults
	config.applyDefaults()

	return config, nil
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := Path()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o644)
}

// Scheme returns the resolved color scheme
func (c *Config) Scheme() colors.ColorScheme {
	return c.Theme.ColorScheme
}

// Path returns the path to the config file
func Path() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "chromatic", "config.yaml"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "chromatic", "config.yaml"), nil
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	if c.Theme.Preset == "" {
		c.Theme.Preset = "default"
	}
	c.Theme.ApplyDefaults(c.Theme.Preset)
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}
