package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Load loads configuration with priority: defaults < file < flags.
func Load() (*Config, error) {
	cfg := Default()

	// Explicit path takes priority over the standard locations.
	configPath := ConfigPath()
	if configPath == "" {
		configPath = findConfigFile()
	}

	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", configPath, err)
		}
	}

	applyFlags(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Validate checks the settings that would otherwise fail late.
func (c *Config) Validate() error {
	var errs []error
	if c.Resources.Markup == "" {
		errs = append(errs, errors.New("resources.markup is empty"))
	}
	if c.Resources.Program == "" {
		errs = append(errs, errors.New("resources.program is empty"))
	}
	if c.Resources.MaxConcurrent < 0 {
		errs = append(errs, fmt.Errorf("resources.max_concurrent %d is negative", c.Resources.MaxConcurrent))
	}
	if c.Resources.Timeout < 0 {
		errs = append(errs, fmt.Errorf("resources.timeout %s is negative", c.Resources.Timeout))
	}
	if c.Meshes.Monkey == "" || c.Meshes.Helix == "" {
		errs = append(errs, errors.New("meshes.monkey and meshes.helix are required"))
	}
	if c.Animation.Duration <= 0 {
		errs = append(errs, fmt.Errorf("animation.duration %v must be positive", c.Animation.Duration))
	}
	return errors.Join(errs...)
}

// findConfigFile looks for config in standard locations.
func findConfigFile() string {
	candidates := []string{
		"./config.yaml",
		filepath.Join(ConfigDir(), "config.yaml"),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// ConfigDir returns the OS-appropriate config directory.
func ConfigDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "meshease")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "meshease")
	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "meshease")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "meshease")
	}
}

// loadFromFile loads config from a YAML file, merging with existing values.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}
