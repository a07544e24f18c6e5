// Package config loads and saves user settings for moveit.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var validate = validator.New()

// Config holds user settings. Environment variables prefixed with MOVEIT_
// override values from the config file.
type Config struct {
	DBPath        string `yaml:"db_path,omitempty" env:"DB_PATH"`
	CatalogPath   string `yaml:"catalog_path,omitempty" env:"CATALOG_PATH"`
	CuePath       string `yaml:"cue_path,omitempty" env:"CUE_PATH"`
	Player        string `yaml:"player,omitempty" env:"PLAYER"`
	Notifications bool   `yaml:"notifications" env:"NOTIFICATIONS"`
	LogLevel      string `yaml:"log_level" env:"LOG_LEVEL" validate:"oneof=debug info warn error"`
	LogFile       string `yaml:"log_file,omitempty" env:"LOG_FILE"`
}

// Default returns the settings used when no config file exists.
func Default() Config {
	return Config{
		Notifications: true,
		LogLevel:      "info",
	}
}

// ConfigPath returns the location of the config file.
func ConfigPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("config path: %w", err)
	}
	return filepath.Join(dir, "moveit", "config.yaml"), nil
}

// Load reads the config file at its default location.
func Load() (Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return Default(), err
	}
	return LoadFile(path)
}

// LoadFile reads the config at path, applies environment overrides and
// validates the result. A missing file yields the defaults.
func LoadFile(path string) (Config, error) {
	cfg, err := ReadFile(path)
	if err != nil {
		return Default(), err
	}

	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: "MOVEIT_"}); err != nil {
		return Default(), fmt.Errorf("config: env: %w", err)
	}

	if err := validate.Struct(cfg); err != nil {
		return Default(), fmt.Errorf("config: invalid: %w", err)
	}
	return cfg, nil
}

// ReadFile returns the settings stored at path, ignoring the environment.
// Use it to edit the file so overrides are never written back.
func ReadFile(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Default(), fmt.Errorf("config: parse %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist):
		// defaults
	default:
		return Default(), fmt.Errorf("config: read %s: %w", path, err)
	}

	if err := validate.Struct(cfg); err != nil {
		return Default(), fmt.Errorf("config: invalid %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg to the default config location.
func Save(cfg Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	return SaveFile(path, cfg)
}

// SaveFile writes cfg as YAML to path.
func SaveFile(path string, cfg Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config: invalid: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("config: create dir: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("config: marshal: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	return nil
}
