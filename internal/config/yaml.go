package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// LoadConfigFile loads a job file on top of the defaults.
// Files ending in .toml are decoded as TOML, everything else as YAML.
func LoadConfigFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if isTOML(path) {
		err = toml.Unmarshal(data, cfg)
	} else {
		err = yaml.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// relative job paths are relative to the job file
	base := filepath.Dir(path)
	for i := range cfg.Jobs {
		cfg.Jobs[i].Video = resolvePath(base, cfg.Jobs[i].Video)
		cfg.Jobs[i].Korean = resolvePath(base, cfg.Jobs[i].Korean)
		cfg.Jobs[i].English = resolvePath(base, cfg.Jobs[i].English)
	}

	return cfg, nil
}

// FindConfigFile searches for a job file in standard locations.
// Returns empty string if not found (non-fatal)
func FindConfigFile() string {
	locations := []string{
		"./subburn.yaml",
		"./subburn.yml",
		"./subburn.toml",
	}
	if home, err := os.UserHomeDir(); err == nil {
		locations = append(locations,
			filepath.Join(home, ".subburn", "config.yaml"),
			filepath.Join(home, ".subburn", "config.yml"),
			filepath.Join(home, ".subburn", "config.toml"),
		)
	}

	for _, path := range locations {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// SaveConfigFile writes cfg as YAML, or TOML for a .toml path
func SaveConfigFile(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	var data []byte
	var err error
	if isTOML(path) {
		data, err = toml.Marshal(cfg)
	} else {
		data, err = yaml.Marshal(cfg)
	}
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

func resolvePath(base, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(base, p)
}

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}
