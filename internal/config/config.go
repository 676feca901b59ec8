// Package config loads optional YAML configuration for the CLI. A local
// config next to the scanned root overrides the global one; explicit CLI
// flags override both.
package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileConfig is the on-disk YAML configuration shape. Fields are pointers so
// "unset" is distinguishable from a zero value during precedence resolution.
type FileConfig struct {
	Include  *string `yaml:"include"`
	Exclude  *string `yaml:"exclude"`
	MaxBytes *int64  `yaml:"max_bytes"`
	Threads  *int    `yaml:"threads"`
	NoColor  *bool   `yaml:"no_color"`
	Table    *bool   `yaml:"table"`
	Length   *int    `yaml:"length"`
}

// LoadFile reads a YAML config file from the provided path.
func LoadFile(path string) (FileConfig, error) {
	var cfg FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadLocal searches for a config file in the given root directory.
// It supports .bytesleuth.yml/.yaml and bytesleuth.yml/.yaml.
func LoadLocal(root string) (FileConfig, error) {
	var cfg FileConfig
	for _, name := range []string{".bytesleuth.yml", ".bytesleuth.yaml", "bytesleuth.yml", "bytesleuth.yaml"} {
		p := filepath.Join(root, name)
		if _, err := os.Stat(p); err == nil {
			return LoadFile(p)
		}
	}
	return cfg, errors.New("no local config")
}

// LoadGlobal loads the global config file from XDG base directory or ~/.config.
func LoadGlobal() (FileConfig, error) {
	var cfg FileConfig
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, _ := os.UserHomeDir()
		if home != "" {
			base = filepath.Join(home, ".config")
		}
	}
	if base == "" {
		return cfg, errors.New("no config dir")
	}
	p := filepath.Join(base, "bytesleuth", "config.yml")
	if _, err := os.Stat(p); err == nil {
		return LoadFile(p)
	}
	return cfg, errors.New("no global config")
}
