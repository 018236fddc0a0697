/*
Package config manages the TOML config for the suggestion engine's
front-ends. Config never fails hard: a missing or broken file falls back
to builtin defaults so the engine always comes up.
*/
package config

import (
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/Nel-sokchhunly/sing-khmer-keyboard/internal/utils"
)

// Config holds the entire config structure
type Config struct {
	Server ServerConfig `toml:"server"`
	Dict   DictConfig   `toml:"dict"`
	CLI    CliConfig    `toml:"cli"`
}

// ServerConfig has IPC related options.
type ServerConfig struct {
	// MaxInputLen rejects oversized inputs at the transport; 0 disables
	// the check. The engine itself accepts any string.
	MaxInputLen int `toml:"max_input_len"`
}

// DictConfig holds corpus options.
type DictConfig struct {
	Path string `toml:"path"`
}

// CliConfig holds interactive mode options.
type CliConfig struct {
	ShowFreq bool `toml:"show_freq"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			MaxInputLen: 60,
		},
		Dict: DictConfig{
			Path: "data/words.txt",
		},
		CLI: CliConfig{
			ShowFreq: true,
		},
	}
}

// LoadConfig loads from a TOML file, decoding over the defaults so any
// omitted section keeps its builtin value.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if err := utils.LoadTOMLFile(path, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// InitConfig loads config from file or creates a default one if missing.
// Any failure degrades to builtin defaults with a warning.
func InitConfig(path string) *Config {
	if err := utils.EnsureDir(filepath.Dir(path)); err != nil {
		log.Warnf("Failed to create config directory for %s: %v. Using builtin defaults...", path, err)
		return DefaultConfig()
	}

	if !utils.FileExists(path) {
		cfg := DefaultConfig()
		if err := SaveConfig(cfg, path); err != nil {
			log.Warnf("Failed to create default config at %s: %v. Using builtin defaults...", path, err)
			return DefaultConfig()
		}
		log.Debugf("Created default config file at: %s", path)
		return cfg
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		log.Warnf("Failed to load config from %s: %v. Using builtin defaults...", path, err)
		return DefaultConfig()
	}
	return cfg
}

// SaveConfig saves into a TOML file
func SaveConfig(cfg *Config, path string) error {
	return utils.SaveTOMLFile(cfg, path)
}
