// Package config loads the optional .lastverified.toml settings file.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// FileName is the settings file looked up in the repository root.
const FileName = ".lastverified.toml"

type Config struct {
	Data DataConfig `toml:"data"`
}

type DataConfig struct {
	File        string `toml:"file"`
	NameKey     string `toml:"name_key"`
	VerifiedKey string `toml:"verified_key"`
}

func DefaultConfig() *Config {
	return &Config{
		Data: DataConfig{
			File:        "public/data/hotlines.json",
			NameKey:     "hotlineName",
			VerifiedKey: "lastVerified",
		},
	}
}

// Load reads settings from path, or from the default locations when path is
// empty. Missing files are fine; the defaults already describe the hotline
// data set.
func Load(repoRoot, path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, err
		}
	} else {
		// Try default locations
		locations := []string{
			filepath.Join(repoRoot, FileName),
			filepath.Join(os.Getenv("HOME"), FileName),
		}
		for _, loc := range locations {
			if _, err := os.Stat(loc); err == nil {
				if _, err := toml.DecodeFile(loc, cfg); err == nil {
					break
				}
			}
		}
	}

	// Override with environment variables
	applyEnvOverrides(cfg)

	return cfg, nil
}

func Validate(cfg *Config) []string {
	var warnings []string

	if cfg.Data.File == "" {
		warnings = append(warnings, "Data file path is empty")
	}
	if filepath.IsAbs(cfg.Data.File) {
		warnings = append(warnings, "Data file path should be relative to the repository root")
	}
	if cfg.Data.NameKey == "" {
		warnings = append(warnings, "Name key is empty")
	}
	if cfg.Data.VerifiedKey == "" {
		warnings = append(warnings, "Verified key is empty")
	}
	if cfg.Data.NameKey != "" && cfg.Data.NameKey == cfg.Data.VerifiedKey {
		warnings = append(warnings, "Name key and verified key are identical")
	}
	for _, key := range []string{cfg.Data.NameKey, cfg.Data.VerifiedKey} {
		if strings.Contains(key, `"`) {
			warnings = append(warnings, "Field keys must not contain quote characters")
			break
		}
	}

	return warnings
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("LASTVERIFIED_FILE"); v != "" {
		cfg.Data.File = v
	}
	if v := os.Getenv("LASTVERIFIED_NAME_KEY"); v != "" {
		cfg.Data.NameKey = v
	}
	if v := os.Getenv("LASTVERIFIED_VERIFIED_KEY"); v != "" {
		cfg.Data.VerifiedKey = v
	}
}
