package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// LoadJumper loads the jumper configuration.
// Search order: customPath -> ~/.arcade/configs/jumper.{yaml,toml} -> ./configs/jumper.{yaml,toml} -> embedded default
func LoadJumper(customPath string) (JumperConfig, error) {
	return load("jumper", customPath, defaultJumperYAML, DefaultJumperConfig)
}

// LoadJumperClassic loads the classic variant configuration with the same search order.
func LoadJumperClassic(customPath string) (JumperConfig, error) {
	return load("jumper_classic", customPath, defaultJumperClassicYAML, DefaultJumperClassicConfig)
}

// LoadFile decodes a single config file on top of base. The format is picked
// from the extension: .toml uses TOML, anything else YAML.
func LoadFile(path string, base JumperConfig) (JumperConfig, error) {
	cfg := base
	if isTOML(path) {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return base, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	} else {
		data, err := os.ReadFile(path)
		if err != nil {
			return base, fmt.Errorf("failed to read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return base, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return base, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func load(name, customPath string, embedded []byte, fallback func() JumperConfig) (JumperConfig, error) {
	// Try custom path first
	if customPath != "" {
		if _, err := os.Stat(customPath); err != nil {
			return fallback(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		return LoadFile(customPath, fallback())
	}

	// Try user config directory, then local configs directory
	candidates := make([]string, 0, 4)
	for _, ext := range []string{".yaml", ".toml"} {
		if p := userConfigPath(name + ext); p != "" {
			candidates = append(candidates, p)
		}
	}
	for _, ext := range []string{".yaml", ".toml"} {
		candidates = append(candidates, filepath.Join("configs", name+ext))
	}
	for _, p := range candidates {
		if _, err := os.Stat(p); err != nil {
			continue
		}
		if cfg, err := LoadFile(p, fallback()); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg := fallback()
	if err := yaml.Unmarshal(embedded, &cfg); err != nil {
		return fallback(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}
