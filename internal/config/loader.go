package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Config file names searched for on disk, in order.
const (
	ConfigFile     = "bounce.yaml"
	ConfigFileTOML = "bounce.toml"
)

// Format is a config file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatFor picks the encoding from a file extension. Anything but .toml is YAML.
func FormatFor(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return FormatTOML
	}
	return FormatYAML
}

// LoadBounce loads the game configuration.
// Search order: customPath -> ~/.bounce/configs/bounce.{yaml,toml} ->
// ./configs/bounce.{yaml,toml} -> embedded default. Files ending in .toml are
// read as TOML, everything else as YAML.
// Files are layered over the defaults, so a partial file only overrides the keys it names.
func LoadBounce(customPath string) (BounceConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return BounceConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseAs(FormatFor(customPath), data)
		if err != nil {
			return BounceConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return BounceConfig{}, fmt.Errorf("config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, name := range []string{ConfigFile, ConfigFileTOML} {
		// Try user config directory
		if userCfgPath := userConfigPath(name); userCfgPath != "" {
			if cfg, ok := tryLoad(userCfgPath); ok {
				return cfg, nil
			}
		}

		// Try local configs directory
		if cfg, ok := tryLoad(filepath.Join("configs", name)); ok {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseBounce(defaultBounceYAML)
	if err != nil || cfg.Validate() != nil {
		return DefaultBounceConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// tryLoad reads an optional config file. Unreadable or invalid files are skipped.
func tryLoad(path string) (BounceConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return BounceConfig{}, false
	}
	cfg, err := parseAs(FormatFor(path), data)
	if err != nil || cfg.Validate() != nil {
		return BounceConfig{}, false
	}
	return cfg, true
}

func parseBounce(data []byte) (BounceConfig, error) {
	return parseAs(FormatYAML, data)
}

// parseAs decodes data over the defaults.
func parseAs(format Format, data []byte) (BounceConfig, error) {
	cfg := DefaultBounceConfig()
	var err error
	if format == FormatTOML {
		_, err = toml.Decode(string(data), &cfg)
	} else {
		err = yaml.Unmarshal(data, &cfg)
	}
	if err != nil {
		return BounceConfig{}, err
	}
	return cfg, nil
}

// Encode writes cfg in the given format.
func Encode(cfg BounceConfig, format Format) ([]byte, error) {
	var buf bytes.Buffer
	if format == FormatTOML {
		if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
			return nil, fmt.Errorf("encoding toml: %w", err)
		}
		return buf.Bytes(), nil
	}

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return nil, fmt.Errorf("encoding yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encoding yaml: %w", err)
	}
	return buf.Bytes(), nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".bounce", "configs", filename)
}

// ApplyBouncePreset modifies the config based on a difficulty preset.
func ApplyBouncePreset(cfg *BounceConfig, preset DifficultyPreset) {
	cfg.Speed.Enabled = !IsFixedPreset(preset)

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Paddle.WidthRatio = 0.34
		cfg.Ball.BaseSpeed = 5
		cfg.PowerUps.Chance = 0.15
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Paddle.WidthRatio = 0.22
		cfg.Ball.BaseSpeed = 7
		cfg.PowerUps.Chance = 0.07
	}
	if cfg.Ball.BaseSpeed > cfg.Ball.MaxSpeed {
		cfg.Ball.MaxSpeed = cfg.Ball.BaseSpeed
	}
}
