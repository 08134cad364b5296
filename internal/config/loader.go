package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Source names where a configuration came from.
const (
	SourceEmbedded = "embedded defaults"
	SourceBuiltin  = "built-in defaults"
)

// LoadRoller loads the roller configuration and reports where it came from.
// Search order: customPath -> ~/.rollhigh/configs/roller.yaml -> ./configs/roller.yaml -> embedded default.
// Files are layered over the defaults, so they only need the keys they change.
// Only a custom path turns read or parse failures into errors.
func LoadRoller(customPath string) (RollerConfig, string, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return RollerConfig{}, "", fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseOverDefaults(data)
		if err != nil {
			return RollerConfig{}, "", fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, customPath, nil
	}

	if userCfgPath := userConfigPath("roller.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseOverDefaults(data); err == nil {
				return cfg, userCfgPath, nil
			}
		}
	}

	localPath := filepath.Join("configs", "roller.yaml")
	if data, err := os.ReadFile(localPath); err == nil {
		if cfg, err := parseOverDefaults(data); err == nil {
			return cfg, localPath, nil
		}
	}

	var cfg RollerConfig
	if err := yaml.Unmarshal(defaultRollerYAML, &cfg); err != nil {
		return DefaultRollerConfig(), SourceBuiltin, nil // Fallback to hardcoded if embed fails
	}
	return cfg, SourceEmbedded, nil
}

// parseOverDefaults decodes data on top of the built-in configuration.
func parseOverDefaults(data []byte) (RollerConfig, error) {
	cfg := DefaultRollerConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return RollerConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".rollhigh", "configs", filename)
}

// ParsePreset converts a CLI value into a preset. The empty string means
// "use the config as is".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *RollerConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if IsFixedPreset(preset) {
		cfg.Difficulty.Enabled = false
		return
	}

	cfg.Difficulty.Enabled = true
	cfg.Difficulty.Offset = InitialLevelForPreset(preset)
	if preset == DifficultyEasy {
		cfg.Difficulty.Divisor *= 1.5
	}
}

// Marshal renders cfg as YAML.
func Marshal(cfg RollerConfig) ([]byte, error) {
	return yaml.Marshal(cfg)
}
