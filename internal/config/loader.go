package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadStarfall loads the Starfall configuration.
// Search order: customPath -> ~/.astro-arcade/configs/starfall.yaml ->
// ./configs/starfall.yaml -> embedded default
func LoadStarfall(customPath string) (StarfallConfig, error) {
	var cfg StarfallConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("starfall.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/starfall.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultStarfallYAML, &cfg); err != nil {
		return DefaultStarfallConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".astro-arcade", "configs", filename)
}

// ApplyStarfallPreset modifies the config based on a difficulty preset.
func ApplyStarfallPreset(cfg *StarfallConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Player.MaxHealth = 50
		cfg.Player.StartAmmo = 30
		cfg.Spawning.AsteroidInterval = 70
		cfg.Asteroids.BaseSpeed = 0.10
	case DifficultyHard:
		cfg.Player.MaxHealth = 20
		cfg.Player.StartAmmo = 15
		cfg.Spawning.AsteroidInterval = 40
		cfg.Spawning.FastLevel = 1
		cfg.Asteroids.BaseSpeed = 0.15
	}
}
