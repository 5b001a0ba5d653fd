package config

import (
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	var fromYAML StarfallConfig
	if err := yaml.Unmarshal(defaultStarfallYAML, &fromYAML); err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}
	if fromYAML != DefaultStarfallConfig() {
		t.Errorf("embedded default diverged from hardcoded fallback:\nyaml: %+v\ncode: %+v",
			fromYAML, DefaultStarfallConfig())
	}
}

func TestDefaultConfigValidates(t *testing.T) {
	cfg := DefaultStarfallConfig().ToEngine(80, 24)
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config fails engine validation: %v", err)
	}
}

func TestPresetsValidate(t *testing.T) {
	for _, preset := range []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard} {
		cfg := DefaultStarfallConfig()
		ApplyStarfallPreset(&cfg, preset)
		ecfg := cfg.ToEngine(80, 24)
		if err := ecfg.Validate(); err != nil {
			t.Errorf("preset %s fails engine validation: %v", preset, err)
		}
	}
}
