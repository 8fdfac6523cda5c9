package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Tuning is the YAML view of every overridable value. Missing keys keep their
// current value.
type Tuning struct {
	Screen  *ScreenConfig  `yaml:"screen"`
	Physics *PhysicsConfig `yaml:"physics"`
	Player  *PlayerConfig  `yaml:"player"`
	BadGuy  *BadGuyConfig  `yaml:"badguy"`
	Objects *ObjectsConfig `yaml:"objects"`
	Score   *ScoreConfig   `yaml:"score"`
	Debug   *DebugConfig   `yaml:"debug"`
}

// ApplyOverrides decodes YAML on top of the current tuning values.
func ApplyOverrides(data []byte) error {
	t := Tuning{
		Screen:  &Screen,
		Physics: &Physics,
		Player:  &Player,
		BadGuy:  &BadGuy,
		Objects: &Objects,
		Score:   &Score,
		Debug:   &Debug,
	}
	if err := yaml.Unmarshal(data, &t); err != nil {
		return fmt.Errorf("parse tuning: %w", err)
	}
	return nil
}

// LoadOverrides applies tuning overrides.
// Search order: customPath -> ~/.floe/tuning.yaml -> ./configs/tuning.yaml -> built-in defaults.
// It returns the path that was applied, or "" when the defaults are kept.
func LoadOverrides(customPath string) (string, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return "", fmt.Errorf("failed to read tuning %s: %w", customPath, err)
		}
		if err := ApplyOverrides(data); err != nil {
			return "", fmt.Errorf("%s: %w", customPath, err)
		}
		return customPath, nil
	}

	for _, path := range []string{userConfigPath("tuning.yaml"), filepath.Join("configs", "tuning.yaml")} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if err := ApplyOverrides(data); err != nil {
			return "", fmt.Errorf("%s: %w", path, err)
		}
		return path, nil
	}
	return "", nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".floe", filename)
}
