package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadFacade loads the Facade configuration.
// Search order: customPath -> ~/.facade/configs/facade.yaml -> ./configs/facade.yaml -> embedded default
//
// Files found on the search path start from the defaults, so they only need
// to list the keys they change. A custom path must exist and validate;
// broken files further down the path are skipped.
func LoadFacade(customPath string) (FacadeConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return FacadeConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseFacade(data)
		if err != nil {
			return FacadeConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("facade.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseFacade(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/facade.yaml"); err == nil {
		if cfg, err := parseFacade(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseFacade(defaultFacadeYAML)
	if err != nil {
		return DefaultFacadeConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseFacade overlays YAML onto the defaults and validates the result.
func parseFacade(data []byte) (FacadeConfig, error) {
	cfg := DefaultFacadeConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return FacadeConfig{}, err
	}
	preset, err := ParseDifficultyPreset(string(cfg.Difficulty))
	if err != nil {
		return FacadeConfig{}, err
	}
	cfg.Difficulty = preset
	if err := cfg.Validate(); err != nil {
		return FacadeConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".facade", "configs", filename)
}
