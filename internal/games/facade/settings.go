package facade

import (
	"sync"

	"github.com/jws412/Facade/internal/art"
	"github.com/jws412/Facade/internal/config"
)

// Package-level settings for games created through the registry.
var (
	settingsMu       sync.RWMutex
	configPath       string
	difficultyPreset string
	artPath          string
)

// SetConfigPath sets a custom config path for subsequently created games.
func SetConfigPath(path string) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	configPath = path
}

// SetDifficultyPreset overrides the config file's difficulty.
func SetDifficultyPreset(preset string) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	difficultyPreset = preset
}

// SetArtPath selects an art pack: a YAML file or a binary asset directory.
// Empty means the built-in pack.
func SetArtPath(path string) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	artPath = path
}

// LoadConfig loads the configuration with the difficulty preset applied.
func LoadConfig() (config.FacadeConfig, error) {
	settingsMu.RLock()
	path, preset := configPath, difficultyPreset
	settingsMu.RUnlock()

	cfg, err := config.LoadFacade(path)
	if err != nil {
		return config.FacadeConfig{}, err
	}
	if preset != "" {
		p, err := config.ParseDifficultyPreset(preset)
		if err != nil {
			return config.FacadeConfig{}, err
		}
		cfg.Difficulty = p
	}
	config.ApplyFacadePreset(&cfg, cfg.Difficulty)
	return cfg, nil
}

// LoadArt loads the selected art pack for cfg's screen.
func LoadArt(cfg config.FacadeConfig) (*art.Art, error) {
	settingsMu.RLock()
	path := artPath
	settingsMu.RUnlock()

	d := cfg.Display
	return art.Load(path, d.Width, d.Height, d.TileSize)
}
