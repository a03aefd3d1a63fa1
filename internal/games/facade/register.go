package facade

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/jws412/Facade/internal/config"
	"github.com/jws412/Facade/internal/level"
	"github.com/jws412/Facade/internal/registry"
)

// loaderFunc builds a level loader for a column height and tile size.
type loaderFunc func(columnHeight, tileSize int) *level.Loader

// Register all built-in levels
func init() {
	if _, err := RegisterLevels(level.Builtin); err != nil {
		log.Error("built-in levels failed to load", "err", err)
	}
}

// RegisterDir registers every level in a directory. Levels whose ID is
// already taken are skipped. It returns the IDs it registered.
func RegisterDir(dir string) ([]string, error) {
	return RegisterLevels(func(columnHeight, tileSize int) *level.Loader {
		return level.NewLoader(dir, columnHeight, tileSize)
	})
}

// RegisterLevels registers every level a loader finds. Titles come from
// the default geometry; each factory reloads its level for the geometry
// the configuration asks for at creation time.
func RegisterLevels(newLoader loaderFunc) ([]string, error) {
	d := config.DefaultFacadeConfig().Display
	levels, err := newLoader(d.ColumnHeight(), d.TileSize).LoadAll()
	if err != nil {
		return nil, err
	}

	var ids []string
	for _, lvl := range levels {
		if registry.Exists(lvl.ID) {
			log.Warn("duplicate level skipped", "level", lvl.ID, "file", lvl.FilePath)
			continue
		}
		id := lvl.ID
		registry.Register(id, lvl.Name, func() (registry.Game, error) {
			return create(newLoader, id)
		})
		ids = append(ids, id)
	}
	return ids, nil
}

func create(newLoader loaderFunc, id string) (registry.Game, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	d := cfg.Display
	lvl, err := newLoader(d.ColumnHeight(), d.TileSize).LoadByID(id)
	if err != nil {
		return nil, err
	}
	a, err := LoadArt(cfg)
	if err != nil {
		return nil, err
	}
	return New(lvl, cfg, a)
}
