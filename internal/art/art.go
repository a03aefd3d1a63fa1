// Package art loads the static graphics a level is drawn with: the tile
// atlas, the full-screen background and the sprite molds. Packs come from
// YAML (the built-in pack is one) or from a directory of packed binary
// assets.
package art

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jws412/Facade/internal/actor"
	"github.com/jws412/Facade/internal/core"
	"github.com/jws412/Facade/internal/sprite"
	"github.com/jws412/Facade/internal/tile"
)

var (
	ErrMissingMold    = errors.New("missing mold")
	ErrTileSize       = errors.New("tile size mismatch")
	ErrBackgroundSize = errors.New("background does not cover the screen")
)

// Art is one loaded art pack.
type Art struct {
	Name       string
	Atlas      *tile.Atlas
	Background []core.Pixel // Screen-sized, bottom row first; nil clears to black
	Molds      *sprite.Table
}

// Check verifies the pack can draw on a screen of the given geometry.
func (a *Art) Check(screenW, screenH, tileSize int) error {
	if a.Atlas == nil || a.Atlas.Size != tileSize {
		return fmt.Errorf("%s: %w", a.Name, ErrTileSize)
	}
	if a.Background != nil && len(a.Background) != screenW*screenH {
		return fmt.Errorf("%s: %d pixels for %dx%d: %w", a.Name, len(a.Background), screenW, screenH, ErrBackgroundSize)
	}
	for _, s := range []actor.Species{actor.Player, actor.Bug} {
		m, ok := a.Molds.For(s)
		if !ok || !m.Valid() {
			return fmt.Errorf("%s: %s: %w", a.Name, s, ErrMissingMold)
		}
	}
	return nil
}

// Load loads the pack at path: a YAML file, a directory of binary assets,
// or the built-in pack when path is empty. The result is checked against
// the screen geometry.
func Load(path string, screenW, screenH, tileSize int) (*Art, error) {
	a, err := load(path, screenW, screenH, tileSize)
	if err != nil {
		return nil, err
	}
	if err := a.Check(screenW, screenH, tileSize); err != nil {
		return nil, err
	}
	return a, nil
}

func load(path string, screenW, screenH, tileSize int) (*Art, error) {
	if path == "" {
		return Builtin(screenW, screenH)
	}
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("art %s: %w", path, err)
	}
	if info.IsDir() {
		return LoadDir(os.DirFS(path), ".", screenW, screenH, tileSize)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("art %s: %w", path, err)
	}
	a, err := ParseYAML(data, screenW, screenH)
	if err != nil {
		return nil, fmt.Errorf("art %s: %w", filepath.Base(path), err)
	}
	return a, nil
}
