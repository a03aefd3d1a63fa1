package art

import (
	"fmt"
	"io/fs"
	"path"

	"github.com/jws412/Facade/internal/actor"
	"github.com/jws412/Facade/internal/asset"
	"github.com/jws412/Facade/internal/sprite"
	"github.com/jws412/Facade/internal/tile"
)

// Binary pack file names.
const (
	TileFile       = "tile.bci" // One image per tile type, back to back
	BackgroundFile = "bck.bci"
)

// LoadDir loads a directory of packed assets: the tile images, the
// background and a .mld header plus .bci frames for each species.
func LoadDir(fsys fs.FS, dir string, screenW, screenH, tileSize int) (*Art, error) {
	read := func(name string) ([]byte, error) {
		data, err := fs.ReadFile(fsys, path.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("art: %w", err)
		}
		return data, nil
	}

	a := &Art{Name: path.Base(dir), Molds: sprite.NewTable()}
	if dir == "." {
		a.Name = "binary"
	}

	bck, err := read(BackgroundFile)
	if err != nil {
		return nil, err
	}
	a.Background, _, err = asset.DecodeImage(bck, screenW*screenH)
	if err != nil {
		return nil, fmt.Errorf("art %s: %w", BackgroundFile, err)
	}

	for _, s := range []actor.Species{actor.Player, actor.Bug} {
		header, err := read(s.String() + ".mld")
		if err != nil {
			return nil, err
		}
		frames, err := read(s.String() + ".bci")
		if err != nil {
			return nil, err
		}
		m, err := asset.DecodeMold(header, frames)
		if err != nil {
			return nil, fmt.Errorf("art %s: %w", s, err)
		}
		a.Molds.Register(s, m)
	}

	tiles, err := read(TileFile)
	if err != nil {
		return nil, err
	}
	a.Atlas = tile.NewAtlas(tileSize)
	for t := tile.Air; t <= tile.Solid; t++ {
		img, n, err := asset.DecodeImage(tiles, tileSize*tileSize)
		if err != nil {
			return nil, fmt.Errorf("art %s %s: %w", TileFile, t, err)
		}
		a.Atlas.Set(t, img)
		tiles = tiles[n:]
	}
	return a, nil
}
