package formats

import (
	"fmt"

	"github.com/jws412/Facade/internal/asset"
)

// ParseBinary parses a packed .lvl layout plus an optional .gen actor list.
// Binary files carry no name, so the caller supplies the ID.
func ParseBinary(id string, layout, actors []byte, columnHeight, tileSize int) (Level, error) {
	lvl, err := asset.DecodeLevel(layout, columnHeight, tileSize)
	if err != nil {
		return Level{}, fmt.Errorf("layout: %w", err)
	}

	level := Level{
		ID:      id,
		Name:    id,
		Columns: lvl.Columns,
		Tiles:   lvl.Tiles,
		Spawn:   lvl.Spawn,
	}
	if actors != nil {
		level.Actors, err = asset.ParseActors(actors)
		if err != nil {
			return Level{}, fmt.Errorf("actors: %w", err)
		}
	}
	return level, nil
}
