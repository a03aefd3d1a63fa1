// Package formats provides pluggable level file format parsers.
package formats

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jws412/Facade/internal/actor"
	"github.com/jws412/Facade/internal/asset"
	"github.com/jws412/Facade/internal/tile"
)

// Map characters. Rows are written top first, so the last line is row 0.
const (
	MapSolid = '#'
	MapAir   = '.'
	MapSpawn = 'P' // Air tile the Player spawns on
	MapBug   = 'b' // Air tile with a Bug standing on it
)

var (
	ErrEmptyMap     = errors.New("empty tile map")
	ErrRaggedMap    = errors.New("map rows differ in length")
	ErrMapTooTall   = errors.New("map taller than a column")
	ErrMapCharacter = errors.New("unknown map character")
	ErrSpecies      = errors.New("unknown species")
)

// YAMLLevel represents the YAML structure for a level file.
type YAMLLevel struct {
	ID       string            `yaml:"id"`
	Name     string            `yaml:"name"`
	Map      string            `yaml:"map"`
	Actors   []YAMLActor       `yaml:"actors,omitempty"`
	Metadata map[string]string `yaml:"metadata,omitempty"`
}

// YAMLActor places an actor by pixel position.
type YAMLActor struct {
	Species string `yaml:"species"`
	X       uint16 `yaml:"x"`
	Y       uint16 `yaml:"y"`
	Facing  string `yaml:"facing,omitempty"` // "left" (default) or "right"
}

// Level represents a parsed level ready for use.
type Level struct {
	ID       string
	Name     string
	Columns  int
	Tiles    []tile.Type // Column-major, bottom row first
	Spawn    actor.Pos
	Actors   []actor.Actor
	Metadata map[string]string
}

// ParseYAML parses a YAML level file for columns of the given height.
func ParseYAML(data []byte, columnHeight, tileSize int) (Level, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	rows := strings.Split(strings.TrimRight(yl.Map, "\n"), "\n")
	if len(rows) == 0 || rows[0] == "" {
		return Level{}, ErrEmptyMap
	}
	if len(rows) > columnHeight {
		return Level{}, fmt.Errorf("%w: %d rows, column holds %d", ErrMapTooTall, len(rows), columnHeight)
	}
	columns := len(rows[0])

	level := Level{
		ID:       yl.ID,
		Name:     yl.Name,
		Columns:  columns,
		Tiles:    make([]tile.Type, columns*columnHeight),
		Metadata: yl.Metadata,
	}

	spawnSet := false
	for i, text := range rows {
		if len(text) != columns {
			return Level{}, fmt.Errorf("%w: row %d has %d columns, want %d", ErrRaggedMap, i+1, len(text), columns)
		}
		row := len(rows) - 1 - i
		for col := 0; col < columns; col++ {
			pos := actor.Pos{X: uint16(col * tileSize), Y: uint16(row * tileSize)}
			switch text[col] {
			case MapSolid:
				level.Tiles[col*columnHeight+row] = tile.Solid
			case MapAir:
			case MapSpawn:
				level.Spawn, spawnSet = pos, true
			case MapBug:
				level.Actors = append(level.Actors, actor.Actor{
					Pos:     pos,
					Species: actor.Bug,
					Anim:    actor.Anim{Mirrored: true},
				})
			default:
				return Level{}, fmt.Errorf("%w %q at row %d column %d", ErrMapCharacter, text[col], i+1, col+1)
			}
		}
	}
	if !spawnSet {
		level.Spawn = asset.FindSpawn(level.Tiles, columnHeight, tileSize)
	}

	for _, ya := range yl.Actors {
		species, ok := actor.ParseSpecies(ya.Species)
		if !ok || species == actor.Player {
			return Level{}, fmt.Errorf("%w: %q", ErrSpecies, ya.Species)
		}
		level.Actors = append(level.Actors, actor.Actor{
			Pos:     actor.Pos{X: ya.X, Y: ya.Y},
			Species: species,
			Anim:    actor.Anim{Mirrored: ya.Facing != "right"},
		})
	}

	return level, nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml", ".lvl"}
}
