package level

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/jws412/Facade/internal/level/formats"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// Loader handles loading levels from a file tree.
type Loader struct {
	FS           fs.FS
	Root         string // Directory inside FS to scan
	ColumnHeight int
	TileSize     int
}

// NewLoader creates a loader for a directory on disk.
func NewLoader(root string, columnHeight, tileSize int) *Loader {
	return &Loader{FS: os.DirFS(root), Root: ".", ColumnHeight: columnHeight, TileSize: tileSize}
}

// Builtin creates a loader for the levels compiled into the binary.
func Builtin(columnHeight, tileSize int) *Loader {
	return &Loader{FS: builtinFS, Root: "builtin", ColumnHeight: columnHeight, TileSize: tileSize}
}

// LoadAll recursively scans and loads all level files.
// Returns levels sorted by ID for deterministic ordering.
func (l *Loader) LoadAll() ([]Level, error) {
	var levels []Level

	err := fs.WalkDir(l.FS, l.Root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(path.Ext(p))
		if !isSupportedExtension(ext) {
			return nil
		}

		level, err := l.LoadFile(p)
		if err != nil {
			// Skip invalid files
			return nil
		}

		levels = append(levels, level)
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	// Sort by ID for determinism
	sort.Slice(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})

	return levels, nil
}

// LoadFile loads a single level file. A .lvl layout picks up the actor
// list from a sibling .gen file when there is one.
func (l *Loader) LoadFile(p string) (Level, error) {
	data, err := fs.ReadFile(l.FS, p)
	if err != nil {
		return Level{}, fmt.Errorf("reading file %s: %w", p, err)
	}

	ext := strings.ToLower(path.Ext(p))
	var parsed formats.Level
	switch ext {
	case ".yaml", ".yml":
		parsed, err = formats.ParseYAML(data, l.ColumnHeight, l.TileSize)
	case ".lvl":
		base := strings.TrimSuffix(p, path.Ext(p))
		gen, genErr := fs.ReadFile(l.FS, base+".gen")
		if genErr != nil && !errors.Is(genErr, fs.ErrNotExist) {
			return Level{}, fmt.Errorf("reading file %s.gen: %w", base, genErr)
		}
		parsed, err = formats.ParseBinary(path.Base(base), data, gen, l.ColumnHeight, l.TileSize)
	default:
		err = fmt.Errorf("unsupported extension: %s", ext)
	}
	if err != nil {
		return Level{}, fmt.Errorf("parsing file %s: %w", p, err)
	}
	if parsed.ID == "" {
		parsed.ID = strings.TrimSuffix(path.Base(p), path.Ext(p))
	}
	if parsed.Name == "" {
		parsed.Name = parsed.ID
	}

	return Level{
		ID:       parsed.ID,
		Name:     parsed.Name,
		Columns:  parsed.Columns,
		Tiles:    parsed.Tiles,
		Spawn:    parsed.Spawn,
		Actors:   parsed.Actors,
		Metadata: parsed.Metadata,
		FilePath: p,
	}, nil
}

// LoadByID loads a specific level by ID.
func (l *Loader) LoadByID(id string) (Level, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return Level{}, err
	}

	for _, lvl := range levels {
		if lvl.ID == id {
			return lvl, nil
		}
	}

	return Level{}, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// ListIDs returns all level IDs in sorted order.
func (l *Loader) ListIDs() ([]string, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(levels))
	for i, lvl := range levels {
		ids[i] = lvl.ID
	}
	return ids, nil
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}
