package art

import (
	_ "embed"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jws412/Facade/internal/actor"
	"github.com/jws412/Facade/internal/core"
	"github.com/jws412/Facade/internal/sprite"
	"github.com/jws412/Facade/internal/tile"
)

//go:embed builtin/default.yaml
var builtinYAML []byte

var (
	ErrBadColor     = errors.New("bad color")
	ErrUnknownChar  = errors.New("character not in palette")
	ErrImageShape   = errors.New("image has the wrong shape")
	ErrUnknownTile  = errors.New("unknown tile type")
	ErrNoFrames     = errors.New("mold has no frames")
	ErrUnknownActor = errors.New("unknown species")
)

// YAMLArt represents the YAML structure for an art pack.
type YAMLArt struct {
	Name       string              `yaml:"name"`
	TileSize   int                 `yaml:"tile_size"`
	Palette    map[string]string   `yaml:"palette"`
	Background YAMLGradient        `yaml:"background"`
	Tiles      map[string]string   `yaml:"tiles"`
	Molds      map[string]YAMLMold `yaml:"molds"`
}

// YAMLGradient is a vertical two-color background.
type YAMLGradient struct {
	Top    string `yaml:"top"`
	Bottom string `yaml:"bottom"`
}

// YAMLMold describes one species. Frames are listed by animation
// magnitude, starting with the standing frame.
type YAMLMold struct {
	MaxSpeedX int      `yaml:"max_speed_x"`
	Frames    []string `yaml:"frames"`
}

// Builtin parses the art pack compiled into the binary.
func Builtin(screenW, screenH int) (*Art, error) {
	return ParseYAML(builtinYAML, screenW, screenH)
}

// ParseYAML parses a YAML art pack and renders its background for the
// given screen.
func ParseYAML(data []byte, screenW, screenH int) (*Art, error) {
	var ya YAMLArt
	if err := yaml.Unmarshal(data, &ya); err != nil {
		return nil, fmt.Errorf("yaml unmarshal: %w", err)
	}

	palette := make(map[byte]core.Pixel, len(ya.Palette))
	for key, value := range ya.Palette {
		if len(key) != 1 {
			return nil, fmt.Errorf("palette key %q: %w", key, ErrUnknownChar)
		}
		p, err := ParseColor(value)
		if err != nil {
			return nil, fmt.Errorf("palette %q: %w", key, err)
		}
		palette[key[0]] = p
	}

	a := &Art{
		Name:  ya.Name,
		Atlas: tile.NewAtlas(ya.TileSize),
		Molds: sprite.NewTable(),
	}

	for name, text := range ya.Tiles {
		t, ok := parseTileType(name)
		if !ok {
			return nil, fmt.Errorf("tile %q: %w", name, ErrUnknownTile)
		}
		img, w, h, err := parseImage(text, palette)
		if err != nil {
			return nil, fmt.Errorf("tile %s: %w", name, err)
		}
		if w != ya.TileSize || h != ya.TileSize {
			return nil, fmt.Errorf("tile %s is %dx%d: %w", name, w, h, ErrImageShape)
		}
		a.Atlas.Set(t, img)
	}

	for name, ym := range ya.Molds {
		s, ok := actor.ParseSpecies(name)
		if !ok || s == actor.Null {
			return nil, fmt.Errorf("mold %q: %w", name, ErrUnknownActor)
		}
		m, err := parseMold(ym, palette)
		if err != nil {
			return nil, fmt.Errorf("mold %s: %w", name, err)
		}
		a.Molds.Register(s, m)
	}

	if ya.Background.Top != "" || ya.Background.Bottom != "" {
		top, err := ParseColor(ya.Background.Top)
		if err != nil {
			return nil, fmt.Errorf("background top: %w", err)
		}
		bottom, err := ParseColor(ya.Background.Bottom)
		if err != nil {
			return nil, fmt.Errorf("background bottom: %w", err)
		}
		a.Background = Gradient(screenW, screenH, top, bottom)
	}

	return a, nil
}

// parseMold stores frames so that magnitude m is image Frames-1-m.
func parseMold(ym YAMLMold, palette map[byte]core.Pixel) (*sprite.Mold, error) {
	if len(ym.Frames) == 0 {
		return nil, ErrNoFrames
	}
	m := &sprite.Mold{MaxSpeedX: ym.MaxSpeedX, Frames: len(ym.Frames)}
	images := make([][]core.Pixel, len(ym.Frames))
	for mag, text := range ym.Frames {
		img, w, h, err := parseImage(text, palette)
		if err != nil {
			return nil, fmt.Errorf("frame %d: %w", mag, err)
		}
		if mag == 0 {
			m.W, m.H = w, h
		} else if w != m.W || h != m.H {
			return nil, fmt.Errorf("frame %d is %dx%d, want %dx%d: %w", mag, w, h, m.W, m.H, ErrImageShape)
		}
		images[m.Frames-1-mag] = img
	}
	for _, img := range images {
		m.Pix = append(m.Pix, img...)
	}
	return m, nil
}

// parseImage converts text rows, top row first, into pixels stored bottom
// row first.
func parseImage(text string, palette map[byte]core.Pixel) (img []core.Pixel, w, h int, err error) {
	rows := strings.Split(strings.TrimRight(text, "\n"), "\n")
	h = len(rows)
	w = len(rows[0])
	if w == 0 {
		return nil, 0, 0, ErrImageShape
	}
	img = make([]core.Pixel, w*h)
	for i, row := range rows {
		if len(row) != w {
			return nil, 0, 0, fmt.Errorf("row %d: %w", i+1, ErrImageShape)
		}
		r := h - 1 - i
		for x := 0; x < w; x++ {
			p, ok := palette[row[x]]
			if !ok {
				return nil, 0, 0, fmt.Errorf("%q at row %d: %w", row[x], i+1, ErrUnknownChar)
			}
			img[r*w+x] = p
		}
	}
	return img, w, h, nil
}

// ParseColor parses "#rrggbb" or "transparent".
func ParseColor(s string) (core.Pixel, error) {
	if s == "transparent" {
		return core.Transparent, nil
	}
	if len(s) != 7 || s[0] != '#' {
		return 0, fmt.Errorf("%q: %w", s, ErrBadColor)
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return 0, fmt.Errorf("%q: %w", s, ErrBadColor)
	}
	return core.RGB(uint8(v>>16), uint8(v>>8), uint8(v)), nil
}

// Gradient renders a vertical blend from bottom (row 0) to top.
func Gradient(w, h int, top, bottom core.Pixel) []core.Pixel {
	out := make([]core.Pixel, w*h)
	for y := 0; y < h; y++ {
		p := core.Lerp(bottom, top, y, core.Max(h-1, 1))
		row := out[y*w : (y+1)*w]
		for x := range row {
			row[x] = p
		}
	}
	return out
}

func parseTileType(name string) (tile.Type, bool) {
	for t := tile.Air; t <= tile.Solid; t++ {
		if t.String() == name {
			return t, true
		}
	}
	return 0, false
}
