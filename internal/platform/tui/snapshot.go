package tui

import (
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/jws412/Facade/internal/core"
)

// SnapshotDir returns the default snapshot directory, ~/.facade/snapshots.
func SnapshotDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "snapshots"
	}
	return filepath.Join(home, ".facade", "snapshots")
}

// SaveSnapshot writes fb as a PNG named after the level and the time.
// An empty dir means SnapshotDir. Returns the written path.
func SaveSnapshot(fb *core.Framebuffer, dir, levelID string) (string, error) {
	if dir == "" {
		dir = SnapshotDir()
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("snapshot: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405.000")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.png", levelID, timestamp))
	if err := WritePNG(fb, path); err != nil {
		return "", err
	}
	return path, nil
}

// WritePNG encodes fb to a PNG file at path.
func WritePNG(fb *core.Framebuffer, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	if err := png.Encode(f, fb.Image()); err != nil {
		f.Close()
		return fmt.Errorf("snapshot: encode %s: %w", path, err)
	}
	return f.Close()
}
