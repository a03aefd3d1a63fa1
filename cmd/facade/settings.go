package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/jws412/Facade/internal/core"
	"github.com/jws412/Facade/internal/games/facade"
	"github.com/jws412/Facade/internal/storage"
)

// applySettings hands the global flags to the level factories and
// registers any extra level directory.
func applySettings() error {
	facade.SetConfigPath(flagConfig)
	facade.SetDifficultyPreset(flagDifficulty)
	facade.SetArtPath(flagArt)

	// Fail early on a bad config instead of at the first level.
	if _, err := facade.LoadConfig(); err != nil {
		return err
	}

	if flagLevels != "" {
		ids, err := facade.RegisterDir(flagLevels)
		if err != nil {
			return fmt.Errorf("levels %s: %w", flagLevels, err)
		}
		log.Info("registered levels", "dir", flagLevels, "count", len(ids))
	}
	return nil
}

// runtimeConfig builds the loop settings from the terminal and the
// configuration. --fps overrides the configured tick rate.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}

	if fc, err := facade.LoadConfig(); err == nil {
		cfg.TickRate = fc.Timing.TickRate
		cfg.HoldTicks = fc.Timing.HoldTicks
	}
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	return cfg
}

// openStore opens the run journal. Play goes on without one.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		log.Warn("could not open run journal", "path", flagDBPath, "err", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open run journal: %v\n", err)
		return nil
	}
	return store
}
