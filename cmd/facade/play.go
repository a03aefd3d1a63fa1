package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/jws412/Facade/internal/platform/tui"
	"github.com/jws412/Facade/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play <level>",
	Short: "Play a level",
	Long: `Start playing the specified level.

Controls:
  Left/Right, A/D   - Walk
  Shift+Left/Right  - Run
  X                 - Hold to run
  Space/Up/W        - Jump (hold for height)
  P                 - Pause
  R                 - Restart at the spawn point
  Ctrl+S            - Save a PNG snapshot
  Ctrl+D            - Toggle debug panel
  Esc/Q             - Quit

Difficulty options:
  easy   - Longer jump hold, lighter gravity
  normal - The configured physics
  hard   - Shorter jump hold, heavier gravity

Examples:
  facade play 01-meadow
  facade play 02-steps --difficulty hard
  facade play 03-caves --art ./assets
  facade play 01-meadow --config ./my-facade.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	levelID := args[0]

	// Check if level exists
	if !registry.Exists(levelID) {
		return fmt.Errorf("unknown level %q (run 'facade list' to see available levels)", levelID)
	}

	game, err := registry.Create(levelID)
	if err != nil {
		return fmt.Errorf("creating level: %w", err)
	}

	cfg := runtimeConfig()
	log.Debug("starting level", "level", levelID, "tick_rate", cfg.TickRate, "hold_ticks", cfg.HoldTicks)

	// Continue without a journal if it cannot be opened
	store := openStore()
	runErr := tui.Run(game, store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		return fmt.Errorf("running level: %w", runErr)
	}
	return nil
}
