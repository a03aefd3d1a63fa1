package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/jws412/Facade/internal/platform/tui"
	"github.com/jws412/Facade/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick levels from an interactive menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a level.
Leaving a level returns you to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Play level
  Tab          - Run journal
  Q            - Quit

Examples:
  facade menu
  facade menu --fps 30
  facade menu --levels ./my-levels --db ./runs.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	store := openStore()
	cfg := runtimeConfig()

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			break
		}

		if menuResult.WantsRuns {
			goBack, runsErr := tui.RunRuns(store, cfg.ScreenW, cfg.ScreenH)
			if runsErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", runsErr)
			}
			if goBack {
				continue // Back to menu
			}
			break // User quit from the run journal
		}

		levelID := menuResult.GameID
		if levelID == "" {
			break
		}

		game, err := registry.Create(levelID)
		if err != nil {
			log.Error("could not start level", "level", levelID, "err", err)
			fmt.Fprintf(os.Stderr, "Error creating level: %v\n", err)
			continue
		}

		if err := tui.Run(game, store, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error running level: %v\n", err)
		}

		// Loop back to menu
	}

	if store != nil {
		store.Close()
	}
}
