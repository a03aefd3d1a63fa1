package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jws412/Facade/internal/registry"
	"github.com/jws412/Facade/internal/storage"
)

var (
	flagRunsLimit int
	flagRunsClear bool
)

var runsCmd = &cobra.Command{
	Use:   "runs [level]",
	Short: "Show the run journal",
	Long: `Display recent runs, newest first. With a level ID only that
level's runs are shown, along with its best run.

Examples:
  facade runs
  facade runs 01-meadow --limit 20
  facade runs 02-steps --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRuns,
}

func init() {
	runsCmd.Flags().IntVar(&flagRunsLimit, "limit", 10, "Number of runs to show")
	runsCmd.Flags().BoolVar(&flagRunsClear, "clear", false, "Delete the runs instead of listing them")
}

func runRuns(cmd *cobra.Command, args []string) error {
	levelID := ""
	if len(args) == 1 {
		levelID = args[0]
		if !registry.Exists(levelID) {
			return fmt.Errorf("unknown level %q (run 'facade list' to see available levels)", levelID)
		}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening run journal: %w", err)
	}
	defer store.Close()

	if flagRunsClear {
		if err := store.ClearRuns(levelID); err != nil {
			return fmt.Errorf("clearing runs: %w", err)
		}
		fmt.Println("Run journal cleared.")
		return nil
	}

	runs, err := store.RecentRuns(levelID, flagRunsLimit)
	if err != nil {
		return fmt.Errorf("retrieving runs: %w", err)
	}

	if levelID == "" {
		fmt.Println("Recent runs")
	} else {
		fmt.Printf("Recent runs - %s\n", levelID)
	}
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		return nil
	}

	fmt.Printf("  %-16s  %-10s  %6s  %6s  %6s  %5s  %s\n", "Date", "Level", "Ticks", "Deaths", "Stomps", "FPS", "End")
	fmt.Printf("  %-16s  %-10s  %6s  %6s  %6s  %5s  %s\n", "----", "-----", "-----", "------", "------", "---", "---")
	for _, r := range runs {
		fmt.Printf("  %-16s  %-10s  %6d  %6d  %6d  %5.0f  %s\n",
			r.CreatedAt.Format("2006-01-02 15:04"), r.LevelID, r.Ticks, r.Deaths, r.Stomps, r.AvgFPS, r.EndReason)
	}

	if levelID != "" {
		best, err := store.BestRun(levelID)
		if err == nil && best != nil {
			fmt.Println()
			fmt.Printf("Best: %d deaths, %d stomps in %d ticks\n", best.Deaths, best.Stomps, best.Ticks)
		}
	}
	return nil
}
