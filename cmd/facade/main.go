// facade is a side-scrolling platformer that plays in the terminal.
//
// Usage:
//
//	facade list              - List available levels
//	facade play <level>      - Play a level
//	facade menu              - Pick levels interactively
//	facade serve             - Start SSH server for remote play
//	facade runs [level]      - Show the run journal
//	facade snapshot <level>  - Render a level to a PNG without a terminal
//
// Global flags:
//
//	--fps <rate>          - Override the configured tick rate
//	--db <path>           - Set database path (default: ~/.facade/runs.db)
//	--config <path>       - Custom config YAML
//	--difficulty <name>   - Difficulty preset: easy, normal, hard
//	--art <path>          - Art pack (YAML file or binary asset directory)
//	--levels <dir>        - Extra level directory
//	--log-level <level>   - debug, info, warn, error
//	--log-file <path>     - Write logs to a file instead of stderr
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagArt        string
	flagLevels     string
	flagLogLevel   string
	flagLogFile    string
)

// logFile is closed when the command finishes.
var logFile *os.File

func main() {
	err := rootCmd.Execute()
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "facade",
	Short: "Facade - a platformer in your terminal",
	Long: `Facade is a side-scrolling platformer rendered with half-block
characters. Run right, jump over gaps, and stomp the bugs.

Available commands:
  list      - Show all available levels
  play      - Play a specific level directly
  menu      - Interactive level picker
  serve     - Start SSH server for remote play
  runs      - View the run journal
  snapshot  - Render a level to a PNG

Examples:
  facade list
  facade play 01-meadow
  facade play 02-steps --difficulty easy
  facade menu --levels ./my-levels
  facade serve --ssh :2222
  facade snapshot 03-caves --ticks 120 --hold right`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	// Global persistent flags
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 0, "Tick rate override (0 = use config)")
	pf.StringVar(&flagDBPath, "db", "~/.facade/runs.db", "Path to run journal database")
	pf.StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	pf.StringVar(&flagArt, "art", "", "Art pack: YAML file or binary asset directory")
	pf.StringVar(&flagLevels, "levels", "", "Directory with extra levels")
	pf.StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	pf.StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(snapshotCmd)
}

// setup configures logging and level settings before any command runs.
func setup(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}

	out := os.Stderr
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		logFile = f
		out = f
	}

	log.SetDefault(log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "facade",
		Level:           level,
	}))

	return applySettings()
}
