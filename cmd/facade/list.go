package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jws412/Facade/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available levels",
	Long:  `Shows every level registered: the built-in set plus any --levels directory.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	levels := registry.List()

	if len(levels) == 0 {
		fmt.Println("No levels available.")
		return
	}

	fmt.Println("Available levels:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, l := range levels {
		if len(l.ID) > maxIDLen {
			maxIDLen = len(l.ID)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")

	for _, l := range levels {
		fmt.Printf("  %-*s  %s\n", maxIDLen, l.ID, l.Title)
	}

	fmt.Println()
	fmt.Println("Run 'facade play <id>' to play a level.")
}
