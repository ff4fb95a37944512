package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/RednibCoding/Minesweeper/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the available boards",
	Long:  `Shows every registered board with its size and mine count, as configured.`,
	Run:   runList,
}

// describer matches games that can summarize their board.
type describer interface {
	Description() string
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No boards available.")
		return
	}

	fmt.Println("Available boards:")
	fmt.Println()

	maxIDLen, maxTitleLen := 2, 5 // "ID", "Title" headers
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
		maxTitleLen = max(maxTitleLen, len(g.Title))
	}

	fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, "ID", maxTitleLen, "Title", "Board")
	fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, "--", maxTitleLen, "-----", "-----")

	for _, g := range games {
		board := ""
		if game, err := registry.Create(g.ID); err == nil {
			if d, ok := game.(describer); ok {
				board = d.Description()
			}
		}
		fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, g.ID, maxTitleLen, g.Title, board)
	}

	fmt.Println()
	fmt.Println("Run 'minesweeper play <id>' to play a board.")
}
