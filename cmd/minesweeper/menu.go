package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/RednibCoding/Minesweeper/internal/core"
	"github.com/RednibCoding/Minesweeper/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick boards from an interactive menu",
	Long: `Start Minesweeper in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to play the board.
Leaving a paused or finished game returns to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Play board
  Tab          - Statistics
  Q            - Quit

Examples:
  minesweeper menu
  minesweeper menu --db ./results.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(true)
	if err != nil {
		return err
	}
	defer closeLog()

	store := openStore(logger)
	defer closeStore(store, logger)

	width, height := terminalSize()
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	if err := tui.RunSession(store, logger, cfg); err != nil {
		return fmt.Errorf("running menu: %w", err)
	}
	return nil
}
