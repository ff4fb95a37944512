package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/RednibCoding/Minesweeper/internal/registry"
	"github.com/RednibCoding/Minesweeper/internal/storage"
)

var (
	flagLimit int
	flagClear bool
)

var statsCmd = &cobra.Command{
	Use:   "stats [board]",
	Short: "Show recorded results",
	Long: `Without a board, prints the record of every board played so far.
With a board, prints its record and its most recent rounds.

Examples:
  minesweeper stats
  minesweeper stats minesweeper_expert --limit 20
  minesweeper stats minesweeper_beginner --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runStats,
}

func init() {
	statsCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of recent rounds to show")
	statsCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the recorded rounds of the board (all boards if none given)")
}

var (
	statsHeaderStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	statsCellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

func newStatsTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return statsHeaderStyle
			}
			return statsCellStyle
		}).
		Headers(headers...)
}

func runStats(_ *cobra.Command, args []string) error {
	gameID := ""
	if len(args) > 0 {
		gameID = args[0]
		if !registry.Exists(gameID) {
			return fmt.Errorf("unknown board %q (run 'minesweeper list' to see available boards)", gameID)
		}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearResults(gameID); err != nil {
			return err
		}
		fmt.Println("Results cleared.")
		return nil
	}

	if gameID == "" {
		return printAllStats(store)
	}
	return printGameStats(store, gameID)
}

func printAllStats(store *storage.Store) error {
	all, err := store.AllStats()
	if err != nil {
		return err
	}
	if len(all) == 0 {
		fmt.Println("No rounds recorded yet.")
		fmt.Println()
		fmt.Println("Play 'minesweeper play' to record the first one!")
		return nil
	}

	t := newStatsTable("Board", "Played", "Won", "Lost", "Win rate", "Best", "Last played")
	for _, gs := range all {
		t.Row(
			gs.GameID,
			strconv.Itoa(gs.Played),
			strconv.Itoa(gs.Won),
			strconv.Itoa(gs.Lost),
			fmt.Sprintf("%.0f%%", gs.WinRate()*100),
			bestMoves(gs),
			gs.LastPlayed.Local().Format("2006-01-02 15:04"),
		)
	}
	fmt.Println(t)
	return nil
}

func printGameStats(store *storage.Store, gameID string) error {
	gs, err := store.Stats(gameID)
	if err != nil {
		return err
	}

	fmt.Printf("Statistics - %s\n\n", gameID)
	if gs.Played == 0 {
		fmt.Println("No rounds recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'minesweeper play %s' to record the first one!\n", gameID)
		return nil
	}

	fmt.Printf("Played %d   Won %d   Lost %d   Win rate %.0f%%   Best %s\n\n",
		gs.Played, gs.Won, gs.Lost, gs.WinRate()*100, bestMoves(gs))

	results, err := store.RecentResults(gameID, flagLimit)
	if err != nil {
		return err
	}

	t := newStatsTable("Date", "Board", "Mines", "Result", "Moves")
	for _, r := range results {
		t.Row(
			r.CreatedAt.Local().Format("2006-01-02 15:04"),
			fmt.Sprintf("%dx%d", r.Cols, r.Rows),
			strconv.Itoa(r.Bombs),
			string(r.Outcome),
			strconv.Itoa(r.Moves),
		)
	}
	fmt.Println(t)
	return nil
}

func bestMoves(gs storage.GameStats) string {
	if gs.FewestMoves == 0 {
		return "-"
	}
	return fmt.Sprintf("%d moves", gs.FewestMoves)
}
