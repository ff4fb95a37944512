// minesweeper plays Minesweeper in the terminal, locally or over SSH.
//
// Usage:
//
//	minesweeper list              - List boards
//	minesweeper play [board]      - Play a board
//	minesweeper menu              - Pick boards interactively
//	minesweeper serve             - Start SSH server for remote play
//	minesweeper stats [board]     - Show recorded results
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 30)
//	--seed <value>      - Set RNG seed for reproducible boards
//	--db <path>         - Set database path (default: ~/.minesweeper/results.db)
//	--config <path>     - Use a custom minesweeper.yaml
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/RednibCoding/Minesweeper/internal/games/minesweeper"
	"github.com/RednibCoding/Minesweeper/internal/storage"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "minesweeper",
	Short: "Minesweeper - clear the minefield in your terminal",
	Long: `Minesweeper for the terminal. Reveal every safe cell without
touching a mine; numbers count the mines around a cell.

Available commands:
  list     - Show the available boards
  play     - Play a board directly
  menu     - Interactive board picker
  serve    - Start SSH server for remote play
  stats    - View recorded results

Examples:
  minesweeper play
  minesweeper play minesweeper_expert
  minesweeper play --rows 20 --cols 40 --percentage 6
  minesweeper serve --ssh :2222
  minesweeper stats`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		minesweeper.SetConfigPath(flagConfig)
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to results database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom minesweeper.yaml")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(statsCmd)
}

// newLogger builds the CLI logger. While a full-screen UI owns the terminal,
// log lines go to ~/.minesweeper/minesweeper.log instead of stderr. The
// returned function closes the log file, if any.
func newLogger(fullScreen bool) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	opts := log.Options{
		ReportTimestamp: true,
		Prefix:          "minesweeper",
		Level:           level,
	}

	if !fullScreen || !term.IsTerminal(int(os.Stderr.Fd())) {
		return log.NewWithOptions(os.Stderr, opts), func() {}, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return nil, nil, fmt.Errorf("cannot get home directory: %w", err)
	}
	path := filepath.Join(home, ".minesweeper", "minesweeper.log")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	return log.NewWithOptions(f, opts), func() { f.Close() }, nil
}

// openStore opens the results database, or returns nil with a warning so
// play can go on without it.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open results database, rounds will not be recorded", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

func closeStore(store *storage.Store, logger *log.Logger) {
	if store == nil {
		return
	}
	if err := store.Close(); err != nil {
		logger.Warn("closing results database", "error", err)
	}
}

// terminalSize returns the size of stdout, falling back to 80x24.
func terminalSize() (int, int) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w, h
	}
	return 80, 24
}
