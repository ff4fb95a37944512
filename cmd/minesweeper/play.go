package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/RednibCoding/Minesweeper/internal/config"
	"github.com/RednibCoding/Minesweeper/internal/core"
	"github.com/RednibCoding/Minesweeper/internal/platform/tui"
	"github.com/RednibCoding/Minesweeper/internal/registry"
)

var (
	flagRows       int
	flagCols       int
	flagPercentage int
	flagPreset     string
)

var playCmd = &cobra.Command{
	Use:   "play [board]",
	Short: "Play a board",
	Long: `Start playing the given board, "minesweeper" by default.

Controls:
  Arrows/hjkl/wasd - Move the cursor
  Space/Enter      - Reveal the cell
  F                - Toggle a flag
  C                - Reveal around a satisfied number
  R                - New round
  P                - Pause
  Esc/B            - Leave (when paused or finished)
  Ctrl+S           - Save a screenshot
  ?                - Show all keys
  Q/Ctrl+C         - Quit

Board flags override the configured board. One mine is placed per
--percentage cells, so 10 means roughly a tenth of the board is mined.

Examples:
  minesweeper play
  minesweeper play minesweeper_expert
  minesweeper play --preset beginner
  minesweeper play --rows 20 --cols 40 --percentage 6 --seed 42
  minesweeper play --config ./my-minesweeper.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagRows, "rows", 0, "Board rows (0 = configured)")
	playCmd.Flags().IntVar(&flagCols, "cols", 0, "Board columns (0 = configured)")
	playCmd.Flags().IntVar(&flagPercentage, "percentage", 0, "One mine per this many cells (0 = configured)")
	playCmd.Flags().StringVar(&flagPreset, "preset", "", "Difficulty preset: beginner, intermediate, expert, classic")
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID, err := resolveGameID(args, flagPreset)
	if err != nil {
		return err
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("%w (run 'minesweeper list' to see available boards)", err)
	}

	if err := checkBoard(game); err != nil {
		return err
	}

	logger, closeLog, err := newLogger(true)
	if err != nil {
		return err
	}
	defer closeLog()

	store := openStore(logger)
	defer closeStore(store, logger)

	width, height := terminalSize()
	cfg := core.RuntimeConfig{
		ScreenW:        width,
		ScreenH:        height,
		TickRate:       flagFPS,
		Seed:           flagSeed,
		Rows:           flagRows,
		Cols:           flagCols,
		BombPercentage: flagPercentage,
	}

	logger.Info("starting game", "game", gameID, "rows", flagRows, "cols", flagCols, "percentage", flagPercentage, "seed", flagSeed)
	if err := tui.Run(game, store, logger, cfg); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// resolveGameID picks the board from the positional argument or --preset.
func resolveGameID(args []string, preset string) (string, error) {
	if preset != "" {
		if len(args) > 0 {
			return "", fmt.Errorf("give either a board or --preset, not both")
		}
		p, err := config.ParsePreset(preset)
		if err != nil {
			return "", err
		}
		return "minesweeper_" + string(p), nil
	}
	if len(args) > 0 {
		return args[0], nil
	}
	return "minesweeper", nil
}

// presetGame matches games bound to a difficulty preset.
type presetGame interface {
	Preset() config.DifficultyPreset
}

// checkBoard loads the configuration and validates the board the game
// would play once the flags are applied.
func checkBoard(game registry.Game) error {
	for name, v := range map[string]int{"rows": flagRows, "cols": flagCols, "percentage": flagPercentage} {
		if v < 0 {
			return fmt.Errorf("--%s must not be negative, got %d", name, v)
		}
	}

	cfg, err := config.LoadMinesweeper(flagConfig)
	if err != nil {
		return err
	}
	var preset config.DifficultyPreset
	if pg, ok := game.(presetGame); ok {
		preset = pg.Preset()
	}
	return config.ApplyOverrides(cfg.BoardFor(preset), flagRows, flagCols, flagPercentage).Validate()
}
