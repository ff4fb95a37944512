// Package config provides YAML-based board configuration loading and
// difficulty presets for Minesweeper.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned by Validate for unusable board settings.
var ErrInvalidConfig = errors.New("config: invalid board configuration")

// MinesweeperConfig contains all configuration for the game.
type MinesweeperConfig struct {
	Board   BoardConfig                      `yaml:"board"`
	Presets map[DifficultyPreset]BoardConfig `yaml:"presets"`
	Display DisplayConfig                    `yaml:"display"`
}

// BoardConfig describes one board: its size and bomb density.
// The bomb count is floor(Rows*Cols/BombPercentage).
type BoardConfig struct {
	Rows           int `yaml:"rows" env:"MINESWEEPER_ROWS"`
	Cols           int `yaml:"cols" env:"MINESWEEPER_COLS"`
	BombPercentage int `yaml:"bomb_percentage" env:"MINESWEEPER_BOMB_PERCENTAGE"`
}

// DisplayConfig controls the terminal driver.
type DisplayConfig struct {
	WrapCursor bool `yaml:"wrap_cursor" env:"MINESWEEPER_WRAP_CURSOR"`
}

// Bombs returns the number of bombs this board holds.
func (b BoardConfig) Bombs() int {
	if b.BombPercentage <= 0 {
		return 0
	}
	return b.Rows * b.Cols / b.BombPercentage
}

// Validate reports whether the board can be built.
func (b BoardConfig) Validate() error {
	if b.Rows <= 0 || b.Cols <= 0 {
		return fmt.Errorf("%w: board must be at least 1x1, got %dx%d", ErrInvalidConfig, b.Rows, b.Cols)
	}
	if b.BombPercentage <= 0 {
		return fmt.Errorf("%w: bomb_percentage must be positive, got %d", ErrInvalidConfig, b.BombPercentage)
	}
	if b.Bombs() >= b.Rows*b.Cols {
		return fmt.Errorf("%w: %d bombs leave no safe cell on a %dx%d board",
			ErrInvalidConfig, b.Bombs(), b.Rows, b.Cols)
	}
	return nil
}

// Validate checks the default board and every preset.
func (c MinesweeperConfig) Validate() error {
	if err := c.Board.Validate(); err != nil {
		return fmt.Errorf("board: %w", err)
	}
	for name, p := range c.Presets {
		if err := p.Validate(); err != nil {
			return fmt.Errorf("preset %s: %w", name, err)
		}
	}
	return nil
}

// BoardFor returns the board for a preset, or the default board when the
// preset is empty or not configured.
func (c MinesweeperConfig) BoardFor(preset DifficultyPreset) BoardConfig {
	if preset == "" {
		return c.Board
	}
	if b, ok := c.Presets[preset]; ok {
		return b
	}
	if b, ok := builtinPresets[preset]; ok {
		return b
	}
	return c.Board
}
