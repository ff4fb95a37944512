package config

import (
	_ "embed"
)

//go:embed defaults/minesweeper.yaml
var defaultMinesweeperYAML []byte

// DefaultMinesweeperConfig returns the built-in configuration: the classic
// 12x12 board with one bomb per ten cells.
func DefaultMinesweeperConfig() MinesweeperConfig {
	presets := make(map[DifficultyPreset]BoardConfig, len(builtinPresets))
	for k, v := range builtinPresets {
		presets[k] = v
	}
	return MinesweeperConfig{
		Board:   builtinPresets[DifficultyClassic],
		Presets: presets,
		Display: DisplayConfig{WrapCursor: true},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultMinesweeperYAML
}
