package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ConfigFile)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	require.NoError(t, err)
	assert.Equal(t, DefaultMinesweeperConfig(), cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoadCustomPath(t *testing.T) {
	path := writeConfig(t, `
board:
  rows: 20
  cols: 24
  bomb_percentage: 6
`)

	cfg, err := LoadMinesweeper(path)
	require.NoError(t, err)
	assert.Equal(t, BoardConfig{Rows: 20, Cols: 24, BombPercentage: 6}, cfg.Board)
	assert.Equal(t, 80, cfg.Board.Bombs())

	// Keys missing from the file keep their defaults.
	assert.Equal(t, BoardConfig{Rows: 16, Cols: 30, BombPercentage: 5}, cfg.BoardFor(DifficultyExpert))
	assert.True(t, cfg.Display.WrapCursor)
}

func TestLoadCustomPathErrors(t *testing.T) {
	_, err := LoadMinesweeper(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = LoadMinesweeper(writeConfig(t, "board: [not, a, map]"))
	assert.Error(t, err)

	_, err = LoadMinesweeper(writeConfig(t, "board:\n  rows: 0\n"))
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	t.Setenv("MINESWEEPER_ROWS", "30")
	t.Setenv("MINESWEEPER_BOMB_PERCENTAGE", "4")
	t.Setenv("MINESWEEPER_WRAP_CURSOR", "false")

	path := writeConfig(t, "board:\n  rows: 10\n  cols: 11\n")
	cfg, err := LoadMinesweeper(path)
	require.NoError(t, err)

	assert.Equal(t, BoardConfig{Rows: 30, Cols: 11, BombPercentage: 4}, cfg.Board)
	assert.False(t, cfg.Display.WrapCursor)
}

func TestLoadRejectsBadEnvironment(t *testing.T) {
	t.Setenv("MINESWEEPER_COLS", "wide")

	_, err := LoadMinesweeper(writeConfig(t, "board:\n  rows: 5\n"))
	assert.Error(t, err)
}

func TestBoardValidate(t *testing.T) {
	tests := []struct {
		name    string
		board   BoardConfig
		wantErr bool
	}{
		{"classic", BoardConfig{12, 12, 10}, false},
		{"single cell", BoardConfig{1, 1, 2}, false},
		{"zero rows", BoardConfig{0, 12, 10}, true},
		{"negative cols", BoardConfig{12, -1, 10}, true},
		{"zero percentage", BoardConfig{12, 12, 0}, true},
		{"all bombs", BoardConfig{3, 3, 1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.board.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidConfig)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateNamesBadPreset(t *testing.T) {
	cfg := DefaultMinesweeperConfig()
	cfg.Presets[DifficultyExpert] = BoardConfig{Rows: 16, Cols: 30, BombPercentage: 0}

	err := cfg.Validate()
	require.ErrorIs(t, err, ErrInvalidConfig)
	assert.Contains(t, err.Error(), "preset expert")
}

func TestPresets(t *testing.T) {
	cfg := DefaultMinesweeperConfig()

	tests := []struct {
		preset DifficultyPreset
		bombs  int
		title  string
	}{
		{DifficultyBeginner, 10, "Beginner"},
		{DifficultyIntermediate, 42, "Intermediate"},
		{DifficultyExpert, 96, "Expert"},
		{DifficultyClassic, 14, "Classic"},
	}

	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			assert.Equal(t, tt.bombs, cfg.BoardFor(tt.preset).Bombs())
			assert.Equal(t, tt.title, tt.preset.Title())

			p, err := ParsePreset(string(tt.preset))
			require.NoError(t, err)
			assert.Equal(t, tt.preset, p)
		})
	}

	assert.Len(t, Presets, len(tests))
	assert.Equal(t, cfg.Board, cfg.BoardFor(""))

	_, err := ParsePreset("nightmare")
	assert.Error(t, err)
}

func TestBoardForFallsBackToBuiltin(t *testing.T) {
	cfg := MinesweeperConfig{Board: BoardConfig{Rows: 5, Cols: 5, BombPercentage: 5}}
	assert.Equal(t, BoardConfig{Rows: 9, Cols: 9, BombPercentage: 8}, cfg.BoardFor(DifficultyBeginner))
	assert.Equal(t, cfg.Board, cfg.BoardFor("unknown"))
}

func TestApplyOverrides(t *testing.T) {
	base := BoardConfig{Rows: 12, Cols: 12, BombPercentage: 10}

	assert.Equal(t, base, ApplyOverrides(base, 0, 0, 0))
	assert.Equal(t, BoardConfig{Rows: 8, Cols: 12, BombPercentage: 10}, ApplyOverrides(base, 8, 0, 0))
	assert.Equal(t, BoardConfig{Rows: 8, Cols: 20, BombPercentage: 3}, ApplyOverrides(base, 8, 20, 3))
	assert.Equal(t, base, ApplyOverrides(base, -1, -1, -1))
}
