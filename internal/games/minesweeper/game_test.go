package minesweeper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RednibCoding/Minesweeper/internal/config"
	"github.com/RednibCoding/Minesweeper/internal/core"
	"github.com/RednibCoding/Minesweeper/internal/registry"
)

func testRuntime(rows, cols, pct int, seed int64) core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.Rows = rows
	cfg.Cols = cols
	cfg.BombPercentage = pct
	cfg.Seed = seed
	return cfg
}

// fixedGame returns a game playing the given layout with the cursor at (0,0).
func fixedGame(t *testing.T, rows, cols int, bombs []Coord) *Game {
	t.Helper()
	g := New()
	g.Reset(testRuntime(rows, cols, rows*cols, 1))

	s, err := NewSessionFromBombs(rows, cols, bombs)
	require.NoError(t, err)
	g.session = s
	g.cursor = Coord{}
	return g
}

func step(g *Game, actions ...core.Action) core.StepResult {
	return g.Step(core.FrameOf(actions...))
}

func TestRegisteredVariants(t *testing.T) {
	tests := []struct {
		id    string
		title string
	}{
		{"minesweeper", "Minesweeper"},
		{"minesweeper_beginner", "Minesweeper (Beginner)"},
		{"minesweeper_intermediate", "Minesweeper (Intermediate)"},
		{"minesweeper_expert", "Minesweeper (Expert)"},
		{"minesweeper_classic", "Minesweeper (Classic)"},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			g, err := registry.Create(tt.id)
			require.NoError(t, err)
			assert.Equal(t, tt.id, g.ID())
			assert.Equal(t, tt.title, g.Title())
		})
	}
}

func TestResetAppliesBoardOverrides(t *testing.T) {
	g := NewPreset(config.DifficultyExpert)
	g.Reset(testRuntime(5, 7, 5, 3))

	assert.Equal(t, config.BoardConfig{Rows: 5, Cols: 7, BombPercentage: 5}, g.Board())
	assert.Equal(t, 5, g.Session().Rows())
	assert.Equal(t, 7, g.Session().Cols())
	assert.Equal(t, 7, g.Session().MaxBombs())
	assert.Equal(t, Coord{Row: 2, Col: 3}, g.Cursor())
	assert.Empty(t, g.notice)
}

func TestResetFallsBackOnInvalidBoard(t *testing.T) {
	g := NewPreset(config.DifficultyBeginner)
	g.Reset(testRuntime(3, 3, 1, 3)) // every cell a bomb

	assert.Equal(t, config.BoardConfig{Rows: 9, Cols: 9, BombPercentage: 8}, g.Board())
	assert.Equal(t, 10, g.Session().MaxBombs())
	assert.Contains(t, g.notice, "invalid board")
}

func TestGameDeterminism(t *testing.T) {
	cfg := testRuntime(9, 9, 8, 12345)

	inputs := []core.InputFrame{
		core.FrameOf(core.ActionReveal),
		core.FrameOf(core.ActionLeft),
		core.FrameOf(core.ActionLeft, core.ActionUp),
		core.FrameOf(core.ActionFlag),
		core.FrameOf(core.ActionDown),
		core.FrameOf(core.ActionReveal),
		core.FrameOf(core.ActionRight),
		core.FrameOf(core.ActionChord),
	}

	run := func() Snapshot {
		g := New()
		g.Reset(cfg)
		for _, in := range inputs {
			if g.Step(in).State.GameOver {
				break
			}
		}
		return g.Snapshot()
	}

	snap1, snap2 := run(), run()
	assert.Equal(t, snap1.Hash(), snap2.Hash())
	assert.Equal(t, snap1, snap2)
	assert.Len(t, snap1.Cells, 81)
}

func TestCursorMovement(t *testing.T) {
	g := fixedGame(t, 3, 4, []Coord{{2, 3}})

	g.wrap = false
	step(g, core.ActionUp)
	step(g, core.ActionLeft)
	assert.Equal(t, Coord{0, 0}, g.Cursor(), "clamped at the top-left corner")

	step(g, core.ActionDown, core.ActionRight)
	assert.Equal(t, Coord{1, 1}, g.Cursor(), "diagonal move")

	g.wrap = true
	g.cursor = Coord{}
	step(g, core.ActionUp)
	assert.Equal(t, Coord{2, 0}, g.Cursor())
	step(g, core.ActionLeft)
	assert.Equal(t, Coord{2, 3}, g.Cursor())
	step(g, core.ActionRight)
	assert.Equal(t, Coord{2, 0}, g.Cursor())
}

func TestStepRevealCascadeWins(t *testing.T) {
	g := fixedGame(t, 3, 3, []Coord{{2, 2}})

	res := step(g, core.ActionReveal)
	assert.True(t, res.State.GameOver)
	assert.True(t, res.State.Won)
	assert.Equal(t, 8, res.State.Score)
}

func TestStepRevealBombLoses(t *testing.T) {
	g := fixedGame(t, 3, 3, []Coord{{0, 0}})

	res := step(g, core.ActionReveal)
	assert.True(t, res.State.GameOver)
	assert.False(t, res.State.Won)

	at, ok := g.Session().Exploded()
	require.True(t, ok)
	assert.Equal(t, Coord{0, 0}, at)
}

func TestFlagGuardsReveal(t *testing.T) {
	g := fixedGame(t, 3, 3, []Coord{{0, 0}})

	step(g, core.ActionFlag)
	assert.Equal(t, 0, g.Session().BombsRemaining())

	res := step(g, core.ActionReveal)
	assert.False(t, res.State.GameOver)

	step(g, core.ActionFlag)
	res = step(g, core.ActionReveal)
	assert.True(t, res.State.GameOver)
}

func TestStepChord(t *testing.T) {
	g := fixedGame(t, 3, 3, []Coord{{0, 1}})
	g.cursor = Coord{1, 1}

	step(g, core.ActionReveal)
	g.cursor = Coord{0, 1}
	step(g, core.ActionFlag)
	g.cursor = Coord{1, 1}

	res := step(g, core.ActionChord)
	assert.True(t, res.State.Won)
}

func TestPauseBlocksInput(t *testing.T) {
	g := fixedGame(t, 3, 3, []Coord{{2, 2}})

	res := step(g, core.ActionPause)
	assert.True(t, res.State.Paused)

	step(g, core.ActionReveal)
	step(g, core.ActionRight)
	assert.Equal(t, Coord{}, g.Cursor())
	assert.Equal(t, 0, g.Session().Moves())

	res = step(g, core.ActionPause)
	assert.False(t, res.State.Paused)
	res = step(g, core.ActionReveal)
	assert.True(t, res.State.Won)

	// No pausing a finished round.
	res = step(g, core.ActionPause)
	assert.False(t, res.State.Paused)
}

func TestRestartAfterLoss(t *testing.T) {
	g := fixedGame(t, 3, 3, []Coord{{0, 0}})

	step(g, core.ActionReveal)
	require.True(t, g.State().GameOver)

	res := step(g, core.ActionRestart)
	assert.False(t, res.State.GameOver)
	assert.Equal(t, 0, res.State.Score)
	assert.Equal(t, 0, g.Session().Moves())
}

// findCells returns every screen position holding r in color c.
func findCells(s *core.Screen, r rune, c core.Color) int {
	n := 0
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if cell := s.GetCell(x, y); cell.Rune == r && cell.Color == c {
				n++
			}
		}
	}
	return n
}

func TestRenderInProgress(t *testing.T) {
	//   * 2 *
	//   1 2 1
	//   0 0 0
	g := fixedGame(t, 3, 3, []Coord{{0, 0}, {0, 2}})
	g.cursor = Coord{2, 2}
	step(g, core.ActionReveal)
	require.False(t, g.State().GameOver)

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()

	assert.Contains(t, out, "Mines:   2")
	assert.Contains(t, out, "Moves: 1")
	assert.Equal(t, 1, findCells(screen, CursorLeft, core.ColorBrightYellow))
	assert.Equal(t, 1, findCells(screen, CursorRight, core.ColorBrightYellow))
	assert.Equal(t, 3, findCells(screen, HiddenChar, core.ColorWhite), "top row stays hidden")
	assert.Equal(t, 3, findCells(screen, EmptyChar, core.ColorGray))
	assert.Equal(t, 2, findCells(screen, '1', numberColors[1]))
	assert.Equal(t, 1, findCells(screen, '2', numberColors[2]))
	assert.Zero(t, findCells(screen, BombChar, core.ColorRed), "bombs stay hidden while playing")
}

func TestRenderDisclosesBombsOnLoss(t *testing.T) {
	g := fixedGame(t, 3, 3, []Coord{{0, 0}, {2, 2}, {0, 2}})

	g.cursor = Coord{0, 2}
	step(g, core.ActionFlag)
	g.cursor = Coord{1, 0}
	step(g, core.ActionFlag) // wrong guess
	g.cursor = Coord{0, 0}
	step(g, core.ActionReveal)
	require.True(t, g.State().GameOver)

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	assert.Equal(t, 1, findCells(screen, BombChar, core.ColorBrightRed), "exploded bomb")
	assert.Equal(t, 1, findCells(screen, BombChar, core.ColorRed), "unflagged bomb")
	assert.Equal(t, 1, findCells(screen, FlagChar, core.ColorGreen), "correct flag")
	assert.Equal(t, 1, findCells(screen, WrongFlag, core.ColorOrange), "wrong flag")
	assert.Zero(t, findCells(screen, CursorLeft, core.ColorBrightYellow))
	assert.Contains(t, screen.String(), "BOOM at 1,1!")
}

func TestRenderTooSmall(t *testing.T) {
	g := fixedGame(t, 16, 30, []Coord{{0, 0}})

	screen := core.NewScreen(40, 10)
	g.Render(screen)
	assert.Contains(t, screen.String(), "Terminal too small")
	assert.Contains(t, screen.String(), "need 63x22")
}

func TestRoundAndDescription(t *testing.T) {
	g := fixedGame(t, 3, 4, []Coord{{0, 0}, {2, 3}})
	step(g, core.ActionRight, core.ActionDown)
	step(g, core.ActionReveal)

	assert.Equal(t, core.RoundInfo{Rows: 3, Cols: 4, Bombs: 2, Moves: 1}, g.Round())
	assert.Equal(t, "9x9, 10 mines", NewPreset(config.DifficultyBeginner).Description())
	assert.Equal(t, "30x16, 96 mines", NewPreset(config.DifficultyExpert).Description())
}

func TestRenderPausedHidesBoard(t *testing.T) {
	g := fixedGame(t, 3, 3, []Coord{{0, 0}, {0, 2}})
	g.cursor = Coord{2, 2}
	step(g, core.ActionReveal)
	require.True(t, step(g, core.ActionPause).State.Paused)

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	assert.Equal(t, 21, findCells(screen, HiddenChar, core.ColorDefault), "board interior is blanked")
	assert.Zero(t, findCells(screen, '1', numberColors[1]))
	assert.Zero(t, findCells(screen, CursorLeft, core.ColorBrightYellow))
	assert.Contains(t, screen.String(), "PAUSED")
}
