package minesweeper

import (
	"fmt"

	"github.com/RednibCoding/Minesweeper/internal/config"
	"github.com/RednibCoding/Minesweeper/internal/core"
	"github.com/RednibCoding/Minesweeper/internal/registry"
)

// Visual characters for rendering
const (
	HiddenChar   = '■'
	FlagChar     = 'F'
	BombChar     = '*'
	WrongFlag    = 'X'
	EmptyChar    = '·'
	CursorLeft   = '['
	CursorRight  = ']'
	cellWidth    = 2 // Each cell is a glyph followed by a gap
	hudHeight    = 2 // Title and counters above the board
	statusHeight = 2 // Blank line and status message below the board
)

// numberColors colors revealed counts 1..8.
var numberColors = [9]core.Color{
	core.ColorDefault,
	core.ColorBrightBlue,
	core.ColorGreen,
	core.ColorBrightRed,
	core.ColorMagenta,
	core.ColorOrange,
	core.ColorCyan,
	core.ColorWhite,
	core.ColorGray,
}

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// Game adapts a Session to the registry.Game interface: it owns a cursor,
// maps input frames to session actions and draws the board.
type Game struct {
	preset  config.DifficultyPreset
	runtime core.RuntimeConfig
	board   config.BoardConfig
	wrap    bool

	session *Session
	cursor  Coord
	paused  bool
	notice  string // Shown under the board, e.g. a config fallback
}

// New creates a game on the configured default board.
func New() *Game {
	return &Game{}
}

// NewPreset creates a game on a named preset board.
func NewPreset(p config.DifficultyPreset) *Game {
	return &Game{preset: p}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.preset == "" {
		return "minesweeper"
	}
	return "minesweeper_" + string(g.preset)
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.preset == "" {
		return "Minesweeper"
	}
	return fmt.Sprintf("Minesweeper (%s)", g.preset.Title())
}

// Preset returns the preset this game plays, empty for the default board.
func (g *Game) Preset() config.DifficultyPreset {
	return g.preset
}

// Reset loads configuration and starts a new session.
// Non-zero board fields in runtime override the configured board.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.notice = ""

	cfg, err := config.LoadMinesweeper(configPath)
	if err != nil {
		cfg = config.DefaultMinesweeperConfig()
		g.notice = "config ignored: " + err.Error()
	}
	g.wrap = cfg.Display.WrapCursor

	board := config.ApplyOverrides(cfg.BoardFor(g.preset), runtime.Rows, runtime.Cols, runtime.BombPercentage)
	session, err := g.newSession(board)
	if err != nil {
		board = config.DefaultMinesweeperConfig().BoardFor(g.preset)
		g.notice = "invalid board, using defaults: " + err.Error()
		session, _ = g.newSession(board)
	}

	g.board = board
	g.session = session
	g.cursor = Coord{Row: board.Rows / 2, Col: board.Cols / 2}
	g.paused = false
}

func (g *Game) newSession(b config.BoardConfig) (*Session, error) {
	var opts []Option
	if g.runtime.Seed != 0 {
		opts = append(opts, WithSeed(g.runtime.Seed))
	}
	return NewSession(b.Rows, b.Cols, b.BombPercentage, opts...)
}

// Session exposes the underlying engine session.
func (g *Game) Session() *Session {
	return g.session
}

// Board returns the board configuration in play.
func (g *Game) Board() config.BoardConfig {
	return g.board
}

// Cursor returns the cell under the cursor.
func (g *Game) Cursor() Coord {
	return g.cursor
}

// Round reports the board in play and the moves made so far.
func (g *Game) Round() core.RoundInfo {
	return core.RoundInfo{
		Rows:  g.session.Rows(),
		Cols:  g.session.Cols(),
		Bombs: g.session.MaxBombs(),
		Moves: g.session.Moves(),
	}
}

// Description summarizes the configured board without starting a session,
// e.g. "9x9, 10 mines".
func (g *Game) Description() string {
	cfg, err := config.LoadMinesweeper(configPath)
	if err != nil {
		cfg = config.DefaultMinesweeperConfig()
	}
	b := cfg.BoardFor(g.preset)
	return fmt.Sprintf("%dx%d, %d mines", b.Cols, b.Rows, b.Bombs())
}

// Step applies one frame of input.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Empty() {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionRestart) {
		if err := g.session.Restart(); err != nil {
			g.notice = err.Error()
		}
		g.paused = false
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.session.State().Terminal() {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.moveCursor(in)

	// Session errors can only be out-of-bounds, and the cursor is always on
	// the board.
	switch {
	case in.Has(core.ActionReveal):
		// A flag under the cursor guards the cell against a stray reveal.
		if v, _ := g.session.CellView(g.cursor.Row, g.cursor.Col); v.Flagged && !v.Revealed {
			break
		}
		_, _ = g.session.RevealCell(g.cursor.Row, g.cursor.Col)
	case in.Has(core.ActionFlag):
		_ = g.session.ToggleFlag(g.cursor.Row, g.cursor.Col)
	case in.Has(core.ActionChord):
		_, _ = g.session.Chord(g.cursor.Row, g.cursor.Col)
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) moveCursor(in core.InputFrame) {
	dr, dc := 0, 0
	if in.Has(core.ActionUp) {
		dr--
	}
	if in.Has(core.ActionDown) {
		dr++
	}
	if in.Has(core.ActionLeft) {
		dc--
	}
	if in.Has(core.ActionRight) {
		dc++
	}
	if dr == 0 && dc == 0 {
		return
	}

	rows, cols := g.session.Rows(), g.session.Cols()
	if g.wrap {
		g.cursor.Row = core.Wrap(g.cursor.Row+dr, rows)
		g.cursor.Col = core.Wrap(g.cursor.Col+dc, cols)
		return
	}
	g.cursor.Row = core.Clamp(g.cursor.Row+dr, 0, rows-1)
	g.cursor.Col = core.Clamp(g.cursor.Col+dc, 0, cols-1)
}

// State returns the platform view of the session.
func (g *Game) State() core.GameState {
	st := g.session.State()
	return core.GameState{
		Score:    g.session.RevealedSafe(),
		GameOver: st.Terminal(),
		Won:      st == Won,
		Paused:   g.paused,
	}
}

// MinScreenSize returns the terminal size needed to draw the whole board.
func (g *Game) MinScreenSize() (int, int) {
	w := g.session.Cols()*cellWidth + 3
	h := g.session.Rows() + 2 + hudHeight + statusHeight
	return core.Max(w, 36), h
}

// Render draws the HUD, the board and the status line.
func (g *Game) Render(dst *core.Screen) {
	minW, minH := g.MinScreenSize()
	if dst.Width() < minW || dst.Height() < minH {
		dst.DrawTextCenteredWithColor(dst.Height()/2-1, "Terminal too small", core.ColorBrightYellow)
		dst.DrawTextCentered(dst.Height()/2, fmt.Sprintf("need %dx%d, have %dx%d", minW, minH, dst.Width(), dst.Height()))
		return
	}

	boxW := g.session.Cols()*cellWidth + 3
	boxH := g.session.Rows() + 2
	area := dst.Bounds().Centered(boxW, boxH+hudHeight+statusHeight)
	box := core.NewRect(area.X, area.Y+hudHeight, boxW, boxH)

	g.renderHUD(dst, area.Y)

	frame := core.ColorGray
	switch g.session.State() {
	case Won:
		frame = core.ColorBrightGreen
	case Lost:
		frame = core.ColorRed
	}
	dst.DrawBoxWithColor(box, frame)

	if g.paused {
		// The board stays hidden while paused.
		dst.DrawRect(core.NewRect(box.X+1, box.Y+1, boxW-2, boxH-2), HiddenChar)
		g.renderStatus(dst, box.Bottom()+1)
		return
	}

	for r := 0; r < g.session.Rows(); r++ {
		for c := 0; c < g.session.Cols(); c++ {
			ch, color := g.glyph(r, c)
			dst.SetWithColor(box.X+2+c*cellWidth, box.Y+1+r, ch, color)
		}
	}

	if !g.session.State().Terminal() {
		x := box.X + 2 + g.cursor.Col*cellWidth
		y := box.Y + 1 + g.cursor.Row
		dst.SetWithColor(x-1, y, CursorLeft, core.ColorBrightYellow)
		dst.SetWithColor(x+1, y, CursorRight, core.ColorBrightYellow)
	}

	g.renderStatus(dst, box.Bottom()+1)
}

func (g *Game) renderHUD(dst *core.Screen, y int) {
	title := fmt.Sprintf("%s  %dx%d", g.Title(), g.session.Cols(), g.session.Rows())
	dst.DrawTextCenteredWithColor(y, title, core.ColorBrightWhite)

	mines := g.session.BombsRemaining()
	mineColor := core.ColorBrightRed
	if mines < 0 {
		mineColor = core.ColorOrange
	}
	counters := fmt.Sprintf("Mines: %3d   Moves: %d", mines, g.session.Moves())
	dst.DrawTextCenteredWithColor(y+1, counters, mineColor)
}

func (g *Game) renderStatus(dst *core.Screen, y int) {
	switch {
	case g.session.State() == Won:
		dst.DrawTextCenteredWithColor(y, "You win! Press R to play again", core.ColorBrightGreen)
	case g.session.State() == Lost:
		msg := "BOOM! Press R to try again"
		if at, ok := g.session.Exploded(); ok {
			msg = fmt.Sprintf("BOOM at %d,%d! Press R to try again", at.Row+1, at.Col+1)
		}
		dst.DrawTextCenteredWithColor(y, msg, core.ColorBrightRed)
	case g.paused:
		dst.DrawTextCenteredWithColor(y, "PAUSED", core.ColorBrightYellow)
	case g.notice != "":
		dst.DrawTextCenteredWithColor(y, g.notice, core.ColorOrange)
	}
}

// glyph picks the rune and color for one cell. Bombs are disclosed once the
// game is over.
func (g *Game) glyph(row, col int) (rune, core.Color) {
	v, _ := g.session.CellView(row, col)
	state := g.session.State()

	if state.Terminal() && v.Bomb {
		if state == Lost {
			if at, ok := g.session.Exploded(); ok && at == (Coord{Row: row, Col: col}) {
				return BombChar, core.ColorBrightRed
			}
			if v.Flagged {
				return FlagChar, core.ColorGreen
			}
			return BombChar, core.ColorRed
		}
		return BombChar, core.ColorBrightGreen
	}

	switch {
	case v.Revealed && v.BombsAround == 0:
		return EmptyChar, core.ColorGray
	case v.Revealed:
		return rune('0' + v.BombsAround), numberColors[v.BombsAround]
	case v.Flagged && state == Lost:
		return WrongFlag, core.ColorOrange
	case v.Flagged:
		return FlagChar, core.ColorBrightRed
	default:
		return HiddenChar, core.ColorWhite
	}
}

// Register Minesweeper with the game registry on package init.
func init() {
	registry.Register("minesweeper", func() registry.Game { return New() })
	for _, p := range config.Presets {
		p := p
		registry.Register("minesweeper_"+string(p), func() registry.Game { return NewPreset(p) })
	}
}
