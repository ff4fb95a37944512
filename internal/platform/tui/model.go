package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/RednibCoding/Minesweeper/internal/core"
	"github.com/RednibCoding/Minesweeper/internal/registry"
	"github.com/RednibCoding/Minesweeper/internal/storage"
)

// roundReporter is implemented by games that can describe their board, so
// a finished round can be stored.
type roundReporter interface {
	Round() core.RoundInfo
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// GameModel is the Bubble Tea model running one registered game.
//
// Key presses are queued as input frames and applied in order on the next
// tick, so fast typing never drops a move. A finished round is written to
// the store exactly once.
type GameModel struct {
	id         string // Tags this model's tick loop
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	pending    []core.InputFrame
	gameState  core.GameState
	roundID    string
	saved      bool // Whether the current finished round has been recorded
	standalone bool // Back quits the program instead of returning to a menu
	quitting   bool
	backToMenu bool
}

// NewGameModel creates a game model. store and logger may be nil.
func NewGameModel(game registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) GameModel {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.Default()
	}

	m := GameModel{
		id:      uuid.NewString(),
		game:    game,
		store:   store,
		logger:  logger,
		config:  cfg,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		roundID: uuid.NewString(),
	}
	m.help.Width = cfg.ScreenW
	m.screen = core.NewScreen(cfg.ScreenW, m.boardHeight())
	return m
}

// Init starts the game and the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.id, m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		m.screen.Resize(msg.Width, m.boardHeight())
		return m, nil

	case TickMsg:
		// Ticks from a previous game model are dropped to end their loop.
		if msg.Owner != m.id {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.screen.Resize(m.config.ScreenW, m.boardHeight())
		return m, nil

	case key.Matches(msg, m.keys.Back):
		if !m.gameState.GameOver && !m.gameState.Paused {
			return m, nil
		}
		if m.standalone {
			m.quitting = true
			return m, tea.Quit
		}
		m.backToMenu = true
		return m, nil
	}

	if action := m.keys.Action(msg); action != core.ActionNone {
		m.pending = append(m.pending, core.FrameOf(action))
	}
	return m, nil
}

// handleTick applies the queued input frames in order.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if len(m.pending) == 0 {
		m.step(core.NewInputFrame())
	}
	for _, frame := range m.pending {
		m.step(frame)
	}
	m.pending = m.pending[:0]

	return m, tickCmd(m.id, m.config.TickRate)
}

// step runs one frame and records the round when it has just finished.
func (m *GameModel) step(frame core.InputFrame) {
	m.gameState = m.game.Step(frame).State

	if !m.gameState.GameOver {
		if m.saved {
			// A new round started after the last one was recorded.
			m.saved = false
			m.roundID = uuid.NewString()
		}
		return
	}
	if !m.saved {
		m.recordResult()
		m.saved = true
	}
}

// recordResult stores the finished round. Failures are logged and play
// goes on.
func (m *GameModel) recordResult() {
	if m.store == nil {
		return
	}
	reporter, ok := m.game.(roundReporter)
	if !ok {
		return
	}

	round := reporter.Round()
	outcome := storage.OutcomeLost
	if m.gameState.Won {
		outcome = storage.OutcomeWon
	}

	res, err := m.store.SaveResult(storage.Result{
		RoundID: m.roundID,
		GameID:  m.game.ID(),
		Rows:    round.Rows,
		Cols:    round.Cols,
		Bombs:   round.Bombs,
		Outcome: outcome,
		Moves:   round.Moves,
	})
	if err != nil {
		m.logger.Warn("could not record round", "game", m.game.ID(), "round", m.roundID, "error", err)
		return
	}
	m.logger.Debug("round recorded", "game", res.GameID, "round", res.RoundID, "outcome", res.Outcome, "moves", res.Moves)
}

// saveScreenshot saves the current board as plain text under
// ~/.minesweeper/screenshots.
func (m *GameModel) saveScreenshot() {
	m.screen.Clear()
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".minesweeper", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// boardHeight is the screen height left for the game once the help bar
// is drawn.
func (m GameModel) boardHeight() int {
	lines := 1
	if m.help.ShowAll {
		for _, col := range m.keys.FullHelp() {
			lines = max(lines, len(col))
		}
	}
	return max(m.config.ScreenH-lines, 1)
}

// View renders the game and the help bar.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// State returns the game state seen on the last tick.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays a single game in its own program until the user quits.
func Run(game registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) error {
	model := NewGameModel(game, store, logger, cfg)
	model.standalone = true

	p := tea.NewProgram(model, tea.WithAltScreen())

	_, err := p.Run()
	return err
}
