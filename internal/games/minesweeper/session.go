package minesweeper

import (
	"math/rand"
	"time"
)

// Session is the entry point for presentation layers. It combines a Board,
// a RevealEngine and a BombPlacer and tracks the current GameState.
//
// A Session is not safe for concurrent use; callers serialize access.
type Session struct {
	rows           int
	cols           int
	bombPercentage int
	layout         []Coord // Fixed bomb layout, nil for random sessions

	rng    *rand.Rand
	placer *BombPlacer
	board  *Board
	engine *RevealEngine

	state    GameState
	exploded *Coord
	moves    int
}

// Option configures a Session.
type Option func(*Session)

// WithRand sets the random source used for bomb placement.
func WithRand(rng *rand.Rand) Option {
	return func(s *Session) {
		s.rng = rng
	}
}

// WithSeed seeds bomb placement for reproducible layouts.
func WithSeed(seed int64) Option {
	return func(s *Session) {
		s.rng = rand.New(rand.NewSource(seed))
	}
}

// NewSession builds a board of rows x cols holding
// floor(rows*cols/bombPercentage) randomly placed bombs.
func NewSession(rows, cols, bombPercentage int, opts ...Option) (*Session, error) {
	if err := validateConfig(rows, cols, bombPercentage); err != nil {
		return nil, err
	}

	s := &Session{
		rows:           rows,
		cols:           cols,
		bombPercentage: bombPercentage,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	s.placer = NewBombPlacer(s.rng)

	if err := s.build(); err != nil {
		return nil, err
	}
	return s, nil
}

// NewSessionFromBombs builds a session with bombs at exactly the given
// coordinates. Restart rebuilds the same layout.
func NewSessionFromBombs(rows, cols int, bombs []Coord) (*Session, error) {
	layout := make([]Coord, len(bombs))
	copy(layout, bombs)

	s := &Session{
		rows:   rows,
		cols:   cols,
		layout: layout,
	}
	if err := s.build(); err != nil {
		return nil, err
	}
	return s, nil
}

// build replaces the board with a new one and resets session state.
func (s *Session) build() error {
	var board *Board
	if s.layout != nil {
		b, err := NewBoardFromBombs(s.rows, s.cols, s.layout)
		if err != nil {
			return err
		}
		board = b
	} else {
		b, err := NewBoard(s.rows, s.cols, s.bombPercentage)
		if err != nil {
			return err
		}
		if err := s.placer.Place(b); err != nil {
			return err
		}
		board = b
	}

	s.board = board
	s.engine = NewRevealEngine(board)
	s.state = Continue
	s.exploded = nil
	s.moves = 0
	return nil
}

// Rows returns the board height.
func (s *Session) Rows() int { return s.rows }

// Cols returns the board width.
func (s *Session) Cols() int { return s.cols }

// MaxBombs returns the number of bombs on the board.
func (s *Session) MaxBombs() int { return s.board.maxBombs }

// State returns the current game state.
func (s *Session) State() GameState { return s.state }

// Moves returns the number of reveal and chord calls accepted while the
// game was in progress.
func (s *Session) Moves() int { return s.moves }

// RevealedSafe returns how many safe cells are open.
func (s *Session) RevealedSafe() int { return s.board.revealedSafe }

// Exploded returns the bomb that ended the game, if any.
func (s *Session) Exploded() (Coord, bool) {
	if s.exploded == nil {
		return Coord{}, false
	}
	return *s.exploded, true
}

// RevealCell opens (row, col) and returns the resulting state.
// After Won or Lost the call returns the terminal state and changes nothing.
func (s *Session) RevealCell(row, col int) (GameState, error) {
	if s.state.Terminal() {
		return s.state, nil
	}

	state, err := s.engine.Reveal(row, col)
	if err != nil {
		return s.state, err
	}
	s.apply(row, col, state)
	return s.state, nil
}

// Chord opens the neighbors of a satisfied numbered cell.
// After Won or Lost the call returns the terminal state and changes nothing.
func (s *Session) Chord(row, col int) (GameState, error) {
	if s.state.Terminal() {
		return s.state, nil
	}

	state, err := s.engine.Chord(row, col)
	if err != nil {
		return s.state, err
	}
	s.moves++
	s.state = state
	if state == Lost {
		// The engine stops at the first bomb; find which one for Exploded.
		s.exploded = s.chordBomb(row, col)
	}
	return s.state, nil
}

// chordBomb returns the first unflagged, unrevealed bomb around (row, col).
func (s *Session) chordBomb(row, col int) *Coord {
	b := s.board
	var found *Coord
	b.forEachNeighbor(row, col, func(n int) {
		c := b.cells[n]
		if found == nil && c.isBomb && !c.isFlagged && !c.isRevealed {
			at := b.coord(n)
			found = &at
		}
	})
	return found
}

func (s *Session) apply(row, col int, state GameState) {
	s.moves++
	s.state = state
	if state == Lost {
		s.exploded = &Coord{Row: row, Col: col}
	}
}

// ToggleFlag flips the flag on (row, col). Once the game is over flags are
// frozen and the call is a no-op.
func (s *Session) ToggleFlag(row, col int) error {
	if s.state.Terminal() {
		return s.board.checkBounds(row, col)
	}
	return s.board.ToggleFlag(row, col)
}

// CellView returns a rendering snapshot of (row, col).
func (s *Session) CellView(row, col int) (CellView, error) {
	c, err := s.board.Cell(row, col)
	if err != nil {
		return CellView{}, err
	}
	return c.View(), nil
}

// BombsRemaining returns bombs minus flags. It goes negative when the player
// places more flags than there are bombs.
func (s *Session) BombsRemaining() int {
	return s.board.maxBombs - s.board.FlagCount()
}

// AllBombCells returns every bomb coordinate for end-of-game disclosure.
func (s *Session) AllBombCells() []Coord {
	return s.board.AllBombCells()
}

// Restart discards the board and builds a new one with the same dimensions.
// Random sessions get a new layout; fixed-layout sessions get the same one.
func (s *Session) Restart() error {
	return s.build()
}
