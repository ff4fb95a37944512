package minesweeper

// Cell bits packed into Snapshot.Cells. The count of bomb neighbors sits
// above the flag bits.
const (
	snapRevealed = 1 << iota
	snapFlagged
	snapBomb
	snapCountShift = iota
)

// Snapshot contains the complete game state for determinism tests and replays.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Rows      int
	Cols      int
	State     GameState
	CursorRow int
	CursorCol int
	Moves     int
	Paused    bool
	Cells     []int // Row-major, see snapRevealed and friends
}

// Snapshot returns the current game state.
func (g *Game) Snapshot() Snapshot {
	b := g.session.board
	cells := make([]int, len(b.cells))
	for i, c := range b.cells {
		v := c.bombsAround << snapCountShift
		if c.isRevealed {
			v |= snapRevealed
		}
		if c.isFlagged {
			v |= snapFlagged
		}
		if c.isBomb {
			v |= snapBomb
		}
		cells[i] = v
	}

	return Snapshot{
		Rows:      b.rows,
		Cols:      b.cols,
		State:     g.session.State(),
		CursorRow: g.cursor.Row,
		CursorCol: g.cursor.Col,
		Moves:     g.session.Moves(),
		Paused:    g.paused,
		Cells:     cells,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(snap.Rows)                  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Cols)            //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.State)           //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.CursorRow)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.CursorCol)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Moves)           //#nosec G115 -- hash computation
	if snap.Paused {
		h = h*31 + 1
	}

	for _, v := range snap.Cells {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	return h
}
