package minesweeper

// RevealEngine runs reveal actions and the win check against one Board.
type RevealEngine struct {
	board *Board
	stack []int // Pending cell indices, reused between calls
}

// NewRevealEngine creates an engine operating on b.
func NewRevealEngine(b *Board) *RevealEngine {
	return &RevealEngine{board: b}
}

// Reveal opens (row, col).
//
// A bomb returns Lost and leaves the board untouched. A revealed cell is a
// no-op. Otherwise the cell is opened and, if it has no bomb neighbors, the
// surrounding region is opened with an iterative flood fill. Flags do not
// block reveals.
func (e *RevealEngine) Reveal(row, col int) (GameState, error) {
	b := e.board
	if err := b.checkBounds(row, col); err != nil {
		return e.CheckState(), err
	}

	i := b.index(row, col)
	if b.cells[i].isBomb {
		return Lost, nil
	}
	if b.cells[i].isRevealed {
		return e.CheckState(), nil
	}

	e.flood(i)
	return e.CheckState(), nil
}

// flood reveals the cell at start and cascades through zero cells.
// Numbered cells are revealed but never pushed further. Returns the number
// of cells opened.
func (e *RevealEngine) flood(start int) int {
	b := e.board
	opened := 0

	e.stack = append(e.stack[:0], start)
	for len(e.stack) > 0 {
		i := e.stack[len(e.stack)-1]
		e.stack = e.stack[:len(e.stack)-1]

		if !b.reveal(i) {
			continue
		}
		opened++

		if b.cells[i].bombsAround > 0 {
			continue
		}
		c := b.coord(i)
		b.forEachNeighbor(c.Row, c.Col, func(n int) {
			if !b.cells[n].isRevealed && !b.cells[n].isBomb {
				e.stack = append(e.stack, n)
			}
		})
	}

	return opened
}

// Chord opens every unflagged, unrevealed neighbor of a revealed numbered
// cell whose flagged neighbor count matches its number. Any other target is
// a no-op. Stops at the first bomb.
func (e *RevealEngine) Chord(row, col int) (GameState, error) {
	b := e.board
	if err := b.checkBounds(row, col); err != nil {
		return e.CheckState(), err
	}

	c := b.cells[b.index(row, col)]
	if !c.isRevealed || c.bombsAround == 0 {
		return e.CheckState(), nil
	}

	flags := 0
	var targets []int
	b.forEachNeighbor(row, col, func(n int) {
		switch {
		case b.cells[n].isFlagged:
			flags++
		case !b.cells[n].isRevealed:
			targets = append(targets, n)
		}
	})
	if flags != c.bombsAround {
		return e.CheckState(), nil
	}

	for _, n := range targets {
		if b.cells[n].isBomb {
			return Lost, nil
		}
		e.flood(n)
	}
	return e.CheckState(), nil
}

// CheckState returns Won when every safe cell is revealed, Continue otherwise.
// Lost is only ever produced by a reveal hitting a bomb.
func (e *RevealEngine) CheckState() GameState {
	if e.board.revealedSafe == e.board.SafeCells() {
		return Won
	}
	return Continue
}
