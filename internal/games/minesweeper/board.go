// Package minesweeper implements the Minesweeper engine: board model, bomb
// placement, adjacency, flood-fill reveal and win/loss tracking.
// The engine knows nothing about terminals; game.go adapts it to the
// registry.Game interface.
package minesweeper

import "fmt"

// Board owns the dense grid of cells for one game.
// Cells are stored row-major and addressed by index row*cols+col.
type Board struct {
	rows     int
	cols     int
	maxBombs int
	cells    []Cell

	revealedSafe int // Non-bomb cells with isRevealed set
}

// MaxBombsFor returns floor(rows*cols / bombPercentage).
// bombPercentage is a divisor: 10 means one bomb per ten cells.
func MaxBombsFor(rows, cols, bombPercentage int) int {
	if bombPercentage <= 0 {
		return 0
	}
	return rows * cols / bombPercentage
}

// validateConfig checks construction parameters shared by every constructor.
func validateConfig(rows, cols, bombPercentage int) error {
	if rows <= 0 || cols <= 0 || bombPercentage <= 0 {
		return fmt.Errorf("%w: rows=%d cols=%d bombPercentage=%d",
			ErrInvalidConfiguration, rows, cols, bombPercentage)
	}
	if maxBombs := MaxBombsFor(rows, cols, bombPercentage); maxBombs >= rows*cols {
		return fmt.Errorf("%w: %d bombs leave no safe cell on a %dx%d board",
			ErrInvalidConfiguration, maxBombs, rows, cols)
	}
	return nil
}

// NewBoard creates an empty board (no bombs placed yet).
func NewBoard(rows, cols, bombPercentage int) (*Board, error) {
	if err := validateConfig(rows, cols, bombPercentage); err != nil {
		return nil, err
	}
	return newBoard(rows, cols, MaxBombsFor(rows, cols, bombPercentage)), nil
}

func newBoard(rows, cols, maxBombs int) *Board {
	return &Board{
		rows:     rows,
		cols:     cols,
		maxBombs: maxBombs,
		cells:    make([]Cell, rows*cols),
	}
}

// NewBoardFromBombs builds a fully initialized board with bombs at exactly
// the given coordinates. maxBombs becomes len(bombs).
func NewBoardFromBombs(rows, cols int, bombs []Coord) (*Board, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: rows=%d cols=%d", ErrInvalidConfiguration, rows, cols)
	}
	if len(bombs) >= rows*cols {
		return nil, fmt.Errorf("%w: %d bombs leave no safe cell on a %dx%d board",
			ErrInvalidConfiguration, len(bombs), rows, cols)
	}

	b := newBoard(rows, cols, len(bombs))
	for _, c := range bombs {
		if !b.InBounds(c.Row, c.Col) {
			return nil, fmt.Errorf("%w: bomb %s outside %dx%d board",
				ErrInvalidConfiguration, c, rows, cols)
		}
		i := b.index(c.Row, c.Col)
		if b.cells[i].isBomb {
			return nil, fmt.Errorf("%w: duplicate bomb at %s", ErrInvalidConfiguration, c)
		}
		b.cells[i].isBomb = true
	}
	b.countAll()

	return b, nil
}

// Rows returns the number of rows.
func (b *Board) Rows() int { return b.rows }

// Cols returns the number of columns.
func (b *Board) Cols() int { return b.cols }

// MaxBombs returns the number of bombs the board holds once placement is done.
func (b *Board) MaxBombs() int { return b.maxBombs }

// SafeCells returns the number of cells without a bomb.
func (b *Board) SafeCells() int { return b.rows*b.cols - b.maxBombs }

// RevealedSafe returns how many non-bomb cells are revealed.
func (b *Board) RevealedSafe() int { return b.revealedSafe }

// InBounds reports whether (row, col) lies on the board.
func (b *Board) InBounds(row, col int) bool {
	return row >= 0 && row < b.rows && col >= 0 && col < b.cols
}

func (b *Board) index(row, col int) int {
	return row*b.cols + col
}

func (b *Board) coord(i int) Coord {
	return Coord{Row: i / b.cols, Col: i % b.cols}
}

func (b *Board) checkBounds(row, col int) error {
	if !b.InBounds(row, col) {
		return fmt.Errorf("%w: (%d,%d) on %dx%d board", ErrOutOfBounds, row, col, b.rows, b.cols)
	}
	return nil
}

// Cell returns a copy of the cell at (row, col).
func (b *Board) Cell(row, col int) (Cell, error) {
	if err := b.checkBounds(row, col); err != nil {
		return Cell{}, err
	}
	return b.cells[b.index(row, col)], nil
}

// forEachNeighbor calls fn with the index of every in-bounds neighbor.
// The bounds test is the same for all eight directions, which keeps
// adjacency symmetric.
func (b *Board) forEachNeighbor(row, col int, fn func(i int)) {
	for _, off := range neighborOffsets {
		r, c := row+off[0], col+off[1]
		if b.InBounds(r, c) {
			fn(b.index(r, c))
		}
	}
}

// NeighborsOf returns the in-bounds coordinates around (row, col).
// Corners have 3 neighbors, edges 5, interior cells 8.
func (b *Board) NeighborsOf(row, col int) ([]Coord, error) {
	if err := b.checkBounds(row, col); err != nil {
		return nil, err
	}
	out := make([]Coord, 0, len(neighborOffsets))
	b.forEachNeighbor(row, col, func(i int) {
		out = append(out, b.coord(i))
	})
	return out, nil
}

// CountBombsAround recomputes bombsAround for one cell.
// Must only be called after all bombs are placed.
func (b *Board) CountBombsAround(row, col int) error {
	if err := b.checkBounds(row, col); err != nil {
		return err
	}
	b.countAt(row, col)
	return nil
}

func (b *Board) countAt(row, col int) {
	n := 0
	b.forEachNeighbor(row, col, func(i int) {
		if b.cells[i].isBomb {
			n++
		}
	})
	b.cells[b.index(row, col)].bombsAround = n
}

// countAll fills bombsAround for every cell.
func (b *Board) countAll() {
	for row := 0; row < b.rows; row++ {
		for col := 0; col < b.cols; col++ {
			b.countAt(row, col)
		}
	}
}

// ToggleFlag flips the flag on (row, col). Flags are annotations only and
// may be placed on any cell, revealed or not.
func (b *Board) ToggleFlag(row, col int) error {
	if err := b.checkBounds(row, col); err != nil {
		return err
	}
	c := &b.cells[b.index(row, col)]
	c.isFlagged = !c.isFlagged
	return nil
}

// FlagCount returns the number of flagged cells.
func (b *Board) FlagCount() int {
	n := 0
	for i := range b.cells {
		if b.cells[i].isFlagged {
			n++
		}
	}
	return n
}

// BombCount returns the number of cells currently holding a bomb.
func (b *Board) BombCount() int {
	n := 0
	for i := range b.cells {
		if b.cells[i].isBomb {
			n++
		}
	}
	return n
}

// AllBombCells returns the coordinates of every bomb in row-major order.
// Presentation layers use it to disclose bombs once a game ends.
func (b *Board) AllBombCells() []Coord {
	out := make([]Coord, 0, b.maxBombs)
	for i := range b.cells {
		if b.cells[i].isBomb {
			out = append(out, b.coord(i))
		}
	}
	return out
}

// reveal marks a non-bomb cell as revealed and keeps revealedSafe in sync.
// It reports whether the cell changed.
func (b *Board) reveal(i int) bool {
	c := &b.cells[i]
	if c.isRevealed || c.isBomb {
		return false
	}
	c.isRevealed = true
	b.revealedSafe++
	return true
}
