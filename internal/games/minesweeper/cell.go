package minesweeper

import "fmt"

// Coord addresses a single cell on the board.
type Coord struct {
	Row int
	Col int
}

// String returns the coordinate as "(row,col)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// neighborOffsets lists the eight surrounding directions as (dRow, dCol).
var neighborOffsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Cell is the state of one grid position. It is owned by a Board and only
// mutated through Board and RevealEngine methods.
type Cell struct {
	isBomb      bool
	isRevealed  bool
	isFlagged   bool
	bombsAround int
}

// IsBomb reports whether the cell holds a bomb.
func (c Cell) IsBomb() bool { return c.isBomb }

// IsRevealed reports whether the cell has been opened.
func (c Cell) IsRevealed() bool { return c.isRevealed }

// IsFlagged reports whether the player marked the cell.
func (c Cell) IsFlagged() bool { return c.isFlagged }

// BombsAround returns the number of bombs among the cell's neighbors.
func (c Cell) BombsAround() int { return c.bombsAround }

// View returns a read-only snapshot of the cell for rendering.
func (c Cell) View() CellView {
	return CellView{
		Revealed:    c.isRevealed,
		Flagged:     c.isFlagged,
		Bomb:        c.isBomb,
		BombsAround: c.bombsAround,
	}
}

// CellView is the rendering snapshot handed to presentation layers.
type CellView struct {
	Revealed    bool
	Flagged     bool
	Bomb        bool
	BombsAround int
}
