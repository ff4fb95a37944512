package minesweeper

import "errors"

var (
	// ErrOutOfBounds is returned when a coordinate falls outside [0,rows)x[0,cols).
	ErrOutOfBounds = errors.New("minesweeper: coordinate out of bounds")

	// ErrInvalidConfiguration is returned for board parameters that cannot
	// produce a playable board.
	ErrInvalidConfiguration = errors.New("minesweeper: invalid configuration")
)
