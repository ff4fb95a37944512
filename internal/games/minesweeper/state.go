package minesweeper

// GameState is the aggregate status of a game after an action.
type GameState int

const (
	Continue GameState = iota // Game in progress
	Won                       // Every safe cell revealed
	Lost                      // A bomb was revealed
)

// String returns a lowercase name for the state.
func (s GameState) String() string {
	switch s {
	case Continue:
		return "continue"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "unknown"
	}
}

// Terminal reports whether the state ends the game until a restart.
func (s GameState) Terminal() bool {
	return s == Won || s == Lost
}
