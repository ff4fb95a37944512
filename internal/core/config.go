package core

// RuntimeConfig contains configuration passed to games at initialization.
// Board dimensions are zero when the game should use its own defaults.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frames per second the platform drives Step at
	Seed     int64 // RNG seed for reproducible boards

	Rows           int // Board height override
	Cols           int // Board width override
	BombPercentage int // One bomb per BombPercentage cells
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Safe cells revealed
	GameOver bool // Whether the round has ended
	Won      bool // Set together with GameOver when the round was won
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each frame.
type StepResult struct {
	State GameState
}

// RoundInfo describes the board and progress of the current round. Games that
// can report it let the platform record finished rounds.
type RoundInfo struct {
	Rows  int
	Cols  int
	Bombs int
	Moves int
}
