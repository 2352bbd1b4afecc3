package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed; 0 means the platform picks one from the clock
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState is the platform-facing status of a game.
type GameState struct {
	Score    int  // Current score
	Round    int  // Current round
	Lines    int  // Rows cleared this game
	GameOver bool // Set on the tick the game ended
}

// GameResult describes a finished game.
type GameResult struct {
	Score int
	Round int
	Lines int
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState

	// Finished is set on the tick a game ended, with its final numbers.
	Finished *GameResult

	// ToMenu is set when the game asked to hand control back to the menu.
	ToMenu bool
}
