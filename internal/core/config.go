package core

// RuntimeConfig contains configuration passed to the game at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState is the externally visible status of the game.
type GameState struct {
	Scene     string  // Active scene name
	Score     int     // Score of the current or last run
	HighScore int     // Best score, including previous sessions
	Mileage   float64 // Distance covered in the current or last run
	GameOver  bool    // Whether the last run has ended
	Paused    bool    // Whether the current run is paused
}

// StepResult is returned by a simulation tick.
type StepResult struct {
	State GameState

	// RunEnded is true only on the tick a run ends, so drivers can
	// record it exactly once.
	RunEnded bool
}
