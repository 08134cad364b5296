package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Target frames per second (default 60)
	Seed     int64 // RNG seed for level generation
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

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score     float64 // Distance of the current run
	LastScore float64 // Final distance of the previous run
	Alive     bool    // False while the death timer is running
	Deaths    int     // Number of runs that ended this session
	Paused    bool    // Whether the game is paused

	RunTime     float64 // Seconds alive in the current run
	LastRunTime float64 // Seconds alive in the previous run
}

// StepResult is returned by Game.Step() after each simulation frame.
type StepResult struct {
	State GameState
	Died  bool // The run ended during this frame
}
