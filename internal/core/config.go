package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to the terminal and to pace the simulation.
type RuntimeConfig struct {
	ScreenW   int // Terminal width in characters
	ScreenH   int // Terminal height in characters
	TickRate  int // Simulation ticks per second (default 60)
	HoldTicks int // Ticks a key stays held after its last press
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:   80,
		ScreenH:   24,
		TickRate:  60,
		HoldTicks: 8,
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Deaths   int  // Times the player has been respawned
	Stomps   int  // Enemies defeated from above
	Ticks    int  // Simulation ticks run since Reset
	GameOver bool // Whether the session should end
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
