package core

// RuntimeConfig contains the settings hosts pass down to the arena and renderers.
type RuntimeConfig struct {
	ScreenW   int   // Surface width in pixels (terminal hosts: characters)
	ScreenH   int   // Surface height in pixels (terminal hosts: characters)
	TickRate  int   // Simulation ticks per second
	Instances int   // Number of concurrently simulated games
	Seed      int64 // RNG seed for deterministic gameplay
}

// GameState represents the externally visible state of one simulation.
type GameState struct {
	Score    int  // Pipes passed
	GameOver bool // Whether the bird has crashed
	Started  bool // Whether the first flap has happened
}

// StepResult is returned by a simulation after each tick.
type StepResult struct {
	State  GameState
	Reward float64 // Instant reward earned by this tick
}
