package core

import "time"

// RuntimeConfig is passed to scenes at initialization.
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

// TickDuration returns the simulated time covered by one tick.
func (c RuntimeConfig) TickDuration() time.Duration {
	if c.TickRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.TickRate)
}

// GameState is the scene status reported to the platform after each tick.
type GameState struct {
	Score    int    // Current score
	GameOver bool   // Whether the round has ended
	Cause    string // Name of whatever ended the round, empty while playing
	RunID    string // Identifier of the current scene instance
}

// StepResult is returned by Step after each simulation tick.
type StepResult struct {
	State GameState
}
