package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to size their layout and for deterministic board generation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Ticks per second driving the scheduler (default 60)
	Seed     int64 // RNG seed for deterministic layouts
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

// TickDuration returns the wall time represented by one tick.
func (c RuntimeConfig) TickDuration() time.Duration {
	if c.TickRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.TickRate)
}

// GameState is the presentation-facing summary of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Phase   Phase         // Current phase of the round
	Score   float64       // Current (or final) score in the kind's unit
	Level   int           // Current level, round or item count
	Lives   int           // Remaining lives, 0 when the game has none
	Elapsed time.Duration // Time spent in the active phases
	Variant string        // Variant tag, empty if the game has none
	Message string        // Short status line for the HUD
}

// GameOver reports whether the round reached its terminal phase.
func (s GameState) GameOver() bool {
	return s.Phase == PhaseFinished
}
