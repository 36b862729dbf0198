package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW     int           // Screen width in characters
	ScreenH     int           // Screen height in characters
	TickRate    int           // Presentation ticks per second
	RevealDelay time.Duration // Delay before a result overlay appears
	StartLevel  int           // Level to start on (0-based)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:     80,
		ScreenH:     24,
		TickRate:    30,
		RevealDelay: time.Second,
	}
}

// RevealTicks converts RevealDelay to a number of ticks at TickRate.
func (c RuntimeConfig) RevealTicks() int {
	if c.TickRate <= 0 || c.RevealDelay <= 0 {
		return 0
	}
	return int(c.RevealDelay * time.Duration(c.TickRate) / time.Second)
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Level      int    // Current level, 1-based
	LevelCount int    // Number of levels
	Status     string // Engine status name
	Terminal   bool   // No further moves change the outcome
	Revealed   bool   // Result overlay is showing
}

// StepResult is returned by Game.Step() after each tick.
type StepResult struct {
	State GameState
}
