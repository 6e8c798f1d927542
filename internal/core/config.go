package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Platform frames per second (default 60)
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

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the last round ended and has not restarted yet
	Paused   bool // Whether the game is paused
}

// Event is a discrete cue emitted by a game during a step.
// The platform forwards these to feedback sinks such as audio.
type Event int

const (
	EventNone Event = iota
	EventFoodEaten
	EventPowerUpEaten
	EventGameOver
)

// String returns a human-readable name for the event.
func (e Event) String() string {
	switch e {
	case EventFoodEaten:
		return "FoodEaten"
	case EventPowerUpEaten:
		return "PowerUpEaten"
	case EventGameOver:
		return "GameOver"
	default:
		return "None"
	}
}

// StepResult is returned by Game.Step() after each platform frame.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}

// Has reports whether the step emitted the given event.
func (r StepResult) Has(e Event) bool {
	for _, ev := range r.Events {
		if ev == e {
			return true
		}
	}
	return false
}
