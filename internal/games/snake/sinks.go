package snake

import "github.com/vovakirdan/tui-snake/internal/games/snake/grid"

// Style is the visual representation of the snake.
type Style int

const (
	StyleDefault Style = iota
	StyleRainbow
)

func (s Style) String() string {
	if s == StyleRainbow {
		return "rainbow"
	}
	return "default"
}

// Renderer receives entity changes. Calls are fire-and-forget.
type Renderer interface {
	SnakeChanged(cells []grid.Cell, style Style)
	FoodPlaced(c grid.Cell)
	PowerUpPlaced(c grid.Cell)
	PowerUpCleared()
}

// InputSource is polled on each movement tick.
type InputSource interface {
	// LatestDirectionRequest returns the last heading asked for since the
	// previous poll, if any.
	LatestDirectionRequest() (Direction, bool)
	// StartRequested reports whether the player asked to start a round.
	StartRequested() bool
}

// AudioSink receives discrete feedback cues.
type AudioSink interface {
	FoodEaten()
	PowerUpEaten()
}

// ScoreDisplay receives every score change.
type ScoreDisplay interface {
	ScoreChanged(score int)
}

// RoundSink is told the final score when a round ends.
type RoundSink interface {
	RoundOver(finalScore int)
}

// Sinks bundles the collaborators a session reports to.
// Nil members are replaced with no-ops.
type Sinks struct {
	Renderer Renderer
	Audio    AudioSink
	Score    ScoreDisplay
	Round    RoundSink
}

func (s Sinks) withDefaults() Sinks {
	if s.Renderer == nil {
		s.Renderer = nopSink{}
	}
	if s.Audio == nil {
		s.Audio = nopSink{}
	}
	if s.Score == nil {
		s.Score = nopSink{}
	}
	if s.Round == nil {
		s.Round = nopSink{}
	}
	return s
}

type nopSink struct{}

func (nopSink) SnakeChanged([]grid.Cell, Style) {}
func (nopSink) FoodPlaced(grid.Cell)            {}
func (nopSink) PowerUpPlaced(grid.Cell)         {}
func (nopSink) PowerUpCleared()                 {}
func (nopSink) FoodEaten()                      {}
func (nopSink) PowerUpEaten()                   {}
func (nopSink) ScoreChanged(int)                {}
func (nopSink) RoundOver(int)                   {}

// NoInput is an InputSource that never asks for anything.
type NoInput struct{}

func (NoInput) LatestDirectionRequest() (Direction, bool) { return 0, false }
func (NoInput) StartRequested() bool                      { return false }
