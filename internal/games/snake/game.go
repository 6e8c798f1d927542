package snake

import (
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

// Package-level settings applied to games created through the registry.
// The CLI sets these once before creating a game.
var (
	selectedConfig *config.SnakeConfig
	gameLogger     *log.Logger
)

// SetConfig sets the configuration used by games created with New.
func SetConfig(cfg config.SnakeConfig) {
	selectedConfig = &cfg
}

// SetLogger sets the logger handed to sessions created by Reset.
func SetLogger(l *log.Logger) {
	gameLogger = l
}

func init() {
	registry.Register("snake", func() registry.Game {
		return New()
	})
}

// Game adapts a Session to the platform's frame-driven Game interface.
// Each Step advances a simulation clock by one frame and lets the Loop run
// whichever ticks fell due.
type Game struct {
	cfg     *config.SnakeConfig
	session *Session
	loop    *Loop
	clock   *core.SimClock
	input   bufferedInput
	scene   *scene
	frame   time.Duration
	tick    uint64
	paused  bool
}

// New creates a Snake game using the configuration set by SetConfig, or
// the loaded defaults when none was set.
func New() *Game {
	return &Game{cfg: selectedConfig}
}

// NewWithConfig creates a Snake game with an explicit configuration.
func NewWithConfig(cfg config.SnakeConfig) *Game {
	return &Game{cfg: &cfg}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "snake"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Snake"
}

// Reset initializes the game and leaves it on the splash screen.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	if g.cfg == nil {
		loaded, err := config.LoadSnake("")
		if err != nil {
			loaded = config.DefaultSnakeConfig()
		}
		g.cfg = &loaded
	}

	tickRate := cfg.TickRate
	if tickRate <= 0 {
		tickRate = core.DefaultConfig().TickRate
	}
	g.frame = time.Second / time.Duration(tickRate)
	g.tick = 0
	g.paused = false
	g.input = bufferedInput{}
	g.clock = core.NewSimClock()
	g.scene = newScene()

	g.session = NewSession(Options{
		Config: *g.cfg,
		Clock:  g.clock,
		Rand:   rand.New(rand.NewSource(cfg.Seed)),
		Sinks: Sinks{
			Renderer: g.scene,
			Audio:    g.scene,
			Score:    g.scene,
			Round:    g.scene,
		},
		Logger: gameLogger,
	})
	g.loop = NewLoop(g.session, g.clock, g.cfg.Timing)
}

// Step advances the game by one platform frame.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	// Pause only makes sense mid-round
	if input.Has(core.ActionPause) && g.session.State() == StatePlaying {
		g.paused = !g.paused
	}
	if g.session.State() != StatePlaying {
		g.paused = false
	}

	if !g.paused {
		// Requests only count in the state they were made in
		before := g.session.State()
		switch before {
		case StatePlaying:
			if d, ok := directionFor(input.LastDirection); ok {
				g.input.request(d)
			}
		case StateSplash:
			if input.Has(core.ActionConfirm) {
				g.input.start = true
			}
		}
		g.loop.Advance(g.frame, &g.input)
		if g.session.State() != before {
			g.input = bufferedInput{}
		}
	}

	return core.StepResult{
		State:  g.State(),
		Events: g.scene.drainEvents(),
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.session.Score(),
		GameOver: g.session.State() == StateGameOver,
		Paused:   g.paused,
	}
}

// RoundStats reports the current round number and snake length, for the
// scoreboard.
func (g *Game) RoundStats() (round, length int) {
	return g.session.Rounds(), g.session.snake.Len()
}

// Session exposes the underlying session.
func (g *Game) Session() *Session {
	return g.session
}

// directionFor maps a platform arrow action to a heading.
func directionFor(a core.Action) (Direction, bool) {
	switch a {
	case core.ActionUp:
		return DirUp, true
	case core.ActionDown:
		return DirDown, true
	case core.ActionLeft:
		return DirLeft, true
	case core.ActionRight:
		return DirRight, true
	}
	return 0, false
}

// bufferedInput holds requests made between movement ticks.
// Polling consumes them.
type bufferedInput struct {
	dir    Direction
	hasDir bool
	start  bool
}

func (b *bufferedInput) request(d Direction) {
	b.dir = d
	b.hasDir = true
}

func (b *bufferedInput) LatestDirectionRequest() (Direction, bool) {
	d, ok := b.dir, b.hasDir
	b.hasDir = false
	return d, ok
}

func (b *bufferedInput) StartRequested() bool {
	s := b.start
	b.start = false
	return s
}
