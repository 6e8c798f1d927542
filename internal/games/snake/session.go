package snake

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake/grid"
)

// State is the session's top-level state.
type State int

const (
	StateSplash State = iota
	StatePlaying
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "game_over"
	default:
		return "splash"
	}
}

// Options configures a new session.
type Options struct {
	Config config.SnakeConfig
	Clock  core.Clock  // required
	Rand   *rand.Rand  // defaults to a time-seeded source
	Sinks  Sinks       // nil members become no-ops
	Logger *log.Logger // nil discards
}

// Session owns all mutable game state. It is driven by two ticks,
// MoveTick and Housekeep, which must never run concurrently.
type Session struct {
	cfg     config.SnakeConfig
	grid    grid.Grid
	clock   core.Clock
	rng     *rand.Rand
	spawner *Spawner
	timer   PowerUpTimer
	sinks   Sinks
	logger  *log.Logger

	state      State
	score      int
	lastScore  int
	bestScore  int
	rounds     int
	gameOverAt time.Duration

	// Entities; only meaningful while playing.
	snake   Snake
	food    Item
	powerUp Item
}

// NewSession creates a session in the Splash state.
func NewSession(opts Options) *Session {
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	gc := opts.Config.Grid
	g := grid.New(float64(gc.PlayfieldWidth), float64(gc.PlayfieldHeight), float64(gc.CellSize))

	return &Session{
		cfg:     opts.Config,
		grid:    g,
		clock:   opts.Clock,
		rng:     rng,
		spawner: NewSpawner(g, rng, opts.Config.Spawn),
		timer:   NewPowerUpTimer(opts.Config.PowerUp),
		sinks:   opts.Sinks.withDefaults(),
		logger:  logger,
		state:   StateSplash,
	}
}

// Start enters Playing with a fresh round: score 0, the canonical 3-cell
// snake heading up, timers cleared and the first food placed.
func (s *Session) Start() {
	now := s.clock.Now()

	center := s.grid.Center()
	center.Row = min(center.Row, s.grid.Height-3)
	s.snake = newSnake(center)

	s.score = 0
	s.food = Item{}
	s.powerUp = Item{}
	s.timer.Reset(now, s.rng)
	s.rounds++

	s.setState(StatePlaying)
	s.sinks.Renderer.PowerUpCleared()
	s.emitSnake()
	s.placeFood()
	s.sinks.Score.ScoreChanged(0)
}

// MoveTick runs one movement tick: start input on the splash screen, the
// game-over pause, or one snake step while playing.
func (s *Session) MoveTick(in InputSource) MoveOutcome {
	if in == nil {
		in = NoInput{}
	}

	switch s.state {
	case StateSplash:
		if in.StartRequested() {
			s.Start()
		}
		return OutcomeNone

	case StateGameOver:
		if s.clock.Now()-s.gameOverAt >= s.cfg.Timing.GameOverPause {
			s.leaveGameOver()
		}
		return OutcomeNone
	}

	if d, ok := in.LatestDirectionRequest(); ok {
		s.snake.Request(d)
	}

	outcome := s.advance()
	if outcome == OutcomeDied {
		s.die()
	}
	return outcome
}

// Housekeep runs the slow tick: expire effects, then spawn a power-up if due.
func (s *Session) Housekeep() {
	if s.state != StatePlaying {
		return
	}
	now := s.clock.Now()

	if s.timer.Expire(now) {
		s.emitSnake()
		s.logger.Debug("power-up expired")
	}

	if s.timer.SpawnDue(now, s.powerUp.Present) {
		c, ok := s.spawner.Place(s.snake.Set(), grid.NewSet(s.food.Cell), true)
		if !ok {
			s.logger.Warn("spawn budget exhausted", "item", "powerup", "cell", c)
		}
		s.powerUp = Item{Cell: c, Present: true}
		s.timer.Schedule(now, s.rng)
		s.sinks.Renderer.PowerUpPlaced(c)
	}
}

// die freezes the round and surfaces the final score.
func (s *Session) die() {
	s.gameOverAt = s.clock.Now()
	s.lastScore = s.score
	s.bestScore = max(s.bestScore, s.score)
	s.setState(StateGameOver)
	s.logger.Info("game over", "score", s.score, "length", s.snake.Len(), "round", s.rounds)
	s.sinks.Round.RoundOver(s.score)
}

// leaveGameOver ends the pause according to the configured death policy.
func (s *Session) leaveGameOver() {
	if s.cfg.Session.OnDeath == config.DeathRestart {
		s.Start()
		return
	}
	s.snake = Snake{}
	s.food = Item{}
	s.powerUp = Item{}
	s.setState(StateSplash)
}

func (s *Session) placeFood() {
	excluded := grid.Set{}
	if s.powerUp.Present {
		excluded.Add(s.powerUp.Cell)
	}
	c, ok := s.spawner.Place(s.snake.Set(), excluded, false)
	if !ok {
		s.logger.Warn("spawn budget exhausted", "item", "food", "cell", c)
	}
	s.food = Item{Cell: c, Present: true}
	s.sinks.Renderer.FoodPlaced(c)
}

func (s *Session) emitSnake() {
	style := StyleDefault
	if s.timer.Rainbow() {
		style = StyleRainbow
	}
	s.sinks.Renderer.SnakeChanged(s.snake.Cells(), style)
}

func (s *Session) setState(next State) {
	if s.state != next {
		s.logger.Debug("state change", "from", s.state, "to", next)
	}
	s.state = next
}

// State returns the current top-level state.
func (s *Session) State() State { return s.state }

// Score returns the score of the current (or just-finished) round.
func (s *Session) Score() int { return s.score }

// LastScore returns the final score of the previous round.
func (s *Session) LastScore() int { return s.lastScore }

// BestScore returns the best final score seen by this session.
func (s *Session) BestScore() int { return s.bestScore }

// Rounds returns how many rounds have been started.
func (s *Session) Rounds() int { return s.rounds }

// Grid returns the lattice the session plays on.
func (s *Session) Grid() grid.Grid { return s.grid }

// Body returns a copy of the snake body, head first. Empty outside a round.
func (s *Session) Body() []grid.Cell { return s.snake.Cells() }

// Direction returns the committed heading.
func (s *Session) Direction() Direction { return s.snake.dir }

// Food returns the food cell, if any.
func (s *Session) Food() (grid.Cell, bool) { return s.food.Cell, s.food.Present }

// PowerUp returns the power-up cell, if any.
func (s *Session) PowerUp() (grid.Cell, bool) { return s.powerUp.Cell, s.powerUp.Present }

// WallInvincible reports whether walls currently wrap.
func (s *Session) WallInvincible() bool { return s.timer.WallInvincible(s.clock.Now()) }

// Rainbow reports whether rainbow mode is on.
func (s *Session) Rainbow() bool { return s.timer.Rainbow() }

// Timer exposes the power-up timer for inspection.
func (s *Session) Timer() PowerUpTimer { return s.timer }
