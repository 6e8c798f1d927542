package snake

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake/grid"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

func newTestGame(seed int64) *Game {
	g := NewWithConfig(config.DefaultSnakeConfig())
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed})
	return g
}

func frame(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

// stepN runs n empty frames.
func stepN(g *Game, n int) {
	for range n {
		g.Step(core.NewInputFrame())
	}
}

func TestGameIdentity(t *testing.T) {
	g := New()
	if g.ID() != "snake" {
		t.Errorf("ID = %q, expected snake", g.ID())
	}
	if g.Title() != "Snake" {
		t.Errorf("Title = %q, expected Snake", g.Title())
	}

	game, err := registry.Create("snake")
	if err != nil {
		t.Fatalf("registry.Create failed: %v", err)
	}
	if game.ID() != "snake" {
		t.Errorf("Registered game ID = %q", game.ID())
	}
}

func TestGameStartsOnConfirm(t *testing.T) {
	g := newTestGame(1)

	stepN(g, 30)
	if g.Session().State() != StateSplash {
		t.Fatalf("State = %v, expected splash until confirm", g.Session().State())
	}

	g.Step(frame(core.ActionConfirm))
	stepN(g, 10) // first movement tick after 150ms

	if g.Session().State() != StatePlaying {
		t.Fatalf("State = %v, expected playing", g.Session().State())
	}
	if g.State().Score != 0 || g.State().GameOver {
		t.Errorf("Unexpected state %+v", g.State())
	}
}

func TestGameMovesOnMovementTicks(t *testing.T) {
	g := newTestGame(1)
	g.Step(frame(core.ActionConfirm))
	stepN(g, 10)

	start := g.Session().Body()[0]
	g.Step(frame(core.ActionRight))
	stepN(g, 9)

	head := g.Session().Body()[0]
	if head != start.Add(1, 0) {
		t.Errorf("Head = %v, expected %v after one move right", head, start.Add(1, 0))
	}
	if g.Session().Direction() != DirRight {
		t.Errorf("Direction = %v, expected right", g.Session().Direction())
	}

	// Reversal is ignored
	g.Step(frame(core.ActionLeft))
	stepN(g, 9)
	if g.Session().Direction() != DirRight {
		t.Errorf("Direction = %v, reversal should be ignored", g.Session().Direction())
	}
}

func TestGamePause(t *testing.T) {
	g := newTestGame(1)

	g.Step(frame(core.ActionPause))
	if g.State().Paused {
		t.Error("Pause should be ignored on the splash screen")
	}

	g.Step(frame(core.ActionConfirm))
	stepN(g, 10)
	g.Step(frame(core.ActionPause))
	if !g.State().Paused {
		t.Fatal("Expected paused state")
	}

	before := g.Snapshot()
	stepN(g, 60)
	after := g.Snapshot()
	if before.HeadX != after.HeadX || before.HeadY != after.HeadY || before.Now != after.Now {
		t.Error("Simulation should not advance while paused")
	}

	g.Step(frame(core.ActionPause))
	if g.State().Paused {
		t.Error("Second pause should resume")
	}
}

func TestGameReportsEvents(t *testing.T) {
	g := newTestGame(1)
	g.Step(frame(core.ActionConfirm))
	stepN(g, 10)

	s := g.Session()
	place(s, DirUp, cells(5, 5, 5, 6, 5, 7)...)
	s.food = Item{Cell: grid.Cell{Col: 5, Row: 4}, Present: true}

	var events []core.Event
	for range 10 {
		events = append(events, g.Step(core.NewInputFrame()).Events...)
	}
	if !containsEvent(events, core.EventFoodEaten) {
		t.Errorf("Events = %v, expected food_eaten", events)
	}

	place(s, DirLeft, cells(0, 3, 1, 3, 2, 3)...)
	for range 10 {
		r := g.Step(core.NewInputFrame())
		events = append(events, r.Events...)
		if r.Has(core.EventGameOver) {
			if !r.State.GameOver {
				t.Error("GameOver event without game over state")
			}
			return
		}
	}
	t.Errorf("Events = %v, expected game_over", events)
}

func containsEvent(events []core.Event, e core.Event) bool {
	for _, ev := range events {
		if ev == e {
			return true
		}
	}
	return false
}

func TestGameDeterminism(t *testing.T) {
	script := func(i int) core.InputFrame {
		switch {
		case i == 3:
			return frame(core.ActionConfirm)
		case i%40 == 10:
			return frame(core.ActionLeft)
		case i%40 == 30:
			return frame(core.ActionUp)
		}
		return core.NewInputFrame()
	}

	run := func() []Snapshot {
		g := newTestGame(42)
		var snaps []Snapshot
		for i := range 600 {
			g.Step(script(i))
			snaps = append(snaps, g.Snapshot())
		}
		return snaps
	}

	a, b := run(), run()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("Runs diverged at frame %d: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestGameRender(t *testing.T) {
	g := newTestGame(1)
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	out := screen.String()
	if !strings.Contains(out, "Snake") || !strings.Contains(out, "Press Enter or Space to start") {
		t.Errorf("Splash render missing title or prompt:\n%s", out)
	}

	g.Step(frame(core.ActionConfirm))
	stepN(g, 10)
	g.Render(screen)
	out = screen.String()
	if !strings.Contains(out, "██") {
		t.Errorf("Playing render missing the snake head:\n%s", out)
	}
	if !strings.Contains(out, "()") {
		t.Errorf("Playing render missing food:\n%s", out)
	}
}

func TestGameRenderTooSmall(t *testing.T) {
	g := newTestGame(1)
	screen := core.NewScreen(30, 10)

	g.Render(screen)
	if !strings.Contains(screen.String(), "Window too small") {
		t.Errorf("Expected too-small message:\n%s", screen.String())
	}
}

func TestSetConfigAppliesToNew(t *testing.T) {
	cfg := config.DefaultSnakeConfig()
	cfg.Scoring.FoodReward = 25
	SetConfig(cfg)
	defer func() { selectedConfig = nil }()

	g := New()
	g.Reset(core.DefaultConfig())
	if g.cfg.Scoring.FoodReward != 25 {
		t.Errorf("FoodReward = %d, expected 25", g.cfg.Scoring.FoodReward)
	}
}

// untilState steps empty frames until the session reaches want.
func untilState(t *testing.T, g *Game, want State, limit int) {
	t.Helper()
	for range limit {
		if g.Session().State() == want {
			return
		}
		g.Step(core.NewInputFrame())
	}
	if g.Session().State() != want {
		t.Fatalf("State = %v after %d frames, expected %v", g.Session().State(), limit, want)
	}
}

// untilMoved steps empty frames until the head leaves its current cell.
func untilMoved(t *testing.T, g *Game) (from, to grid.Cell) {
	t.Helper()
	from = g.Session().Body()[0]
	for range 20 {
		g.Step(core.NewInputFrame())
		if head := g.Session().Body()[0]; head != from {
			return from, head
		}
	}
	t.Fatalf("Head stayed at %v", from)
	return from, from
}

func TestStepArrowsOnSplashAreDropped(t *testing.T) {
	g := newTestGame(1)

	g.Step(frame(core.ActionLeft))
	g.Step(frame(core.ActionConfirm))
	untilState(t, g, StatePlaying, 20)

	from, to := untilMoved(t, g)
	if g.Session().Direction() != DirUp {
		t.Errorf("Direction = %v, expected up", g.Session().Direction())
	}
	if to != from.Add(0, -1) {
		t.Errorf("Head = %v, expected %v", to, from.Add(0, -1))
	}
}

func TestStepInputAcrossStates(t *testing.T) {
	tests := []struct {
		name       string
		policy     config.DeathPolicy
		gameOver   core.Action // pressed on every frame of the game-over pause
		wantState  State
		wantRounds int
	}{
		{"confirm during game over keeps splash", config.DeathToSplash, core.ActionConfirm, StateSplash, 1},
		{"arrow during game over keeps splash", config.DeathToSplash, core.ActionLeft, StateSplash, 1},
		{"confirm during game over on restart", config.DeathRestart, core.ActionConfirm, StatePlaying, 2},
		{"arrow during game over on restart", config.DeathRestart, core.ActionLeft, StatePlaying, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultSnakeConfig()
			cfg.Session.OnDeath = tt.policy
			g := NewWithConfig(cfg)
			g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1})

			g.Step(frame(core.ActionConfirm))
			untilState(t, g, StatePlaying, 20)
			place(g.Session(), DirLeft, cells(0, 3, 1, 3, 2, 3)...)
			untilState(t, g, StateGameOver, 20)

			for g.Session().State() == StateGameOver {
				g.Step(frame(tt.gameOver))
			}
			s := g.Session()
			if s.Rounds() != tt.wantRounds {
				t.Errorf("Rounds = %d, expected %d", s.Rounds(), tt.wantRounds)
			}

			if tt.wantState == StateSplash {
				stepN(g, 30)
				if s.State() != StateSplash {
					t.Fatalf("State = %v, expected the splash screen to wait for confirm", s.State())
				}
				return
			}

			if s.State() != StatePlaying {
				t.Fatalf("State = %v, expected playing", s.State())
			}
			from, to := untilMoved(t, g)
			if s.Direction() != DirUp || to != from.Add(0, -1) {
				t.Errorf("Direction = %v head %v -> %v, expected the new round to head up", s.Direction(), from, to)
			}
		})
	}
}
