package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// fakeGame replays scripted events, one slice per Step.
type fakeGame struct {
	script [][]core.Event
	steps  int
	inputs []core.InputFrame
	score  int
	over   bool
}

func (g *fakeGame) ID() string                   { return "fake" }
func (g *fakeGame) Title() string                { return "Fake" }
func (g *fakeGame) Reset(cfg core.RuntimeConfig) { g.steps = 0 }
func (g *fakeGame) State() core.GameState        { return core.GameState{Score: g.score, GameOver: g.over} }
func (g *fakeGame) RoundStats() (int, int)       { return 7, 12 }

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	g.inputs = append(g.inputs, in.Clone())
	var ev []core.Event
	if g.steps < len(g.script) {
		ev = g.script[g.steps]
	}
	g.steps++
	for _, e := range ev {
		if e == core.EventFoodEaten {
			g.score += 10
		}
		if e == core.EventGameOver {
			g.over = true
		}
	}
	return core.StepResult{State: g.State(), Events: ev}
}

func (g *fakeGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "fake game")
}

type countingCues struct{ food, power int }

func (c *countingCues) FoodEaten()    { c.food++ }
func (c *countingCues) PowerUpEaten() { c.power++ }

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return out
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open()
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestModelForwardsKeysToGame(t *testing.T) {
	game := &fakeGame{}
	m := NewModel(game, testConfig(), Options{})

	m = update(t, m, keyMsg("left"))
	m = update(t, m, keyMsg("enter"))
	m = update(t, m, TickMsg{})

	if len(game.inputs) != 1 {
		t.Fatalf("Step called %d times, expected 1", len(game.inputs))
	}
	in := game.inputs[0]
	if in.LastDirection != core.ActionLeft || !in.Has(core.ActionConfirm) {
		t.Errorf("Input = %+v, expected left and confirm", in)
	}

	// Input is cleared between frames
	update(t, m, TickMsg{})
	if game.inputs[1].Has(core.ActionConfirm) {
		t.Error("Input frame should be cleared after each step")
	}
}

func TestModelCuesAndScoreboard(t *testing.T) {
	game := &fakeGame{script: [][]core.Event{
		{core.EventFoodEaten},
		{core.EventPowerUpEaten},
		{core.EventFoodEaten, core.EventGameOver},
	}}
	cues := &countingCues{}
	store := openStore(t)
	m := NewModel(game, testConfig(), Options{Store: store, Cues: cues})

	for range 3 {
		m = update(t, m, TickMsg{})
	}

	if cues.food != 2 || cues.power != 1 {
		t.Errorf("Cues food=%d power=%d, expected 2/1", cues.food, cues.power)
	}

	rounds, err := store.TopScores("fake", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(rounds) != 1 {
		t.Fatalf("Saved %d rounds, expected 1", len(rounds))
	}
	if rounds[0].Score != 20 || rounds[0].Round != 7 || rounds[0].Length != 12 {
		t.Errorf("Saved round = %+v, expected score 20 round 7 length 12", rounds[0])
	}

	m = update(t, m, keyMsg("tab"))
	if !m.showScores {
		t.Fatal("Tab should open the scoreboard")
	}
	view := m.View()
	for _, want := range []string{"FAKE - BEST THIS SESSION", "1 rounds, high score 20", "#1"} {
		if !strings.Contains(view, want) {
			t.Errorf("Scoreboard view missing %q:\n%s", want, view)
		}
	}

	m = update(t, m, keyMsg("tab"))
	if !m.showScores || m.board.mode != boardLatest {
		t.Fatal("Second tab should switch to the latest rounds")
	}
	if view := m.View(); !strings.Contains(view, "FAKE - LATEST ROUNDS") || !strings.Contains(view, "20") {
		t.Errorf("Latest view missing title or score:\n%s", view)
	}

	m = update(t, m, keyMsg("tab"))
	if m.showScores {
		t.Error("Third tab should return to the game")
	}
}

func TestScoreboardModes(t *testing.T) {
	store := openStore(t)
	for i, score := range []int{30, 50, 10} {
		if _, err := store.SaveRound(storage.RoundResult{GameID: "snake", Round: i + 1, Score: score}); err != nil {
			t.Fatalf("SaveRound() failed: %v", err)
		}
	}

	tests := []struct {
		mode   boardMode
		scores []int
	}{
		{boardBest, []int{50, 30, 10}},
		{boardLatest, []int{10, 50, 30}},
	}
	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			b := newScoreboard(80, 24)
			b.mode = tt.mode
			if err := b.load(store, "snake"); err != nil {
				t.Fatalf("load() failed: %v", err)
			}
			if b.count != 3 || b.high != 50 {
				t.Errorf("count=%d high=%d, expected 3/50", b.count, b.high)
			}
			if len(b.rounds) != len(tt.scores) {
				t.Fatalf("Loaded %d rounds, expected %d", len(b.rounds), len(tt.scores))
			}
			for i, want := range tt.scores {
				if b.rounds[i].Score != want {
					t.Errorf("Row %d score = %d, expected %d", i, b.rounds[i].Score, want)
				}
			}
		})
	}

	b := newScoreboard(80, 24)
	if err := b.load(nil, "snake"); err != nil || len(b.rounds) != 0 || b.count != 0 {
		t.Errorf("Nil store should leave an empty board, got %d rounds err %v", len(b.rounds), err)
	}
}

func TestModelScoreboardFreezesGame(t *testing.T) {
	game := &fakeGame{}
	m := NewModel(game, testConfig(), Options{})

	m = update(t, m, keyMsg("tab"))
	m = update(t, m, keyMsg("up"))
	m = update(t, m, TickMsg{})
	if len(game.inputs) != 0 {
		t.Error("Game should not step while the scoreboard is open")
	}

	m = update(t, m, keyMsg("tab"))
	m = update(t, m, TickMsg{})
	if len(game.inputs) != 0 {
		t.Error("Game should stay frozen on the latest rounds view")
	}

	m = update(t, m, keyMsg("tab"))
	update(t, m, TickMsg{})
	if len(game.inputs) != 1 {
		t.Fatalf("Step called %d times, expected 1", len(game.inputs))
	}
	if game.inputs[0].LastDirection != core.ActionNone {
		t.Error("Keys pressed on the scoreboard must not reach the game")
	}
}

func TestModelQuit(t *testing.T) {
	m := NewModel(&fakeGame{}, testConfig(), Options{})

	next, cmd := m.Update(keyMsg("q"))
	if cmd == nil {
		t.Fatal("Quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("Quit command should produce tea.QuitMsg")
	}
	if view := next.(Model).View(); view != "" {
		t.Errorf("View after quit = %q, expected empty", view)
	}
}

func TestModelViewRendersGameAndHelp(t *testing.T) {
	m := NewModel(&fakeGame{}, testConfig(), Options{})

	view := m.View()
	if !strings.Contains(view, "fake game") {
		t.Errorf("View missing game output:\n%s", view)
	}
	if !strings.Contains(view, "quit") {
		t.Errorf("View missing help line:\n%s", view)
	}
}

func TestModelResize(t *testing.T) {
	m := NewModel(&fakeGame{}, testConfig(), Options{})

	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	if m.screen.Width() != 100 || m.screen.Height() != 39 {
		t.Errorf("Screen = %dx%d, expected 100x39", m.screen.Width(), m.screen.Height())
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(10, 2)
	s.DrawTextColored(0, 0, "ab", core.ColorRed)
	s.DrawText(2, 0, "cd")

	out := RenderScreen(s)
	if !strings.Contains(out, "cd") || !strings.Contains(out, "\n") {
		t.Errorf("RenderScreen lost content: %q", out)
	}
}
