package main

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

func TestSimulateIsDeterministic(t *testing.T) {
	cfg := config.DefaultSnakeConfig()
	logger := log.New(io.Discard)

	a, err := simulate(cfg, 42, 1500, nil, logger)
	if err != nil {
		t.Fatalf("simulate() failed: %v", err)
	}
	b, err := simulate(cfg, 42, 1500, nil, logger)
	if err != nil {
		t.Fatalf("simulate() failed: %v", err)
	}

	if a.Rounds != b.Rounds || a.BestScore != b.BestScore || a.Score != b.Score || a.Length != b.Length {
		t.Errorf("Same seed gave different runs: %+v vs %+v", a, b)
	}
	if a.Elapsed != 1500*cfg.Timing.MoveInterval {
		t.Errorf("Elapsed = %v, expected %v", a.Elapsed, 1500*cfg.Timing.MoveInterval)
	}
	if a.Rounds == 0 {
		t.Error("Autopilot should start at least one round")
	}
}

func TestSimulateRecordsRounds(t *testing.T) {
	store, err := storage.Open()
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	defer store.Close()

	res, err := simulate(config.DefaultSnakeConfig(), 3, 3000, store, log.New(io.Discard))
	if err != nil {
		t.Fatalf("simulate() failed: %v", err)
	}

	n, err := store.RoundCount("snake")
	if err != nil {
		t.Fatalf("RoundCount() failed: %v", err)
	}
	if n != res.Deaths {
		t.Errorf("Stored %d rounds, expected one per death (%d)", n, res.Deaths)
	}
	if res.Recorded != n {
		t.Errorf("Recorded = %d, expected %d", res.Recorded, n)
	}
	if res.HighScore != res.BestScore {
		t.Errorf("HighScore = %d, expected best %d", res.HighScore, res.BestScore)
	}
	if len(res.Top) > 0 && res.Top[0].Score != res.BestScore {
		t.Errorf("Top round score %d, expected best %d", res.Top[0].Score, res.BestScore)
	}
	if len(res.Recent) != min(n, 3) {
		t.Fatalf("Recent has %d rounds, expected %d", len(res.Recent), min(n, 3))
	}
	if n > 0 && res.Recent[0].Round != res.Deaths {
		t.Errorf("Latest round = %d, expected %d", res.Recent[0].Round, res.Deaths)
	}
}

func TestPrintSim(t *testing.T) {
	var buf bytes.Buffer
	printSim(&buf, 9, simResult{
		Ticks:     10,
		Rounds:    2,
		Deaths:    1,
		BestScore: 30,
		Recorded:  1,
		HighScore: 30,
		Top:       []storage.RoundResult{{Score: 30, Length: 6, Round: 1}},
		Recent:    []storage.RoundResult{{Score: 30, Length: 6, Round: 1}},
	})

	out := buf.String()
	for _, want := range []string{"seed 9", "Rounds:  2", "Best:    30", "Stored:  1 rounds, high score 30", "Top", "Latest", "#1"} {
		if !strings.Contains(out, want) {
			t.Errorf("Output missing %q:\n%s", want, out)
		}
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	defer func() { flagDifficulty, flagOnDeath = "", "" }()

	flagDifficulty = "hard"
	flagOnDeath = "restart"
	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig() failed: %v", err)
	}
	if cfg.Timing.MoveInterval != config.MoveIntervalForPreset(config.DifficultyHard) {
		t.Errorf("MoveInterval = %v, expected the hard preset", cfg.Timing.MoveInterval)
	}
	if cfg.Session.OnDeath != config.DeathRestart {
		t.Errorf("OnDeath = %q, expected restart", cfg.Session.OnDeath)
	}

	flagOnDeath = "explode"
	if _, err := loadConfig(); err == nil {
		t.Error("Expected an error for an unknown death policy")
	}
}
