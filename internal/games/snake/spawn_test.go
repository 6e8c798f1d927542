package snake

import (
	"math/rand"
	"testing"
	"time"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/games/snake/grid"
)

func testSpawner(seed int64) (*Spawner, grid.Grid) {
	g := grid.New(160, 120, 8)
	return NewSpawner(g, rand.New(rand.NewSource(seed)), config.DefaultSnakeConfig().Spawn), g
}

func TestSpawnerAvoidsOccupiedCells(t *testing.T) {
	sp, g := testSpawner(3)

	// Occupy everything except two cells
	occupants := grid.Set{}
	for col := range g.Width {
		for row := range g.Height {
			occupants.Add(grid.Cell{Col: col, Row: row})
		}
	}
	free := grid.Cell{Col: 4, Row: 9}
	delete(occupants, free)
	blocked := grid.Cell{Col: 15, Row: 2}
	delete(occupants, blocked)

	hits := 0
	for range 200 {
		c, ok := sp.Place(occupants, grid.NewSet(blocked), false)
		if !ok {
			continue
		}
		hits++
		if c != free {
			t.Fatalf("Place returned %v, only %v is free", c, free)
		}
	}
	if hits == 0 {
		t.Error("Expected at least one successful placement")
	}
}

func TestSpawnerBudgetExhaustion(t *testing.T) {
	sp, g := testSpawner(5)

	full := grid.Set{}
	for col := range g.Width {
		for row := range g.Height {
			full.Add(grid.Cell{Col: col, Row: row})
		}
	}

	c, ok := sp.Place(full, nil, false)
	if ok {
		t.Error("Place should report failure on a full grid")
	}
	if !g.InBounds(c) {
		t.Errorf("Fallback cell %v should be in bounds", c)
	}
}

func TestSpawnerCenterBias(t *testing.T) {
	sp, g := testSpawner(11)

	// 60% of a 20x15 lattice: columns 4..15, rows 3..11
	for range 2000 {
		c, ok := sp.Place(nil, nil, true)
		if !ok {
			t.Fatal("Place on an empty grid should succeed")
		}
		if !g.InBounds(c) {
			t.Fatalf("Cell %v out of bounds", c)
		}
		if c.Col < 4 || c.Col > 15 || c.Row < 3 || c.Row > 11 {
			t.Fatalf("Cell %v outside the central region", c)
		}
	}
}

func TestSpawnerUniformCoversGrid(t *testing.T) {
	sp, g := testSpawner(13)

	seen := grid.Set{}
	for range 20000 {
		c, _ := sp.Place(nil, nil, false)
		if !g.InBounds(c) {
			t.Fatalf("Cell %v out of bounds", c)
		}
		seen.Add(c)
	}
	if len(seen) != g.CellCount() {
		t.Errorf("Uniform placement reached %d cells, expected all %d", len(seen), g.CellCount())
	}
}

func TestPowerUpTimerSchedule(t *testing.T) {
	timer := NewPowerUpTimer(config.DefaultSnakeConfig().PowerUp)
	rng := rand.New(rand.NewSource(1))
	now := 2 * time.Second

	for range 500 {
		at := timer.Schedule(now, rng)
		if at < now+30*time.Second || at >= now+45*time.Second {
			t.Fatalf("Schedule = %v, expected in [32s, 47s)", at)
		}
	}

	if timer.SpawnDue(timer.NextSpawnAt()-1, false) {
		t.Error("Spawn should not be due before the deadline")
	}
	if !timer.SpawnDue(timer.NextSpawnAt(), false) {
		t.Error("Spawn should be due at the deadline")
	}
	if timer.SpawnDue(timer.NextSpawnAt(), true) {
		t.Error("Spawn should not be due while a power-up exists")
	}
}

func TestPowerUpTimerExpireOnce(t *testing.T) {
	timer := NewPowerUpTimer(config.DefaultSnakeConfig().PowerUp)
	timer.Arm(0)

	if timer.Expire(9 * time.Second) {
		t.Error("Expire fired early")
	}
	if !timer.Expire(10 * time.Second) {
		t.Error("Expire should fire at the deadline")
	}
	if timer.Expire(11 * time.Second) {
		t.Error("Expire should only fire once")
	}
	if timer.Rainbow() || timer.WallInvincible(11*time.Second) {
		t.Error("Effects should be cleared after Expire")
	}
}

func TestPowerUpTimerRearmExtends(t *testing.T) {
	timer := NewPowerUpTimer(config.DefaultSnakeConfig().PowerUp)
	timer.Arm(0)
	timer.Arm(6 * time.Second)

	if !timer.WallInvincible(12 * time.Second) {
		t.Error("Second power-up should restart the duration")
	}
	if timer.InvincibleUntil() != 16*time.Second {
		t.Errorf("InvincibleUntil = %v, expected 16s", timer.InvincibleUntil())
	}
}
