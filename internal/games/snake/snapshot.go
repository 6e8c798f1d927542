package snake

import "time"

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick       uint64
	Now        time.Duration
	State      State
	Score      int
	BestScore  int
	Rounds     int
	SnakeLen   int
	HeadX      int
	HeadY      int
	Dir        Direction
	FoodX      int
	FoodY      int
	HasPowerUp bool
	PowerUpX   int
	PowerUpY   int
	Invincible bool
	Rainbow    bool
	Paused     bool
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	s := g.session
	snap := Snapshot{
		Tick:       g.tick,
		Now:        g.clock.Now(),
		State:      s.State(),
		Score:      s.Score(),
		BestScore:  s.BestScore(),
		Rounds:     s.Rounds(),
		SnakeLen:   s.snake.Len(),
		Dir:        s.Direction(),
		Invincible: s.WallInvincible(),
		Rainbow:    s.Rainbow(),
		Paused:     g.paused,
	}

	if snap.SnakeLen > 0 {
		head := s.snake.Head()
		snap.HeadX, snap.HeadY = head.Col, head.Row
	}
	if c, ok := s.Food(); ok {
		snap.FoodX, snap.FoodY = c.Col, c.Row
	}
	if c, ok := s.PowerUp(); ok {
		snap.HasPowerUp = true
		snap.PowerUpX, snap.PowerUpY = c.Col, c.Row
	}
	return snap
}
