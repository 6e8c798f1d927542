package snake

import "github.com/vovakirdan/tui-snake/internal/games/snake/grid"

// Autopilot is a greedy InputSource for headless runs. It steers toward
// the power-up or food, never requests a reversal, and prefers moves that
// do not die on the next tick.
type Autopilot struct {
	session *Session
}

// NewAutopilot creates an autopilot that reads the given session.
func NewAutopilot(s *Session) *Autopilot {
	return &Autopilot{session: s}
}

// StartRequested always asks to start, so rounds chain back to back.
func (a *Autopilot) StartRequested() bool {
	return true
}

// LatestDirectionRequest picks the best heading for the next tick.
func (a *Autopilot) LatestDirectionRequest() (Direction, bool) {
	s := a.session
	if s.State() != StatePlaying || s.snake.Len() == 0 {
		return 0, false
	}

	target, ok := s.PowerUp()
	if !ok {
		target, _ = s.Food()
	}

	head := s.snake.Head()
	current := s.Direction()
	best, bestDist, found := current, 0, false

	for _, d := range []Direction{current, DirUp, DirRight, DirDown, DirLeft} {
		if d == current.Opposite() {
			continue
		}
		next, safe := a.step(head, d)
		if !safe {
			continue
		}
		dist := manhattan(next, target)
		if !found || dist < bestDist {
			best, bestDist, found = d, dist, true
		}
	}
	return best, true
}

// step returns where a move would land and whether it survives.
func (a *Autopilot) step(head grid.Cell, d Direction) (grid.Cell, bool) {
	s := a.session
	next := head.Add(d.Delta())
	if !s.grid.InBounds(next) {
		if !s.WallInvincible() {
			return next, false
		}
		next = s.grid.Wrap(next)
	}
	return next, !s.snake.Occupies(next)
}

func manhattan(a, b grid.Cell) int {
	dx, dy := a.Col-b.Col, a.Row-b.Row
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}
