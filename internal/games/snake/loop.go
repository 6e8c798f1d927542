package snake

import (
	"time"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// Loop schedules the movement and housekeeping ticks of a session on one
// simulation clock. Each tick runs to completion at its scheduled time.
type Loop struct {
	session    *Session
	clock      *core.SimClock
	moveEvery  time.Duration
	houseEvery time.Duration
	nextMove   time.Duration
	nextHouse  time.Duration
}

// NewLoop creates a loop whose first ticks are one period after the
// clock's current time. The session must read the same clock.
func NewLoop(s *Session, clock *core.SimClock, timing config.TimingConfig) *Loop {
	now := clock.Now()
	return &Loop{
		session:    s,
		clock:      clock,
		moveEvery:  timing.MoveInterval,
		houseEvery: timing.HousekeepingInterval,
		nextMove:   now + timing.MoveInterval,
		nextHouse:  now + timing.HousekeepingInterval,
	}
}

// AdvanceTo runs every tick due up to and including t in deadline order,
// movement first on ties, then leaves the clock at t. It returns the
// outcomes of the movement ticks that ran.
func (l *Loop) AdvanceTo(t time.Duration, in InputSource) []MoveOutcome {
	var outcomes []MoveOutcome
	for {
		next := min(l.nextMove, l.nextHouse)
		if next > t {
			break
		}
		l.clock.Set(next)
		if l.nextMove <= l.nextHouse {
			outcomes = append(outcomes, l.session.MoveTick(in))
			l.nextMove += l.moveEvery
		} else {
			l.session.Housekeep()
			l.nextHouse += l.houseEvery
		}
	}
	l.clock.Set(t)
	return outcomes
}

// Advance runs the loop forward by d.
func (l *Loop) Advance(d time.Duration, in InputSource) []MoveOutcome {
	return l.AdvanceTo(l.clock.Now()+d, in)
}

// NextMoveAt returns the time of the next movement tick.
func (l *Loop) NextMoveAt() time.Duration { return l.nextMove }
