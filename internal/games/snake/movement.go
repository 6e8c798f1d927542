package snake

// MoveOutcome is the result of one movement tick.
type MoveOutcome int

const (
	OutcomeNone MoveOutcome = iota // no movement happened (not playing)
	OutcomeContinued
	OutcomeAteFood
	OutcomeAtePowerUp
	OutcomeDied
)

func (o MoveOutcome) String() string {
	switch o {
	case OutcomeContinued:
		return "continued"
	case OutcomeAteFood:
		return "ate_food"
	case OutcomeAtePowerUp:
		return "ate_powerup"
	case OutcomeDied:
		return "died"
	default:
		return "none"
	}
}

// advance moves the snake one cell. On OutcomeDied nothing has been mutated
// apart from the committed direction.
func (s *Session) advance() MoveOutcome {
	now := s.clock.Now()
	sn := &s.snake

	sn.commitDirection()
	next := sn.Head().Add(sn.dir.Delta())

	if !s.grid.InBounds(next) {
		if !s.timer.WallInvincible(now) {
			return OutcomeDied
		}
		next = s.grid.Wrap(next)
	}

	// Invincibility covers walls only.
	if sn.Occupies(next) {
		return OutcomeDied
	}

	sn.push(next)

	switch {
	case s.food.At(next):
		s.score += s.cfg.Scoring.FoodReward
		s.sinks.Score.ScoreChanged(s.score)
		s.sinks.Audio.FoodEaten()
		s.placeFood()
		s.emitSnake()
		return OutcomeAteFood

	case s.powerUp.At(next):
		s.powerUp = Item{}
		s.sinks.Renderer.PowerUpCleared()
		s.timer.Arm(now)
		s.timer.Schedule(now, s.rng)
		sn.dropTail()
		s.sinks.Audio.PowerUpEaten()
		s.emitSnake()
		s.logger.Debug("power-up eaten", "until", s.timer.InvincibleUntil(), "next_spawn", s.timer.NextSpawnAt())
		return OutcomeAtePowerUp
	}

	sn.dropTail()
	s.emitSnake()
	return OutcomeContinued
}
