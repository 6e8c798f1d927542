package snake

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-snake/internal/config"
)

// PowerUpTimer tracks the two power-up deadlines against the session clock:
// when the next green apple may appear, and when wall-invincibility ends.
type PowerUpTimer struct {
	duration time.Duration
	spawnMin time.Duration
	spawnMax time.Duration

	nextSpawnAt     time.Duration
	invincibleUntil time.Duration
	invincible      bool
	rainbow         bool
}

// NewPowerUpTimer creates a timer with no effect active and no spawn scheduled.
func NewPowerUpTimer(cfg config.PowerUpConfig) PowerUpTimer {
	return PowerUpTimer{
		duration: cfg.Duration,
		spawnMin: cfg.SpawnMin,
		spawnMax: cfg.SpawnMax,
	}
}

// Reset clears both effects and schedules the first spawn from now.
func (t *PowerUpTimer) Reset(now time.Duration, rng *rand.Rand) {
	t.invincible = false
	t.rainbow = false
	t.invincibleUntil = 0
	t.Schedule(now, rng)
}

// Schedule sets the next spawn to now plus a uniform offset in [spawnMin, spawnMax).
func (t *PowerUpTimer) Schedule(now time.Duration, rng *rand.Rand) time.Duration {
	offset := t.spawnMin
	if window := t.spawnMax - t.spawnMin; window > 0 {
		offset += time.Duration(rng.Int63n(int64(window)))
	}
	t.nextSpawnAt = now + offset
	return t.nextSpawnAt
}

// Arm turns on wall-invincibility and rainbow mode until now+duration.
func (t *PowerUpTimer) Arm(now time.Duration) {
	t.invincible = true
	t.rainbow = true
	t.invincibleUntil = now + t.duration
}

// WallInvincible reports whether walls wrap at the given time.
func (t PowerUpTimer) WallInvincible(now time.Duration) bool {
	return t.invincible && now < t.invincibleUntil
}

// Rainbow reports whether rainbow mode is on.
func (t PowerUpTimer) Rainbow() bool {
	return t.rainbow
}

// Expire clears both effects once their deadline has passed.
// Returns true only on the call that performed the clear.
func (t *PowerUpTimer) Expire(now time.Duration) bool {
	if !t.invincible || now < t.invincibleUntil {
		return false
	}
	t.invincible = false
	t.rainbow = false
	return true
}

// SpawnDue reports whether a power-up should be placed now.
func (t PowerUpTimer) SpawnDue(now time.Duration, present bool) bool {
	return !present && now >= t.nextSpawnAt
}

// NextSpawnAt returns the scheduled spawn time.
func (t PowerUpTimer) NextSpawnAt() time.Duration {
	return t.nextSpawnAt
}

// InvincibleUntil returns the invincibility deadline; meaningful only while active.
func (t PowerUpTimer) InvincibleUntil() time.Duration {
	return t.invincibleUntil
}
