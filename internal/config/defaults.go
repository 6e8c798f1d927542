package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the default snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Grid: GridConfig{
			PlayfieldWidth:  160,
			PlayfieldHeight: 120,
			CellSize:        8,
		},
		Timing: TimingConfig{
			MoveInterval:         150 * time.Millisecond,
			HousekeepingInterval: time.Second,
			GameOverPause:        time.Second,
		},
		Scoring: ScoringConfig{
			FoodReward: 10,
		},
		PowerUp: PowerUpConfig{
			Duration: 10 * time.Second,
			SpawnMin: 30 * time.Second,
			SpawnMax: 45 * time.Second,
		},
		Spawn: SpawnConfig{
			RetryBudget:    100,
			CenterFraction: 0.6,
		},
		Session: SessionConfig{
			OnDeath: DeathToSplash,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
