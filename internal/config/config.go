// Package config provides YAML-based game configuration loading and
// difficulty presets for the snake game.
package config

import "time"

// SnakeConfig contains all configuration for the snake game.
type SnakeConfig struct {
	Grid    GridConfig    `yaml:"grid"`
	Timing  TimingConfig  `yaml:"timing"`
	Scoring ScoringConfig `yaml:"scoring"`
	PowerUp PowerUpConfig `yaml:"powerup"`
	Spawn   SpawnConfig   `yaml:"spawn"`
	Session SessionConfig `yaml:"session"`
}

// GridConfig defines the playfield and the cell pitch that quantizes it.
type GridConfig struct {
	PlayfieldWidth  int `yaml:"playfield_width"`  // pixels
	PlayfieldHeight int `yaml:"playfield_height"` // pixels
	CellSize        int `yaml:"cell_size"`        // pixels per cell
}

// Columns returns the number of whole cells across the playfield.
func (g GridConfig) Columns() int {
	if g.CellSize <= 0 {
		return 0
	}
	return g.PlayfieldWidth / g.CellSize
}

// Rows returns the number of whole cells down the playfield.
func (g GridConfig) Rows() int {
	if g.CellSize <= 0 {
		return 0
	}
	return g.PlayfieldHeight / g.CellSize
}

// TimingConfig defines the periods of the two simulation ticks.
type TimingConfig struct {
	MoveInterval         time.Duration `yaml:"move_interval"`
	HousekeepingInterval time.Duration `yaml:"housekeeping_interval"`
	GameOverPause        time.Duration `yaml:"game_over_pause"`
}

// ScoringConfig defines score rewards.
type ScoringConfig struct {
	FoodReward int `yaml:"food_reward"`
}

// PowerUpConfig defines the green apple's effect length and respawn window.
type PowerUpConfig struct {
	Duration time.Duration `yaml:"duration"`  // invincibility and rainbow length
	SpawnMin time.Duration `yaml:"spawn_min"` // inclusive
	SpawnMax time.Duration `yaml:"spawn_max"` // exclusive
}

// SpawnConfig defines random placement parameters.
type SpawnConfig struct {
	RetryBudget    int     `yaml:"retry_budget"`
	CenterFraction float64 `yaml:"center_fraction"` // share of each dimension used by center-biased spawns
}

// DeathPolicy selects what happens after the game-over pause.
type DeathPolicy string

const (
	DeathToSplash DeathPolicy = "splash"  // show the splash screen again
	DeathRestart  DeathPolicy = "restart" // start a new round right away
)

// SessionConfig defines session-level behavior.
type SessionConfig struct {
	OnDeath DeathPolicy `yaml:"on_death"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// MoveIntervalForPreset returns the movement period for a difficulty preset.
// Unknown presets return 0, meaning "keep the configured value".
func MoveIntervalForPreset(preset DifficultyPreset) time.Duration {
	switch preset {
	case DifficultyEasy:
		return 200 * time.Millisecond
	case DifficultyNormal:
		return 150 * time.Millisecond
	case DifficultyHard:
		return 100 * time.Millisecond
	default:
		return 0
	}
}
