package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadSnake loads the snake configuration.
// Search order: customPath -> ~/.snake/configs/snake.yaml -> ./configs/snake.yaml -> embedded default.
// Files are decoded on top of the defaults, so they only need the keys they change.
func LoadSnake(customPath string) (SnakeConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return SnakeConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return SnakeConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("snake.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "snake.yaml")); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultSnakeYAML)
	if err != nil {
		return DefaultSnakeConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (SnakeConfig, error) {
	cfg := DefaultSnakeConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return SnakeConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return SnakeConfig{}, err
	}
	return cfg, nil
}

// Marshal encodes the configuration as YAML.
func Marshal(cfg SnakeConfig) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// Validate reports every invalid field at once.
func (c SnakeConfig) Validate() error {
	var errs []error

	if c.Grid.PlayfieldWidth <= 0 || c.Grid.PlayfieldHeight <= 0 {
		errs = append(errs, errors.New("grid: playfield dimensions must be positive"))
	}
	if c.Grid.CellSize <= 0 {
		errs = append(errs, errors.New("grid: cell_size must be positive"))
	} else if c.Grid.Columns() < 1 || c.Grid.Rows() < 3 {
		errs = append(errs, fmt.Errorf("grid: %dx%d cells cannot hold the starting snake", c.Grid.Columns(), c.Grid.Rows()))
	}

	if c.Timing.MoveInterval <= 0 {
		errs = append(errs, errors.New("timing: move_interval must be positive"))
	}
	if c.Timing.HousekeepingInterval <= 0 {
		errs = append(errs, errors.New("timing: housekeeping_interval must be positive"))
	}
	if c.Timing.GameOverPause < 0 {
		errs = append(errs, errors.New("timing: game_over_pause must not be negative"))
	}

	if c.Scoring.FoodReward < 0 {
		errs = append(errs, errors.New("scoring: food_reward must not be negative"))
	}

	if c.PowerUp.Duration <= 0 {
		errs = append(errs, errors.New("powerup: duration must be positive"))
	}
	if c.PowerUp.SpawnMin <= 0 || c.PowerUp.SpawnMax <= c.PowerUp.SpawnMin {
		errs = append(errs, errors.New("powerup: need 0 < spawn_min < spawn_max"))
	}

	if c.Spawn.RetryBudget < 1 {
		errs = append(errs, errors.New("spawn: retry_budget must be at least 1"))
	}
	if c.Spawn.CenterFraction <= 0 || c.Spawn.CenterFraction > 1 {
		errs = append(errs, errors.New("spawn: center_fraction must be in (0, 1]"))
	}

	switch c.Session.OnDeath {
	case DeathToSplash, DeathRestart:
	default:
		errs = append(errs, fmt.Errorf("session: unknown on_death %q", c.Session.OnDeath))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".snake", "configs", filename)
}

// ApplySnakePreset modifies the config based on a difficulty preset.
// An empty preset leaves the config untouched.
func ApplySnakePreset(cfg *SnakeConfig, preset DifficultyPreset) error {
	if preset == "" {
		return nil
	}
	interval := MoveIntervalForPreset(preset)
	if interval == 0 {
		return fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", preset)
	}
	cfg.Timing.MoveInterval = interval
	return nil
}
