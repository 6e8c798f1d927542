// snake is a terminal snake game with a timed wall-pass power-up.
//
// Usage:
//
//	snake                    - Play (same as "snake play")
//	snake play               - Play in the terminal
//	snake list               - List registered games
//	snake sim                - Run a headless autopilot simulation
//	snake config show        - Print the effective configuration
//
// Global flags:
//
//	--config <path>       - Custom config YAML
//	--difficulty <name>   - easy, normal or hard
//	--on-death <policy>   - splash or restart
//	--seed <value>        - RNG seed for reproducible runs
//	--log <path>          - Write logs to a file
//	--debug               - Log at debug level
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-snake/internal/games/snake"
)

var (
	// Global flags
	flagConfig     string
	flagDifficulty string
	flagOnDeath    string
	flagSeed       int64
	flagLogPath    string
	flagDebug      bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - eat apples, grab the green one to pass through walls",
	Long: `Snake is a terminal snake game. Red apples grow the snake and score
points. Now and then a green apple appears near the middle of the field:
eating it lets the snake pass through walls for ten seconds.

Available commands:
  play     - Play in the terminal (default)
  list     - Show registered games
  sim      - Run a headless simulation with an autopilot
  config   - Inspect the configuration

Examples:
  snake
  snake play --difficulty hard
  snake sim --ticks 5000 --seed 42
  snake config show --config ./my-snake.yaml`,
	RunE: runPlay,
	// Errors from RunE are printed by main
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	pf.StringVar(&flagOnDeath, "on-death", "", "After game over: splash or restart")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagLogPath, "log", "", "Write logs to this file")
	pf.BoolVar(&flagDebug, "debug", false, "Log at debug level")

	addPlayFlags(rootCmd)

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}
