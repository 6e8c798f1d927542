package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/audio"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var (
	flagFPS  int
	flagMute bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Snake in the terminal",
	Long: `Start the game on its splash screen.

Controls:
  Arrows/WASD/hjkl  - Steer
  Enter/Space       - Start
  P/Esc             - Pause
  Tab               - Scores of this session
  Q/Ctrl+C          - Quit

Difficulty options:
  easy   - 200ms per move
  normal - 150ms per move
  hard   - 100ms per move

Examples:
  snake play
  snake play --difficulty easy
  snake play --on-death restart --mute
  snake play --config ./my-snake.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

// addPlayFlags registers the flags shared by the root command and play.
func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&flagFPS, "fps", 60, "Frames per second")
	cmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	snake.SetConfig(cfg)
	snake.SetLogger(logger)

	game, err := registry.Create("snake")
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	runtime := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// The scoreboard and sound are optional; the game runs without them
	store, err := storage.Open()
	if err != nil {
		logger.Warn("scoreboard disabled", "error", err)
		store = nil
	} else {
		defer store.Close()
	}

	player := audio.New(audio.Options{Mute: flagMute, Logger: logger})
	if err := player.Init(); err != nil {
		logger.Warn("sound disabled", "error", err)
	}
	defer player.Close()

	logger.Info("starting", "move_interval", cfg.Timing.MoveInterval, "on_death", cfg.Session.OnDeath, "fps", flagFPS)

	if err := tui.Run(game, runtime, tui.Options{Store: store, Cues: player, Logger: logger}); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
