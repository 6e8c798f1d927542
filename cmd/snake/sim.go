package main

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var flagTicks int

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless simulation with an autopilot",
	Long: `Run the game without a terminal. A greedy autopilot steers toward the
nearest apple and never reverses. Rounds restart on their own after the
game-over pause; a summary is printed at the end.

Examples:
  snake sim
  snake sim --ticks 10000 --seed 7
  snake sim --difficulty hard --debug --log sim.log`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagTicks, "ticks", 2000, "Movement ticks to simulate")
}

// simResult summarizes a headless run.
type simResult struct {
	Ticks     int
	Elapsed   time.Duration
	Rounds    int
	Deaths    int
	BestScore int
	Score     int
	Length    int

	// Scoreboard view, empty when no store was given.
	Recorded  int
	HighScore int
	Top       []storage.RoundResult
	Recent    []storage.RoundResult
}

// roundCounter records finished rounds on the scoreboard.
type roundCounter struct {
	store   *storage.Store
	session *snake.Session
	logger  *log.Logger
	deaths  int
}

func (r *roundCounter) RoundOver(score int) {
	r.deaths++
	if r.store == nil {
		return
	}
	_, err := r.store.SaveRound(storage.RoundResult{
		GameID: "snake",
		Round:  r.session.Rounds(),
		Score:  score,
		Length: len(r.session.Body()),
	})
	if err != nil {
		r.logger.Warn("cannot save round", "error", err)
	}
}

func runSim(cmd *cobra.Command, args []string) error {
	if flagTicks <= 0 {
		return fmt.Errorf("--ticks must be positive, got %d", flagTicks)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	store, err := storage.Open()
	if err != nil {
		logger.Warn("scoreboard disabled", "error", err)
		store = nil
	} else {
		defer store.Close()
	}

	res, err := simulate(cfg, seed, flagTicks, store, logger)
	if err != nil {
		return err
	}
	printSim(cmd.OutOrStdout(), seed, res)
	return nil
}

// simulate runs ticks movement ticks of a session driven by the autopilot.
func simulate(cfg config.SnakeConfig, seed int64, ticks int, store *storage.Store, logger *log.Logger) (simResult, error) {
	clock := core.NewSimClock()
	rounds := &roundCounter{store: store, logger: logger}
	session := snake.NewSession(snake.Options{
		Config: cfg,
		Clock:  clock,
		Rand:   rand.New(rand.NewSource(seed)),
		Sinks:  snake.Sinks{Round: rounds},
		Logger: logger,
	})
	rounds.session = session

	loop := snake.NewLoop(session, clock, cfg.Timing)
	pilot := snake.NewAutopilot(session)
	for range ticks {
		loop.AdvanceTo(loop.NextMoveAt(), pilot)
	}

	res := simResult{
		Ticks:     ticks,
		Elapsed:   clock.Now(),
		Rounds:    session.Rounds(),
		Deaths:    rounds.deaths,
		BestScore: session.BestScore(),
		Score:     session.Score(),
		Length:    len(session.Body()),
	}
	if store == nil {
		return res, nil
	}

	var err error
	if res.Recorded, err = store.RoundCount("snake"); err != nil {
		return res, err
	}
	if res.HighScore, err = store.HighScore("snake"); err != nil {
		return res, err
	}
	if res.Top, err = store.TopScores("snake", 5); err != nil {
		return res, err
	}
	if res.Recent, err = store.RecentRounds("snake", 3); err != nil {
		return res, err
	}
	return res, nil
}

func printSim(w io.Writer, seed int64, res simResult) {
	fmt.Fprintf(w, "Simulated %d ticks (%s) with seed %d\n", res.Ticks, res.Elapsed, seed)
	fmt.Fprintf(w, "  Rounds:  %d\n", res.Rounds)
	fmt.Fprintf(w, "  Deaths:  %d\n", res.Deaths)
	fmt.Fprintf(w, "  Best:    %d\n", res.BestScore)
	fmt.Fprintf(w, "  Current: score %d, length %d\n", res.Score, res.Length)

	if res.Recorded == 0 {
		return
	}
	fmt.Fprintf(w, "  Stored:  %d rounds, high score %d\n", res.Recorded, res.HighScore)

	printRounds(w, "Top", res.Top)
	printRounds(w, "Latest", res.Recent)
}

func printRounds(w io.Writer, title string, rounds []storage.RoundResult) {
	if len(rounds) == 0 {
		return
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  %s\n", title)
	fmt.Fprintf(w, "  %-6s %-8s %-8s %s\n", "Rank", "Score", "Length", "Round")
	for i, r := range rounds {
		fmt.Fprintf(w, "  %-6s %-8d %-8d %d\n", fmt.Sprintf("#%d", i+1), r.Score, r.Length, r.Round)
	}
}
