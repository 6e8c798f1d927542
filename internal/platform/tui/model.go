package tui

import (
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// Cues receives the game's discrete audio cues.
type Cues interface {
	FoodEaten()
	PowerUpEaten()
}

type nopCues struct{}

func (nopCues) FoodEaten()    {}
func (nopCues) PowerUpEaten() {}

// roundReporter is implemented by games that can describe the round which
// just ended.
type roundReporter interface {
	RoundStats() (round, length int)
}

// Options are the optional collaborators of a Model.
type Options struct {
	Store  *storage.Store // nil disables the scoreboard
	Cues   Cues           // nil is silent
	Logger *log.Logger    // nil discards
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model that runs one game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	cues       Cues
	logger     *log.Logger
	keys       KeyMap
	help       help.Model
	board      scoreboard
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	showScores bool
	quitting   bool
	rounds     int // rounds saved, for games without roundReporter
}

// NewModel creates a model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	cues := opts.Cues
	if cues == nil {
		cues = nopCues{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.Width = cfg.ScreenW

	game.Reset(cfg)

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 1)),
		store:      opts.Store,
		cues:       cues,
		logger:     logger,
		keys:       DefaultKeyMap(),
		help:       h,
		board:      newScoreboard(cfg.ScreenW, cfg.ScreenH),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
	}
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Tab cycles game, best rounds, latest rounds
	if key.Matches(msg, m.keys.Scores) {
		switch {
		case !m.showScores:
			m.showScores = true
			m.board.mode = boardBest
		case m.board.mode == boardBest:
			m.board.mode = boardLatest
		default:
			m.showScores = false
		}
		if m.showScores {
			if err := m.board.load(m.store, m.game.ID()); err != nil {
				m.logger.Warn("scoreboard unavailable", "err", err)
			}
		}
		return m, nil
	}

	action := m.keys.Action(msg)
	if action == core.ActionQuit {
		m.quitting = true
		return m, tea.Quit
	}

	if m.showScores {
		return m, m.board.update(msg)
	}
	if action != core.ActionNone {
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleResize keeps the game running; it draws its own too-small notice.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-1, 1))
	m.board.resize(msg.Width, msg.Height)
	m.help.Width = msg.Width
	return m, nil
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	// The scoreboard freezes the game, like pause
	if m.showScores {
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	for _, ev := range result.Events {
		switch ev {
		case core.EventFoodEaten:
			m.cues.FoodEaten()
		case core.EventPowerUpEaten:
			m.cues.PowerUpEaten()
		case core.EventGameOver:
			m.saveRound(result.State.Score)
		}
	}

	return m, tickCmd(m.config.TickRate)
}

// saveRound records a finished round. Failures only cost the scoreboard
// entry.
func (m *Model) saveRound(score int) {
	m.rounds++
	r := storage.RoundResult{GameID: m.game.ID(), Round: m.rounds, Score: score}
	if rr, ok := m.game.(roundReporter); ok {
		r.Round, r.Length = rr.RoundStats()
	}
	if m.store == nil {
		return
	}
	if _, err := m.store.SaveRound(r); err != nil {
		m.logger.Warn("cannot save round", "err", err)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var body string
	if m.showScores {
		body = m.board.view(strings.ToUpper(m.game.Title()) + " - " + m.board.mode.String())
	} else {
		m.game.Render(m.screen)
		body = RenderScreen(m.screen)
	}
	return body + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program for the given game.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	p := tea.NewProgram(
		NewModel(game, cfg, opts),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
