package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/storage"
)

const maxScores = 100 // rows loaded into the table

var (
	boardTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			MarginBottom(1)
	boardFrameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	boardEmptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
)

// boardMode selects which rounds the scoreboard lists.
type boardMode int

const (
	boardBest   boardMode = iota // highest score first
	boardLatest                  // newest first
)

func (m boardMode) String() string {
	if m == boardLatest {
		return "LATEST ROUNDS"
	}
	return "BEST THIS SESSION"
}

// scoreboard shows the rounds finished in this run.
type scoreboard struct {
	table  table.Model
	mode   boardMode
	rounds []storage.RoundResult
	count  int
	high   int
	width  int
	height int
}

func newScoreboard(width, height int) scoreboard {
	b := scoreboard{width: width, height: height}
	b.table = b.createTable()
	return b
}

func (b *scoreboard) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 8},
		{Title: "Length", Width: 8},
		{Title: "Round", Width: 7},
		{Title: "Time", Width: 10},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(b.height-8, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

// load replaces the rows with the store's rounds for gameID in the current
// mode. A nil store or a failed query leaves the board empty.
func (b *scoreboard) load(store *storage.Store, gameID string) error {
	b.rounds, b.count, b.high = nil, 0, 0
	var err error
	if store != nil {
		err = b.query(store, gameID)
	}

	rows := make([]table.Row, len(b.rounds))
	for i, r := range b.rounds {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", r.Score),
			fmt.Sprintf("%d", r.Length),
			fmt.Sprintf("%d", r.Round),
			r.CreatedAt.Format("15:04:05"),
		}
	}
	b.table.SetRows(rows)
	b.table.GotoTop()
	return err
}

func (b *scoreboard) query(store *storage.Store, gameID string) error {
	var err error
	if b.count, err = store.RoundCount(gameID); err != nil || b.count == 0 {
		return err
	}
	if b.high, err = store.HighScore(gameID); err != nil {
		return err
	}
	if b.mode == boardLatest {
		b.rounds, err = store.RecentRounds(gameID, maxScores)
	} else {
		b.rounds, err = store.TopScores(gameID, maxScores)
	}
	return err
}

func (b *scoreboard) resize(width, height int) {
	b.width, b.height = width, height
	rows := b.table.Rows()
	b.table = b.createTable()
	b.table.SetRows(rows)
}

func (b *scoreboard) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	b.table, cmd = b.table.Update(msg)
	return cmd
}

func (b scoreboard) view(title string) string {
	var sb strings.Builder
	sb.WriteString(lipgloss.PlaceHorizontal(b.width, lipgloss.Center, boardTitleStyle.Render(title)))
	sb.WriteString("\n")

	if b.count > 0 {
		summary := fmt.Sprintf("%d rounds, high score %d", b.count, b.high)
		sb.WriteString(lipgloss.PlaceHorizontal(b.width, lipgloss.Center, helpStyle.Render(summary)))
		sb.WriteString("\n")
	}

	content := b.table.View()
	if len(b.rounds) == 0 {
		content = boardEmptyStyle.Render("No rounds finished yet.\nTab cycles back to the game.")
	}
	sb.WriteString(lipgloss.PlaceHorizontal(b.width, lipgloss.Center, boardFrameStyle.Render(content)))
	return sb.String()
}
