package history

import (
	"context"
	"fmt"
	"strings"

	"charm.land/bubbles/v2/table"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/swipemath/internal/router"
	"github.com/abhisek/swipemath/internal/screen"
	"github.com/abhisek/swipemath/internal/store"
	"github.com/abhisek/swipemath/internal/ui/layout"
	"github.com/abhisek/swipemath/internal/ui/theme"
)

// recentLimit caps how many games the screen lists.
const recentLimit = 50

type historyLoadedMsg struct {
	Games []store.GameRecord
	Stats store.Stats
	Err   error
}

type levelsLoadedMsg struct {
	SessionID string
	Changes   []store.LevelChangeData
	Err       error
}

// HistoryScreen lists finished games with lifetime totals.
type HistoryScreen struct {
	eventRepo store.EventRepo
	games     []store.GameRecord
	stats     store.Stats
	table     table.Model
	levels    map[string][]store.LevelChangeData
	expanded  string
	loaded    bool
	errMsg    string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(eventRepo store.EventRepo) *HistoryScreen {
	return &HistoryScreen{
		eventRepo: eventRepo,
		levels:    make(map[string][]store.LevelChangeData),
		table:     newTable(nil, 10),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	repo := s.eventRepo
	return func() tea.Msg {
		ctx := context.Background()

		games, err := repo.RecentGames(ctx, store.QueryOpts{Limit: recentLimit})
		if err != nil {
			return historyLoadedMsg{Err: err}
		}
		stats, err := repo.Stats(ctx)
		if err != nil {
			return historyLoadedMsg{Err: err}
		}
		return historyLoadedMsg{Games: games, Stats: stats}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Levels"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.games = msg.Games
			s.stats = msg.Stats
			s.table.SetRows(buildRows(msg.Games))
		}
		s.loaded = true
		return s, nil

	case levelsLoadedMsg:
		if msg.Err == nil {
			s.levels[msg.SessionID] = msg.Changes
		}
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "enter":
			return s, s.toggleSelected()
		}
	}

	var cmd tea.Cmd
	s.table, cmd = s.table.Update(msg)
	return s, cmd
}

// toggleSelected shows or hides the level timeline of the selected game,
// loading it on first use.
func (s *HistoryScreen) toggleSelected() tea.Cmd {
	i := s.table.Cursor()
	if i < 0 || i >= len(s.games) {
		return nil
	}
	id := s.games[i].SessionID
	if s.expanded == id {
		s.expanded = ""
		return nil
	}
	s.expanded = id
	if _, ok := s.levels[id]; ok {
		return nil
	}
	repo := s.eventRepo
	return func() tea.Msg {
		changes, err := repo.LevelChanges(context.Background(), id)
		return levelsLoadedMsg{SessionID: id, Changes: changes, Err: err}
	}
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.games) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No games yet. Go swipe some cards!")
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, renderTotals(s.stats)))
	b.WriteString("\n\n")

	s.table.SetHeight(max(3, height-8))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.table.View()))

	if s.expanded != "" {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.renderLevels(s.expanded)))
	}
	return b.String()
}

func (s *HistoryScreen) renderLevels(id string) string {
	dim := lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true)
	changes, ok := s.levels[id]
	if !ok {
		return dim.Render("loading levels...")
	}
	if len(changes) == 0 {
		return dim.Render("no level changes this game")
	}

	parts := make([]string, 0, len(changes))
	for _, lc := range changes {
		color := theme.Success
		if lc.To < lc.From {
			color = theme.Error
		}
		parts = append(parts, lipgloss.NewStyle().Foreground(color).
			Render(fmt.Sprintf("R%d %d→%d (%.0f%%)", lc.Round, lc.From, lc.To, lc.Accuracy*100)))
	}
	return strings.Join(parts, "  ")
}

func renderTotals(st store.Stats) string {
	best := lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true)
	other := lipgloss.NewStyle().Foreground(theme.ArcadeCyan).Bold(true)
	return fmt.Sprintf("%s  %s  %s  %s",
		best.Render(fmt.Sprintf("★ BEST %d", st.BestScore)),
		other.Render(fmt.Sprintf("%d GAMES", st.Games)),
		other.Render(fmt.Sprintf("%.0f%% ACCURACY", st.Accuracy()*100)),
		other.Render(fmt.Sprintf("PEAK LV %d", st.HighestLevel)),
	)
}

func newTable(rows []table.Row, height int) table.Model {
	columns := []table.Column{
		{Title: "Date", Width: 12},
		{Title: "Score", Width: 6},
		{Title: "Answered", Width: 8},
		{Title: "Accuracy", Width: 8},
		{Title: "Streak", Width: 6},
		{Title: "Level", Width: 7},
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(height),
		table.WithFocused(true),
	)
	t.SetStyles(tableStyles())
	return t
}

func buildRows(games []store.GameRecord) []table.Row {
	rows := make([]table.Row, 0, len(games))
	for _, g := range games {
		rows = append(rows, table.Row{
			g.Timestamp.Local().Format("Jan 02 15:04"),
			fmt.Sprintf("%d", g.Score),
			fmt.Sprintf("%d", g.Answered),
			fmt.Sprintf("%.0f%%", g.Accuracy()*100),
			fmt.Sprintf("%d", g.BestStreak),
			fmt.Sprintf("%d/%d", g.FinalLevel, g.HighestLevel),
		})
	}
	return rows
}

func tableStyles() table.Styles {
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(theme.Border).
		Foreground(theme.TextDim).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(theme.Primary).
		Bold(true)
	return styles
}
