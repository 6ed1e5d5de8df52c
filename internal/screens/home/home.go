package home

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/swipemath/internal/router"
	"github.com/abhisek/swipemath/internal/screen"
	"github.com/abhisek/swipemath/internal/screens/history"
	"github.com/abhisek/swipemath/internal/screens/play"
	"github.com/abhisek/swipemath/internal/store"
	"github.com/abhisek/swipemath/internal/ui/components"
	"github.com/abhisek/swipemath/internal/ui/layout"
)

type statsLoadedMsg struct {
	Stats store.Stats
	Err   error
}

// HomeScreen is the main menu.
type HomeScreen struct {
	deps  play.Deps
	menu  components.Menu
	stats store.Stats
	// remote reports whether questions come from an LLM.
	remote bool
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.StatusProvider = (*HomeScreen)(nil)
var _ screen.Resumer = (*HomeScreen)(nil)

// New creates a new HomeScreen. deps configures every game started from it.
func New(deps play.Deps) *HomeScreen {
	h := &HomeScreen{
		deps:   deps,
		remote: deps.SourceName == "llm",
	}

	items := []components.MenuItem{
		{Label: "START GAME", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: play.New(h.deps)}
			}
		}},
		{Label: "HISTORY", Disabled: deps.EventRepo == nil, Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(h.deps.EventRepo)}
			}
		}},
		{Label: "EXIT GAME", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}
	h.menu = components.NewMenu(items)
	return h
}

func (h *HomeScreen) Init() tea.Cmd {
	return h.loadStats()
}

// Resume reloads the totals when a game or the history screen is popped.
func (h *HomeScreen) Resume() tea.Cmd {
	return h.loadStats()
}

func (h *HomeScreen) loadStats() tea.Cmd {
	repo := h.deps.EventRepo
	if repo == nil {
		return nil
	}
	return func() tea.Msg {
		st, err := repo.Stats(context.Background())
		return statsLoadedMsg{Stats: st, Err: err}
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case statsLoadedMsg:
		if msg.Err == nil {
			h.stats = msg.Stats
		}
		return h, nil
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	compact := height+layout.HeaderHeight+layout.FooterHeight < layout.CompactHeight
	cw := components.ContentWidth(width)

	var sections []string
	sections = append(sections, renderTitle(cw, compact))
	if !compact {
		sections = append(sections, renderDemoCards(cw))
	}
	sections = append(sections, renderStatsBar(h.stats, cw))
	sections = append(sections, h.menu.View(cw))
	sections = append(sections, renderSourceNote(h.remote, cw))

	return components.CabinetFrame(strings.Join(sections, "\n\n"), width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) Status() string {
	if h.stats.Games == 0 {
		return ""
	}
	return "BEST " + itoa(h.stats.BestScore)
}
