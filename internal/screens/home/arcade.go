package home

import (
	"fmt"
	"strconv"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/swipemath/internal/store"
	"github.com/abhisek/swipemath/internal/ui/components"
	"github.com/abhisek/swipemath/internal/ui/theme"
)

const arcadeTitleFull = `╔═╗╦ ╦╦╔═╗╔═╗  ╔╦╗╔═╗╔╦╗╦ ╦
╚═╗║║║║╠═╝║╣   ║║║╠═╣ ║ ╠═╣
╚═╝╚╩╝╩╩  ╚═╝  ╩ ╩╩ ╩ ╩ ╩ ╩`

const arcadeTitleCompact = "S W I P E · M A T H"

// renderTitle returns the styled title block or compact fallback.
func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.ArcadeYellow).
		Bold(true)

	art := arcadeTitleFull
	if compact {
		art = arcadeTitleCompact
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(style.Render(art))
}

// renderDemoCards shows one true and one false card leaning toward their
// swipe direction.
func renderDemoCards(cw int) string {
	left := components.SwipeCard{Equation: "7 + 5 = 13", Lean: -3, Border: theme.Error}.View()
	right := components.SwipeCard{Equation: "6 × 4 = 24", Lean: 3, Border: theme.Success}.View()

	caption := lipgloss.NewStyle().Foreground(theme.TextDim).Render
	row := lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.JoinVertical(lipgloss.Center, left, caption("◀ false")),
		lipgloss.JoinVertical(lipgloss.Center, right, caption("true ▶")),
	)
	return lipgloss.PlaceHorizontal(cw, lipgloss.Center, row)
}

// renderStatsBar renders lifetime totals in a bordered box matching content width.
func renderStatsBar(st store.Stats, cw int) string {
	bestStyle := lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true)
	gamesStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	levelStyle := lipgloss.NewStyle().Foreground(theme.ArcadeCyan).Bold(true)

	stats := fmt.Sprintf("%s  %s  %s",
		bestStyle.Render(fmt.Sprintf("★ BEST %d", st.BestScore)),
		gamesStyle.Render(fmt.Sprintf("◆ %d GAMES", st.Games)),
		levelStyle.Render(fmt.Sprintf("▲ PEAK LV %d", max(1, st.HighestLevel))),
	)

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.ArcadeCyan).
		Width(cw - 2). // account for border chars
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(stats)
}

// renderSourceNote tells the player where questions come from.
func renderSourceNote(remote bool, cw int) string {
	text := "Questions: local generator (set an LLM API key for AI questions)"
	if remote {
		text = "Questions: AI generated, local fallback"
	}
	return lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Width(cw).
		Align(lipgloss.Center).
		Render(text)
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
