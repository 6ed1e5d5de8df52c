package play

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/swipemath/internal/game"
	"github.com/abhisek/swipemath/internal/ui/components"
	"github.com/abhisek/swipemath/internal/ui/layout"
	"github.com/abhisek/swipemath/internal/ui/theme"
)

func (p *PlayScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var content string
	switch p.session.Phase {
	case game.PhaseGameOver:
		content = p.renderGameOver(cw)
	case game.PhasePlaying:
		content = p.renderPlaying(cw, height)
	default:
		content = p.renderLoading(cw)
	}
	return components.CabinetFrame(content, width, height)
}

func (p *PlayScreen) renderLoading(cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(p.spinner.View() + " Shuffling the deck...")
}

func (p *PlayScreen) renderPlaying(cw, height int) string {
	snap := p.session.Snapshot()

	var sections []string
	sections = append(sections, renderHUD(snap, cw))

	timer := components.NewProgressBar("CARD ", snap.QuestionRatio, cw)
	timer.Value = fmt.Sprintf("%4.1fs", p.session.QuestionTimer)
	timer.Color = theme.ArcadeCyan
	if snap.QuestionRatio < 0.3 {
		timer.Color = theme.Error
	}
	sections = append(sections, timer.View())

	meter := components.NewProgressBar("FOCUS", float64(snap.Focus)/100, cw)
	meter.Value = fmt.Sprintf("%3d %-6s", snap.Focus, snap.FocusState.String())
	meter.Color = theme.FocusColor(snap.FocusState.String())
	sections = append(sections, meter.View())

	if height >= layout.CompactHeight {
		sections = append(sections, center(renderMascot(snap.FocusState), cw))
	}

	if snap.HasFront {
		card := components.SwipeCard{
			Equation: snap.Front.Equation,
			Lean:     p.lean,
			Border:   p.flashColor(),
		}
		sections = append(sections, center(components.CardStack(card, len(snap.Upcoming)), cw))
	} else {
		sections = append(sections, center(theme.Hint.Render("waiting for cards..."), cw))
	}

	sections = append(sections, center(p.renderSwipeHints(), cw))

	if p.note != "" {
		sections = append(sections, center(
			lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true).Render(p.note), cw))
	}

	return strings.Join(sections, "\n\n")
}

func renderHUD(snap game.Snapshot, cw int) string {
	label := lipgloss.NewStyle().Foreground(theme.TextDim)
	value := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)

	timeStyle := value
	if snap.TimerSeconds <= 10 {
		timeStyle = timeStyle.Foreground(theme.Error)
	}

	parts := []string{
		label.Render("TIME ") + timeStyle.Render(itoa(snap.TimerSeconds)),
		label.Render("SCORE ") + value.Render(itoa(snap.Score)),
		label.Render("LV ") + value.Foreground(theme.ArcadeYellow).Render(itoa(snap.Level)),
		label.Render("STREAK ") + value.Foreground(theme.Accent).Render("x"+itoa(snap.Streak)),
		label.Render("ROUND ") + value.Render(fmt.Sprintf("%d/%d", snap.RoundAnswered, game.QuestionsPerRound)),
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.ArcadeCyan).
		Width(cw - 2).
		Align(lipgloss.Center).
		Render(strings.Join(parts, "  "))
}

func (p *PlayScreen) renderSwipeHints() string {
	deny := lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render("◀ FALSE")
	affirm := lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render("TRUE ▶")

	mid := "   "
	switch p.flash {
	case game.FeedbackSuccess:
		mid = theme.Correct.Render(fmt.Sprintf(" +%d ", p.lastDelta))
	case game.FeedbackFailure:
		mid = theme.Incorrect.Render("  ✗  ")
	}
	return deny + "    " + mid + "    " + affirm
}

func (p *PlayScreen) flashColor() color.Color {
	switch p.flash {
	case game.FeedbackSuccess:
		return theme.Success
	case game.FeedbackFailure:
		return theme.Error
	}
	switch {
	case p.lean > 0:
		return theme.Success
	case p.lean < 0:
		return theme.Error
	}
	return theme.Primary
}

func (p *PlayScreen) renderGameOver(cw int) string {
	sum := p.summary
	if sum == nil {
		s := p.session.Summary()
		sum = &s
	}

	title := lipgloss.NewStyle().
		Foreground(theme.ArcadeYellow).
		Bold(true).
		Render("G A M E   O V E R")

	score := lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render(fmt.Sprintf("SCORE %d", sum.Score))

	rows := []string{
		fmt.Sprintf("Answered      %d", sum.TotalAnswered),
		fmt.Sprintf("Accuracy      %.0f%%", sum.Accuracy()*100),
		fmt.Sprintf("Best streak   %d", sum.BestStreak),
		fmt.Sprintf("Level         %d (peak %d)", sum.FinalLevel, sum.HighestLevel),
		fmt.Sprintf("Timeouts      %d", sum.Timeouts),
		fmt.Sprintf("Rounds        %d", sum.Rounds),
	}
	stats := lipgloss.NewStyle().Foreground(theme.Text).Render(strings.Join(rows, "\n"))

	sections := []string{
		center(title, cw),
		center(score, cw),
		components.ArcadeCard(stats, cw),
	}

	if len(sum.LevelChanges) > 0 {
		sections = append(sections, center(renderTimeline(sum.LevelChanges), cw))
	}
	if p.persistErr {
		sections = append(sections, center(
			lipgloss.NewStyle().Foreground(theme.Accent).Render("⚠ some history could not be saved"), cw))
	}

	sections = append(sections, center(
		components.ArcadeButton("PLAY AGAIN", true, 22), cw))

	return strings.Join(sections, "\n\n")
}

// renderTimeline lists level transitions, e.g. "R2 1→2  R3 2→1".
func renderTimeline(changes []game.LevelChange) string {
	up := lipgloss.NewStyle().Foreground(theme.Success)
	down := lipgloss.NewStyle().Foreground(theme.Error)

	parts := make([]string, 0, len(changes))
	for _, lc := range changes {
		style := up
		if lc.To < lc.From {
			style = down
		}
		parts = append(parts, style.Render(fmt.Sprintf("R%d %d→%d", lc.Round, lc.From, lc.To)))
	}
	return strings.Join(parts, "  ")
}

const timeoutNote = "⌛ TIME!"

func levelNote(lc game.LevelChange) string {
	if lc.To > lc.From {
		return fmt.Sprintf("▲ LEVEL UP! %d → %d", lc.From, lc.To)
	}
	return fmt.Sprintf("▼ LEVEL DOWN %d → %d", lc.From, lc.To)
}

func center(s string, w int) string {
	return lipgloss.PlaceHorizontal(w, lipgloss.Center, s)
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
