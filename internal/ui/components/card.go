package components

import (
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/swipemath/internal/ui/theme"
)

// CardWidth is the outer width of a swipe card.
const CardWidth = 30

// SwipeCard renders an equation card. Lean shifts the card sideways by that
// many columns (negative is left) and tints its border.
type SwipeCard struct {
	Equation string
	Lean     int
	Border   color.Color
}

// View renders the card, padded so leaning never changes the total width.
func (c SwipeCard) View() string {
	border := c.Border
	if border == nil {
		border = theme.Primary
	}

	card := lipgloss.NewStyle().
		Border(lipgloss.ThickBorder()).
		BorderForeground(border).
		Width(CardWidth-2).
		Align(lipgloss.Center).
		Padding(2, 1).
		Bold(true).
		Foreground(theme.Text).
		Render(c.Equation)

	return shift(card, c.Lean, maxLean)
}

// maxLean bounds how far a card may lean.
const maxLean = 6

// CardStack renders the top card above the edges of up to two queued cards.
func CardStack(top SwipeCard, behind int) string {
	var rows []string
	rows = append(rows, top.View())
	for i := 0; i < behind && i < 2; i++ {
		inset := 2 * (i + 1)
		edge := lipgloss.NewStyle().
			Foreground(theme.Border).
			Render("╰" + strings.Repeat("─", CardWidth-2-2*inset) + "╯")
		rows = append(rows, shift(lipgloss.PlaceHorizontal(CardWidth, lipgloss.Center, edge), 0, maxLean))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// shift pads every line of block so it sits offset columns right of center
// inside a frame bounded by limit on each side.
func shift(block string, offset, limit int) string {
	offset = max(-limit, min(offset, limit))
	left := strings.Repeat(" ", limit+offset)
	right := strings.Repeat(" ", limit-offset)

	lines := strings.Split(block, "\n")
	for i, l := range lines {
		lines[i] = left + l + right
	}
	return strings.Join(lines, "\n")
}
