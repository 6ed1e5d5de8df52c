package play

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/swipemath/internal/focus"
	"github.com/abhisek/swipemath/internal/ui/theme"
)

const mascotSharp = `┌─────┐
│ ◉ ◉ │
│  ▽  │
│ ±×÷ │
└─────┘`

const mascotSteady = `┌─────┐
│ ◔ ◔ │
│  ─  │
│ ±×÷ │
└─────┘`

const mascotDrowsy = `┌─────┐
│ ─ ─ │ z
│  ○  │
│ ±×÷ │
└─────┘`

// renderMascot draws the mascot for a focus state.
func renderMascot(state focus.State) string {
	art := mascotSteady
	switch state {
	case focus.High:
		art = mascotSharp
	case focus.Low:
		art = mascotDrowsy
	}
	return lipgloss.NewStyle().
		Foreground(theme.FocusColor(state.String())).
		Render(art)
}
