package game

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/swipemath/internal/questions"
)

func TestBot_Decide(t *testing.T) {
	truthy := questions.Question{Equation: "1 + 1 = 2", IsCorrect: true}
	falsy := questions.Question{Equation: "1 + 1 = 3", IsCorrect: false}

	perfect := NewBot(1, time.Millisecond, 1)
	assert.Equal(t, Affirm, perfect.Decide(truthy))
	assert.Equal(t, Deny, perfect.Decide(falsy))

	wrong := NewBot(0, time.Millisecond, 1)
	assert.Equal(t, Deny, wrong.Decide(truthy))
	assert.Equal(t, Affirm, wrong.Decide(falsy))
}

func TestBot_ClampsAccuracy(t *testing.T) {
	assert.Equal(t, 1.0, NewBot(3, 0, 1).Accuracy)
	assert.Equal(t, 0.0, NewBot(-1, 0, 1).Accuracy)
	assert.Equal(t, DefaultTickInterval, NewBot(0.5, 0, 1).Reaction)
}

func TestBot_PlaysFullGame(t *testing.T) {
	settings := DefaultSettings()
	settings.MaxGameTime = 2

	r := NewRunner(&staticSource{}, settings, WithTickInterval(5*time.Millisecond))
	defer r.Stop()

	bot := NewBot(1, 2*time.Millisecond, 42)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	sum := bot.Play(ctx, r)
	require.NoError(t, ctx.Err(), "game should end on its own timer")

	assert.Positive(t, sum.TotalAnswered)
	assert.Equal(t, sum.TotalAnswered, sum.TotalCorrect)
	assert.Zero(t, sum.Timeouts)
	assert.Equal(t, PhaseGameOver, r.Snapshot().Phase)
}

func TestBot_StopsOnCancel(t *testing.T) {
	r := NewRunner(&staticSource{}, DefaultSettings(), WithTickInterval(5*time.Millisecond))
	defer r.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	NewBot(1, time.Millisecond, 7).Play(ctx, r)
	assert.Equal(t, PhasePlaying, r.Snapshot().Phase)
}

func TestRunner_JudgeWithWhileLoading(t *testing.T) {
	g := &gatedSource{release: make(chan struct{})}
	r := NewRunner(g, DefaultSettings(), WithTickInterval(time.Hour))
	defer func() {
		close(g.release)
		r.Stop()
	}()

	r.Start(context.Background())
	called := false
	out := r.JudgeWith(func(questions.Question) Direction {
		called = true
		return Affirm
	})
	assert.False(t, out.Applied)
	assert.False(t, called)
}
