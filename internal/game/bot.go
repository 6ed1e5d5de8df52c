package game

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/abhisek/swipemath/internal/questions"
)

// Bot plays a Runner without a player. After every reaction delay it judges
// the card on display, answering correctly with probability Accuracy.
type Bot struct {
	Accuracy float64
	Reaction time.Duration

	rng *rand.Rand
}

// NewBot creates a Bot. accuracy is clamped to [0, 1].
func NewBot(accuracy float64, reaction time.Duration, seed uint64) *Bot {
	accuracy = max(0, min(1, accuracy))
	if reaction <= 0 {
		reaction = DefaultTickInterval
	}
	return &Bot{
		Accuracy: accuracy,
		Reaction: reaction,
		rng:      rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// Decide picks a direction for q.
func (b *Bot) Decide(q questions.Question) Direction {
	right := b.rng.Float64() < b.Accuracy
	if q.IsCorrect == right {
		return Affirm
	}
	return Deny
}

// Play starts a game on r and judges cards until the game ends or ctx is
// cancelled. It returns the final totals.
func (b *Bot) Play(ctx context.Context, r *Runner) Summary {
	r.Start(ctx)
	done := r.Done()

	t := time.NewTicker(b.Reaction)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			r.Stop()
			return r.Summary()
		case <-done:
			return r.Summary()
		case <-t.C:
			r.JudgeWith(b.Decide)
		}
	}
}
