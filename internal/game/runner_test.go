package game

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/swipemath/internal/questions"
)

type staticSource struct {
	mu    sync.Mutex
	calls []int
}

func (s *staticSource) Generate(_ context.Context, count, level int) []questions.Question {
	s.mu.Lock()
	s.calls = append(s.calls, level)
	s.mu.Unlock()
	qs := trueQuestions(count)
	for i := range qs {
		qs[i].Difficulty = level
	}
	return qs
}

// gatedSource blocks every call until release is closed.
type gatedSource struct {
	release chan struct{}
}

func (g *gatedSource) Generate(ctx context.Context, count, level int) []questions.Question {
	select {
	case <-g.release:
	case <-ctx.Done():
	}
	return trueQuestions(count)
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	require.Eventually(t, cond, 2*time.Second, time.Millisecond)
}

func TestRunner_PlaysToGameOver(t *testing.T) {
	settings := DefaultSettings()
	settings.MaxGameTime = 2

	var mu sync.Mutex
	var kinds []EventKind
	r := NewRunner(&staticSource{}, settings,
		WithTickInterval(5*time.Millisecond),
		WithObserver(func(ev Event) {
			mu.Lock()
			kinds = append(kinds, ev.Kind)
			mu.Unlock()
		}),
	)
	defer r.Stop()

	id := r.Start(context.Background())
	require.NotEmpty(t, id)

	waitFor(t, func() bool { return r.Snapshot().Phase != PhaseLoading })
	r.Judge(Affirm)

	select {
	case <-r.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("game did not end")
	}

	snap := r.Snapshot()
	assert.Equal(t, PhaseGameOver, snap.Phase)
	assert.Equal(t, 0, snap.TimerSeconds)

	sum := r.Summary()
	assert.Equal(t, id, sum.ID)
	assert.GreaterOrEqual(t, sum.TotalAnswered, 1)

	mu.Lock()
	defer mu.Unlock()
	require.NotEmpty(t, kinds)
	assert.Contains(t, kinds, EventStarted)
	assert.Equal(t, EventGameOver, kinds[len(kinds)-1])
}

func TestRunner_JudgeIgnoredAfterGameOver(t *testing.T) {
	settings := DefaultSettings()
	settings.MaxGameTime = 0.1
	r := NewRunner(&staticSource{}, settings, WithTickInterval(time.Millisecond))
	defer r.Stop()

	r.Start(context.Background())
	<-r.Done()

	out := r.Judge(Affirm)
	assert.False(t, out.Applied)
}

func TestRunner_RestartDropsStaleRefill(t *testing.T) {
	src := &gatedSource{release: make(chan struct{})}
	r := NewRunner(src, DefaultSettings(), WithTickInterval(time.Hour))
	defer r.Stop()

	r.Start(context.Background())
	first := r.Summary().ID

	// Stop cancels the blocked refill of the first game before the second starts.
	second := r.Start(context.Background())
	assert.NotEqual(t, first, second)
	assert.Equal(t, PhaseLoading, r.Snapshot().Phase)

	close(src.release)
	waitFor(t, func() bool { return r.Snapshot().Phase == PhasePlaying })
	assert.Equal(t, RefillBatch, r.Snapshot().QueueLen)
}

func TestRunner_LowWaterRefillFetchesCurrentLevel(t *testing.T) {
	src := &staticSource{}
	r := NewRunner(src, DefaultSettings(), WithTickInterval(time.Hour))
	defer r.Stop()

	r.Start(context.Background())
	waitFor(t, func() bool { return r.Snapshot().Phase == PhasePlaying })

	for i := 0; i < 6; i++ {
		r.Judge(Affirm)
	}
	waitFor(t, func() bool { return r.Snapshot().QueueLen == 14 })

	src.mu.Lock()
	defer src.mu.Unlock()
	assert.Equal(t, []int{1, 1}, src.calls)
}

func TestRunner_StopIsIdempotent(t *testing.T) {
	r := NewRunner(&staticSource{}, DefaultSettings())
	r.Stop()
	r.Start(context.Background())
	r.Stop()
	r.Stop()
}
