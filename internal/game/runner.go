package game

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/swipemath/internal/questions"
)

// DefaultTickInterval is the real time between ticks.
const DefaultTickInterval = 100 * time.Millisecond

// EventKind identifies a Runner notification.
type EventKind int

const (
	EventStarted EventKind = iota // First batch arrived, play begins
	EventJudgment
	EventGameOver
)

// Event is delivered to the Runner observer outside the session lock.
type Event struct {
	Kind      EventKind
	SessionID string
	Outcome   JudgmentOutcome
	Summary   Summary
	Snapshot  Snapshot
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithTickInterval sets the real time between ticks.
func WithTickInterval(d time.Duration) RunnerOption {
	return func(r *Runner) {
		if d > 0 {
			r.tick = d
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) RunnerOption {
	return func(r *Runner) { r.logger = l }
}

// WithObserver registers a callback for game events. The callback must not
// block for long; it runs on the ticker or refill goroutine.
func WithObserver(fn func(Event)) RunnerOption {
	return func(r *Runner) { r.observer = fn }
}

// Runner hosts a Session on a background ticker. All session access happens
// under one mutex, so judgments, ticks and refill results never interleave.
type Runner struct {
	// lifecycle serializes Start and Stop.
	lifecycle sync.Mutex

	mu       sync.Mutex
	session  *Session
	source   questions.Source
	tick     time.Duration
	logger   *slog.Logger
	observer func(Event)

	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}
	wg     sync.WaitGroup
}

// NewRunner creates a Runner that fetches questions from source.
func NewRunner(source questions.Source, settings Settings, opts ...RunnerOption) *Runner {
	r := &Runner{
		session: NewSession(settings),
		source:  source,
		tick:    DefaultTickInterval,
		logger:  slog.New(slog.DiscardHandler),
		done:    make(chan struct{}),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Start stops any running game and begins a new one. It returns the new
// session ID. The game runs until the global timer expires, Stop is called or
// ctx is cancelled.
func (r *Runner) Start(ctx context.Context) string {
	r.lifecycle.Lock()
	defer r.lifecycle.Unlock()

	r.stopLocked()

	r.mu.Lock()
	defer r.mu.Unlock()

	r.ctx, r.cancel = context.WithCancel(ctx)
	r.done = make(chan struct{})

	id := uuid.New().String()
	req := r.session.Start(id)
	r.logger.Info("game started", "session_id", id, "generation", req.Generation)

	r.spawn(func(ctx context.Context) { r.loop(ctx, req.Generation, r.done) })
	r.spawnRefill(req)
	return id
}

// Stop cancels the running game and waits for its goroutines to exit.
func (r *Runner) Stop() {
	r.lifecycle.Lock()
	defer r.lifecycle.Unlock()
	r.stopLocked()
}

func (r *Runner) stopLocked() {
	r.mu.Lock()
	cancel := r.cancel
	r.cancel = nil
	r.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	r.wg.Wait()
}

// Judge applies a player judgment. It is a no-op outside play.
func (r *Runner) Judge(dir Direction) JudgmentOutcome {
	r.mu.Lock()
	return r.judgeLocked(dir)
}

// JudgeWith lets decide pick the direction for the question on display and
// applies it atomically, so a timeout cannot swap the card in between. It
// is a no-op when nothing is on display.
func (r *Runner) JudgeWith(decide func(questions.Question) Direction) JudgmentOutcome {
	r.mu.Lock()
	q, ok := r.session.Front()
	if !ok || r.session.Phase != PhasePlaying {
		r.mu.Unlock()
		return JudgmentOutcome{}
	}
	return r.judgeLocked(decide(q))
}

// judgeLocked is called with r.mu held and releases it.
func (r *Runner) judgeLocked(dir Direction) JudgmentOutcome {
	out := r.session.Judge(dir)
	if out.Refill != nil {
		r.spawnRefill(*out.Refill)
	}
	ev := Event{Kind: EventJudgment, SessionID: r.session.ID, Outcome: out, Snapshot: r.session.Snapshot()}
	r.mu.Unlock()

	if out.Applied {
		r.notify(ev)
	}
	return out
}

// Snapshot returns the current presentation state.
func (r *Runner) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.session.Snapshot()
}

// Summary returns the totals of the current or last game.
func (r *Runner) Summary() Summary {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.session.Summary()
}

// Done returns a channel closed when the current game ends on its timer.
func (r *Runner) Done() <-chan struct{} {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.done
}

// spawn starts fn on a tracked goroutine. Callers hold r.mu. Nothing is
// started once the runner is stopped.
func (r *Runner) spawn(fn func(ctx context.Context)) {
	if r.cancel == nil {
		return
	}
	ctx := r.ctx
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		fn(ctx)
	}()
}

func (r *Runner) spawnRefill(req RefillRequest) {
	r.spawn(func(ctx context.Context) {
		qs := r.source.Generate(ctx, req.Count, req.Level)
		if ctx.Err() != nil {
			return
		}

		r.mu.Lock()
		wasLoading := r.session.Phase == PhaseLoading
		applied := r.session.ApplyRefill(req, qs)
		started := applied && wasLoading && r.session.Phase == PhasePlaying
		ev := Event{Kind: EventStarted, SessionID: r.session.ID, Snapshot: r.session.Snapshot()}
		r.mu.Unlock()

		if !applied {
			r.logger.Debug("dropped stale refill", "generation", req.Generation, "reason", req.Reason.String())
			return
		}
		r.logger.Debug("refill applied", "count", len(qs), "level", req.Level, "reason", req.Reason.String())
		if started {
			r.notify(ev)
		}
	})
}

func (r *Runner) loop(ctx context.Context, gen uint64, done chan struct{}) {
	t := time.NewTicker(r.tick)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
		}

		r.mu.Lock()
		if r.session.Generation != gen {
			r.mu.Unlock()
			return
		}
		res := r.session.Tick()
		var events []Event
		if res.Timeout != nil {
			if res.Timeout.Refill != nil {
				r.spawnRefill(*res.Timeout.Refill)
			}
			events = append(events, Event{Kind: EventJudgment, SessionID: r.session.ID, Outcome: *res.Timeout, Snapshot: r.session.Snapshot()})
		}
		if res.GameOver {
			sum := r.session.Summary()
			events = append(events, Event{Kind: EventGameOver, SessionID: r.session.ID, Summary: sum, Snapshot: r.session.Snapshot()})
			r.logger.Info("game over", "session_id", sum.ID, "score", sum.Score, "answered", sum.TotalAnswered)
		}
		r.mu.Unlock()

		for _, ev := range events {
			r.notify(ev)
		}
		if res.GameOver {
			close(done)
			return
		}
	}
}

func (r *Runner) notify(ev Event) {
	if r.observer != nil {
		r.observer(ev)
	}
}
