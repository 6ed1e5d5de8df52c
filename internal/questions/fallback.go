package questions

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// DefaultRemoteTimeout bounds a single remote generation call.
const DefaultRemoteTimeout = 8 * time.Second

// recentWindow is how many shown equations are remembered for dedup.
const recentWindow = 40

// FallbackSource implements Source on top of a remote Generator. Any remote
// failure or short batch is topped up from the local generator, so callers
// receive count questions unless ctx is cancelled.
type FallbackSource struct {
	remote  Generator
	local   Source
	timeout time.Duration
	logger  *slog.Logger

	mu     sync.Mutex
	recent []string
}

// FallbackOption configures a FallbackSource.
type FallbackOption func(*FallbackSource)

// WithRemoteTimeout sets the per-call deadline for the remote generator.
func WithRemoteTimeout(d time.Duration) FallbackOption {
	return func(f *FallbackSource) {
		if d > 0 {
			f.timeout = d
		}
	}
}

// WithFallbackLogger sets the logger used for remote failures.
func WithFallbackLogger(l *slog.Logger) FallbackOption {
	return func(f *FallbackSource) {
		if l != nil {
			f.logger = l
		}
	}
}

// NewFallbackSource wraps remote with local. A nil remote makes every call
// local.
func NewFallbackSource(remote Generator, local Source, opts ...FallbackOption) *FallbackSource {
	f := &FallbackSource{
		remote:  remote,
		local:   local,
		timeout: DefaultRemoteTimeout,
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(f)
	}
	f.logger = f.logger.With("component", "question-source")
	return f
}

// Generate implements Source.
func (f *FallbackSource) Generate(ctx context.Context, count, level int) []Question {
	if count <= 0 {
		return nil
	}

	var out []Question
	if f.remote != nil {
		out = f.fromRemote(ctx, count, level)
	}

	if missing := count - len(out); missing > 0 && ctx.Err() == nil {
		out = append(out, f.local.Generate(ctx, missing, level)...)
	}

	f.remember(out)
	return out
}

func (f *FallbackSource) fromRemote(ctx context.Context, count, level int) []Question {
	rctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	qs, err := f.remote.Generate(rctx, GenerateInput{
		Count:          count,
		Level:          level,
		PriorEquations: f.priorEquations(),
	})
	if err != nil {
		f.logger.Warn("remote question source failed, using local generator",
			"level", level, "count", count, "error", err)
		return nil
	}
	if len(qs) > count {
		qs = qs[:count]
	}
	if len(qs) < count {
		f.logger.Info("remote returned a short batch", "level", level, "want", count, "got", len(qs))
	}
	return qs
}

func (f *FallbackSource) priorEquations() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.recent...)
}

func (f *FallbackSource) remember(qs []Question) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, q := range qs {
		f.recent = append(f.recent, q.Equation)
	}
	if len(f.recent) > recentWindow {
		f.recent = f.recent[len(f.recent)-recentWindow:]
	}
}
