package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"
)

// RequestEvent describes one completed provider call.
type RequestEvent struct {
	Provider     string
	Model        string
	Purpose      Purpose
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// Recorder persists request events. The store's event repository
// implements it.
type Recorder interface {
	AppendLLMRequest(ctx context.Context, ev RequestEvent) error
}

// LoggingProvider is a decorator that logs every request and, when a
// Recorder is set, records it as an event.
type LoggingProvider struct {
	inner    Provider
	provider string
	recorder Recorder
	logger   *slog.Logger
}

// WithLogging wraps a Provider with request logging. recorder may be nil.
func WithLogging(p Provider, providerName string, recorder Recorder, logger *slog.Logger) Provider {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &LoggingProvider{
		inner:    p,
		provider: providerName,
		recorder: recorder,
		logger:   logger.With("component", "llm", "provider", providerName),
	}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	purpose := PurposeFrom(ctx)

	resp, err := l.inner.Generate(ctx, req)

	ev := RequestEvent{
		Provider:    l.provider,
		Model:       l.inner.ModelID(),
		Purpose:     purpose,
		LatencyMs:   time.Since(start).Milliseconds(),
		Success:     err == nil,
		RequestBody: serializeRequest(req),
	}
	if resp != nil {
		ev.InputTokens = resp.Usage.InputTokens
		ev.OutputTokens = resp.Usage.OutputTokens
		if resp.Model != "" {
			ev.Model = resp.Model
		}
		ev.ResponseBody = string(resp.Content)
	}
	if err != nil {
		ev.ErrorMessage = err.Error()
		l.logger.Warn("llm request failed", "purpose", purpose, "latency_ms", ev.LatencyMs, "error", err)
	} else {
		l.logger.Info("llm request",
			"purpose", purpose,
			"model", ev.Model,
			"latency_ms", ev.LatencyMs,
			"input_tokens", ev.InputTokens,
			"output_tokens", ev.OutputTokens,
		)
	}

	if l.recorder != nil {
		// Recording failures never fail the request.
		if recErr := l.recorder.AppendLLMRequest(context.WithoutCancel(ctx), ev); recErr != nil {
			l.logger.Error("failed to record llm request event", "error", recErr)
		}
	}

	return resp, err
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}

// serializeRequest builds a readable representation of the LLM request.
func serializeRequest(req Request) string {
	var b strings.Builder

	if req.System != "" {
		b.WriteString("[system]\n")
		b.WriteString(req.System)
		b.WriteString("\n\n")
	}

	if req.Prompt != "" {
		b.WriteString("[prompt]\n")
		b.WriteString(req.Prompt)
		b.WriteString("\n\n")
	}

	if req.Schema != nil {
		if def, err := json.Marshal(req.Schema.Definition); err == nil {
			fmt.Fprintf(&b, "[schema: %s]\n%s\n", req.Schema.Name, def)
		}
	}

	return b.String()
}
