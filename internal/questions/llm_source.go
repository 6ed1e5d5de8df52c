package questions

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/abhisek/swipemath/internal/llm"
)

// ErrNoValidQuestions is returned when every generated item failed validation.
var ErrNoValidQuestions = errors.New("no valid questions in LLM response")

// LLMSource implements Generator using an LLM provider.
type LLMSource struct {
	provider llm.Provider
	config   Config
	logger   *slog.Logger
}

// NewLLMSource creates a new LLMSource with the given provider and config.
func NewLLMSource(provider llm.Provider, cfg Config, logger *slog.Logger) *LLMSource {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &LLMSource{provider: provider, config: cfg, logger: logger.With("component", "llm-source")}
}

// Generate asks the provider for a batch and returns the items that pass
// every validator, capped at input.Count.
func (s *LLMSource) Generate(ctx context.Context, input GenerateInput) ([]Question, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeQuestionBatch)

	req := llm.Request{
		System:      systemPrompt,
		Prompt:      buildUserMessage(input, s.config),
		Schema:      BatchSchema,
		MaxTokens:   s.config.MaxTokens,
		Temperature: s.config.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("generate question batch: %w", err)
	}

	review, err := reviewBatch(resp.Content, input, s.config.Validators)
	if err != nil {
		return nil, err
	}

	out := make([]Question, 0, min(input.Count, review.Accepted))
	for _, v := range review.Verdicts {
		if !v.Accepted() {
			s.logger.Debug("dropped generated question", "equation", v.Equation, "validator", v.Validator, "reason", v.Reason)
			continue
		}
		if len(out) == input.Count {
			continue
		}
		out = append(out, Question{
			ID:         uuid.New().String(),
			Equation:   v.Equation,
			IsCorrect:  v.IsCorrect,
			Difficulty: input.Level,
		})
	}

	if len(out) == 0 {
		return nil, ErrNoValidQuestions
	}
	s.logger.Debug("question batch reviewed", "level", input.Level, "accepted", review.Accepted, "dropped", review.Dropped)
	return out, nil
}
