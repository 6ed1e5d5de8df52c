package llm

import (
	"context"
	"encoding/json"
	"sync"
)

// reply is one scripted provider result. content is used when err is nil.
type reply struct {
	content string
	usage   Usage
	err     error
}

// scripted plays back replies in order and keeps every request it was sent.
// It fails with ErrProviderUnavailable once the script runs out.
type scripted struct {
	mu      sync.Mutex
	replies []reply
	seen    []Request
}

func script(replies ...reply) *scripted {
	return &scripted{replies: replies}
}

func (s *scripted) Generate(_ context.Context, req Request) (*Response, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seen = append(s.seen, req)
	if len(s.replies) == 0 {
		return nil, &ErrProviderUnavailable{}
	}
	r := s.replies[0]
	s.replies = s.replies[1:]
	if r.err != nil {
		return nil, r.err
	}
	return &Response{
		Content:    json.RawMessage(r.content),
		Usage:      r.usage,
		Model:      "scripted-1",
		StopReason: StopEnd,
	}, nil
}

func (s *scripted) ModelID() string { return "scripted" }

func (s *scripted) calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.seen)
}

type memRecorder struct {
	mu     sync.Mutex
	events []RequestEvent
	err    error
}

func (m *memRecorder) AppendLLMRequest(_ context.Context, ev RequestEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, ev)
	return m.err
}

// batchSchema mirrors the shape of a question batch reply.
func batchSchema() *Schema {
	return &Schema{
		Name:        "test-batch",
		Description: "True/false equations",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"questions": map[string]any{
					"type": "array",
					"items": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"equation":   map[string]any{"type": "string"},
							"is_correct": map[string]any{"type": "boolean"},
						},
						"required":             []any{"equation", "is_correct"},
						"additionalProperties": false,
					},
				},
			},
			"required": []any{"questions"},
		},
	}
}

const oneCard = `{"questions":[{"equation":"6 × 7 = 42","is_correct":true}]}`

func batchRequest() Request {
	return Request{
		System:    "You write cards for a true/false arithmetic game.",
		Prompt:    "Count: 1\nDifficulty level: 3",
		Schema:    batchSchema(),
		MaxTokens: 256,
	}
}
