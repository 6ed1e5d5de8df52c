package llm

import (
	"context"
	"encoding/json"
)

// Provider sends one structured generation request to a model.
type Provider interface {
	// Generate returns the model's reply. When req.Schema is set the reply
	// has already been checked against it.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model the provider is configured for.
	ModelID() string
}

// Request is a single-turn prompt. Every call this app makes asks for one
// batch of questions, so there is no conversation history.
type Request struct {
	System string
	Prompt string

	// Schema, when set, selects the provider's native structured output and
	// is used to check the reply.
	Schema *Schema

	MaxTokens int

	// Temperature in [0, 1]. Zero leaves the provider default.
	Temperature float64
}

// StopReason is why the model stopped, normalized across providers.
type StopReason string

const (
	StopEnd       StopReason = "end"
	StopMaxTokens StopReason = "max_tokens"
)

// Response is a model reply.
type Response struct {
	// Content is the JSON document the model produced.
	Content json.RawMessage

	Usage Usage

	// Model is the model that served the request, which can differ from
	// the configured alias.
	Model string

	StopReason StopReason
}

// Usage is the token count of one request.
type Usage struct {
	InputTokens  int
	OutputTokens int
}
