// Package questions produces the true/false equation cards played by the game.
// Questions come from an LLM provider when one is configured and from a
// deterministic local generator otherwise or on any remote failure.
package questions

import "context"

// Question is one true/false arithmetic card.
type Question struct {
	ID string

	// Equation is the displayed statement, e.g. "7 × 8 = 54".
	Equation string

	// IsCorrect reports whether the equation holds.
	IsCorrect bool

	// Difficulty is the level the question was generated for.
	Difficulty int
}

// Source produces questions for the game. It never fails: implementations
// that can fail recover internally and may return fewer questions.
type Source interface {
	Generate(ctx context.Context, count, level int) []Question
}

// Generator produces questions and reports failures. Remote generators
// implement this and are wrapped by FallbackSource.
type Generator interface {
	// Generate returns up to input.Count validated questions. Invalid items
	// are dropped. An error is returned when nothing usable was produced.
	Generate(ctx context.Context, input GenerateInput) ([]Question, error)
}

// GenerateInput is the context for one generation request.
type GenerateInput struct {
	Count int
	Level int

	// PriorEquations lists recently shown equations to avoid repeating.
	PriorEquations []string
}
