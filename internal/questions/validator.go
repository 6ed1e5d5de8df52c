package questions

import (
	"fmt"
	"strings"
)

// Validator checks a generated question.
// Implementations should be stateless and safe for concurrent use.
type Validator interface {
	// Name returns a short identifier for this validator, e.g. "structural".
	Name() string

	// Validate returns nil if the question passes.
	Validate(q *Question, input GenerateInput) *ValidationError
}

// ValidationError describes why a question failed validation.
type ValidationError struct {
	Validator string // Name of the validator that failed
	Message   string // Human-readable description of the failure
	Retryable bool   // Whether regeneration is likely to fix this
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q: %s", e.Validator, e.Message)
}

// maxEquationLen bounds the card text.
const maxEquationLen = 40

// StructuralValidator checks that the equation is present, short enough to
// fit on a card and shaped like "a op b = c".
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(q *Question, _ GenerateInput) *ValidationError {
	eq := strings.TrimSpace(q.Equation)
	if eq == "" {
		return &ValidationError{Validator: v.Name(), Message: "equation is empty", Retryable: true}
	}
	if len(eq) > maxEquationLen {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("equation exceeds %d characters", maxEquationLen),
			Retryable: true,
		}
	}
	if _, err := parseEquation(eq); err != nil {
		return &ValidationError{Validator: v.Name(), Message: err.Error(), Retryable: true}
	}
	return nil
}

// TruthValidator recomputes the equation and rejects questions whose
// is_correct flag disagrees with the arithmetic.
type TruthValidator struct{}

func (v *TruthValidator) Name() string { return "truth-check" }

func (v *TruthValidator) Validate(q *Question, _ GenerateInput) *ValidationError {
	holds, err := Holds(q.Equation)
	if err != nil {
		return &ValidationError{Validator: v.Name(), Message: err.Error(), Retryable: true}
	}
	if holds != q.IsCorrect {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("%q is %t but was labelled %t", q.Equation, holds, q.IsCorrect),
			Retryable: true,
		}
	}
	return nil
}

// DuplicateValidator rejects equations already shown in this game.
type DuplicateValidator struct{}

func (v *DuplicateValidator) Name() string { return "duplicate" }

func (v *DuplicateValidator) Validate(q *Question, input GenerateInput) *ValidationError {
	for _, prior := range input.PriorEquations {
		if prior == q.Equation {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("%q was already asked", q.Equation),
				Retryable: true,
			}
		}
	}
	return nil
}
