package questions

import (
	"encoding/json"
	"fmt"
)

// batchOutput is the raw LLM reply before validation.
type batchOutput struct {
	Questions []struct {
		Equation  string `json:"equation"`
		IsCorrect bool   `json:"is_correct"`
	} `json:"questions"`
}

// Verdict is the fate of one generated item.
type Verdict struct {
	// Equation is in card form when it parsed, otherwise as generated.
	Equation  string
	IsCorrect bool

	// Validator and Reason are empty for accepted items.
	Validator string
	Reason    string
}

// Accepted reports whether the item passed every check.
func (v Verdict) Accepted() bool { return v.Reason == "" }

// BatchReview is a generated batch after validation, in reply order.
type BatchReview struct {
	Verdicts []Verdict
	Accepted int
	Dropped  int
}

// ReviewBatch decodes a recorded question batch reply and validates it with
// the standard chain. Nothing counts as already shown.
func ReviewBatch(content []byte) (BatchReview, error) {
	return reviewBatch(content, GenerateInput{}, DefaultConfig().Validators)
}

func reviewBatch(content []byte, input GenerateInput, validators []Validator) (BatchReview, error) {
	var raw batchOutput
	if err := json.Unmarshal(content, &raw); err != nil {
		return BatchReview{}, fmt.Errorf("decode question batch: %w", err)
	}

	review := BatchReview{Verdicts: make([]Verdict, 0, len(raw.Questions))}
	seen := make(map[string]bool, len(raw.Questions))
	for _, item := range raw.Questions {
		v := Verdict{Equation: canonicalEquation(item.Equation), IsCorrect: item.IsCorrect}
		q := Question{Equation: v.Equation, IsCorrect: v.IsCorrect, Difficulty: input.Level}

		if verr := runValidators(validators, &q, input); verr != nil {
			v.Validator, v.Reason = verr.Validator, verr.Message
		} else if seen[v.Equation] {
			v.Validator, v.Reason = "duplicate", "repeated within the batch"
		}

		if v.Accepted() {
			seen[v.Equation] = true
			review.Accepted++
		} else {
			review.Dropped++
		}
		review.Verdicts = append(review.Verdicts, v)
	}
	return review, nil
}

// runValidators returns the first failure.
func runValidators(validators []Validator, q *Question, input GenerateInput) *ValidationError {
	for _, v := range validators {
		if verr := v.Validate(q, input); verr != nil {
			return verr
		}
	}
	return nil
}
