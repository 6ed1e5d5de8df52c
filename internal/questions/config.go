package questions

// Config controls the behavior of the LLMSource.
type Config struct {
	// Validators is the ordered list of validators run on every generated
	// question. The first failure drops the question.
	Validators []Validator

	// MaxTokens is the token budget for the LLM response.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64

	// MaxPriorEquations is the maximum number of prior equations
	// to include in the prompt for deduplication.
	MaxPriorEquations int
}

// DefaultConfig returns a Config with the standard validator chain
// and recommended defaults.
func DefaultConfig() Config {
	return Config{
		Validators: []Validator{
			&StructuralValidator{},
			&TruthValidator{},
			&DuplicateValidator{},
		},
		MaxTokens:         1024,
		Temperature:       0.8,
		MaxPriorEquations: 20,
	}
}
