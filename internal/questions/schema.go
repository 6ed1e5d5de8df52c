package questions

import "github.com/abhisek/swipemath/internal/llm"

// BatchSchema defines the JSON schema for LLM question batch responses.
var BatchSchema = &llm.Schema{
	Name:        "equation-batch",
	Description: "A batch of true/false arithmetic equations for a swipe quiz",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"equation": map[string]any{
							"type":        "string",
							"description": "A single binary equation of the form \"a op b = c\" using +, -, × or ÷ with integer operands",
						},
						"is_correct": map[string]any{
							"type":        "boolean",
							"description": "Whether the equation is arithmetically true",
						},
					},
					"required":             []any{"equation", "is_correct"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"questions"},
		"additionalProperties": false,
	},
}
