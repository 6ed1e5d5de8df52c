package llm

// Friendly model names accepted in configuration, per provider.
var (
	anthropicModels = map[string]string{
		"claude-sonnet": "claude-sonnet-4-5",
		"claude-haiku":  "claude-haiku-4-5",
	}

	openaiModels = map[string]string{
		"gpt-4o":      "gpt-4o",
		"gpt-4o-mini": "gpt-4o-mini",
		"gpt-mini":    "gpt-4.1-mini",
	}

	geminiModels = map[string]string{
		"gemini-flash": "gemini-2.5-flash",
		"gemini-lite":  "gemini-2.5-flash-lite",
	}
)

// resolveModel maps a friendly model name to a provider model ID.
// Unknown names are used as-is so direct model IDs work.
func resolveModel(name string, models map[string]string) string {
	if id, ok := models[name]; ok {
		return id
	}
	return name
}
