package llm

import (
	"testing"

	"google.golang.org/genai"
)

func TestGeminiModelMapping(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"gemini-flash", "gemini-2.5-flash"},
		{"gemini-lite", "gemini-2.5-flash-lite"},
		{"gemini-2.0-flash", "gemini-2.0-flash"}, // Pass-through
	}
	for _, tt := range tests {
		got := resolveModel(tt.input, geminiModels)
		if got != tt.expected {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestBuildGeminiSchema_EquationBatch(t *testing.T) {
	schema := buildGeminiSchema(batchSchema().Definition)

	if schema.Type != genai.TypeObject {
		t.Fatalf("root type = %s, want OBJECT", schema.Type)
	}
	if len(schema.Required) != 1 || schema.Required[0] != "questions" {
		t.Fatalf("required = %v", schema.Required)
	}
	questions := schema.Properties["questions"]
	if questions == nil || questions.Type != genai.TypeArray {
		t.Fatalf("questions = %+v, want an ARRAY", questions)
	}
	items := questions.Items
	if items == nil {
		t.Fatal("expected items schema")
	}
	if items.Properties["equation"].Type != genai.TypeString {
		t.Errorf("equation type = %s", items.Properties["equation"].Type)
	}
	if items.Properties["is_correct"].Type != genai.TypeBoolean {
		t.Errorf("is_correct type = %s", items.Properties["is_correct"].Type)
	}
	if len(items.Required) != 2 {
		t.Errorf("expected 2 required fields, got %d", len(items.Required))
	}
}

func TestMapGeminiType_UnknownIsString(t *testing.T) {
	if got := mapGeminiType("null"); got != genai.TypeString {
		t.Errorf("mapGeminiType(null) = %s", got)
	}
}
