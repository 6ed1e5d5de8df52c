package llm

import (
	"encoding/json"
	"errors"
	"sync"
	"testing"
)

func TestSchemaCheck(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{"one card", oneCard, false},
		{"empty batch", `{"questions":[]}`, false},
		{"missing questions", `{"cards":[]}`, true},
		{"label as string", `{"questions":[{"equation":"1 + 1 = 2","is_correct":"yes"}]}`, true},
		{"missing label", `{"questions":[{"equation":"1 + 1 = 2"}]}`, true},
		{"extra field", `{"questions":[{"equation":"1 + 1 = 2","is_correct":true,"hint":"add"}]}`, true},
		{"prose reply", `Here are your questions: 1 + 1 = 2`, true},
		{"empty reply", ``, true},
	}
	schema := batchSchema()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := schema.Check(json.RawMessage(tt.raw))
			if !tt.wantErr {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			var inv *ErrInvalidResponse
			if !errors.As(err, &inv) {
				t.Fatalf("expected ErrInvalidResponse, got %T (%v)", err, err)
			}
			if string(inv.Content) != tt.raw {
				t.Errorf("Content = %q, want the reply", inv.Content)
			}
		})
	}
}

func TestSchemaCheck_NilAcceptsAnything(t *testing.T) {
	var schema *Schema
	if err := schema.Check(json.RawMessage(`not even json`)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSchemaCheck_BadDefinition(t *testing.T) {
	schema := &Schema{Name: "broken", Definition: map[string]any{"type": 12}}
	err := schema.Check(json.RawMessage(`{}`))
	var inv *ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Fatalf("expected ErrInvalidResponse, got %v", err)
	}
}

func TestSchemaCheck_ConcurrentFirstUse(t *testing.T) {
	schema := batchSchema()
	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- schema.Check(json.RawMessage(oneCard))
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
}
