package llm

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
)

func TestPurpose(t *testing.T) {
	ctx := context.Background()
	if p := PurposeFrom(ctx); p != PurposeUnknown {
		t.Fatalf("PurposeFrom(empty) = %q, want %q", p, PurposeUnknown)
	}
	if p := PurposeFrom(WithPurpose(ctx, "")); p != PurposeUnknown {
		t.Fatalf("PurposeFrom(blank) = %q, want %q", p, PurposeUnknown)
	}
	if p := PurposeFrom(WithPurpose(ctx, PurposeQuestionBatch)); p != PurposeQuestionBatch {
		t.Fatalf("PurposeFrom = %q, want %q", p, PurposeQuestionBatch)
	}
}

func TestStatusError(t *testing.T) {
	cause := errors.New("upstream said no")
	tests := []struct {
		status    int
		check     func(error) bool
		permanent bool
	}{
		{http.StatusTooManyRequests, func(err error) bool { var e *ErrRateLimit; return errors.As(err, &e) }, false},
		{http.StatusUnauthorized, func(err error) bool { var e *ErrUnauthorized; return errors.As(err, &e) }, true},
		{http.StatusForbidden, func(err error) bool { var e *ErrUnauthorized; return errors.As(err, &e) }, true},
		{http.StatusBadGateway, func(err error) bool { var e *ErrProviderUnavailable; return errors.As(err, &e) }, false},
		{0, func(err error) bool { var e *ErrProviderUnavailable; return errors.As(err, &e) }, false},
	}
	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			err := statusError(tt.status, cause)
			if !tt.check(err) {
				t.Fatalf("statusError(%d) = %T", tt.status, err)
			}
			if !errors.Is(err, cause) {
				t.Error("cause not wrapped")
			}
			if got := permanent(err); got != tt.permanent {
				t.Errorf("permanent = %v, want %v", got, tt.permanent)
			}
		})
	}
}

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{&ErrRateLimit{Err: errors.New("429")}, "llm: rate limited: 429"},
		{&ErrProviderUnavailable{}, "llm: provider unavailable"},
		{&ErrMaxTokensExceeded{}, "llm: reply truncated at max tokens"},
		{&ErrUnauthorized{Status: 401, Err: errors.New("bad key")}, "llm: unauthorized (HTTP 401): bad key"},
	}
	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("Error() = %q, want %q", got, tt.want)
		}
	}
}

func TestSerializeRequest_WithoutSchema(t *testing.T) {
	got := serializeRequest(Request{Prompt: "Count: 10"})
	if strings.Contains(got, "[system]") || strings.Contains(got, "[schema") {
		t.Errorf("unexpected sections:\n%s", got)
	}
	if !strings.HasPrefix(got, "[prompt]\nCount: 10") {
		t.Errorf("serializeRequest = %q", got)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{"anthropic without key", Config{Provider: ProviderAnthropic}, "SWIPEMATH_ANTHROPIC_API_KEY"},
		{"anthropic with key", Config{Provider: ProviderAnthropic, Anthropic: AnthropicConfig{APIKey: "sk-test"}}, ""},
		{"gemini without key", Config{Provider: ProviderGemini}, "SWIPEMATH_GEMINI_API_KEY"},
		{"gemini with key", Config{Provider: ProviderGemini, Gemini: GeminiConfig{APIKey: "g-test"}}, ""},
		{"openrouter without key", Config{Provider: ProviderOpenRouter}, "SWIPEMATH_OPENROUTER_API_KEY"},
		{"unknown provider", Config{Provider: "mock"}, "unknown LLM provider"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("Validate() = %v, want error containing %q", err, tt.wantErr)
			}
		})
	}
}
