package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
)

func TestMockProvider_PlaysQueueInOrder(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{
			Content: json.RawMessage(`{"question_text":"Write fib(n) recursively."}`),
			Usage:   Usage{InputTokens: 12, OutputTokens: 9, TotalTokens: 21},
		},
		MockResponse{Content: json.RawMessage(`{"question_text":"Sum a nested list."}`)},
	)

	first, err := mock.Generate(context.Background(), Request{
		Messages: []Message{{Role: RoleUser, Content: "question one"}},
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if string(first.Content) != `{"question_text":"Write fib(n) recursively."}` {
		t.Errorf("first content = %s", first.Content)
	}
	if first.Usage.InputTokens != 12 {
		t.Errorf("input tokens = %d, want 12", first.Usage.InputTokens)
	}
	if first.StopReason != "end" {
		t.Errorf("stop reason = %q, want end", first.StopReason)
	}

	second, err := mock.Generate(context.Background(), Request{
		Messages: []Message{{Role: RoleUser, Content: "question two"}},
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if string(second.Content) != `{"question_text":"Sum a nested list."}` {
		t.Errorf("second content = %s", second.Content)
	}
}

func TestMockProvider_EmptyQueueFails(t *testing.T) {
	mock := NewMockProvider()
	_, err := mock.Generate(context.Background(), Request{})
	if err == nil {
		t.Fatal("Generate succeeded on an empty queue")
	}
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("error type = %T, want ErrProviderUnavailable", err)
	}
}

func TestMockProvider_RecordsRequests(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{}`)})

	_, _ = mock.Generate(context.Background(), Request{
		System:   "You moderate a study group.",
		Messages: []Message{{Role: RoleUser, Content: "Ask about recursion."}},
	})

	if mock.CallCount() != 1 {
		t.Fatalf("CallCount = %d, want 1", mock.CallCount())
	}
	if got := mock.Calls[0].System; got != "You moderate a study group." {
		t.Errorf("recorded system prompt = %q", got)
	}
}

func TestMockProvider_QueuedError(t *testing.T) {
	mock := NewMockProvider(MockResponse{Err: &ErrRateLimit{}})

	_, err := mock.Generate(context.Background(), Request{})
	var rl *ErrRateLimit
	if !errors.As(err, &rl) {
		t.Fatalf("error = %v, want ErrRateLimit", err)
	}
}

func TestMockProvider_ModelID(t *testing.T) {
	if got := NewMockProvider().ModelID(); got != "mock" {
		t.Fatalf("ModelID = %q, want mock", got)
	}
}

func TestPurposeRoundTrip(t *testing.T) {
	ctx := context.Background()
	if p := PurposeFrom(ctx); p != "unknown" {
		t.Fatalf("untagged purpose = %q, want unknown", p)
	}
	ctx = WithPurpose(ctx, "peer_attempt")
	if p := PurposeFrom(ctx); p != "peer_attempt" {
		t.Fatalf("purpose = %q, want peer_attempt", p)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"anthropic without key", Config{Provider: "anthropic"}, true},
		{"anthropic with key", Config{Provider: "anthropic", Anthropic: AnthropicConfig{APIKey: "sk-test"}}, false},
		{"openai without key", Config{Provider: "openai"}, true},
		{"openai with key", Config{Provider: "openai", OpenAI: OpenAIConfig{APIKey: "sk-test"}}, false},
		{"gemini without key", Config{Provider: "gemini"}, true},
		{"gemini with key", Config{Provider: "gemini", Gemini: GeminiConfig{APIKey: "g-test"}}, false},
		{"openrouter without key", Config{Provider: "openrouter"}, true},
		{"openrouter with key", Config{Provider: "openrouter", OpenRouter: OpenRouterConfig{APIKey: "sk-or-test"}}, false},
		{"mock needs no key", Config{Provider: "mock"}, false},
		{"unknown provider", Config{Provider: "replicate"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
