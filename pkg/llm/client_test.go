package llm

import (
	"errors"
	"testing"
)

func TestNewOpenAIClientMissingKey(t *testing.T) {
	_, err := NewOpenAIClient("")
	if !errors.Is(err, ErrMissingAPIKey) {
		t.Errorf("got %v, want ErrMissingAPIKey", err)
	}
}

func TestNewAnthropicClientMissingKey(t *testing.T) {
	_, err := NewAnthropicClient("")
	if !errors.Is(err, ErrMissingAPIKey) {
		t.Errorf("got %v, want ErrMissingAPIKey", err)
	}
}

func TestNewFromEnv(t *testing.T) {
	t.Setenv("LLM_PROVIDER", "openai")
	t.Setenv("OPENAI_API_KEY", "test-key")

	client, err := NewFromEnv()
	if err != nil {
		t.Fatalf("NewFromEnv: %v", err)
	}
	if client.ModelName() != "gpt-4o-mini" {
		t.Errorf("model = %q", client.ModelName())
	}
}

func TestNewFromEnvMissingKey(t *testing.T) {
	t.Setenv("LLM_PROVIDER", "anthropic")
	t.Setenv("ANTHROPIC_API_KEY", "")

	_, err := NewFromEnv()
	if !errors.Is(err, ErrMissingAPIKey) {
		t.Errorf("got %v, want ErrMissingAPIKey", err)
	}
}

func TestNewFromEnvUnsupportedProvider(t *testing.T) {
	t.Setenv("LLM_PROVIDER", "gemini")

	_, err := NewFromEnv()
	if err == nil {
		t.Error("expected error for unsupported provider")
	}
}
