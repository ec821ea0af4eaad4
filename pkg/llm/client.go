package llm

import (
	"context"
	"errors"
	"fmt"
	"os"
)

// ErrMissingAPIKey is a construction-time failure; a client is never built
// without a credential.
var ErrMissingAPIKey = errors.New("api key missing")

// Prompt is one completion request.
type Prompt struct {
	System string
	User   string
}

// Client sends a prompt to a hosted model and returns its text completion.
type Client interface {
	Complete(ctx context.Context, prompt Prompt) (string, error)
	ModelName() string
}

// NewFromEnv builds the provider selected by LLM_PROVIDER (default openai).
func NewFromEnv() (Client, error) {
	provider := os.Getenv("LLM_PROVIDER")
	switch provider {
	case "", "openai":
		return NewOpenAIClient(os.Getenv("OPENAI_API_KEY"))
	case "anthropic":
		return NewAnthropicClient(os.Getenv("ANTHROPIC_API_KEY"))
	default:
		return nil, fmt.Errorf("llm provider %q not supported", provider)
	}
}
