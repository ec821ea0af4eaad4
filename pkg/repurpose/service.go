package repurpose

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/satyam3824/content-repurposer/pkg/llm"
)

// Service rewrites long-form content into a target format with a single
// templated model call per request. Stateless; safe for concurrent use.
type Service struct {
	client llm.Client
}

func NewService(client llm.Client) (*Service, error) {
	if client == nil {
		return nil, errors.New("llm client is required")
	}
	return &Service{client: client}, nil
}

// Repurpose validates the request, renders the format's prompt, issues
// exactly one completion request and checks the response against the
// format's output contract. No retries, no caching; backend failures are
// wrapped opaquely and surfaced as-is.
func (s *Service) Repurpose(ctx context.Context, content string, format Format, params Params) (string, error) {
	if strings.TrimSpace(content) == "" {
		return "", ErrEmptyContent
	}

	t, err := Resolve(format)
	if err != nil {
		return "", err
	}

	data, err := params.apply(t, content)
	if err != nil {
		return "", err
	}

	prompt, err := t.Render(data)
	if err != nil {
		return "", err
	}

	raw, err := s.client.Complete(ctx, llm.Prompt{System: t.System, User: prompt})
	if err != nil {
		return "", fmt.Errorf("llm request failed: %w", err)
	}

	return validateOutput(format, raw)
}
