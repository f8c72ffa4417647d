// Package llm abstracts the generative-text APIs used to explain verses.
package llm

import (
	"context"
	"errors"
)

var (
	// ErrMissingAPIKey is returned by NewProvider when the provider's key is not set.
	ErrMissingAPIKey = errors.New("api key not set")
	// ErrUnsupportedProvider is returned by NewProvider for unknown provider names.
	ErrUnsupportedProvider = errors.New("unsupported provider")
)

// Provider defines the interface for LLM providers.
type Provider interface {
	// Complete sends a completion request and returns the response.
	Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error)
	// Name returns the name of this provider.
	Name() string
}
