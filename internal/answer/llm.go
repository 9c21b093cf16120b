// Package answer generates context-grounded answers to questions with an LLM.
// It defines a provider-agnostic LLM interface with an OpenAI implementation and
// a deterministic mock for testing, plus an offline mock generator that never
// touches the network.
package answer

import (
	"context"
	"errors"
)

var (
	ErrInvalidConfig = errors.New("invalid model configuration")
	ErrMissingAPIKey = errors.New("missing API key")
	ErrNoChoices     = errors.New("completion returned no choices")
)

// LLM defines the interface for interacting with chat-completion models.
// Implementations must be stateless and thread-safe.
type LLM interface {
	// Complete sends the prompt with the given generation parameters and
	// returns the text of the first completion choice.
	Complete(ctx context.Context, req Request) (string, error)
}

// Request is a single chat-completion call.
type Request struct {
	Params Params
	Prompt Prompt
}
