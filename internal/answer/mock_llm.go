package answer

import (
	"context"
	"fmt"
)

// MockLLM is a deterministic LLM implementation for testing.
type MockLLM struct {
	// Response is the fixed text returned by Complete.
	// If empty, a default response naming the model is returned.
	Response string

	// Error, if set, is returned by Complete instead of a response.
	Error error

	// Calls counts Complete invocations.
	Calls int

	// LastRequest stores the most recent request passed to Complete.
	LastRequest Request
}

// NewMockLLM creates a mock LLM with the given fixed response.
func NewMockLLM(response string) *MockLLM {
	return &MockLLM{Response: response}
}

// NewMockLLMWithError creates a mock LLM that always returns an error.
func NewMockLLMWithError(err error) *MockLLM {
	return &MockLLM{Error: err}
}

// Complete records the request and returns the configured response or error.
func (m *MockLLM) Complete(ctx context.Context, req Request) (string, error) {
	m.Calls++
	m.LastRequest = req

	if m.Error != nil {
		return "", m.Error
	}

	if m.Response != "" {
		return m.Response, nil
	}

	return fmt.Sprintf("mock answer from %s", req.Params.Model), nil
}
