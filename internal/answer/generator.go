package answer

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
)

// Generator answers questions from supplied context by invoking an LLM once.
// It performs no retries and keeps no state between calls.
type Generator struct {
	llm LLM
}

// NewGenerator creates a generator backed by the given LLM implementation.
func NewGenerator(llm LLM) *Generator {
	return &Generator{llm: llm}
}

// Answer builds the prompt, resolves generation parameters and returns the
// model's answer. Errors from the LLM are returned unmodified.
func (g *Generator) Answer(ctx context.Context, question string, docs Context, cfg ModelConfig) (string, error) {
	if g == nil || g.llm == nil {
		return "", fmt.Errorf("%w: LLM is required", ErrInvalidConfig)
	}

	prompt := BuildPrompt(question, docs)
	params := cfg.Resolve()

	zerolog.Ctx(ctx).Debug().
		Str("model", params.Model).
		Float64("temperature", params.Temperature).
		Int("max_tokens", params.MaxTokens).
		Int("context_len", len(docs.Normalize())).
		Msg("requesting completion")

	return g.llm.Complete(ctx, Request{Params: params, Prompt: prompt})
}

// AnswerQuestion answers question from docs using the OpenAI API. A new
// client is created for every call from cfg's credential and endpoint.
func AnswerQuestion(ctx context.Context, question string, docs Context, cfg ModelConfig) (string, error) {
	llm, err := NewOpenAILLM(cfg.APIKey, cfg.BaseURL)
	if err != nil {
		return "", err
	}
	return NewGenerator(llm).Answer(ctx, question, docs, cfg)
}
