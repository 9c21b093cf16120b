package answer

import (
	"context"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"
)

// OpenAILLM implements the LLM interface using OpenAI's chat-completion API.
type OpenAILLM struct {
	client openai.Client
}

// NewOpenAILLM creates an OpenAI-backed LLM for one credential and endpoint.
// The client's own retries are disabled; callers own retry policy.
func NewOpenAILLM(apiKey, baseURL string) (*OpenAILLM, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	client := openai.NewClient(
		option.WithAPIKey(apiKey),
		option.WithBaseURL(baseURL),
		option.WithMaxRetries(0),
	)

	return &OpenAILLM{client: client}, nil
}

// Complete sends the system/user pair to OpenAI and returns the first choice.
// Errors from the API client are returned as-is.
func (o *OpenAILLM) Complete(ctx context.Context, req Request) (string, error) {
	params := openai.ChatCompletionNewParams{
		Model: shared.ChatModel(req.Params.Model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(req.Prompt.System),
			openai.UserMessage(req.Prompt.User),
		},
		Temperature: openai.Float(req.Params.Temperature),
		MaxTokens:   openai.Int(int64(req.Params.MaxTokens)),
	}

	completion, err := o.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", err
	}

	if len(completion.Choices) == 0 {
		return "", ErrNoChoices
	}

	return completion.Choices[0].Message.Content, nil
}
