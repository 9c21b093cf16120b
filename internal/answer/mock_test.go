package answer

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnswerQuestionMock_FranceScenario(t *testing.T) {
	got := AnswerQuestionMock(
		"What is the capital of France?",
		Multiple("Paris is the capital of France.", "France is in Europe."),
		ModelConfig{},
	)

	want := "Based on the context about 'What is the capital of France?', here is a summary: " +
		"Paris is the capital of France.\nFrance is in Europe...."
	assert.Equal(t, want, got)
}

func TestAnswerQuestionMock_SingleString(t *testing.T) {
	got := AnswerQuestionMock("Q", Single("Single string context"), ModelConfig{})

	assert.Equal(t, "Based on the context about 'Q', here is a summary: Single string context...", got)
}

func TestAnswerQuestionMock_TruncatesTo100Characters(t *testing.T) {
	long := strings.Repeat("abcdefghij", 15)

	got := AnswerQuestionMock("Why?", Single(long), ModelConfig{})

	assert.Contains(t, got, "Why?")
	assert.Contains(t, got, long[:100])
	assert.NotContains(t, got, long[:101])
	assert.True(t, strings.HasSuffix(got, long[:100]+"..."))
}

func TestAnswerQuestionMock_TruncatesByCharacter(t *testing.T) {
	long := strings.Repeat("é", 150)

	got := AnswerQuestionMock("q", Single(long), ModelConfig{})

	want := "Based on the context about 'q', here is a summary: " + strings.Repeat("é", 100) + "..."
	assert.Equal(t, want, got)
}

func TestAnswerQuestionMock_Deterministic(t *testing.T) {
	docs := Multiple("one", "two", strings.Repeat("x", 300))
	configs := []ModelConfig{
		{},
		{APIKey: "sk-ignored"},
		ModelConfig{}.WithName("gpt-4").WithTemperature(0).WithMaxTokens(1),
	}

	first := AnswerQuestionMock("q", docs, ModelConfig{})
	for _, cfg := range configs {
		assert.Equal(t, first, AnswerQuestionMock("q", docs, cfg))
		assert.Equal(t, first, AnswerQuestionMock("q", docs, cfg))
	}
}

func TestTruncateRunes(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want string
	}{
		{"", 5, ""},
		{"abc", 5, "abc"},
		{"abcdef", 3, "abc"},
		{"abc", 3, "abc"},
		{"日本語テキスト", 3, "日本語"},
		{"abc", 0, ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, truncateRunes(tt.in, tt.n), "truncateRunes(%q, %d)", tt.in, tt.n)
	}
}

func TestMockLLM_Complete(t *testing.T) {
	tests := []struct {
		name     string
		mock     *MockLLM
		wantErr  bool
		wantText string
	}{
		{
			name:     "fixed response",
			mock:     NewMockLLM("Paris"),
			wantText: "Paris",
		},
		{
			name:    "error response",
			mock:    NewMockLLMWithError(errors.New("mock error")),
			wantErr: true,
		},
		{
			name:     "default response names the model",
			mock:     &MockLLM{},
			wantText: "mock answer from gpt-4o-mini",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := Request{Params: ModelConfig{}.Resolve(), Prompt: BuildPrompt("q", Single("c"))}

			text, err := tt.mock.Complete(context.Background(), req)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantText, text)
			}

			assert.Equal(t, 1, tt.mock.Calls)
			assert.Equal(t, req, tt.mock.LastRequest)
		})
	}
}
