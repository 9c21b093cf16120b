package answer

import "fmt"

// mockContextChars is how much of the normalized context the mock echoes.
const mockContextChars = 100

// AnswerQuestionMock answers without any network access by echoing the
// question and the first 100 characters of the normalized context. The config
// is accepted for signature parity and otherwise ignored.
func AnswerQuestionMock(question string, docs Context, _ ModelConfig) string {
	return fmt.Sprintf("Based on the context about '%s', here is a summary: %s...",
		question, truncateRunes(docs.Normalize(), mockContextChars))
}

func truncateRunes(s string, n int) string {
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}
