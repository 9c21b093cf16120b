package answer

import (
	"fmt"
	"strings"
)

// SystemInstruction is the fixed system-role message sent with every request.
const SystemInstruction = "You are a helpful assistant that answers questions based on the provided context."

// Prompt is the system/user message pair sent to the model.
type Prompt struct {
	System string
	User   string
}

// BuildPrompt embeds the normalized context and the question in the user
// message, instructing the model to answer only from that context.
func BuildPrompt(question string, docs Context) Prompt {
	var b strings.Builder

	b.WriteString("Context:\n")
	b.WriteString(docs.Normalize())
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("Question: %s\n\n", question))
	b.WriteString("Provide a concise answer based ONLY on the information in the context above.\n")
	b.WriteString("If the context doesn't contain enough information, say so.")

	return Prompt{
		System: SystemInstruction,
		User:   b.String(),
	}
}
