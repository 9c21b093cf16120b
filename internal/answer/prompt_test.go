package answer

import (
	"strings"
	"testing"
)

func TestBuildPrompt(t *testing.T) {
	p := BuildPrompt("What is the capital of France?",
		Multiple("Paris is the capital of France.", "France is in Europe."))

	if p.System != SystemInstruction {
		t.Fatalf("unexpected system message: %q", p.System)
	}

	want := "Context:\nParis is the capital of France.\nFrance is in Europe.\n\n" +
		"Question: What is the capital of France?\n\n"
	if !strings.HasPrefix(p.User, want) {
		t.Fatalf("user message prefix mismatch:\n got: %q\nwant: %q", p.User, want)
	}
	if !strings.Contains(p.User, "based ONLY on the information in the context above") {
		t.Fatal("missing context-only instruction")
	}
	if !strings.HasSuffix(p.User, "If the context doesn't contain enough information, say so.") {
		t.Fatal("missing insufficient-context instruction")
	}
}

func TestBuildPrompt_ContextBeforeQuestion(t *testing.T) {
	p := BuildPrompt("Q?", Single("CTX"))

	if strings.Index(p.User, "CTX") > strings.Index(p.User, "Question: Q?") {
		t.Fatal("context should precede the question")
	}
}

func TestBuildPrompt_EmptyContext(t *testing.T) {
	p := BuildPrompt("Anything?", Multiple())

	if !strings.HasPrefix(p.User, "Context:\n\n\nQuestion: Anything?") {
		t.Fatalf("unexpected user message: %q", p.User)
	}
}
