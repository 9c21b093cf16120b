package answer

import (
	"fmt"
	"strings"

	"github.com/spf13/cast"
)

// Context is the background text an answer is grounded on: either a single
// string or an ordered sequence of documents.
type Context struct {
	docs     []string
	multiple bool
}

// Single wraps one string of context.
func Single(text string) Context {
	return Context{docs: []string{text}}
}

// Multiple wraps an ordered sequence of documents.
func Multiple(docs ...string) Context {
	cp := make([]string, len(docs))
	copy(cp, docs)
	return Context{docs: cp, multiple: true}
}

// ContextOf coerces loosely typed input into a Context. Slices become
// Multiple, everything else becomes Single of its string form.
func ContextOf(v any) Context {
	switch c := v.(type) {
	case Context:
		return c
	case string:
		return Single(c)
	case []string:
		return Multiple(c...)
	case []any:
		docs := make([]string, len(c))
		for i, d := range c {
			docs[i] = toText(d)
		}
		return Multiple(docs...)
	default:
		return Single(toText(v))
	}
}

func toText(v any) string {
	if v == nil {
		return ""
	}
	s, err := cast.ToStringE(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return s
}

// IsMultiple reports whether the context was given as a sequence.
func (c Context) IsMultiple() bool {
	return c.multiple
}

// Docs returns a copy of the underlying documents.
func (c Context) Docs() []string {
	cp := make([]string, len(c.docs))
	copy(cp, c.docs)
	return cp
}

// Normalize resolves the context to the single string used in prompts.
// Sequences are joined with newlines in their given order.
func (c Context) Normalize() string {
	if !c.multiple {
		if len(c.docs) == 0 {
			return ""
		}
		return c.docs[0]
	}
	return strings.Join(c.docs, "\n")
}
