package service

import (
	"fmt"
	"strings"

	"github.com/binaryn3xus/AIForge/internal/model"
)

const instruction = "You are a helpful assistant. Answer the question using only the provided context.\n" +
	"If the context does not contain the answer, say that you do not have that information."

// BuildContext concatenates chunks one per line, in the order given.
// Returns the empty string for zero chunks.
func BuildContext(chunks []model.Chunk) string {
	if len(chunks) == 0 {
		return ""
	}
	lines := make([]string, len(chunks))
	for i, ch := range chunks {
		lines[i] = "- " + ch.Text
	}
	return strings.Join(lines, "\n")
}

// BuildPrompt composes the generation prompt. Context and question are
// inserted verbatim, no escaping.
func BuildPrompt(contextText, question string) string {
	return fmt.Sprintf("%s\n\nContext:\n%s\n\nQuestion: %s\n\nAnswer:", instruction, contextText, question)
}
