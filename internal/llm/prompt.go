package llm

import (
	"fmt"
	"strings"

	"github.com/inklight/pdfmark/internal/chunker"
)

// SelectionPrompt is the fixed instruction block sent ahead of every
// chunk. The response format it requests is what DecodeGroups parses.
const SelectionPrompt = `Below is a numbered list of sentences taken from one page of a document.

Identify the key concepts on this page. For each key concept, pick the at most 2 sentence numbers most essential to understanding it, and write one concise explanation of the concept.

Respond with exactly one line per key concept, in this format:
<sentence numbers, comma-separated>: <explanation>

Example:
3,5: Defines the replication mechanism and its error rate.

Rules:
- Use only numbers that appear in the list.
- At most 2 numbers per line.
- No headers, no numbering of the lines themselves, no other text.`

// EncodeChunk renders the outbound prompt: the instruction block
// followed by the chunk's sentences as "{1-based index}: {text}" lines.
func EncodeChunk(c chunker.Chunk) string {
	var sb strings.Builder
	sb.WriteString(SelectionPrompt)
	sb.WriteString("\n\n---\n")
	for i, s := range c.Sentences {
		sb.WriteString(fmt.Sprintf("%d: %s\n", i+1, s.Text))
	}
	return sb.String()
}
