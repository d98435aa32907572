package llm

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/inklight/pdfmark/internal/align"
	"github.com/inklight/pdfmark/internal/chunker"
)

// HighlightGroup is one model-selected group of a chunk's sentences,
// destined to become one visual highlight with an attached note.
type HighlightGroup struct {
	// GroupIndices are 0-based chunk-local sentence positions, in the
	// order the model listed them.
	GroupIndices []int

	// PageIndex is the page of the first referenced sentence. Chunks
	// never span pages, so it is the page of every referenced sentence.
	PageIndex int

	// WordIndices is the concatenation of each referenced sentence's
	// word indices, in group order. Duplicates across sentences are
	// preserved; this is not a sorted set.
	WordIndices []int

	// Explanation is the model's concept explanation, trimmed.
	Explanation string

	// Sentences are the referenced sentences themselves, in group
	// order. The annotation writer synthesizes rectangles per sentence,
	// not from the merged word list.
	Sentences []align.Sentence
}

var groupLineRe = regexp.MustCompile(`^\s*([0-9,\s]+):\s*(.+)$`)

var codeFenceRe = regexp.MustCompile("(?s)^```[a-z]*\\s*(.*?)\\s*```$")

// DecodeGroups parses the model's response into highlight groups. Each
// line is matched against "indices: explanation"; lines that do not
// match are ignored. Indices are 1-based in the wire format; anything
// non-numeric or outside the chunk is silently dropped, and a line with
// zero valid indices left is dropped entirely. Parsing never fails —
// a fully malformed response just yields no groups.
func DecodeGroups(output string, c chunker.Chunk) []HighlightGroup {
	output = stripCodeFence(output)

	var groups []HighlightGroup
	for _, line := range strings.Split(output, "\n") {
		m := groupLineRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		var indices []int
		for _, part := range strings.Split(m[1], ",") {
			n, err := strconv.Atoi(strings.TrimSpace(part))
			if err != nil {
				continue
			}
			local := n - 1
			if local < 0 || local >= len(c.Sentences) {
				continue
			}
			indices = append(indices, local)
		}
		if len(indices) == 0 {
			continue
		}

		g := HighlightGroup{
			GroupIndices: indices,
			PageIndex:    c.Sentences[indices[0]].PageIndex,
			Explanation:  strings.TrimSpace(m[2]),
		}
		for _, idx := range indices {
			s := c.Sentences[idx]
			g.WordIndices = append(g.WordIndices, s.WordIndices...)
			g.Sentences = append(g.Sentences, s)
		}
		groups = append(groups, g)
	}
	return groups
}

func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if m := codeFenceRe.FindStringSubmatch(s); len(m) > 1 {
		return m[1]
	}
	return s
}
