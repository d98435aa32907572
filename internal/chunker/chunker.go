package chunker

import "github.com/inklight/pdfmark/internal/align"

// DefaultChunkSize is the number of sentences sent to the model per call.
const DefaultChunkSize = 60

// Chunk is a fixed-size window of sequential sentences, contiguous in
// global index. Chunks partition the full sentence sequence with no
// gaps and no overlap, and never span a page boundary, so every group
// the model returns maps onto exactly one page.
type Chunk struct {
	Index     int
	Sentences []align.Sentence
}

// PageIndex returns the page all sentences in the chunk belong to.
func (c Chunk) PageIndex() int {
	if len(c.Sentences) == 0 {
		return 0
	}
	return c.Sentences[0].PageIndex
}

// Split partitions the global sentence list into chunks of at most size
// sentences. A new chunk starts whenever the window fills or the page
// changes. No reordering, no overlap; concatenating all chunks yields
// the input sequence exactly.
func Split(sentences []align.Sentence, size int) []Chunk {
	if size <= 0 {
		size = DefaultChunkSize
	}

	var chunks []Chunk
	var current []align.Sentence

	flush := func() {
		if len(current) > 0 {
			chunks = append(chunks, Chunk{Index: len(chunks), Sentences: current})
			current = nil
		}
	}

	for _, s := range sentences {
		if len(current) > 0 {
			if len(current) >= size || current[len(current)-1].PageIndex != s.PageIndex {
				flush()
			}
		}
		current = append(current, s)
	}
	flush()
	return chunks
}
