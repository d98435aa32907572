package align

import (
	"strings"

	"github.com/inklight/pdfmark/internal/pdfdoc"
)

// Sentence is a tokenizer-derived sentence mapped onto an ordered,
// strictly increasing subset of one page's word-list positions. It is
// built once during alignment and immutable afterwards.
type Sentence struct {
	GlobalIndex int
	PageIndex   int
	Text        string
	WordIndices []int
}

// Page aligns one page: the page text (word texts joined by spaces) is
// sentence-tokenized and each sentence is matched back onto the word
// list with a single forward pointer.
//
// The pointer never backtracks. A token that finds no match before the
// word list is exhausted is skipped; a sentence that matches zero words
// is dropped and leaves the pointer where it was. This is a cheap
// amortized O(n) heuristic tolerant of punctuation and whitespace drift
// between the tokenizer and the PDF engine's word boundaries. The cost
// is that one spurious match early on a page can misalign the rest of
// that page; the damage is localized because the next page aligns
// against its own fresh word list.
func Page(words []pdfdoc.WordToken, pageIndex int) []Sentence {
	texts := make([]string, len(words))
	for i, w := range words {
		texts[i] = w.Text
	}
	return AlignSentences(words, SplitSentences(strings.Join(texts, " ")), pageIndex)
}

// AlignSentences matches pre-tokenized sentences onto the word list.
// GlobalIndex is left at zero; the caller reindexes across pages.
func AlignSentences(words []pdfdoc.WordToken, sentences []string, pageIndex int) []Sentence {
	var out []Sentence
	wordPtr := 0

	for _, text := range sentences {
		cursor := wordPtr
		var indices []int
		for _, token := range strings.Fields(text) {
			want := Normalize(token)
			for i := cursor; i < len(words); i++ {
				if Normalize(words[i].Text) == want {
					indices = append(indices, i)
					cursor = i + 1
					break
				}
			}
		}
		if len(indices) == 0 {
			continue
		}
		out = append(out, Sentence{
			PageIndex:   pageIndex,
			Text:        text,
			WordIndices: indices,
		})
		wordPtr = indices[len(indices)-1] + 1
	}
	return out
}

// Reindex assigns global sentence indices across the page-ordered
// sentence lists and returns the flattened sequence. Per-page alignment
// has no cross-page dependency, so pages may be aligned in parallel as
// long as this merge runs afterwards in page order.
func Reindex(perPage [][]Sentence) []Sentence {
	var all []Sentence
	for _, page := range perPage {
		all = append(all, page...)
	}
	for i := range all {
		all[i].GlobalIndex = i
	}
	return all
}
