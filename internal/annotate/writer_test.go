package annotate

import (
	"testing"

	"github.com/inklight/pdfmark/internal/align"
	"github.com/inklight/pdfmark/internal/llm"
	"github.com/inklight/pdfmark/internal/pdfdoc"
)

func twoLinePage() []pdfdoc.WordToken {
	// Words 0-2 on one visual line, words 3-4 on the next.
	return []pdfdoc.WordToken{
		{Text: "DNA", X0: 10, Y0: 700, X1: 40, Y1: 712, PageIndex: 0},
		{Text: "is", X0: 44, Y0: 700, X1: 55, Y1: 712, PageIndex: 0},
		{Text: "genetic", X0: 59, Y0: 700.6, X1: 110, Y1: 712.6, PageIndex: 0},
		{Text: "material", X0: 10, Y0: 686, X1: 70, Y1: 698, PageIndex: 0},
		{Text: "indeed", X0: 74, Y0: 686, X1: 115, Y1: 698, PageIndex: 0},
	}
}

func TestApply_RectAndNoteCounts(t *testing.T) {
	words := twoLinePage()
	pageWords := pdfdoc.WordMap{0: words}

	// One group spanning two sentences, each sentence touching both
	// visual lines: 2 rects per sentence, 4 total, but only 1 note.
	groups := []llm.HighlightGroup{
		{
			GroupIndices: []int{0, 1},
			PageIndex:    0,
			WordIndices:  []int{0, 1, 3, 2, 4},
			Explanation:  "explains DNA",
			Sentences: []align.Sentence{
				{GlobalIndex: 0, PageIndex: 0, Text: "a", WordIndices: []int{0, 1, 3}},
				{GlobalIndex: 1, PageIndex: 0, Text: "b", WordIndices: []int{2, 4}},
			},
		},
	}

	rec := pdfdoc.NewRecorder()
	w := NewWriter(2, 1, pdfdoc.Color{R: 1, G: 0.85, B: 0.3})
	if err := w.Apply(rec, groups, pageWords); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	set := rec.Snapshot()
	if len(set.Rects) != 4 {
		t.Fatalf("expected 4 rects (2 per sentence), got %d", len(set.Rects))
	}
	if len(set.Notes) != 1 {
		t.Fatalf("expected exactly 1 note per group, got %d", len(set.Notes))
	}
	if set.Notes[0].Text != "explains DNA" {
		t.Errorf("note text: expected %q, got %q", "explains DNA", set.Notes[0].Text)
	}
	for _, r := range set.Rects {
		if r.Opacity != Opacity {
			t.Errorf("expected fixed opacity %v, got %v", Opacity, r.Opacity)
		}
		if r.Page != 0 {
			t.Errorf("expected page 0, got %d", r.Page)
		}
	}
}

func TestApply_NoteAnchoredAtFirstRect(t *testing.T) {
	words := twoLinePage()
	pageWords := pdfdoc.WordMap{0: words}
	groups := []llm.HighlightGroup{
		{
			GroupIndices: []int{0},
			PageIndex:    0,
			WordIndices:  []int{0, 1},
			Explanation:  "**explains** DNA",
			Sentences: []align.Sentence{
				{GlobalIndex: 0, PageIndex: 0, Text: "a", WordIndices: []int{0, 1}},
			},
		},
	}

	rec := pdfdoc.NewRecorder()
	w := NewWriter(2, 1, pdfdoc.Color{R: 1, G: 1, B: 0})
	if err := w.Apply(rec, groups, pageWords); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	set := rec.Snapshot()
	if len(set.Rects) != 1 || len(set.Notes) != 1 {
		t.Fatalf("expected 1 rect and 1 note, got %d/%d", len(set.Rects), len(set.Notes))
	}
	r := set.Rects[0].Rect
	n := set.Notes[0]
	if n.At.X != r.X0 || n.At.Y != r.Y0 {
		t.Errorf("note not anchored at rect corner: note %+v, rect %+v", n.At, r)
	}
	if n.Text != "explains DNA" {
		t.Errorf("markdown not stripped from note: %q", n.Text)
	}
}

func TestApply_TwoGroupsTwoNotes(t *testing.T) {
	words := twoLinePage()
	pageWords := pdfdoc.WordMap{0: words}
	g := func(idx int, wi []int) llm.HighlightGroup {
		return llm.HighlightGroup{
			GroupIndices: []int{idx},
			PageIndex:    0,
			WordIndices:  wi,
			Explanation:  "x",
			Sentences: []align.Sentence{
				{GlobalIndex: idx, PageIndex: 0, Text: "s", WordIndices: wi},
			},
		}
	}

	rec := pdfdoc.NewRecorder()
	w := NewWriter(2, 1, pdfdoc.Color{R: 1, G: 1, B: 0})
	if err := w.Apply(rec, []llm.HighlightGroup{g(0, []int{0, 1}), g(1, []int{3, 4})}, pageWords); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	set := rec.Snapshot()
	if len(set.Notes) != 2 {
		t.Errorf("expected one note per group, got %d", len(set.Notes))
	}
}
