package pdfdoc

import (
	"testing"

	pdflib "github.com/ledongthuc/pdf"
)

func row(texts ...pdflib.Text) *pdflib.Row {
	return &pdflib.Row{Content: texts}
}

func TestAssembleWords_GlyphFragments(t *testing.T) {
	// One show operation per glyph, the common case for embedded fonts.
	rows := pdflib.Rows{row(
		pdflib.Text{S: "D", X: 50.0, Y: 700, W: 7, FontSize: 12},
		pdflib.Text{S: "N", X: 57.2, Y: 700, W: 8, FontSize: 12},
		pdflib.Text{S: "A", X: 65.5, Y: 700, W: 7, FontSize: 12},
		pdflib.Text{S: " ", X: 72.5, Y: 700, W: 3, FontSize: 12},
		pdflib.Text{S: "is", X: 76.0, Y: 700, W: 10, FontSize: 12},
	)}

	words := assembleWords(rows, 0)
	if len(words) != 2 {
		t.Fatalf("expected 2 words, got %d: %+v", len(words), words)
	}
	if words[0].Text != "DNA" || words[1].Text != "is" {
		t.Errorf("expected [DNA is], got [%s %s]", words[0].Text, words[1].Text)
	}
}

func TestAssembleWords_GapSplitsWords(t *testing.T) {
	// No whitespace fragments at all; the 4pt gap after "to" must split
	// (threshold is 25% of the 12pt font = 3pt).
	rows := pdflib.Rows{row(
		pdflib.Text{S: "to", X: 50.0, Y: 700, W: 12, FontSize: 12},
		pdflib.Text{S: "go", X: 66.0, Y: 700, W: 12, FontSize: 12},
	)}

	words := assembleWords(rows, 0)
	if len(words) != 2 {
		t.Fatalf("expected gap to split into 2 words, got %d", len(words))
	}

	// Tight fragments stay joined.
	rows = pdflib.Rows{row(
		pdflib.Text{S: "to", X: 50.0, Y: 700, W: 12, FontSize: 12},
		pdflib.Text{S: "go", X: 62.5, Y: 700, W: 12, FontSize: 12},
	)}
	words = assembleWords(rows, 0)
	if len(words) != 1 || words[0].Text != "togo" {
		t.Fatalf("expected tight fragments joined into 1 word, got %+v", words)
	}
}

func TestAssembleWords_BoxExtents(t *testing.T) {
	rows := pdflib.Rows{row(
		pdflib.Text{S: "a", X: 50.0, Y: 700, W: 5, FontSize: 10},
		pdflib.Text{S: "b", X: 55.5, Y: 700, W: 5, FontSize: 10},
	)}

	words := assembleWords(rows, 3)
	if len(words) != 1 {
		t.Fatalf("expected 1 word, got %d", len(words))
	}
	w := words[0]
	if w.X0 != 50.0 || w.X1 != 60.5 {
		t.Errorf("horizontal extent: got [%v, %v], want [50, 60.5]", w.X0, w.X1)
	}
	// Baseline-anchored: height is the font size.
	if w.Y0 != 700 || w.Y1 != 710 {
		t.Errorf("vertical extent: got [%v, %v], want [700, 710]", w.Y0, w.Y1)
	}
	if w.PageIndex != 3 {
		t.Errorf("page index: got %d, want 3", w.PageIndex)
	}
}

func TestAssembleWords_LineAndWordNumbers(t *testing.T) {
	rows := pdflib.Rows{
		row(
			pdflib.Text{S: "first", X: 50, Y: 700, W: 25, FontSize: 12},
			pdflib.Text{S: " ", X: 75, Y: 700, W: 3, FontSize: 12},
			pdflib.Text{S: "line", X: 79, Y: 700, W: 20, FontSize: 12},
		),
		row(
			pdflib.Text{S: "second", X: 50, Y: 680, W: 35, FontSize: 12},
		),
	}

	words := assembleWords(rows, 0)
	if len(words) != 3 {
		t.Fatalf("expected 3 words, got %d", len(words))
	}
	if words[0].LineNo != 0 || words[1].LineNo != 0 || words[2].LineNo != 1 {
		t.Errorf("line numbers: got %d %d %d", words[0].LineNo, words[1].LineNo, words[2].LineNo)
	}
	// WordNo restarts per line.
	if words[0].WordNo != 0 || words[1].WordNo != 1 || words[2].WordNo != 0 {
		t.Errorf("word numbers: got %d %d %d", words[0].WordNo, words[1].WordNo, words[2].WordNo)
	}
}

func TestAssembleWords_WhitespaceOnlyRow(t *testing.T) {
	rows := pdflib.Rows{row(
		pdflib.Text{S: "  ", X: 50, Y: 700, W: 6, FontSize: 12},
	)}
	if words := assembleWords(rows, 0); len(words) != 0 {
		t.Errorf("expected no words from whitespace-only row, got %d", len(words))
	}
}

func TestJoinWordText(t *testing.T) {
	words := []WordToken{{Text: "DNA"}, {Text: "is"}, {Text: "here."}}
	if got := joinWordText(words); got != "DNA is here." {
		t.Errorf("got %q", got)
	}
}

func TestGapThreshold_Floor(t *testing.T) {
	if th := gapThreshold(2); th != 1.0 {
		t.Errorf("small fonts keep the 1pt floor, got %v", th)
	}
	if th := gapThreshold(20); th != 5.0 {
		t.Errorf("got %v, want 5.0", th)
	}
}
