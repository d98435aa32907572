package bbox

import (
	"testing"

	"github.com/inklight/pdfmark/internal/pdfdoc"
)

func word(text string, x0, y0, x1, y1 float64) pdfdoc.WordToken {
	return pdfdoc.WordToken{Text: text, X0: x0, Y0: y0, X1: x1, Y1: y1}
}

func TestSynthesize_LineGrouping(t *testing.T) {
	words := []pdfdoc.WordToken{
		word("a", 10, 20.0, 20, 32),
		word("b", 25, 20.4, 40, 32.4),
		word("c", 10, 50.0, 30, 62),
	}
	rects := Synthesize(words, []int{0, 1, 2}, 2, 0)

	if len(rects) != 2 {
		t.Fatalf("expected 2 line rects, got %d", len(rects))
	}
	// First two words share a line bucket.
	first := rects[0]
	if first.X0 != 10 || first.X1 != 40 {
		t.Errorf("first rect x-extent: expected [10,40], got [%v,%v]", first.X0, first.X1)
	}
	if first.Y0 != 20.0 {
		t.Errorf("first rect y0: expected 20.0, got %v", first.Y0)
	}
	second := rects[1]
	if second.Y0 != 50.0 {
		t.Errorf("second rect y0: expected 50.0, got %v", second.Y0)
	}
}

func TestSynthesize_MarginApplied(t *testing.T) {
	words := []pdfdoc.WordToken{word("a", 10, 20, 20, 30)}
	rects := Synthesize(words, []int{0}, 2, 1.5)

	if len(rects) != 1 {
		t.Fatalf("expected 1 rect, got %d", len(rects))
	}
	r := rects[0]
	if r.X0 != 8.5 || r.Y0 != 18.5 || r.X1 != 21.5 || r.Y1 != 31.5 {
		t.Errorf("margin not applied: got %+v", r)
	}
}

func TestSynthesize_OutOfRangeSkipped(t *testing.T) {
	words := []pdfdoc.WordToken{word("a", 10, 20, 20, 30)}
	rects := Synthesize(words, []int{-1, 0, 7}, 2, 0)

	if len(rects) != 1 {
		t.Fatalf("expected out-of-range indices skipped, got %d rects", len(rects))
	}
}

func TestSynthesize_Empty(t *testing.T) {
	if rects := Synthesize(nil, nil, 2, 1); len(rects) != 0 {
		t.Errorf("expected no rects for empty input, got %d", len(rects))
	}
	if rects := Synthesize([]pdfdoc.WordToken{word("a", 0, 0, 1, 1)}, []int{9}, 2, 1); len(rects) != 0 {
		t.Errorf("expected no rects when all indices are out of range, got %d", len(rects))
	}
}

func TestSynthesize_DeterministicOrder(t *testing.T) {
	words := []pdfdoc.WordToken{
		word("low", 10, 80, 20, 92),
		word("high", 10, 20, 20, 32),
	}
	rects := Synthesize(words, []int{0, 1}, 2, 0)
	if len(rects) != 2 {
		t.Fatalf("expected 2 rects, got %d", len(rects))
	}
	if rects[0].Y0 > rects[1].Y0 {
		t.Errorf("rects not in line order: %v", rects)
	}
}
