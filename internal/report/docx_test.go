package report

import (
	"bytes"
	"testing"

	"github.com/inklight/pdfmark/internal/align"
	"github.com/inklight/pdfmark/internal/llm"
)

func TestBuildDocx(t *testing.T) {
	groups := []llm.HighlightGroup{
		{
			GroupIndices: []int{0},
			PageIndex:    0,
			Explanation:  "**explains** DNA",
			Sentences: []align.Sentence{
				{GlobalIndex: 0, PageIndex: 0, Text: "DNA is the genetic material.", WordIndices: []int{0, 1, 2, 3, 4}},
			},
		},
	}

	data, err := BuildDocx("paper.pdf", groups)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("expected non-empty docx bytes")
	}
	// DOCX is a zip container.
	if !bytes.HasPrefix(data, []byte("PK")) {
		t.Errorf("expected zip magic at start, got %q", data[:2])
	}
}
