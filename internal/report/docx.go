package report

import (
	"bytes"
	"fmt"

	"github.com/fumiama/go-docx"

	"github.com/inklight/pdfmark/internal/llm"
)

// BuildDocx renders a highlight summary as a DOCX document: per page,
// each highlight's explanation followed by its supporting sentences.
// Groups are expected in chunk order so the numbering matches the
// annotations drawn on the PDF.
func BuildDocx(title string, groups []llm.HighlightGroup) ([]byte, error) {
	w := docx.New().WithDefaultTheme()

	w.AddParagraph().AddText(title).Size("32").Bold()
	w.AddParagraph().AddText(fmt.Sprintf("%d highlights", len(groups))).Color("666666")

	currentPage := -1
	n := 0
	for _, g := range groups {
		if g.PageIndex != currentPage {
			currentPage = g.PageIndex
			w.AddParagraph().AddText(fmt.Sprintf("Page %d", currentPage+1)).Size("28").Bold()
		}
		n++
		w.AddParagraph().AddText(fmt.Sprintf("%d. %s", n, PlainText(g.Explanation))).Bold()
		for _, s := range g.Sentences {
			w.AddParagraph().AddText(s.Text)
		}
	}

	var buf bytes.Buffer
	if _, err := w.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("write docx: %w", err)
	}
	return buf.Bytes(), nil
}
