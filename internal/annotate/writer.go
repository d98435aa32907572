// Package annotate projects highlight groups back onto the PDF as
// rectangle and note annotations.
package annotate

import (
	"fmt"

	"github.com/inklight/pdfmark/internal/bbox"
	"github.com/inklight/pdfmark/internal/llm"
	"github.com/inklight/pdfmark/internal/pdfdoc"
	"github.com/inklight/pdfmark/internal/report"
)

// Opacity of highlight rectangles. Fixed; only the color is
// configurable.
const Opacity = 0.2

// Writer applies highlight groups to a document through the engine
// interface. The engine is owned exclusively by the writer for the
// duration of Apply.
type Writer struct {
	LineTolerance float64
	Margin        float64
	Color         pdfdoc.Color
}

func NewWriter(lineTolerance, margin float64, color pdfdoc.Color) *Writer {
	if lineTolerance <= 0 {
		lineTolerance = bbox.DefaultLineTolerance
	}
	if margin < 0 {
		margin = bbox.DefaultMargin
	}
	return &Writer{LineTolerance: lineTolerance, Margin: margin, Color: color}
}

// Apply draws every group's annotations. Rectangles are synthesized per
// referenced sentence, not from the merged group word list, so a
// multi-sentence group covers the union of each sentence's own line
// rectangles. The very first rectangle of each group additionally gets
// one note annotation anchored at its bottom-left corner carrying the
// plain-texted explanation; no other rectangle gets a note.
func (w *Writer) Apply(eng pdfdoc.Engine, groups []llm.HighlightGroup, pageWords pdfdoc.WordMap) error {
	for _, g := range groups {
		noteAttached := false
		note := report.PlainText(g.Explanation)
		for _, s := range g.Sentences {
			words := pageWords[s.PageIndex]
			rects := bbox.Synthesize(words, s.WordIndices, w.LineTolerance, w.Margin)
			for _, r := range rects {
				if err := eng.AddFilledRect(s.PageIndex, r, w.Color, Opacity); err != nil {
					return fmt.Errorf("add rect on page %d: %w", s.PageIndex, err)
				}
				if !noteAttached {
					noteAttached = true
					if err := eng.AddTextNote(s.PageIndex, pdfdoc.Point{X: r.X0, Y: r.Y0}, note); err != nil {
						return fmt.Errorf("add note on page %d: %w", s.PageIndex, err)
					}
				}
			}
		}
	}
	return nil
}
