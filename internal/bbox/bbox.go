// Package bbox turns sets of word indices back into per-line highlight
// rectangles.
package bbox

import (
	"math"
	"sort"

	"github.com/inklight/pdfmark/internal/pdfdoc"
)

// Defaults for line clustering, in source (page) units.
const (
	DefaultLineTolerance = 2.0
	DefaultMargin        = 1.0
)

// Synthesize clusters the referenced words into one rectangle per
// visual line. Words are bucketed by round(y0/lineTolerance); each
// bucket becomes the bounding rectangle of its words expanded by
// margin on every side. This is a quantization heuristic, not exact
// line detection: a small tolerance is robust to sub-pixel y-jitter, a
// large one can merge numerically close lines.
//
// Out-of-range indices are skipped. Empty input yields no rectangles.
// Rectangles come out in ascending line-key order, so output is
// deterministic for a given input.
func Synthesize(words []pdfdoc.WordToken, indices []int, lineTolerance, margin float64) []pdfdoc.Rect {
	if lineTolerance <= 0 {
		lineTolerance = DefaultLineTolerance
	}

	lines := make(map[int64]*pdfdoc.Rect)
	for _, idx := range indices {
		if idx < 0 || idx >= len(words) {
			continue
		}
		w := words[idx]
		key := int64(math.Round(w.Y0 / lineTolerance))
		r, ok := lines[key]
		if !ok {
			lines[key] = &pdfdoc.Rect{X0: w.X0, Y0: w.Y0, X1: w.X1, Y1: w.Y1}
			continue
		}
		if w.X0 < r.X0 {
			r.X0 = w.X0
		}
		if w.Y0 < r.Y0 {
			r.Y0 = w.Y0
		}
		if w.X1 > r.X1 {
			r.X1 = w.X1
		}
		if w.Y1 > r.Y1 {
			r.Y1 = w.Y1
		}
	}
	if len(lines) == 0 {
		return nil
	}

	keys := make([]int64, 0, len(lines))
	for k := range lines {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	rects := make([]pdfdoc.Rect, 0, len(keys))
	for _, k := range keys {
		r := lines[k]
		rects = append(rects, pdfdoc.Rect{
			X0: r.X0 - margin,
			Y0: r.Y0 - margin,
			X1: r.X1 + margin,
			Y1: r.Y1 + margin,
		})
	}
	return rects
}
