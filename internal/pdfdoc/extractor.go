package pdfdoc

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	pdflib "github.com/ledongthuc/pdf"
)

// ExtractWords reads a PDF and produces, per page, the ordered word list
// with bounding boxes plus the joined page text. Pages that fail to
// extract are skipped rather than aborting the whole document.
func ExtractWords(r io.Reader) ([]PageWords, error) {
	// ledongthuc/pdf requires a ReadSeeker+size, so we write to a temp file.
	tmp, err := os.CreateTemp("", "pdfmark-*.pdf")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("write temp file: %w", err)
	}
	tmp.Close()

	return ExtractWordsFile(tmpPath)
}

// ExtractWordsFile is ExtractWords over a file on disk.
func ExtractWordsFile(path string) ([]PageWords, error) {
	f, reader, err := pdflib.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	var pages []PageWords
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		rows, err := page.GetTextByRow()
		if err != nil {
			continue
		}
		pageIndex := i - 1
		words := assembleWords(rows, pageIndex)
		pages = append(pages, PageWords{
			Index: pageIndex,
			Words: words,
			Text:  joinWordText(words),
		})
	}
	return pages, nil
}

// assembleWords turns per-row text fragments into word tokens. The
// library emits one fragment per show operation, often a single glyph,
// so words are rebuilt by splitting on whitespace fragments and on
// horizontal gaps wider than a fraction of the font size. Boxes are
// baseline-anchored: y0 is the baseline, y1 adds the font size, which
// is close enough for line clustering and highlight rects.
func assembleWords(rows pdflib.Rows, pageIndex int) []WordToken {
	var words []WordToken
	for lineNo, row := range rows {
		var cur strings.Builder
		var x0, y0, x1, y1, prevEnd float64
		wordNo := 0

		flush := func() {
			text := strings.TrimSpace(cur.String())
			if text != "" {
				words = append(words, WordToken{
					Text:      text,
					X0:        x0,
					Y0:        y0,
					X1:        x1,
					Y1:        y1,
					LineNo:    lineNo,
					WordNo:    wordNo,
					PageIndex: pageIndex,
				})
				wordNo++
			}
			cur.Reset()
		}

		for _, t := range row.Content {
			if isWhitespaceFragment(t.S) {
				flush()
				continue
			}
			if cur.Len() > 0 && t.X-prevEnd > gapThreshold(t.FontSize) {
				flush()
			}
			if cur.Len() == 0 {
				x0, y0 = t.X, t.Y
				x1, y1 = t.X+t.W, t.Y+t.FontSize
			} else {
				if t.X < x0 {
					x0 = t.X
				}
				if t.X+t.W > x1 {
					x1 = t.X + t.W
				}
				if t.Y < y0 {
					y0 = t.Y
				}
				if t.Y+t.FontSize > y1 {
					y1 = t.Y + t.FontSize
				}
			}
			cur.WriteString(t.S)
			prevEnd = t.X + t.W
		}
		flush()
	}
	return words
}

func gapThreshold(fontSize float64) float64 {
	th := fontSize * 0.25
	if th < 1.0 {
		th = 1.0
	}
	return th
}

func isWhitespaceFragment(s string) bool {
	if s == "" {
		return true
	}
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

func joinWordText(words []WordToken) string {
	parts := make([]string, len(words))
	for i, w := range words {
		parts[i] = w.Text
	}
	return strings.Join(parts, " ")
}
