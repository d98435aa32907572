package align

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldMarks decomposes to NFD and removes combining marks, collapsing
// accented letters to their base letter.
var foldMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize canonicalizes a word for tolerant comparison: diacritics
// collapse to the base letter, remaining non-ASCII runes are dropped,
// leading/trailing non-word characters are stripped, and the result is
// lowercased. Fully non-Latin input degrades to the empty string; that
// is a known limitation of the matcher, not something callers should
// work around. Normalize is idempotent.
func Normalize(word string) string {
	folded, _, err := transform.String(foldMarks, word)
	if err != nil {
		folded = word
	}
	ascii := strings.Map(func(r rune) rune {
		if r > unicode.MaxASCII {
			return -1
		}
		return r
	}, folded)
	trimmed := strings.TrimFunc(ascii, func(r rune) bool {
		return !isWordRune(r)
	})
	return strings.ToLower(trimmed)
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
