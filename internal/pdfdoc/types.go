package pdfdoc

// WordToken is one word extracted from a PDF page together with its
// bounding box. Tokens are immutable and kept in extraction order,
// which is not guaranteed to be reading order.
type WordToken struct {
	Text      string
	X0        float64
	Y0        float64
	X1        float64
	Y1        float64
	BlockNo   int
	LineNo    int
	WordNo    int
	PageIndex int
}

// Rect is an axis-aligned rectangle in page coordinates.
type Rect struct {
	X0 float64 `json:"x0"`
	Y0 float64 `json:"y0"`
	X1 float64 `json:"x1"`
	Y1 float64 `json:"y1"`
}

// Point is a position in page coordinates.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Color is an RGB triple with components in [0,1].
type Color struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
}

// PageWords is the extraction result for one page: the ordered word list
// plus the page text the sentence tokenizer runs over (word texts joined
// by single spaces).
type PageWords struct {
	Index int
	Words []WordToken
	Text  string
}

// WordMap indexes each page's word list by page index. It is built once
// per run and treated as immutable afterwards.
type WordMap map[int][]WordToken

// BuildWordMap converts extracted pages into a WordMap.
func BuildWordMap(pages []PageWords) WordMap {
	m := make(WordMap, len(pages))
	for _, p := range pages {
		m[p.Index] = p.Words
	}
	return m
}
