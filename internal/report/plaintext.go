// Package report renders highlight results for humans: plain-text
// explanations for PDF notes and a DOCX summary document.
package report

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	gtext "github.com/yuin/goldmark/text"
	"golang.org/x/net/html"
)

// PlainText strips markdown and HTML markup from a model explanation,
// leaving the bare text. Models regularly wrap explanations in bold
// markers, inline code or stray tags; PDF note annotations render none
// of that, so it is removed before the text is attached to the page.
// Whitespace is collapsed to single spaces.
func PlainText(src string) string {
	source := []byte(src)
	md := goldmark.New()
	doc := md.Parser().Parse(gtext.NewReader(source))

	var buf bytes.Buffer
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := n.(type) {
		case *ast.Text:
			buf.Write(t.Segment.Value(source))
			buf.WriteByte(' ')
		case *ast.String:
			buf.Write(t.Value)
			buf.WriteByte(' ')
		case *ast.HTMLBlock:
			// Raw HTML never reaches Text nodes; pull the text out of
			// the markup instead of dropping it.
			buf.WriteString(htmlText(segmentsText(t.Lines(), source)))
			buf.WriteByte(' ')
		case *ast.RawHTML:
			buf.WriteString(htmlText(segmentsText(t.Segments, source)))
			buf.WriteByte(' ')
		case *ast.FencedCodeBlock:
			buf.WriteString(segmentsText(t.Lines(), source))
			buf.WriteByte(' ')
		case *ast.CodeBlock:
			buf.WriteString(segmentsText(t.Lines(), source))
			buf.WriteByte(' ')
		}
		return ast.WalkContinue, nil
	})

	return strings.Join(strings.Fields(buf.String()), " ")
}

func segmentsText(segs *gtext.Segments, source []byte) string {
	if segs == nil {
		return ""
	}
	var sb strings.Builder
	for i := 0; i < segs.Len(); i++ {
		seg := segs.At(i)
		sb.Write(seg.Value(source))
	}
	return sb.String()
}

// htmlText extracts the text content of an HTML fragment.
func htmlText(fragment string) string {
	node, err := html.Parse(strings.NewReader(fragment))
	if err != nil {
		return fragment
	}
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
			sb.WriteByte(' ')
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(node)
	return strings.TrimSpace(sb.String())
}
