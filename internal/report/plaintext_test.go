package report

import "testing"

func TestPlainText(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"plain explanation", "plain explanation"},
		{"**bold** and *italic* words", "bold and italic words"},
		{"uses `inline code` here", "uses inline code here"},
		{"<b>tagged</b> text", "tagged text"},
		{"<p>a whole html block</p>", "a whole html block"},
		{"line one\nline two", "line one line two"},
		{"  spaced   out  ", "spaced out"},
		{"", ""},
	}
	for _, c := range cases {
		if got := PlainText(c.in); got != c.want {
			t.Errorf("PlainText(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestPlainText_Idempotent(t *testing.T) {
	for _, in := range []string{"**bold**", "<i>x</i> y", "plain"} {
		once := PlainText(in)
		if twice := PlainText(once); twice != once {
			t.Errorf("PlainText not stable for %q: %q != %q", in, once, twice)
		}
	}
}
