package align

import "testing"

func TestSplitSentences(t *testing.T) {
	got := SplitSentences("DNA is the genetic material. It contains four bases.")
	want := []string{"DNA is the genetic material.", "It contains four bases."}
	if len(got) != len(want) {
		t.Fatalf("expected %d sentences, got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("sentence %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestSplitSentences_NoTrailingPeriod(t *testing.T) {
	got := SplitSentences("First part! Second part without terminator")
	if len(got) != 2 {
		t.Fatalf("expected 2 sentences, got %d: %v", len(got), got)
	}
	if got[1] != "Second part without terminator" {
		t.Errorf("expected trailing remainder as last sentence, got %q", got[1])
	}
}

func TestSplitSentences_Empty(t *testing.T) {
	if got := SplitSentences(""); len(got) != 0 {
		t.Errorf("expected no sentences for empty input, got %v", got)
	}
}
