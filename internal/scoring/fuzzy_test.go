package scoring

import "testing"

func TestTokenSortRatio_OrderInsensitive(t *testing.T) {
	got := TokenSortRatio("nested loops", "loops nested")
	if got != 100 {
		t.Errorf("got %d, want 100", got)
	}
}

func TestTokenSortRatio_Identical(t *testing.T) {
	if got := TokenSortRatio("base case", "base case"); got != 100 {
		t.Errorf("got %d, want 100", got)
	}
}

func TestTokenSortRatio_BothEmpty(t *testing.T) {
	if got := TokenSortRatio("", ""); got != 100 {
		t.Errorf("got %d, want 100", got)
	}
}

func TestTokenSortRatio_Typos(t *testing.T) {
	// "lops nsted" vs "loops nested": two insertions over 12 runes → 83.
	got := TokenSortRatio("nsted lops", "nested loops")
	if got != 83 {
		t.Errorf("got %d, want 83", got)
	}
}

func TestTokenSortRatio_Disjoint(t *testing.T) {
	got := TokenSortRatio("base case", "two-pointer")
	if got >= FuzzyThreshold {
		t.Errorf("got %d for unrelated strings, want below %d", got, FuzzyThreshold)
	}
}

func TestBestFuzzyMatch_TieKeepsFirst(t *testing.T) {
	// "abd" and "abx" both score 67 against "abc".
	p, score, ok := bestFuzzyMatch("abc", []string{"abd", "abx"})
	if !ok {
		t.Fatal("expected a best match")
	}
	if p != "abd" {
		t.Errorf("got %q, want %q (first of the tie)", p, "abd")
	}
	if score != 67 {
		t.Errorf("got score %d, want 67", score)
	}
}

func TestBestFuzzyMatch_NoPatterns(t *testing.T) {
	if _, _, ok := bestFuzzyMatch("anything", nil); ok {
		t.Error("expected no match for empty pattern list")
	}
}

func TestFuzzyMatch_ShortPhraseNeedsStricterScore(t *testing.T) {
	// "sortd halvs" scores 85 against "sorted halves". A two-word phrase
	// needs 88, so this must not match.
	if p, score, ok := fuzzyMatch("sortd halvs", []string{"sorted halves"}); ok {
		t.Errorf("matched %q at %d, want no match below the short-phrase floor", p, score)
	}
}

func TestFuzzyMatch_LongPhraseAcceptsSameScore(t *testing.T) {
	// "chck for emty lst" also scores 85, but against a four-word phrase,
	// where 82 is enough.
	p, score, ok := fuzzyMatch("chck for emty lst", []string{"check for empty list"})
	if !ok {
		t.Fatal("expected a match at the long-phrase threshold")
	}
	if p != "check for empty list" {
		t.Errorf("got %q, want %q", p, "check for empty list")
	}
	if score != 85 {
		t.Errorf("got score %d, want 85", score)
	}
}

func TestFuzzyMatch_ShortPhraseAboveFloor(t *testing.T) {
	p, score, ok := fuzzyMatch("nested loops", []string{"loops nested"})
	if !ok {
		t.Fatal("expected a match")
	}
	if p != "loops nested" {
		t.Errorf("got %q, want %q", p, "loops nested")
	}
	if score != 100 {
		t.Errorf("got score %d, want 100", score)
	}
}

func TestFuzzyMatch_EmptyText(t *testing.T) {
	if _, _, ok := fuzzyMatch("", []string{"base case"}); ok {
		t.Error("expected no match for empty text")
	}
}
