package scoring

import "testing"

func TestNormalize(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"whitespace only", "   \t  ", ""},
		{"lowercases", "Selection Sort", "selection sort"},
		{"slash becomes space", "odd/even", "odd even"},
		{"vs padded", "odd vs even", "odd vs even"},
		{"vs uppercase", "Odd VS Even", "odd vs even"},
		{"keeps complexity symbols", "O(n^2), really!", "o(n^2) really"},
		{"keeps plus and minus", "O(V+E) and n-1", "o(v+e) and n-1"},
		{"apostrophe dropped", "don't check empty", "don t check empty"},
		{"collapses runs", "a   b \t c", "a b c"},
		{"strips punctuation", "base case: if not lst; return 0.", "base case if not lst return 0"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Normalize(tc.in)
			if got != tc.want {
				t.Errorf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"",
		"Selection sort is O(n log n) and very efficient.",
		"odd/even splits vs. odd VS even",
		"don't worry about a base case; Python handles empty lists.",
		"O(n*k*log k) -- sorting each string",
	}
	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: first %q, second %q", in, once, twice)
		}
	}
}
