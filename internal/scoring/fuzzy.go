package scoring

import (
	"math"
	"sort"
	"strings"

	"github.com/agext/levenshtein"
)

const (
	// FuzzyThreshold is the minimum similarity score for a fuzzy hit.
	FuzzyThreshold = 82
	// ShortPhraseFuzzyThreshold applies instead for phrases of one or two
	// words, which reach high ratios by accident far more easily.
	ShortPhraseFuzzyThreshold = 88

	shortPhraseMaxTokens = 2
)

// TokenSortRatio scores the similarity of two strings in [0, 100] ignoring
// word order: both sides are whitespace-split, sorted, rejoined, and compared
// by Levenshtein distance normalized over the longer string.
func TokenSortRatio(a, b string) int {
	sa := sortedTokenJoin(a)
	sb := sortedTokenJoin(b)
	longest := len([]rune(sa))
	if l := len([]rune(sb)); l > longest {
		longest = l
	}
	if longest == 0 {
		return 100
	}
	dist := levenshtein.Distance(sa, sb, levenshtein.NewParams())
	return int(math.Round(100 * (1 - float64(dist)/float64(longest))))
}

func sortedTokenJoin(s string) string {
	tokens := strings.Fields(s)
	sort.Strings(tokens)
	return strings.Join(tokens, " ")
}

// bestFuzzyMatch scores every pattern against the normalized text and keeps
// the highest, ties going to the earlier entry.
func bestFuzzyMatch(normText string, patterns []string) (string, int, bool) {
	var (
		best      string
		bestScore = -1
	)
	for _, p := range patterns {
		if s := TokenSortRatio(normText, p); s > bestScore {
			best, bestScore = p, s
		}
	}
	if bestScore < 0 {
		return "", 0, false
	}
	return best, bestScore, true
}

// fuzzyMatch returns the best-scoring phrase at or above its adaptive
// threshold. The threshold is picked by the winning phrase's own word count,
// counted as written in the list.
func fuzzyMatch(normText string, patterns []string) (string, int, bool) {
	if normText == "" {
		return "", 0, false
	}
	best, score, ok := bestFuzzyMatch(normText, patterns)
	if !ok {
		return "", 0, false
	}
	threshold := FuzzyThreshold
	if len(strings.Fields(best)) <= shortPhraseMaxTokens {
		threshold = ShortPhraseFuzzyThreshold
	}
	if score < threshold {
		return "", 0, false
	}
	return best, score, true
}
