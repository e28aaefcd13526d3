package scoring

// PhraseTable maps a category to its ordered phrase list. Order matters: the
// matching stages take the first phrase that hits, not the best.
type PhraseTable map[Category][]string

// Clone returns a deep copy. Scorers copy their tables up front so later
// edits to the source maps cannot leak into a live instance.
func (t PhraseTable) Clone() PhraseTable {
	out := make(PhraseTable, len(t))
	for cat, phrases := range t {
		cp := make([]string, len(phrases))
		copy(cp, phrases)
		out[cat] = cp
	}
	return out
}

// Phrases returns the list for cat, or nil for unlisted categories.
func (t PhraseTable) Phrases(cat Category) []string {
	return t[cat]
}

// Built-in indicator tables. Singular/plural and contraction variants are
// listed out explicitly because phrase tokens are never lemmatized, only the
// candidate text is.
var defaultPeerIndicators = PhraseTable{
	CategoryComplexity: {
		"o(n^2)", "o(n*n)", "n^2", "n2", "quadratic", "o(n^3)", "n log n", "o(n log n)", "o(nlogn)",
		"polynomial", "o(v*e)", "o(v+e)", "o(n * k log k)", "o(n*k*log k)", "o(n*k log k)",
		"exponential", "2^n", "o(2^n)",
	},
	CategoryOffByOne: {
		"off-by-one", "off by one", "n-1", "n + 1", "n+1", "i <= n", "index out of range",
		"one too many", "off by",
	},
	CategoryMissingBaseCase: {
		"base case", "if n == 1", "if n == 0", "no base case", "missing base", "if not lst",
		"null checks", "empty list", "empty lists", "don't check empty", "won't check empty", "won't check",
		"skip empty", "forget base", "missing base case", "no base case",
	},
	CategoryEdgeCase: {
		"edge case", "handle empty", "handle negative", "watch out for empty", "check for none", "negative",
		"fails with negative", "empty", "null", "ignoring", "odd/even", "odd vs even", "odd and even",
		"odd even", "odd vs even lengths", "odd vs even length",
	},
	CategoryInefficient: {
		"nested loop", "nested loops", "pairwise", "compare each with every other", "pair wise", "inefficient",
		"n^2", "quadratic", "o(n log n)", "sorting each string", "sort each string",
		"sort each", "sorting each", "o(n * k log k)", "n * k log k", "n k log k",
	},
}

var defaultTeacherIndicators = PhraseTable{
	CategoryComplexity: {
		"o(n)", "linear", "linear time", "o(2^n)", "2^n", "exponential", "o(n log n)", "o(v+e)", "o(v + e)",
		"o(n*k)", "o(n * k)",
	},
	CategoryOffByOne: {
		"off-by-one", "off by one", "clarify whether n is 1-based", "one-based", "zero-based", "fix index",
		"use <= vs <", "off by",
	},
	CategoryMissingBaseCase: {
		"base case", "handle empty", "return 0", "add a base case", "check for empty list", "base-case checks",
		"base case check",
	},
	CategoryEdgeCase: {
		"edge case", "handle empty", "handle negative", "watch out for empty", "check for none", "null", "empty keys",
		"fails with negative", "bellman-ford", "odd/even", "odd vs even", "odd even", "odd/even splits",
	},
	CategoryInefficient: {
		"optimize", "avoid nested", "two-pointer", "linear time", "o(n)", "use hashmap", "use memo", "use dp",
		"inefficient", "o(n*k)", "use letter counts", "letter counts", "count characters",
	},
}

// DefaultPeerIndicators returns a copy of the built-in table of phrases that
// signal a peer making each mistake.
func DefaultPeerIndicators() PhraseTable {
	return defaultPeerIndicators.Clone()
}

// DefaultTeacherIndicators returns a copy of the built-in table of phrases
// that signal a teacher correcting each mistake.
func DefaultTeacherIndicators() PhraseTable {
	return defaultTeacherIndicators.Clone()
}
