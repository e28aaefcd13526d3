package dialogue

import (
	"strings"

	"github.com/abhisek/studygroup/internal/scoring"
)

// ExtractMistakeHint probes a peer prompt override for the mistake family it
// asks the peer to commit. Returns "" when nothing recognizable is named;
// callers choose their own default.
func ExtractMistakeHint(prompt string) scoring.Category {
	if prompt == "" {
		return ""
	}
	txt := strings.ToLower(prompt)
	switch {
	case strings.Contains(txt, "wrong time complexity") || strings.Contains(txt, "complexity"):
		return scoring.CategoryComplexity
	case strings.Contains(txt, "off-by-one") || strings.Contains(txt, "off by one"):
		return scoring.CategoryOffByOne
	case strings.Contains(txt, "base case") || strings.Contains(txt, "missing base"):
		return scoring.CategoryMissingBaseCase
	case strings.Contains(txt, "edge case"):
		return scoring.CategoryEdgeCase
	case strings.Contains(txt, "inefficient"):
		return scoring.CategoryInefficient
	}
	return ""
}
