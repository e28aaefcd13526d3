package scoring

import "fmt"

// Category identifies a mistake family. The set is open: scoring requests may
// name categories with no phrase list, which resolve to empty lists rather
// than erroring.
type Category string

const (
	CategoryComplexity      Category = "complexity"
	CategoryOffByOne        Category = "off_by_one"
	CategoryMissingBaseCase Category = "missing_base_case"
	CategoryEdgeCase        Category = "edge_case"
	CategoryInefficient     Category = "inefficient"
)

// Match method labels, surfaced in MatchResult.Method.
const (
	MethodRegexComplexity = "regex_complexity"
	MethodSubstring       = "substr"
	MethodLemma           = "lemma"
)

// MethodFuzzy formats the method label for a fuzzy hit at the given score.
func MethodFuzzy(score int) string {
	return fmt.Sprintf("fuzzy:%d", score)
}

// MatchResult reports how a text matched a category, if at all. Pattern is
// the phrase (as listed) or the detector family key that hit; Method is one
// of the method labels above. Both are empty when Matched is false.
type MatchResult struct {
	Matched bool   `json:"matched"`
	Pattern string `json:"pattern,omitempty"`
	Method  string `json:"method,omitempty"`
}

// ScoreResult is the outcome of scoring one peer/teacher exchange against a
// set of expected mistake categories. Pass is true only when every expected
// category was both detected in the peer text and corrected in the teacher
// text; there is no partial credit.
type ScoreResult struct {
	PeerDetected map[Category]MatchResult `json:"peer_detected"`
	TeacherFixed map[Category]MatchResult `json:"teacher_fixed"`
	Pass         bool                     `json:"pass"`
}
