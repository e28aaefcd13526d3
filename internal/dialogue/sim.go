package dialogue

import (
	"context"
	"fmt"
	"strings"

	"github.com/abhisek/studygroup/internal/scoring"
)

// SimGenerator produces deterministic canned replies keyed off the question
// text, for demos, the harness, and tests. It never returns an error.
type SimGenerator struct{}

func (SimGenerator) Question(_ context.Context, topic, difficulty string) (string, error) {
	return fmt.Sprintf("Generated question about %s at %s level.", topic, difficulty), nil
}

func (SimGenerator) PeerAttempt(_ context.Context, question string, mistake scoring.Category, _ string) (string, error) {
	q := strings.ToLower(question)

	switch {
	case strings.Contains(q, "fib"):
		if mistake == scoring.CategoryComplexity {
			return "A straightforward recursive solution: fib(n) = fib(n-1) + fib(n-2). This runs in O(n^2) time because subcalls repeat work.", nil
		}
		return "Use naive recursion fib(n)=fib(n-1)+fib(n-2); it's simple though may be inefficient.", nil

	case strings.Contains(q, "sum_nested") || strings.Contains(q, "sum nested") || strings.Contains(q, "nested list"):
		if mistake == scoring.CategoryMissingBaseCase {
			return "Recursively sum elements. Don't worry about a base case; Python handles empty lists.", nil
		}
		return "Recursion over nested lists: flatten logically and add values.", nil

	case strings.Contains(q, "selection_sort") || strings.Contains(q, "selection sort"):
		if mistake == scoring.CategoryInefficient {
			return "Selection sort is great. It repeatedly finds the min and swaps. It's O(n log n) and very efficient.", nil
		}
		return "Use selection sort by finding the min and swapping; simple and O(1) extra space.", nil
	}

	switch mistake {
	case scoring.CategoryComplexity:
		return "I think this runs in O(n^2) due to repeated work.", nil
	case scoring.CategoryInefficient:
		return "This is fine but maybe inefficient for large inputs.", nil
	case scoring.CategoryEdgeCase:
		return "I don't think odd/even length handling matters here.", nil
	}
	return "I would attempt a straightforward solution; one detail may be slightly off.", nil
}

func (SimGenerator) TeacherReply(_ context.Context, question, _, _ string) (string, error) {
	q := strings.ToLower(question)
	switch {
	case strings.Contains(q, "fib"):
		return "The peer's approach is correct, but the complexity analysis is a common mistake. Naive recursive Fibonacci is exponential (O(2^n)). Use memoization to optimize it to O(n).", nil
	case strings.Contains(q, "sum_nested") || strings.Contains(q, "nested list"):
		return "The peer's idea to recurse is good, but omitting the base case is a critical error. Handle empty lists as a base case: e.g., `if not lst: return 0`.", nil
	case strings.Contains(q, "selection_sort") || strings.Contains(q, "selection sort"):
		return "Selection sort involves nested loops, making it O(n^2), not O(n log n). It's simple but inefficient for large datasets.", nil
	}
	return "That's a good start from the peer. Let's refine the logic and double-check the complexity.", nil
}

func (SimGenerator) Summary(_ context.Context, question, peerAttempt, teacherReply string) (string, error) {
	return fmt.Sprintf("- **Question**: %s\n- **Peer's Idea**: %s.\n- **Key Correction**: %s.\n- **Next Steps**: Implement the corrected algorithm and add tests for edge cases.",
		strings.TrimSpace(question), firstSentence(peerAttempt), firstSentence(teacherReply)), nil
}

func (SimGenerator) FollowUp(_ context.Context, _ string) (string, error) {
	return "(Simulated) advancing session one step...", nil
}

// firstSentence cuts before the first period, mirroring how the summary
// condenses the peer and teacher turns.
func firstSentence(s string) string {
	if i := strings.Index(s, "."); i >= 0 {
		return s[:i]
	}
	return s
}
