package dialogue

import (
	"context"
	"strings"
	"testing"

	"github.com/abhisek/studygroup/internal/scoring"
)

func TestSimGenerator_Question(t *testing.T) {
	got, err := SimGenerator{}.Question(context.Background(), "recursion", "easy")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "Generated question about recursion at easy level."
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestSimGenerator_PeerAttempt_FibComplexity(t *testing.T) {
	got, err := SimGenerator{}.PeerAttempt(context.Background(),
		"Write a recursive function fib(n) and explain the naive time complexity.",
		scoring.CategoryComplexity, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(got, "O(n^2)") {
		t.Errorf("peer attempt should claim the wrong complexity: %q", got)
	}
}

func TestSimGenerator_PeerAttempt_SelectionSortInefficient(t *testing.T) {
	got, _ := SimGenerator{}.PeerAttempt(context.Background(),
		"Explain selection_sort and its complexity.", scoring.CategoryInefficient, "")
	if !strings.Contains(got, "O(n log n)") {
		t.Errorf("peer attempt should claim O(n log n): %q", got)
	}
}

func TestSimGenerator_PeerAttempt_NestedSumBaseCase(t *testing.T) {
	got, _ := SimGenerator{}.PeerAttempt(context.Background(),
		"Write sum_nested(lst) that sums all values in a nested list.", scoring.CategoryMissingBaseCase, "")
	if !strings.Contains(got, "base case") {
		t.Errorf("peer attempt should dismiss the base case: %q", got)
	}
}

func TestSimGenerator_PeerAttempt_GenericEdgeCase(t *testing.T) {
	got, _ := SimGenerator{}.PeerAttempt(context.Background(),
		"Reverse a linked list.", scoring.CategoryEdgeCase, "")
	if !strings.Contains(got, "odd/even") {
		t.Errorf("generic edge-case attempt missing: %q", got)
	}
}

func TestSimGenerator_PeerAttempt_NoHint(t *testing.T) {
	got, _ := SimGenerator{}.PeerAttempt(context.Background(), "Reverse a linked list.", "", "")
	if !strings.Contains(got, "straightforward solution") {
		t.Errorf("got %q, want the default attempt", got)
	}
}

func TestSimGenerator_TeacherReply_Fib(t *testing.T) {
	got, _ := SimGenerator{}.TeacherReply(context.Background(),
		"Write a recursive function fib(n).", "peer text", "learner text")
	if !strings.Contains(got, "O(2^n)") || !strings.Contains(got, "memoization") {
		t.Errorf("teacher reply should correct to exponential and suggest memoization: %q", got)
	}
}

func TestSimGenerator_TeacherReply_SelectionSort(t *testing.T) {
	got, _ := SimGenerator{}.TeacherReply(context.Background(),
		"Explain selection sort.", "", "")
	if !strings.Contains(got, "O(n^2)") || !strings.Contains(got, "inefficient") {
		t.Errorf("teacher reply should name the quadratic cost: %q", got)
	}
}

func TestSimGenerator_TeacherReply_Generic(t *testing.T) {
	got, _ := SimGenerator{}.TeacherReply(context.Background(), "Something else.", "", "")
	if !strings.Contains(got, "good start") {
		t.Errorf("got %q, want the generic reply", got)
	}
}

func TestSimGenerator_Summary(t *testing.T) {
	got, err := SimGenerator{}.Summary(context.Background(),
		" Write fib(n). ",
		"First peer point. Second point.",
		"Main correction. Extra detail.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, header := range []string{"- **Question**:", "- **Peer's Idea**:", "- **Key Correction**:", "- **Next Steps**:"} {
		if !strings.Contains(got, header) {
			t.Errorf("summary missing %q:\n%s", header, got)
		}
	}
	if !strings.Contains(got, "- **Peer's Idea**: First peer point.\n") {
		t.Errorf("peer idea should be the first sentence only:\n%s", got)
	}
	if !strings.Contains(got, "- **Question**: Write fib(n).") {
		t.Errorf("question should be trimmed:\n%s", got)
	}
}

func TestSimGenerator_FollowUp(t *testing.T) {
	got, _ := SimGenerator{}.FollowUp(context.Background(), "anything")
	want := "(Simulated) advancing session one step..."
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
