package session

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/abhisek/studygroup/internal/dialogue"
)

const fibQuestion = "Write a recursive function fib(n) and explain the naive time complexity."

func newSimRunner() (*Runner, *Store) {
	store := NewStore()
	return NewRunner(store, dialogue.SimGenerator{}, nil, nil), store
}

func TestRunner_RunSimulatedFiveTurns(t *testing.T) {
	runner, store := newSimRunner()

	meta, turns, err := runner.Run(context.Background(), Options{
		Topic:        "recursion",
		Difficulty:   "easy",
		QuestionText: fibQuestion,
		Simulate:     true,
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if meta.ID == "" {
		t.Fatal("meta.ID is empty")
	}
	if len(turns) != 5 {
		t.Fatalf("transcript length = %d, want 5", len(turns))
	}

	wantRoles := []string{RoleQuestion, RolePeerAttempt, RoleLearnerInput, RoleTeacherReply, RoleSummary}
	wantAgents := []string{AgentQuestion, AgentPeer, AgentLearner, AgentTeacher, AgentSummary}
	for i, turn := range turns {
		if turn.TurnID != i+1 {
			t.Errorf("turn %d: TurnID = %d, want %d", i, turn.TurnID, i+1)
		}
		if turn.SessionID != meta.ID {
			t.Errorf("turn %d: SessionID = %q, want %q", i, turn.SessionID, meta.ID)
		}
		if turn.Role != wantRoles[i] {
			t.Errorf("turn %d: Role = %q, want %q", i, turn.Role, wantRoles[i])
		}
		if turn.Agent != wantAgents[i] {
			t.Errorf("turn %d: Agent = %q, want %q", i, turn.Agent, wantAgents[i])
		}
		if turn.Timestamp.IsZero() {
			t.Errorf("turn %d: Timestamp is zero", i)
		}
	}

	if turns[0].Content != fibQuestion {
		t.Errorf("question turn = %q, want the provided question text", turns[0].Content)
	}
	if !strings.Contains(turns[1].Content, "fib(n-1) + fib(n-2)") {
		t.Errorf("peer turn = %q, want the canned fib attempt", turns[1].Content)
	}
	if turns[2].Content != DefaultLearnerResponse {
		t.Errorf("learner turn = %q, want the default learner response", turns[2].Content)
	}
	if !strings.Contains(turns[3].Content, "exponential") {
		t.Errorf("teacher turn = %q, want the canned fib correction", turns[3].Content)
	}
	if !strings.Contains(turns[4].Content, "**Question**") {
		t.Errorf("summary turn = %q, want the bullet summary", turns[4].Content)
	}

	_, stored, ready, err := store.Snapshot(meta.ID)
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	if !ready {
		t.Error("session not ready after synchronous Run")
	}
	if len(stored) != 5 {
		t.Errorf("stored transcript length = %d, want 5", len(stored))
	}
}

func TestRunner_RunGeneratesQuestionWhenAbsent(t *testing.T) {
	runner, _ := newSimRunner()

	_, turns, err := runner.Run(context.Background(), Options{
		Topic:      "sorting",
		Difficulty: "medium",
		Simulate:   true,
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	want := "Generated question about sorting at medium level."
	if turns[0].Content != want {
		t.Errorf("question turn = %q, want %q", turns[0].Content, want)
	}
}

func TestRunner_RunLearnerOverride(t *testing.T) {
	runner, _ := newSimRunner()

	_, turns, err := runner.Run(context.Background(), Options{
		Topic:           "recursion",
		Difficulty:      "easy",
		QuestionText:    fibQuestion,
		LearnerResponse: "Isn't that exponential, not quadratic?",
		Simulate:        true,
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if turns[2].Content != "Isn't that exponential, not quadratic?" {
		t.Errorf("learner turn = %q, want the provided response", turns[2].Content)
	}
}

func TestRunner_RunPeerOverrideSteersMistake(t *testing.T) {
	runner, _ := newSimRunner()

	_, turns, err := runner.Run(context.Background(), Options{
		Topic:              "lists",
		Difficulty:         "easy",
		QuestionText:       "Write sum_nested(lst) that sums values in a nested list.",
		PeerPromptOverride: "Answer but forget the base case for empty lists.",
		Simulate:           true,
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(turns[1].Content, "Don't worry about a base case") {
		t.Errorf("peer turn = %q, want the missing-base-case attempt", turns[1].Content)
	}
}

func TestRunner_StartEventuallyReady(t *testing.T) {
	runner, store := newSimRunner()

	meta := runner.Start(context.Background(), Options{
		Topic:        "recursion",
		Difficulty:   "easy",
		QuestionText: fibQuestion,
		Simulate:     true,
	})
	if !store.Exists(meta.ID) {
		t.Fatal("session not registered immediately after Start")
	}

	deadline := time.Now().Add(5 * time.Second)
	for {
		_, turns, ready, err := store.Snapshot(meta.ID)
		if err != nil {
			t.Fatalf("Snapshot: %v", err)
		}
		if ready {
			if len(turns) != 5 {
				t.Fatalf("transcript length = %d, want 5", len(turns))
			}
			return
		}
		if time.Now().After(deadline) {
			t.Fatal("session never became ready")
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestRunner_StepAppendsFollowUp(t *testing.T) {
	runner, _ := newSimRunner()

	meta, _, err := runner.Run(context.Background(), Options{
		Topic:        "recursion",
		Difficulty:   "easy",
		QuestionText: fibQuestion,
		Simulate:     true,
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	turns, err := runner.Step(context.Background(), meta.ID)
	if err != nil {
		t.Fatalf("Step: %v", err)
	}
	if len(turns) != 6 {
		t.Fatalf("transcript length = %d after Step, want 6", len(turns))
	}
	last := turns[5]
	if last.TurnID != 6 {
		t.Errorf("TurnID = %d, want 6", last.TurnID)
	}
	if last.Agent != AgentTeacher || last.Role != RoleTeacherReply {
		t.Errorf("appended turn agent/role = %q/%q, want teacher reply", last.Agent, last.Role)
	}
	if last.Content != "(Simulated) advancing session one step..." {
		t.Errorf("appended content = %q, want the simulated step filler", last.Content)
	}
}

func TestRunner_StepUnknownSession(t *testing.T) {
	runner, _ := newSimRunner()
	if _, err := runner.Step(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Step error = %v, want ErrNotFound", err)
	}
}

func TestRunner_StepBeforeReady(t *testing.T) {
	runner, store := newSimRunner()
	store.Create(testMeta("pending"))
	if _, err := runner.Step(context.Background(), "pending"); !errors.Is(err, ErrNotReady) {
		t.Fatalf("Step error = %v, want ErrNotReady", err)
	}
}

func TestRunner_NoLLMGeneratorRunsSimulated(t *testing.T) {
	runner, _ := newSimRunner()

	_, turns, err := runner.Run(context.Background(), Options{
		Topic:        "recursion",
		Difficulty:   "easy",
		QuestionText: fibQuestion,
		Simulate:     false,
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(turns) != 5 {
		t.Fatalf("transcript length = %d, want 5", len(turns))
	}
	if !strings.Contains(turns[1].Content, "fib") {
		t.Errorf("peer turn = %q, want a canned fib attempt", turns[1].Content)
	}
}

func TestPeerAndTeacher(t *testing.T) {
	turns := []Turn{
		{TurnID: 1, Role: RoleQuestion, Content: "q"},
		{TurnID: 2, Role: RolePeerAttempt, Content: "peer says"},
		{TurnID: 3, Role: RoleLearnerInput, Content: "l"},
		{TurnID: 4, Role: RoleTeacherReply, Content: "teacher says"},
		{TurnID: 5, Role: RoleSummary, Content: "s"},
		{TurnID: 6, Role: RoleTeacherReply, Content: "later follow-up"},
	}
	peer, teacher, err := PeerAndTeacher(turns)
	if err != nil {
		t.Fatalf("PeerAndTeacher: %v", err)
	}
	if peer != "peer says" {
		t.Errorf("peer = %q, want %q", peer, "peer says")
	}
	if teacher != "teacher says" {
		t.Errorf("teacher = %q, want first teacher reply %q", teacher, "teacher says")
	}
}

func TestPeerAndTeacher_MissingTurns(t *testing.T) {
	if _, _, err := PeerAndTeacher([]Turn{{Role: RoleQuestion, Content: "q"}}); err == nil {
		t.Fatal("PeerAndTeacher succeeded on a transcript with no peer attempt")
	}
	if _, _, err := PeerAndTeacher([]Turn{{Role: RolePeerAttempt, Content: "p"}}); err == nil {
		t.Fatal("PeerAndTeacher succeeded on a transcript with no teacher reply")
	}
}
