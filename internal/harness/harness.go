// Package harness replays scripted study sessions end to end and checks
// that the scorer catches the mistakes each script plants. It is the
// self-check used by the harness CLI and deploys no LLM: every seed runs
// simulated so results are deterministic.
package harness

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/abhisek/studygroup/internal/scoring"
	"github.com/abhisek/studygroup/internal/session"
)

// Seed is one scripted session the harness replays.
type Seed struct {
	Name               string             `json:"name"`
	Topic              string             `json:"topic"`
	Difficulty         string             `json:"difficulty"`
	QuestionText       string             `json:"question_text"`
	PeerPromptOverride string             `json:"peer_prompt_override,omitempty"`
	Expected           []scoring.Category `json:"expected_mistakes"`
}

// Result pairs a seed with the scoring outcome of its replayed session.
type Result struct {
	Seed      Seed                `json:"seed"`
	SessionID string              `json:"session_id"`
	Score     scoring.ScoreResult `json:"score"`
}

// Report aggregates one full harness run.
type Report struct {
	Results []Result `json:"results"`
	Passed  int      `json:"passed"`
	Total   int      `json:"total"`
}

// AllPassed reports whether every seed scored a full match.
func (r Report) AllPassed() bool {
	return r.Passed == r.Total
}

var builtinSeeds = []Seed{
	{
		Name:         "fib-naive-complexity",
		Topic:        "recursion",
		Difficulty:   "easy",
		QuestionText: "Write a recursive function fib(n) and explain the naive time complexity.",
		Expected:     []scoring.Category{scoring.CategoryComplexity},
	},
	{
		Name:               "sum-nested-base-case",
		Topic:              "recursion",
		Difficulty:         "easy",
		QuestionText:       "Write sum_nested(lst) that sums values in a nested list.",
		PeerPromptOverride: "Answer but forget the base case for empty lists.",
		Expected:           []scoring.Category{scoring.CategoryMissingBaseCase},
	},
	{
		Name:               "selection-sort-efficiency",
		Topic:              "sorting",
		Difficulty:         "easy",
		QuestionText:       "Explain selection_sort and its complexity.",
		PeerPromptOverride: "Answer confidently but pick an inefficient framing and call it fast.",
		Expected:           []scoring.Category{scoring.CategoryInefficient, scoring.CategoryComplexity},
	},
}

// Seeds returns a copy of the built-in scripted sessions.
func Seeds() []Seed {
	out := make([]Seed, len(builtinSeeds))
	copy(out, builtinSeeds)
	for i := range out {
		out[i].Expected = append([]scoring.Category(nil), builtinSeeds[i].Expected...)
	}
	return out
}

// Runner replays seeds through a session runner and scores the
// transcripts.
type Runner struct {
	sessions *session.Runner
	scorer   *scoring.Scorer
	log      *zap.Logger
}

func New(sessions *session.Runner, scorer *scoring.Scorer, log *zap.Logger) *Runner {
	if log == nil {
		log = zap.NewNop()
	}
	return &Runner{sessions: sessions, scorer: scorer, log: log}
}

// RunAll replays every built-in seed and returns the per-seed results.
// A seed that fails to score is an error; a seed whose score misses its
// expected mistakes only lowers the pass count.
func (r *Runner) RunAll(ctx context.Context) (Report, error) {
	report := Report{Total: len(builtinSeeds)}
	for _, seed := range Seeds() {
		result, err := r.runSeed(ctx, seed)
		if err != nil {
			return Report{}, fmt.Errorf("seed %s: %w", seed.Name, err)
		}
		if result.Score.Pass {
			report.Passed++
		}
		r.log.Info("harness seed scored",
			zap.String("seed", seed.Name),
			zap.String("session_id", result.SessionID),
			zap.Bool("pass", result.Score.Pass))
		report.Results = append(report.Results, result)
	}
	return report, nil
}

func (r *Runner) runSeed(ctx context.Context, seed Seed) (Result, error) {
	meta, turns, err := r.sessions.Run(ctx, session.Options{
		Topic:              seed.Topic,
		Difficulty:         seed.Difficulty,
		QuestionText:       seed.QuestionText,
		PeerPromptOverride: seed.PeerPromptOverride,
		Simulate:           true,
	})
	if err != nil {
		return Result{}, err
	}
	peer, teacher, err := session.PeerAndTeacher(turns)
	if err != nil {
		return Result{}, err
	}
	return Result{
		Seed:      seed,
		SessionID: meta.ID,
		Score:     r.scorer.ScorePair(peer, teacher, seed.Expected),
	}, nil
}
