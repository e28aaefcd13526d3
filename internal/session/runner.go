package session

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abhisek/studygroup/internal/dialogue"
	"github.com/abhisek/studygroup/internal/scoring"
)

// DefaultLearnerResponse stands in for the learner when a session is
// run without real learner input.
const DefaultLearnerResponse = "I think that's right, but I'm not sure about the details."

// Options selects how one session runs.
type Options struct {
	Topic              string
	Difficulty         string
	QuestionText       string
	LearnerResponse    string
	PeerPromptOverride string
	Simulate           bool
}

// Runner drives the five-turn study session flow and records
// transcripts in a Store.
type Runner struct {
	store *Store
	sim   dialogue.Generator
	llm   dialogue.Generator
	log   *zap.Logger
}

// NewRunner builds a runner. llmGen may be nil, in which case every
// session runs simulated regardless of Options.Simulate.
func NewRunner(store *Store, sim, llmGen dialogue.Generator, log *zap.Logger) *Runner {
	if log == nil {
		log = zap.NewNop()
	}
	return &Runner{store: store, sim: sim, llm: llmGen, log: log}
}

// Run generates a full session synchronously and returns its meta and
// transcript.
func (r *Runner) Run(ctx context.Context, opts Options) (Meta, []Turn, error) {
	meta := r.register(opts)
	turns, err := r.generate(ctx, meta, opts)
	if err != nil {
		return meta, nil, err
	}
	r.store.SetTranscript(meta.ID, turns)
	return meta, turns, nil
}

// Start registers a session and generates its transcript in the
// background. Callers poll the store until the session reports ready.
func (r *Runner) Start(ctx context.Context, opts Options) Meta {
	meta := r.register(opts)
	genCtx := context.WithoutCancel(ctx)
	go func() {
		turns, err := r.generate(genCtx, meta, opts)
		if err != nil {
			r.log.Error("session generation failed",
				zap.String("session_id", meta.ID),
				zap.Error(err))
			return
		}
		r.store.SetTranscript(meta.ID, turns)
	}()
	return meta
}

// Step appends one follow-up teacher turn to a ready session and
// returns the updated transcript.
func (r *Runner) Step(ctx context.Context, id string) ([]Turn, error) {
	meta, turns, ready, err := r.store.Snapshot(id)
	if err != nil {
		return nil, err
	}
	if !ready {
		return nil, ErrNotReady
	}
	question := ""
	if len(turns) > 0 && turns[0].Role == RoleQuestion {
		question = turns[0].Content
	}
	content, err := r.generator(meta.Simulate).FollowUp(ctx, question)
	if err != nil {
		return nil, fmt.Errorf("follow-up turn: %w", err)
	}
	if _, err := r.store.AppendTurn(id, Turn{
		Agent:     AgentTeacher,
		Role:      RoleTeacherReply,
		Content:   content,
		Timestamp: time.Now(),
	}); err != nil {
		return nil, err
	}
	_, turns, _, err = r.store.Snapshot(id)
	return turns, err
}

func (r *Runner) register(opts Options) Meta {
	meta := Meta{
		ID:         uuid.NewString(),
		Topic:      opts.Topic,
		Difficulty: opts.Difficulty,
		Simulate:   opts.Simulate,
		CreatedAt:  time.Now(),
	}
	r.store.Create(meta)
	return meta
}

func (r *Runner) generator(simulate bool) dialogue.Generator {
	if simulate || r.llm == nil {
		if !simulate {
			r.log.Warn("no llm generator configured, running simulated")
		}
		return r.sim
	}
	return r.llm
}

func (r *Runner) generate(ctx context.Context, meta Meta, opts Options) ([]Turn, error) {
	gen := r.generator(opts.Simulate)

	question := opts.QuestionText
	if question == "" {
		q, err := gen.Question(ctx, meta.Topic, meta.Difficulty)
		if err != nil {
			return nil, fmt.Errorf("question turn: %w", err)
		}
		question = q
	}

	mistake := dialogue.ExtractMistakeHint(opts.PeerPromptOverride)
	if mistake == "" {
		mistake = scoring.CategoryComplexity
	}
	peer, err := gen.PeerAttempt(ctx, question, mistake, opts.PeerPromptOverride)
	if err != nil {
		return nil, fmt.Errorf("peer turn: %w", err)
	}

	learner := opts.LearnerResponse
	if learner == "" {
		learner = DefaultLearnerResponse
	}

	teacher, err := gen.TeacherReply(ctx, question, peer, learner)
	if err != nil {
		return nil, fmt.Errorf("teacher turn: %w", err)
	}

	summary, err := gen.Summary(ctx, question, peer, teacher)
	if err != nil {
		return nil, fmt.Errorf("summary turn: %w", err)
	}

	var turns []Turn
	turns = appendTurn(turns, meta.ID, AgentQuestion, RoleQuestion, question)
	turns = appendTurn(turns, meta.ID, AgentPeer, RolePeerAttempt, peer)
	turns = appendTurn(turns, meta.ID, AgentLearner, RoleLearnerInput, learner)
	turns = appendTurn(turns, meta.ID, AgentTeacher, RoleTeacherReply, teacher)
	turns = appendTurn(turns, meta.ID, AgentSummary, RoleSummary, summary)
	return turns, nil
}

func appendTurn(turns []Turn, sessionID, agent, role, content string) []Turn {
	return append(turns, Turn{
		SessionID: sessionID,
		TurnID:    len(turns) + 1,
		Agent:     agent,
		Role:      role,
		Content:   content,
		Timestamp: time.Now(),
	})
}
