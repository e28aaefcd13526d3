package dialogue

import (
	"context"

	"github.com/abhisek/studygroup/internal/scoring"
)

// Generator produces the spoken turns of a study-group session.
//
// PeerAttempt answers plausibly half-right: one sound piece of reasoning
// plus the mistake named by the category. promptOverride, when non-empty,
// replaces the rendered peer prompt wholesale for LLM-backed generators;
// simulated generators ignore it because the caller already extracted the
// mistake hint from it.
type Generator interface {
	Question(ctx context.Context, topic, difficulty string) (string, error)
	PeerAttempt(ctx context.Context, question string, mistake scoring.Category, promptOverride string) (string, error)
	TeacherReply(ctx context.Context, question, peerAttempt, learnerInput string) (string, error)
	Summary(ctx context.Context, question, peerAttempt, teacherReply string) (string, error)
	FollowUp(ctx context.Context, question string) (string, error)
}
