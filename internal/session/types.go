package session

import "time"

// Turn roles, in speaking order.
const (
	RoleQuestion     = "question"
	RolePeerAttempt  = "peer_attempt"
	RoleLearnerInput = "learner_input"
	RoleTeacherReply = "teacher_reply"
	RoleSummary      = "summary"
)

// Agent names as they appear in transcripts.
const (
	AgentQuestion = "QuestionAgent"
	AgentPeer     = "PeerAgent"
	AgentLearner  = "Learner"
	AgentTeacher  = "TeacherAgent"
	AgentSummary  = "SummaryAgent"
)

// Turn is one utterance in a session transcript. Turn IDs start at 1.
type Turn struct {
	SessionID string    `json:"session_id"`
	TurnID    int       `json:"turn_id"`
	Agent     string    `json:"agent"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// Meta describes a session independent of its transcript.
type Meta struct {
	ID         string    `json:"session_id"`
	Topic      string    `json:"topic"`
	Difficulty string    `json:"difficulty"`
	Simulate   bool      `json:"simulate"`
	CreatedAt  time.Time `json:"created_at"`
}
