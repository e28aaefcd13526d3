package dialogue

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/abhisek/studygroup/internal/llm"
	"github.com/abhisek/studygroup/internal/scoring"
)

// LLMGenerator asks a language model for each turn and falls back to the
// simulated generator whenever the provider fails or returns garbage. A
// session never dies on a provider error; it just gets a canned turn.
type LLMGenerator struct {
	provider llm.Provider
	cfg      Config
	sim      SimGenerator
	log      *zap.Logger
}

// NewLLMGenerator creates a generator backed by provider. A nil logger is
// replaced with a no-op one.
func NewLLMGenerator(provider llm.Provider, cfg Config, log *zap.Logger) *LLMGenerator {
	if log == nil {
		log = zap.NewNop()
	}
	return &LLMGenerator{provider: provider, cfg: cfg, log: log}
}

type questionOutput struct {
	QuestionText string `json:"question_text"`
}

func (g *LLMGenerator) Question(ctx context.Context, topic, difficulty string) (string, error) {
	prompt, err := RenderPrompt(RoleQuestionAgent, map[string]string{
		"topic":      topic,
		"difficulty": difficulty,
	})
	if err != nil {
		return "", err
	}
	resp, err := g.provider.Generate(llm.WithPurpose(ctx, "question"), llm.Request{
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: prompt}},
		Schema:      QuestionSchema,
		MaxTokens:   g.cfg.MaxTokens,
		Temperature: g.cfg.QuestionTemperature,
	})
	if err != nil {
		g.log.Warn("question generation failed, using simulated question",
			zap.String("topic", topic), zap.Error(err))
		return g.sim.Question(ctx, topic, difficulty)
	}
	var out questionOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil || strings.TrimSpace(out.QuestionText) == "" {
		g.log.Warn("question response malformed, using simulated question", zap.Error(err))
		return g.sim.Question(ctx, topic, difficulty)
	}
	return strings.TrimSpace(out.QuestionText), nil
}

func (g *LLMGenerator) PeerAttempt(ctx context.Context, question string, mistake scoring.Category, promptOverride string) (string, error) {
	prompt := promptOverride
	if prompt == "" {
		var err error
		prompt, err = RenderPrompt(RolePeerAgent, map[string]string{"question": question})
		if err != nil {
			return "", err
		}
	}
	text, err := g.generateText(ctx, "peer_attempt", prompt, g.cfg.PeerTemperature)
	if err != nil {
		g.log.Warn("peer generation failed, using simulated attempt", zap.Error(err))
		return g.sim.PeerAttempt(ctx, question, mistake, promptOverride)
	}
	return text, nil
}

func (g *LLMGenerator) TeacherReply(ctx context.Context, question, peerAttempt, learnerInput string) (string, error) {
	prompt, err := RenderPrompt(RoleTeacherAgent, map[string]string{
		"question":      question,
		"peer_answer":   peerAttempt,
		"learner_input": learnerInput,
	})
	if err != nil {
		return "", err
	}
	text, err := g.generateText(ctx, "teacher_reply", prompt, g.cfg.TeacherTemperature)
	if err != nil {
		g.log.Warn("teacher generation failed, using simulated reply", zap.Error(err))
		return g.sim.TeacherReply(ctx, question, peerAttempt, learnerInput)
	}
	return text, nil
}

func (g *LLMGenerator) Summary(ctx context.Context, question, peerAttempt, teacherReply string) (string, error) {
	prompt, err := RenderPrompt(RoleSummaryAgent, map[string]string{
		"question":      question,
		"peer_answer":   peerAttempt,
		"teacher_reply": teacherReply,
	})
	if err != nil {
		return "", err
	}
	text, err := g.generateText(ctx, "summary", prompt, g.cfg.SummaryTemperature)
	if err != nil {
		g.log.Warn("summary generation failed, using simulated summary", zap.Error(err))
		return g.sim.Summary(ctx, question, peerAttempt, teacherReply)
	}
	return text, nil
}

func (g *LLMGenerator) FollowUp(ctx context.Context, question string) (string, error) {
	prompt := fmt.Sprintf("The study group already discussed: %s\n"+
		"Give one short follow-up hint or practice task to advance the session.", question)
	text, err := g.generateText(ctx, "follow_up", prompt, g.cfg.TeacherTemperature)
	if err != nil {
		g.log.Warn("follow-up generation failed, using simulated turn", zap.Error(err))
		return g.sim.FollowUp(ctx, question)
	}
	return text, nil
}

// generateText runs a plain-text completion. The provider returns raw text
// bytes when no schema is set.
func (g *LLMGenerator) generateText(ctx context.Context, purpose, prompt string, temperature float64) (string, error) {
	resp, err := g.provider.Generate(llm.WithPurpose(ctx, purpose), llm.Request{
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: prompt}},
		MaxTokens:   g.cfg.MaxTokens,
		Temperature: temperature,
	})
	if err != nil {
		return "", err
	}
	text := strings.TrimSpace(string(resp.Content))
	if text == "" {
		return "", fmt.Errorf("empty %s response", purpose)
	}
	return text, nil
}
