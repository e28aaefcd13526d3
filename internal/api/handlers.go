package api

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/abhisek/studygroup/internal/monitoring"
	"github.com/abhisek/studygroup/internal/scoring"
	"github.com/abhisek/studygroup/internal/session"
)

// runRequest is the body for /run_sync and /start_session. Simulate is
// a pointer because its absence means true: demo requests with no key
// configured must work out of the box.
type runRequest struct {
	Topic              string `json:"topic"`
	Difficulty         string `json:"difficulty"`
	QuestionText       string `json:"question_text"`
	LearnerResponse    string `json:"learner_response"`
	PeerPromptOverride string `json:"peer_prompt_override"`
	Simulate           *bool  `json:"simulate"`
}

func (r runRequest) options(forceSimulate bool) session.Options {
	topic := r.Topic
	if topic == "" {
		topic = "recursion"
	}
	difficulty := r.Difficulty
	if difficulty == "" {
		difficulty = "easy"
	}
	simulate := true
	if r.Simulate != nil {
		simulate = *r.Simulate
	}
	if forceSimulate {
		simulate = true
	}
	return session.Options{
		Topic:              topic,
		Difficulty:         difficulty,
		QuestionText:       r.QuestionText,
		LearnerResponse:    r.LearnerResponse,
		PeerPromptOverride: r.PeerPromptOverride,
		Simulate:           simulate,
	}
}

type scoreRequest struct {
	PeerText         string             `json:"peer_text"`
	TeacherText      string             `json:"teacher_text"`
	ExpectedMistakes []scoring.Category `json:"expected_mistakes"`
}

type sessionScoreRequest struct {
	ExpectedMistakes []scoring.Category `json:"expected_mistakes"`
}

type sessionScoreResponse struct {
	SessionID string `json:"session_id"`
	scoring.ScoreResult
}

func (s *Server) root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service": "studygroup",
		"endpoints": []string{
			"POST /run_sync",
			"POST /start_session",
			"GET /session/{session_id}",
			"POST /session/{session_id}/step",
			"POST /session/{session_id}/score",
			"POST /score",
			"POST /phrases/reload",
			"GET /healthz",
			"GET /metrics",
		},
	})
}

func (s *Server) healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) runSync(c *gin.Context) {
	var req runRequest
	if err := bindJSON(c, &req); err != nil {
		badRequest(c, err)
		return
	}
	opts := req.options(s.forceSimulate)

	meta, turns, err := s.runner.Run(c.Request.Context(), opts)
	if err != nil {
		s.log.Error("session run failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "session generation failed"})
		return
	}
	monitoring.SessionsStarted.WithLabelValues(monitoring.SessionMode(opts.Simulate)).Inc()
	c.JSON(http.StatusOK, gin.H{"session_id": meta.ID, "turns": turns})
}

func (s *Server) startSession(c *gin.Context) {
	var req runRequest
	if err := bindJSON(c, &req); err != nil {
		badRequest(c, err)
		return
	}
	opts := req.options(s.forceSimulate)

	meta := s.runner.Start(c.Request.Context(), opts)
	monitoring.SessionsStarted.WithLabelValues(monitoring.SessionMode(opts.Simulate)).Inc()
	c.JSON(http.StatusOK, gin.H{"session_id": meta.ID, "status": "pending"})
}

func (s *Server) getSession(c *gin.Context) {
	id := c.Param("id")
	_, turns, ready, err := s.store.Snapshot(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"detail": "session not found"})
		return
	}
	if turns == nil {
		turns = []session.Turn{}
	}
	c.JSON(http.StatusOK, gin.H{"session_id": id, "ready": ready, "turns": turns})
}

func (s *Server) stepSession(c *gin.Context) {
	id := c.Param("id")
	turns, err := s.runner.Step(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, session.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"detail": "session not found"})
		case errors.Is(err, session.ErrNotReady):
			c.JSON(http.StatusConflict, gin.H{"detail": "session still generating"})
		default:
			s.log.Error("session step failed", zap.String("session_id", id), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "step failed"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"session_id": id, "turns": turns})
}

func (s *Server) scoreSession(c *gin.Context) {
	id := c.Param("id")
	var req sessionScoreRequest
	if err := bindJSON(c, &req); err != nil {
		badRequest(c, err)
		return
	}
	_, turns, ready, err := s.store.Snapshot(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"detail": "session not found"})
		return
	}
	if !ready {
		c.JSON(http.StatusConflict, gin.H{"detail": "session still generating"})
		return
	}
	peer, teacher, err := session.PeerAndTeacher(turns)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": err.Error()})
		return
	}

	result := s.scorer.Load().ScorePair(peer, teacher, req.ExpectedMistakes)
	monitoring.ScoreRequests.WithLabelValues(monitoring.ScoreOutcome(result.Pass)).Inc()
	c.JSON(http.StatusOK, sessionScoreResponse{SessionID: id, ScoreResult: result})
}

func (s *Server) scorePair(c *gin.Context) {
	var req scoreRequest
	if err := bindJSON(c, &req); err != nil {
		badRequest(c, err)
		return
	}

	result := s.scorer.Load().ScorePair(req.PeerText, req.TeacherText, req.ExpectedMistakes)
	monitoring.ScoreRequests.WithLabelValues(monitoring.ScoreOutcome(result.Pass)).Inc()
	c.JSON(http.StatusOK, result)
}

func (s *Server) reloadPhrases(c *gin.Context) {
	if err := s.reloadScorer(); err != nil {
		s.log.Error("phrase reload failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}
	source := s.phrasesFile
	if source == "" {
		source = "builtin"
	}
	s.log.Info("phrase tables reloaded", zap.String("source", source))
	c.JSON(http.StatusOK, gin.H{"status": "reloaded", "source": source})
}

// bindJSON decodes the body into dst, treating an empty body as an
// empty request so callers can POST with no payload and get defaults.
func bindJSON(c *gin.Context, dst any) error {
	if err := c.ShouldBindJSON(dst); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid request body: " + err.Error()})
}
