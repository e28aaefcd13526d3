// Package api is the HTTP surface over study sessions and mistake
// scoring. Routes mirror the service contract: synchronous and
// background session runs, transcript polling, follow-up steps, direct
// and per-session scoring, and phrase-table reloads.
package api

import (
	"net/http"
	"sync/atomic"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/abhisek/studygroup/internal/monitoring"
	"github.com/abhisek/studygroup/internal/scoring"
	"github.com/abhisek/studygroup/internal/session"
)

// Options assembles a Server.
type Options struct {
	Runner *session.Runner
	Store  *session.Store

	// Scorer is the initial scorer; nil builds one over the built-in
	// tables.
	Scorer *scoring.Scorer

	// Lemmatizer is used by reload-built scorers; nil builds one.
	// Callers passing a Scorer should pass its lemmatizer too so
	// reloads keep the same dictionary.
	Lemmatizer scoring.Lemmatizer

	// PhrasesFile is the reload source for /phrases/reload and the
	// watcher. Empty reloads the built-ins.
	PhrasesFile string

	// ForceSimulate ignores simulate=false in requests.
	ForceSimulate bool

	// CORSOrigins whitelists browser origins; empty defaults to "*".
	CORSOrigins []string

	// Mode sets the gin mode when non-empty.
	Mode string

	Logger *zap.Logger
}

// Server routes HTTP traffic to the session runner and scorer. The
// scorer sits behind an atomic pointer so reloads swap it without
// disturbing in-flight requests.
type Server struct {
	engine        *gin.Engine
	runner        *session.Runner
	store         *session.Store
	scorer        atomic.Pointer[scoring.Scorer]
	lemmatizer    scoring.Lemmatizer
	phrasesFile   string
	forceSimulate bool
	log           *zap.Logger
}

func NewServer(opts Options) *Server {
	if opts.Mode != "" {
		gin.SetMode(opts.Mode)
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	lem := opts.Lemmatizer
	if lem == nil {
		lem = scoring.NewLemmatizer()
	}
	s := &Server{
		runner:        opts.Runner,
		store:         opts.Store,
		lemmatizer:    lem,
		phrasesFile:   opts.PhrasesFile,
		forceSimulate: opts.ForceSimulate,
		log:           log,
	}
	scorer := opts.Scorer
	if scorer == nil {
		scorer = scoring.New(scoring.Config{Lemmatizer: s.lemmatizer})
	}
	s.scorer.Store(scorer)

	origins := opts.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	monitoring.Init()
	engine := gin.New()
	engine.Use(gin.Recovery(), CORS(origins), RequestLogger(log), monitoring.MetricsMiddleware())
	s.registerRoutes(engine)
	s.engine = engine
	return s
}

func (s *Server) registerRoutes(router *gin.Engine) {
	router.GET("/", s.root)
	router.GET("/healthz", s.healthz)
	router.GET("/metrics", monitoring.PrometheusHandler())

	router.POST("/run_sync", s.runSync)
	router.POST("/start_session", s.startSession)
	router.GET("/session/:id", s.getSession)
	router.POST("/session/:id/step", s.stepSession)
	router.POST("/session/:id/score", s.scoreSession)

	router.POST("/score", s.scorePair)
	router.POST("/phrases/reload", s.reloadPhrases)
}

// Handler exposes the router for tests and custom HTTP servers.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves on addr until the listener fails.
func (s *Server) Run(addr string) error {
	return s.engine.Run(addr)
}

// Scorer returns the scorer currently serving requests.
func (s *Server) Scorer() *scoring.Scorer {
	return s.scorer.Load()
}

// reloadScorer rebuilds the scorer from the configured phrase file and
// swaps it in. The lemmatizer is reused across reloads; dictionary
// loading is too heavy to repeat per swap.
func (s *Server) reloadScorer() error {
	peer, teacher, err := scoring.LoadTables(s.phrasesFile)
	if err != nil {
		return err
	}
	s.scorer.Store(scoring.New(scoring.Config{
		PeerIndicators:    peer,
		TeacherIndicators: teacher,
		Lemmatizer:        s.lemmatizer,
	}))
	monitoring.PhraseReloads.Inc()
	return nil
}
