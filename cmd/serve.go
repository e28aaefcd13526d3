package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/studygroup/internal/api"
	"github.com/abhisek/studygroup/internal/config"
	"github.com/abhisek/studygroup/internal/dialogue"
	"github.com/abhisek/studygroup/internal/llm"
	"github.com/abhisek/studygroup/internal/logging"
	"github.com/abhisek/studygroup/internal/scoring"
	"github.com/abhisek/studygroup/internal/session"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the study-group HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
}

// runServe loads config, builds dependencies, and blocks serving HTTP.
func runServe(cmd *cobra.Command) error {
	ctx := cmd.Context()

	cfg, err := loadConfig(cmd)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := logging.New(cfg.Logging)
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer log.Sync()

	// A missing provider is not fatal; sessions fall back to simulated.
	var llmGen dialogue.Generator
	if !cfg.LLM.Simulate {
		provider, err := newProvider(cmd, cfg, log)
		if err != nil {
			fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
			fmt.Fprintln(os.Stderr, "Sessions will run simulated.")
			log.Warn("llm provider not configured, sessions will run simulated", zap.Error(err))
		} else {
			llmGen = dialogue.NewLLMGenerator(provider, dialogue.DefaultConfig(), log)
		}
	}

	store := session.NewStore()
	runner := session.NewRunner(store, dialogue.SimGenerator{}, llmGen, log)

	// One lemmatizer for the initial scorer and every reload; the
	// dictionary is too heavy to load twice.
	lem := scoring.NewLemmatizer()
	peer, teacher, err := scoring.LoadTables(cfg.Scoring.PhrasesFile)
	if err != nil {
		return fmt.Errorf("load phrase tables: %w", err)
	}
	scorer := scoring.New(scoring.Config{
		PeerIndicators:    peer,
		TeacherIndicators: teacher,
		Lemmatizer:        lem,
	})

	srv := api.NewServer(api.Options{
		Runner:        runner,
		Store:         store,
		Scorer:        scorer,
		Lemmatizer:    lem,
		PhrasesFile:   cfg.Scoring.PhrasesFile,
		ForceSimulate: cfg.LLM.Simulate,
		CORSOrigins:   cfg.Server.CORSOrigins,
		Mode:          cfg.Server.Mode,
		Logger:        log,
	})

	if cfg.Scoring.WatchPhrases {
		go func() {
			if err := srv.WatchPhrases(ctx); err != nil {
				log.Error("phrase watcher stopped", zap.Error(err))
			}
		}()
	}

	addr := ":" + cfg.Server.Port
	log.Info("starting server", zap.String("addr", addr), zap.Bool("simulate", cfg.LLM.Simulate))
	return srv.Run(addr)
}

// newProvider builds the provider named in config, falling back to env
// discovery when config names none.
func newProvider(cmd *cobra.Command, cfg *config.Config, log *zap.Logger) (llm.Provider, error) {
	ctx := cmd.Context()
	if cfg.LLM.Provider == "" {
		return llm.NewProviderFromEnv(ctx, log)
	}
	pcfg := llm.ConfigFromEnv()
	pcfg.Provider = cfg.LLM.Provider
	if m := cfg.LLM.Model; m != "" {
		switch pcfg.Provider {
		case "anthropic":
			pcfg.Anthropic.Model = m
		case "openai":
			pcfg.OpenAI.Model = m
		case "gemini":
			pcfg.Gemini.Model = m
		case "openrouter":
			pcfg.OpenRouter.Model = m
		}
	}
	if err := pcfg.Validate(); err != nil {
		return nil, err
	}
	return llm.NewProvider(ctx, pcfg, log)
}
