package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/studygroup/internal/dialogue"
	"github.com/abhisek/studygroup/internal/llm"
	"github.com/abhisek/studygroup/internal/scoring"
	"github.com/abhisek/studygroup/internal/session"
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Run one study session and print the transcript (no server)",
	Long: `Generate a five-turn study session in the terminal.

This is a stateless developer tool — no server, no session registry.
Useful for inspecting dialogue quality and testing prompt changes.`,
	RunE: runSession,
}

func init() {
	sessionCmd.Flags().String("topic", "recursion", "Topic to study")
	sessionCmd.Flags().String("difficulty", "easy", "Difficulty: easy, medium, or hard")
	sessionCmd.Flags().String("question", "", "Exact question text (skips question generation)")
	sessionCmd.Flags().String("mistake", "", "Peer prompt override steering the deliberate mistake")
	sessionCmd.Flags().Bool("llm", false, "Generate turns with the configured LLM provider instead of canned replies")
	sessionCmd.Flags().Bool("json", false, "Print the transcript as JSON")
	sessionCmd.Flags().StringSlice("score", nil, "Score the transcript against these expected mistake categories")
}

func runSession(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	topic, _ := cmd.Flags().GetString("topic")
	difficulty, _ := cmd.Flags().GetString("difficulty")
	question, _ := cmd.Flags().GetString("question")
	mistake, _ := cmd.Flags().GetString("mistake")
	useLLM, _ := cmd.Flags().GetBool("llm")
	asJSON, _ := cmd.Flags().GetBool("json")
	expected, _ := cmd.Flags().GetStringSlice("score")

	// Build the LLM generator only on request (no logger wiring here).
	var llmGen dialogue.Generator
	if useLLM {
		provider, err := llm.NewProviderFromEnv(ctx, nil)
		if err != nil {
			return fmt.Errorf("LLM provider: %w", err)
		}
		llmGen = dialogue.NewLLMGenerator(provider, dialogue.DefaultConfig(), nil)
	}

	runner := session.NewRunner(session.NewStore(), dialogue.SimGenerator{}, llmGen, nil)
	meta, turns, err := runner.Run(ctx, session.Options{
		Topic:              topic,
		Difficulty:         difficulty,
		QuestionText:       question,
		PeerPromptOverride: mistake,
		Simulate:           !useLLM,
	})
	if err != nil {
		return fmt.Errorf("run session: %w", err)
	}

	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(map[string]any{"session_id": meta.ID, "turns": turns}); err != nil {
			return err
		}
	} else {
		fmt.Printf("Session %s — %s (%s)\n\n", meta.ID, meta.Topic, meta.Difficulty)
		for _, t := range turns {
			fmt.Printf("── Turn %d · %s (%s) ──\n%s\n\n", t.TurnID, t.Agent, t.Role, t.Content)
		}
	}

	if len(expected) == 0 {
		return nil
	}

	peerText, teacherText, err := session.PeerAndTeacher(turns)
	if err != nil {
		return err
	}
	cats := make([]scoring.Category, len(expected))
	for i, e := range expected {
		cats[i] = scoring.Category(strings.TrimSpace(e))
	}
	printScore(scoring.Default().ScorePair(peerText, teacherText, cats))
	return nil
}
