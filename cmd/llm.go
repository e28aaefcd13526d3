package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/studygroup/internal/llm"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect and probe the LLM provider configuration",
}

var llmConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the provider configuration resolved from the environment",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := llm.ConfigFromEnv()
		source := "STUDYGROUP_* environment"
		if err := cfg.Validate(); err != nil {
			discovered, ok := llm.DiscoverConfig()
			if !ok {
				fmt.Println("No LLM provider configured.")
				fmt.Println()
				fmt.Println("Set STUDYGROUP_LLM_PROVIDER plus the matching STUDYGROUP_*_API_KEY,")
				fmt.Println("or export GEMINI_API_KEY, OPENAI_API_KEY, ANTHROPIC_API_KEY or")
				fmt.Println("OPENROUTER_API_KEY for automatic discovery.")
				return nil
			}
			cfg = discovered
			source = "bare API key discovery"
		}

		model, key := providerModelKey(cfg)
		fmt.Printf("Provider:  %s\n", cfg.Provider)
		fmt.Printf("Model:     %s\n", model)
		fmt.Printf("API key:   %s\n", maskKey(key))
		fmt.Printf("Timeout:   %s\n", cfg.Timeout)
		fmt.Printf("Retries:   %d attempts, %s initial wait\n", cfg.Retry.MaxAttempts, cfg.Retry.InitialWait)
		fmt.Printf("Source:    %s\n", source)
		return nil
	},
}

var llmPingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Send one tiny request through the configured provider",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := llm.WithPurpose(cmd.Context(), "ping")
		provider, err := llm.NewProviderFromEnv(ctx, nil)
		if err != nil {
			return fmt.Errorf("LLM provider: %w", err)
		}

		start := time.Now()
		resp, err := provider.Generate(ctx, llm.Request{
			Messages:  []llm.Message{{Role: llm.RoleUser, Content: "Reply with the single word: pong"}},
			MaxTokens: 16,
		})
		if err != nil {
			return fmt.Errorf("generate: %w", err)
		}

		fmt.Printf("Model:    %s\n", resp.Model)
		fmt.Printf("Reply:    %s\n", string(resp.Content))
		fmt.Printf("Latency:  %s\n", time.Since(start).Round(time.Millisecond))
		fmt.Printf("Tokens:   %d in / %d out\n", resp.Usage.InputTokens, resp.Usage.OutputTokens)
		if cost := llm.LookupCost(resp.Model); cost != nil {
			fmt.Printf("Cost:     %s\n", formatCost(cost.Cost(resp.Usage.InputTokens, resp.Usage.OutputTokens)))
		}
		return nil
	},
}

// providerModelKey returns the configured model and API key for the
// selected provider.
func providerModelKey(cfg llm.Config) (model, key string) {
	switch cfg.Provider {
	case "anthropic":
		return cfg.Anthropic.Model, cfg.Anthropic.APIKey
	case "openai":
		return cfg.OpenAI.Model, cfg.OpenAI.APIKey
	case "gemini":
		return cfg.Gemini.Model, cfg.Gemini.APIKey
	case "openrouter":
		return cfg.OpenRouter.Model, cfg.OpenRouter.APIKey
	}
	return "", ""
}

// maskKey keeps the first and last four characters of an API key.
func maskKey(key string) string {
	if key == "" {
		return "(not set)"
	}
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "..." + key[len(key)-4:]
}

func formatCost(usd float64) string {
	if usd < 0.01 {
		return fmt.Sprintf("$%.4f", usd)
	}
	return fmt.Sprintf("$%.2f", usd)
}

func init() {
	llmCmd.AddCommand(llmConfigCmd)
	llmCmd.AddCommand(llmPingCmd)
}
