package cmd

import (
	"github.com/abhisek/studygroup/internal/config"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "studygroup",
	Short: "AI study-group simulator for CS fundamentals",
	Long:  "Studygroup — simulated peer-learning sessions where an AI peer attempts a problem with a deliberate mistake and an AI teacher corrects it, plus a scorer that verifies both happened.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to a YAML config file (overrides the working-directory search)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(sessionCmd)
	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(harnessCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads configuration from the --config flag (highest priority),
// then the working-directory search, with STUDYGROUP_* env vars over both.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	return config.Load(path)
}
