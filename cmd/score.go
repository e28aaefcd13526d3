package cmd

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/studygroup/internal/scoring"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a peer/teacher exchange against expected mistakes",
	RunE: func(cmd *cobra.Command, args []string) error {
		peerText, _ := cmd.Flags().GetString("peer")
		teacherText, _ := cmd.Flags().GetString("teacher")
		expected, _ := cmd.Flags().GetStringSlice("expect")
		phrasesPath, _ := cmd.Flags().GetString("phrases")

		peer, teacher, err := scoring.LoadTables(phrasesPath)
		if err != nil {
			return err
		}
		scorer := scoring.New(scoring.Config{
			PeerIndicators:    peer,
			TeacherIndicators: teacher,
		})

		cats := make([]scoring.Category, len(expected))
		for i, e := range expected {
			cats[i] = scoring.Category(strings.TrimSpace(e))
		}
		printScore(scorer.ScorePair(peerText, teacherText, cats))
		return nil
	},
}

func init() {
	scoreCmd.Flags().String("peer", "", "Peer attempt text (required)")
	scoreCmd.Flags().String("teacher", "", "Teacher reply text (required)")
	scoreCmd.Flags().StringSlice("expect", nil, "Expected mistake categories, e.g. complexity,off_by_one (required)")
	scoreCmd.Flags().String("phrases", "", "YAML phrase-table file (defaults to the built-in tables)")
	_ = scoreCmd.MarkFlagRequired("peer")
	_ = scoreCmd.MarkFlagRequired("teacher")
	_ = scoreCmd.MarkFlagRequired("expect")
}

// printScore renders a score result as an aligned table, one row per
// expected category.
func printScore(result scoring.ScoreResult) {
	cats := make([]scoring.Category, 0, len(result.PeerDetected))
	for c := range result.PeerDetected {
		cats = append(cats, c)
	}
	slices.Sort(cats)

	fmt.Printf("%-20s  %-34s  %-34s\n", "Category", "Peer Detected", "Teacher Fixed")
	fmt.Println(strings.Repeat("─", 92))
	for _, c := range cats {
		fmt.Printf("%-20s  %-34s  %-34s\n", c, matchLabel(result.PeerDetected[c]), matchLabel(result.TeacherFixed[c]))
	}
	fmt.Println(strings.Repeat("─", 92))
	if result.Pass {
		fmt.Println("PASS")
	} else {
		fmt.Println("FAIL")
	}
}

func matchLabel(m scoring.MatchResult) string {
	if !m.Matched {
		return "✗"
	}
	return fmt.Sprintf("✓ %s (%s)", m.Pattern, m.Method)
}
