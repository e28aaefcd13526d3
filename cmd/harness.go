package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/studygroup/internal/dialogue"
	"github.com/abhisek/studygroup/internal/harness"
	"github.com/abhisek/studygroup/internal/scoring"
	"github.com/abhisek/studygroup/internal/session"
)

var harnessCmd = &cobra.Command{
	Use:          "harness",
	Short:        "Replay the built-in scripted sessions and verify the scorer catches their mistakes",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		asJSON, _ := cmd.Flags().GetBool("json")

		runner := session.NewRunner(session.NewStore(), dialogue.SimGenerator{}, nil, nil)
		report, err := harness.New(runner, scoring.Default(), nil).RunAll(cmd.Context())
		if err != nil {
			return err
		}

		if asJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(report); err != nil {
				return err
			}
		} else {
			printReport(report)
		}

		if !report.AllPassed() {
			return fmt.Errorf("%d of %d seeds failed", report.Total-report.Passed, report.Total)
		}
		return nil
	},
}

func init() {
	harnessCmd.Flags().Bool("json", false, "Print the report as JSON")
}

func printReport(report harness.Report) {
	fmt.Printf("%-28s  %-36s  %s\n", "Seed", "Expected", "Result")
	fmt.Println(strings.Repeat("─", 76))
	for _, r := range report.Results {
		expected := make([]string, len(r.Seed.Expected))
		for i, c := range r.Seed.Expected {
			expected[i] = string(c)
		}
		verdict := "PASS"
		if !r.Score.Pass {
			verdict = "FAIL"
		}
		fmt.Printf("%-28s  %-36s  %s\n", r.Seed.Name, strings.Join(expected, ", "), verdict)
	}
	fmt.Println(strings.Repeat("─", 76))
	fmt.Printf("%d/%d passed\n", report.Passed, report.Total)
}
