package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/arasv/runwrapped/internal/analysis"
	"github.com/arasv/runwrapped/internal/report"
)

var highlightsCmd = &cobra.Command{
	Use:   "highlights <history.json>",
	Short: "Show the per-game superlatives",
	Args:  cobra.ExactArgs(1),
	RunE:  runHighlights,
}

func runHighlights(cmd *cobra.Command, args []string) error {
	summary, err := summarizeFile(args[0])
	if err != nil {
		return err
	}
	user, err := summaryUser(summary)
	if err != nil {
		return err
	}
	highlights := analysis.ComputeHighlights(summary.Games, user)
	report.PrintHighlights(os.Stdout, highlights)
	return nil
}
