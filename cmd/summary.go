package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/arasv/runwrapped/internal/report"
)

var summaryCmd = &cobra.Command{
	Use:   "summary <history.json>",
	Short: "Show profile, records, and longest games for an export",
	Args:  cobra.ExactArgs(1),
	RunE:  runSummary,
}

func runSummary(cmd *cobra.Command, args []string) error {
	summary, err := summarizeFile(args[0])
	if err != nil {
		return err
	}
	user, err := summaryUser(summary)
	if err != nil {
		return err
	}

	report.PrintProfile(os.Stdout, summary)
	report.PrintRecords(os.Stdout, summary.Games, user)
	report.PrintLongestGames(os.Stdout, summary.Games, user)
	return nil
}
