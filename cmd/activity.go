package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/arasv/runwrapped/internal/report"
)

var activityCmd = &cobra.Command{
	Use:   "activity <history.json>",
	Short: "Show busiest periods, streaks, and droughts",
	Args:  cobra.ExactArgs(1),
	RunE:  runActivity,
}

func runActivity(cmd *cobra.Command, args []string) error {
	summary, err := summarizeFile(args[0])
	if err != nil {
		return err
	}
	user, err := summaryUser(summary)
	if err != nil {
		return err
	}
	report.PrintActivity(os.Stdout, summary.Games, user)
	return nil
}
