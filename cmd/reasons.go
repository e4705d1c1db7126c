package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/arasv/runwrapped/internal/analysis"
	"github.com/arasv/runwrapped/internal/report"
)

var reasonsCmd = &cobra.Command{
	Use:   "reasons <history.json>",
	Short: "Show the most common win and loss reasons",
	Args:  cobra.ExactArgs(1),
	RunE:  runReasons,
}

func runReasons(cmd *cobra.Command, args []string) error {
	summary, err := summarizeFile(args[0])
	if err != nil {
		return err
	}
	user, err := summaryUser(summary)
	if err != nil {
		return err
	}
	report.PrintReasons(os.Stdout, analysis.SummarizeReasons(summary.Games, user))
	return nil
}
