package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arasv/runwrapped/internal/analysis"
	"github.com/arasv/runwrapped/internal/report"
)

var opponentLimit int

var opponentsCmd = &cobra.Command{
	Use:   "opponents <history.json>",
	Short: "Show the most frequent opponents",
	Args:  cobra.ExactArgs(1),
	RunE:  runOpponents,
}

func init() {
	opponentsCmd.Flags().IntVar(&opponentLimit, "limit", 10, "number of opponents to show")
}

func runOpponents(cmd *cobra.Command, args []string) error {
	summary, err := summarizeFile(args[0])
	if err != nil {
		return err
	}
	user, err := summaryUser(summary)
	if err != nil {
		return err
	}

	if nemesis := analysis.MostFrequentOpponent(summary.Games, user); nemesis != nil {
		fmt.Fprintf(os.Stdout, "\nNemesis: %s, %d games (%d-%d)\n\n",
			nemesis.Username, nemesis.Games, nemesis.Wins, nemesis.Losses)
	}
	report.PrintOpponents(os.Stdout, summary.Games, user, opponentLimit)
	return nil
}
