package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arasv/runwrapped/internal/analysis"
	"github.com/arasv/runwrapped/internal/model"
	"github.com/arasv/runwrapped/internal/report"
	"github.com/arasv/runwrapped/internal/storage"
)

var showCmd = &cobra.Command{
	Use:   "show <hash-prefix>",
	Short: "Show the full review for a stored upload",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	db, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer db.Close()

	return showByHash(db, args[0])
}

func showByHash(db *storage.DB, prefix string) error {
	stored, err := db.GetUploadByPrefix(prefix)
	if err != nil {
		return err
	}
	if stored == nil {
		return fmt.Errorf("upload not found: %s", prefix)
	}
	games, err := db.LoadGames(stored.Hash)
	if err != nil {
		return fmt.Errorf("load games: %w", err)
	}

	user := stored.Username
	if asUser != "" {
		user = asUser
	}

	summary := &model.Summary{
		Games:   games,
		Profile: analysis.DetectProfile(games),
	}
	if summary.Profile != nil {
		summary.Aggregates = analysis.ComputeAggregates(games, user)
	}

	report.PrintProfile(os.Stdout, summary)
	report.PrintRecords(os.Stdout, games, user)
	report.PrintLongestGames(os.Stdout, games, user)
	report.PrintActivity(os.Stdout, games, user)
	report.PrintHighlights(os.Stdout, analysis.ComputeHighlights(games, user))
	report.PrintReasons(os.Stdout, analysis.SummarizeReasons(games, user))
	return nil
}
