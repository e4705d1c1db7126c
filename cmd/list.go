package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arasv/runwrapped/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all stored uploads",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	db, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer db.Close()

	uploads, err := db.ListUploads()
	if err != nil {
		return fmt.Errorf("list uploads: %w", err)
	}
	if len(uploads) == 0 {
		fmt.Fprintln(os.Stdout, "No uploads stored yet. Run 'runwrapped import <history.json>' to add one.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-14s  %-20s  %6s  %5s  %7s  %9s  %s\n",
		"HASH", "PLAYER", "GAMES", "CORP", "RUNNER", "COVERAGE", "IMPORTED")
	fmt.Fprintf(os.Stdout, "%-14s  %-20s  %6s  %5s  %7s  %9s  %s\n",
		"──────────────", "────────────────────", "──────", "─────", "───────", "─────────", "────────")
	for _, u := range uploads {
		fmt.Fprintf(os.Stdout, "%-14s  %-20s  %6d  %5d  %7d  %8.0f%%  %s\n",
			u.Hash[:12], u.Username, u.TotalGames, u.CorpGames, u.RunnerGames,
			u.Coverage*100, u.ImportedAt)
	}
	return nil
}
