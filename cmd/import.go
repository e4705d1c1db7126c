package cmd

import (
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/arasv/runwrapped/internal/report"
	"github.com/arasv/runwrapped/internal/storage"
	"github.com/arasv/runwrapped/internal/upload"
)

var importCmd = &cobra.Command{
	Use:   "import <history.json>",
	Short: "Import a game-history export and store its normalized games",
	Args:  cobra.ExactArgs(1),
	RunE:  runImport,
}

func runImport(cmd *cobra.Command, args []string) error {
	path := args[0]

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return fmt.Errorf("create db dir: %w", err)
	}
	db, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer db.Close()

	raw, err := upload.ReadFile(path)
	if err != nil {
		return err
	}
	hash := fmt.Sprintf("%x", sha256.Sum256(raw))

	exists, err := db.UploadExists(hash)
	if err != nil {
		return fmt.Errorf("check upload: %w", err)
	}
	if exists {
		fmt.Fprintf(os.Stdout, "Upload %s already stored; showing cached results.\n", hash[:12])
		return showByHash(db, hash)
	}

	opts, err := summarizeOptions()
	if err != nil {
		return err
	}
	summary, err := upload.Summarize(raw, opts)
	if err != nil {
		return fmt.Errorf("summarize: %w", err)
	}
	if summary.Profile == nil {
		return fmt.Errorf("no games in %s; nothing to import", path)
	}

	stored := storage.StoredUpload{
		Hash:        hash,
		Username:    summary.Profile.Username,
		EmailHash:   summary.Profile.EmailHash,
		TotalGames:  summary.Profile.TotalGames,
		CorpGames:   summary.Profile.CorpGames,
		RunnerGames: summary.Profile.RunnerGames,
		Coverage:    summary.Profile.Coverage,
		ImportedAt:  time.Now().UTC().Format(time.RFC3339),
	}
	if err := db.InsertUpload(stored); err != nil {
		return fmt.Errorf("insert upload: %w", err)
	}
	if err := db.InsertGames(hash, summary.Games); err != nil {
		return fmt.Errorf("insert games: %w", err)
	}

	fmt.Fprintf(os.Stdout, "Stored upload %s (%d games).\n", hash[:12], len(summary.Games))
	user, err := summaryUser(summary)
	if err != nil {
		return err
	}
	report.PrintProfile(os.Stdout, summary)
	report.PrintRecords(os.Stdout, summary.Games, user)
	return nil
}
