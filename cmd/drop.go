package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arasv/runwrapped/internal/storage"
)

var dropCmd = &cobra.Command{
	Use:   "drop <hash-prefix>",
	Short: "Delete a stored upload and its games",
	Args:  cobra.ExactArgs(1),
	RunE:  runDrop,
}

func runDrop(cmd *cobra.Command, args []string) error {
	db, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer db.Close()

	stored, err := db.GetUploadByPrefix(args[0])
	if err != nil {
		return err
	}
	if stored == nil {
		return fmt.Errorf("upload not found: %s", args[0])
	}
	if err := db.DeleteUpload(stored.Hash); err != nil {
		return fmt.Errorf("delete upload: %w", err)
	}
	fmt.Fprintf(os.Stdout, "Dropped upload %s (%s, %d games).\n",
		stored.Hash[:12], stored.Username, stored.TotalGames)
	return nil
}
