package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/arasv/runwrapped/internal/jnet"
	"github.com/arasv/runwrapped/internal/upload"
)

var (
	fetchServer string
	fetchOut    string
)

var fetchCmd = &cobra.Command{
	Use:   "fetch <username>",
	Short: "Download a user's game-history export from the game server",
	Args:  cobra.ExactArgs(1),
	RunE:  runFetch,
}

func init() {
	fetchCmd.Flags().StringVar(&fetchServer, "server", "", "game server base URL (default "+jnet.DefaultBaseURL+")")
	fetchCmd.Flags().StringVarP(&fetchOut, "out", "o", "", "output file (default <username>-history.json)")
}

func runFetch(cmd *cobra.Command, args []string) error {
	username := args[0]
	out := fetchOut
	if out == "" {
		out = username + "-history.json"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	client := jnet.NewClient(fetchServer)
	fmt.Fprintf(os.Stdout, "Fetching history for %s...\n", username)
	body, err := client.FetchHistory(ctx, username)
	if err != nil {
		return err
	}

	// Servers hand out compressed exports; store plain JSON so the file is
	// inspectable and diffable.
	raw, err := upload.Decompress(body)
	if err != nil {
		return err
	}
	if _, err := upload.ParseGames(raw); err != nil {
		return fmt.Errorf("server response: %w", err)
	}

	if err := os.WriteFile(out, raw, 0644); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}
	fmt.Fprintf(os.Stdout, "Wrote %s (%d bytes). Run 'runwrapped import %s' to analyze it.\n",
		out, len(raw), out)
	return nil
}
