package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/arasv/runwrapped/internal/analysis"
	"github.com/arasv/runwrapped/internal/model"
	"github.com/arasv/runwrapped/internal/upload"
)

var (
	dbPath   string
	fromDate string
	toDate   string
	asUser   string
)

var rootCmd = &cobra.Command{
	Use:   "runwrapped",
	Short: "Netrunner play-history review tool",
	Long:  "Analyze a Netrunner game-history export: records, favorites, rivalries, streaks, and per-game superlatives.",
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	defaultDB := filepath.Join(mustUserHome(), ".runwrapped", "uploads.db")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", defaultDB, "path to SQLite upload cache")
	rootCmd.PersistentFlags().StringVar(&fromDate, "from", "", "window start date (YYYY-MM-DD, inclusive)")
	rootCmd.PersistentFlags().StringVar(&toDate, "to", "", "window end date (YYYY-MM-DD, inclusive)")
	rootCmd.PersistentFlags().StringVar(&asUser, "user", "", "analyze as this username instead of the detected player")

	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(highlightsCmd)
	rootCmd.AddCommand(opponentsCmd)
	rootCmd.AddCommand(activityCmd)
	rootCmd.AddCommand(reasonsCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(dropCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(fetchCmd)
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(shellCmd)
	rootCmd.AddCommand(sqlCmd)
}

func mustUserHome() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}

// summarizeOptions builds upload options from the --from/--to flags.
func summarizeOptions() (*upload.Options, error) {
	if fromDate == "" && toDate == "" {
		return nil, nil
	}
	window := analysis.TimeRange{
		Start: time.Time{},
		End:   time.Date(9999, 12, 31, 23, 59, 59, 0, time.UTC),
	}
	if fromDate != "" {
		t, err := time.Parse("2006-01-02", fromDate)
		if err != nil {
			return nil, fmt.Errorf("invalid --from date: %w", err)
		}
		window.Start = t
	}
	if toDate != "" {
		t, err := time.Parse("2006-01-02", toDate)
		if err != nil {
			return nil, fmt.Errorf("invalid --to date: %w", err)
		}
		// Inclusive of the whole end day.
		window.End = t.AddDate(0, 0, 1).Add(-time.Nanosecond)
	}
	return &upload.Options{Window: &window}, nil
}

// summarizeFile reads, decompresses, and summarizes one export file,
// honoring the persistent window flags.
func summarizeFile(path string) (*model.Summary, error) {
	raw, err := upload.ReadFile(path)
	if err != nil {
		return nil, err
	}
	opts, err := summarizeOptions()
	if err != nil {
		return nil, err
	}
	summary, err := upload.Summarize(raw, opts)
	if err != nil {
		return nil, fmt.Errorf("summarize %s: %w", path, err)
	}
	return summary, nil
}

// summaryUser is the username all finders run as: --user wins, otherwise
// the detected profile.
func summaryUser(s *model.Summary) (string, error) {
	if asUser != "" {
		return asUser, nil
	}
	if s.Profile == nil {
		return "", fmt.Errorf("upload has no games; nothing to analyze")
	}
	return s.Profile.Username, nil
}
