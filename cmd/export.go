package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arasv/runwrapped/internal/analysis"
	"github.com/arasv/runwrapped/internal/model"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export <history.json>",
	Short: "Export the full computed review as JSON",
	Long:  "Compute every record, finder, and highlight and write them as one JSON document for a presentation layer.",
	Args:  cobra.ExactArgs(1),
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output file (default stdout)")
}

// reviewExport is the JSON shape handed to presentation layers. Nil entries
// mean "no qualifying game" and are kept explicit rather than omitted.
type reviewExport struct {
	Profile               *model.UserProfile         `json:"profile"`
	Aggregates            model.AggregateStats       `json:"aggregates"`
	CorpRecord            *model.RoleRecord          `json:"corpRecord"`
	RunnerRecord          *model.RoleRecord          `json:"runnerRecord"`
	FavoriteCorp          *model.IdentityFavorite    `json:"favoriteCorp"`
	FavoriteRunner        *model.IdentityFavorite    `json:"favoriteRunner"`
	Nemesis               *model.FrequentOpponent    `json:"nemesis"`
	TopOpponents          []model.TopOpponent        `json:"topOpponents"`
	LongestGame           *model.LongestGame         `json:"longestGame"`
	LongestGameByDuration *model.LongestDurationGame `json:"longestGameByDuration"`
	BusiestDay            *model.DayActivityStat     `json:"busiestDay"`
	BusiestWeek           *model.WeekActivityStat    `json:"busiestWeek"`
	BusiestMonth          *model.MonthActivityStat   `json:"busiestMonth"`
	LongestStreak         *model.LongestStreak       `json:"longestStreak"`
	LongestDrought        *model.LongestDrought      `json:"longestDrought"`
	Highlights            model.Highlights           `json:"highlights"`
	Reasons               model.WinLossReasons       `json:"reasons"`
}

func buildReview(summary *model.Summary, user string) reviewExport {
	games := summary.Games
	return reviewExport{
		Profile:               summary.Profile,
		Aggregates:            summary.Aggregates,
		CorpRecord:            analysis.SideRecord(games, user, model.SideCorp),
		RunnerRecord:          analysis.SideRecord(games, user, model.SideRunner),
		FavoriteCorp:          analysis.FavoriteIdentity(games, user, model.SideCorp),
		FavoriteRunner:        analysis.FavoriteIdentity(games, user, model.SideRunner),
		Nemesis:               analysis.MostFrequentOpponent(games, user),
		TopOpponents:          analysis.TopOpponents(games, user, 10),
		LongestGame:           analysis.LongestGameByTurns(games, user),
		LongestGameByDuration: analysis.LongestGameByDuration(games, user),
		BusiestDay:            analysis.BusiestDay(games, user),
		BusiestWeek:           analysis.BusiestWeek(games, user),
		BusiestMonth:          analysis.BusiestMonth(games, user),
		LongestStreak:         analysis.LongestStreakDays(games, user),
		LongestDrought:        analysis.LongestDroughtDays(games, user),
		Highlights:            analysis.ComputeHighlights(games, user),
		Reasons:               analysis.SummarizeReasons(games, user),
	}
}

func runExport(cmd *cobra.Command, args []string) error {
	summary, err := summarizeFile(args[0])
	if err != nil {
		return err
	}
	user, err := summaryUser(summary)
	if err != nil {
		return err
	}

	review := buildReview(summary, user)
	data, err := json.MarshalIndent(review, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal review: %w", err)
	}
	data = append(data, '\n')

	if exportOut == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(exportOut, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", exportOut, err)
	}
	fmt.Fprintf(os.Stdout, "Wrote review to %s\n", exportOut)
	return nil
}
