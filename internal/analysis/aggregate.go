package analysis

import (
	"time"

	"github.com/arasv/runwrapped/internal/model"
)

// ComputeAggregates sums whole-history scalars over the games username
// actually played. Games without a completion timestamp still contribute
// minutes but cannot be assigned to a day. Every rate is 0 when its
// denominator is 0; no NaN ever escapes.
func ComputeAggregates(games []model.GameRecord, username string) model.AggregateStats {
	var agg model.AggregateStats

	played := 0
	days := make(map[time.Time]struct{})
	for _, g := range games {
		if _, ok := ResolveSide(g, username); !ok {
			continue
		}
		played++
		if g.ElapsedMinutes != nil && *g.ElapsedMinutes > 0 {
			agg.TotalMinutes += *g.ElapsedMinutes
		}
		if g.CompletedAt != nil {
			days[DayOf(*g.CompletedAt)] = struct{}{}
		}
	}

	agg.TotalDays = len(days)
	if played > 0 {
		agg.AvgMinutesPerGame = agg.TotalMinutes / float64(played)
	}
	if agg.TotalDays > 0 {
		agg.AvgGamesPerDay = float64(played) / float64(agg.TotalDays)
		agg.AvgMinutesPerDay = agg.TotalMinutes / float64(agg.TotalDays)
	}
	return agg
}
