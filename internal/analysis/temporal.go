package analysis

import (
	"sort"
	"time"

	"github.com/arasv/runwrapped/internal/model"
)

// bucketGames buckets username's timestamped games by the key function and
// returns the fullest bucket, ties broken by first-encountered key.
func bucketGames(games []model.GameRecord, username string, key func(time.Time) time.Time) (time.Time, int) {
	counts := make(map[time.Time]int)
	var order []time.Time
	for _, g := range games {
		if _, ok := ResolveSide(g, username); !ok || g.CompletedAt == nil {
			continue
		}
		k := key(*g.CompletedAt)
		if _, seen := counts[k]; !seen {
			order = append(order, k)
		}
		counts[k]++
	}
	var best time.Time
	bestN := 0
	for _, k := range order {
		if counts[k] > bestN {
			best, bestN = k, counts[k]
		}
	}
	return best, bestN
}

// BusiestDay returns the calendar day with the most games, or nil when no
// game has a completion timestamp.
func BusiestDay(games []model.GameRecord, username string) *model.DayActivityStat {
	day, n := bucketGames(games, username, DayOf)
	if n == 0 {
		return nil
	}
	return &model.DayActivityStat{Day: day, Games: n}
}

// BusiestWeek returns the Sunday-anchored week with the most games.
func BusiestWeek(games []model.GameRecord, username string) *model.WeekActivityStat {
	week, n := bucketGames(games, username, WeekStartOf)
	if n == 0 {
		return nil
	}
	return &model.WeekActivityStat{WeekStart: week, Games: n}
}

// BusiestMonth returns the calendar month with the most games.
func BusiestMonth(games []model.GameRecord, username string) *model.MonthActivityStat {
	month, n := bucketGames(games, username, MonthStartOf)
	if n == 0 {
		return nil
	}
	return &model.MonthActivityStat{MonthStart: month, Games: n}
}

// playedDays returns the sorted, de-duplicated calendar days on which
// username has a resolved, timestamped game.
func playedDays(games []model.GameRecord, username string) []time.Time {
	set := make(map[time.Time]struct{})
	for _, g := range games {
		if _, ok := ResolveSide(g, username); !ok || g.CompletedAt == nil {
			continue
		}
		set[DayOf(*g.CompletedAt)] = struct{}{}
	}
	days := make([]time.Time, 0, len(set))
	for d := range set {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })
	return days
}

// LongestStreakDays finds the longest run of consecutive calendar days with
// at least one game. A single active day is a streak of length 1.
func LongestStreakDays(games []model.GameRecord, username string) *model.LongestStreak {
	days := playedDays(games, username)
	if len(days) == 0 {
		return nil
	}

	best := model.LongestStreak{Start: days[0], End: days[0], Days: 1}
	runStart := days[0]
	for i := 1; i < len(days); i++ {
		if daysBetween(days[i-1], days[i]) != 1 {
			runStart = days[i]
		}
		if n := daysBetween(runStart, days[i]) + 1; n > best.Days {
			best = model.LongestStreak{Start: runStart, End: days[i], Days: n}
		}
	}
	return &best
}

// LongestDroughtDays finds the longest gap of consecutive non-played days
// strictly between two played days. Needs at least two distinct active days;
// the reported range covers only days with zero games.
func LongestDroughtDays(games []model.GameRecord, username string) *model.LongestDrought {
	days := playedDays(games, username)
	if len(days) < 2 {
		return nil
	}

	var best *model.LongestDrought
	for i := 1; i < len(days); i++ {
		gap := daysBetween(days[i-1], days[i]) - 1
		if gap <= 0 {
			continue
		}
		if best == nil || gap > best.Days {
			best = &model.LongestDrought{
				Start: days[i-1].AddDate(0, 0, 1),
				End:   days[i].AddDate(0, 0, -1),
				Days:  gap,
			}
		}
	}
	return best
}
