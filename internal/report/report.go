// Package report renders computed summaries as terminal tables.
package report

import (
	"fmt"
	"io"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/arasv/runwrapped/internal/analysis"
	"github.com/arasv/runwrapped/internal/model"
)

func newTable(w io.Writer) *tablewriter.Table {
	return tablewriter.NewTable(w, tablewriter.WithConfig(tablewriter.Config{
		Row: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignRight},
		},
		Header: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignCenter},
		},
	}))
}

const noData = "—"

func fmtDay(t time.Time) string {
	return t.Format("2006-01-02")
}

func fmtOptDay(t *time.Time) string {
	if t == nil {
		return noData
	}
	return fmtDay(*t)
}

// PrintProfile prints the detected-player header line and aggregates.
func PrintProfile(w io.Writer, s *model.Summary) {
	if s.Profile == nil {
		fmt.Fprintln(w, "No games in upload.")
		return
	}
	p := s.Profile
	fmt.Fprintf(w, "\nPlayer: %s  |  Games: %d (corp %d / runner %d)  |  Coverage: %.0f%%\n",
		p.Username, p.TotalGames, p.CorpGames, p.RunnerGames, p.Coverage*100)
	a := s.Aggregates
	fmt.Fprintf(w, "Played %.0f minutes over %d days  |  %.1f games/day  |  %.1f min/game  |  %.0f min/day\n\n",
		a.TotalMinutes, a.TotalDays, a.AvgGamesPerDay, a.AvgMinutesPerGame, a.AvgMinutesPerDay)
}

// PrintRecords prints per-side win/loss records and favorite identities.
func PrintRecords(w io.Writer, games []model.GameRecord, username string) {
	t := newTable(w)
	t.Header("SIDE", "W", "L", "TOTAL", "WIN%", "FAVORITE IDENTITY", "FAV W-L")
	for _, side := range []model.Side{model.SideCorp, model.SideRunner} {
		rec := analysis.SideRecord(games, username, side)
		fav := analysis.FavoriteIdentity(games, username, side)
		if rec == nil {
			t.Append(side.String(), noData, noData, "0", noData, noData, noData)
			continue
		}
		favName, favRec := noData, noData
		if fav != nil {
			favName = fav.Identity
			favRec = fmt.Sprintf("%d-%d", fav.Wins, fav.Losses)
		}
		t.Append(
			side.String(),
			fmt.Sprintf("%d", rec.Wins),
			fmt.Sprintf("%d", rec.Losses),
			fmt.Sprintf("%d", rec.Total),
			fmt.Sprintf("%.0f%%", float64(rec.Wins)/float64(rec.Total)*100),
			favName,
			favRec,
		)
	}
	t.Render()
}

// PrintOpponents prints the top-N opponent leaderboard.
func PrintOpponents(w io.Writer, games []model.GameRecord, username string, limit int) {
	opponents := analysis.TopOpponents(games, username, limit)
	if len(opponents) == 0 {
		fmt.Fprintln(w, "No opponents found.")
		return
	}
	t := newTable(w)
	t.Header("OPPONENT", "GAMES", "W", "L", "WIN%")
	for _, o := range opponents {
		pct := noData
		if decided := o.Wins + o.Losses; decided > 0 {
			pct = fmt.Sprintf("%.0f%%", float64(o.Wins)/float64(decided)*100)
		}
		t.Append(o.Username, fmt.Sprintf("%d", o.Games),
			fmt.Sprintf("%d", o.Wins), fmt.Sprintf("%d", o.Losses), pct)
	}
	t.Render()
}

// PrintActivity prints busiest periods, the streak, and the drought.
func PrintActivity(w io.Writer, games []model.GameRecord, username string) {
	t := newTable(w)
	t.Header("ACTIVITY", "WHEN", "GAMES/DAYS")

	if d := analysis.BusiestDay(games, username); d != nil {
		t.Append("busiest day", fmtDay(d.Day), fmt.Sprintf("%d games", d.Games))
	} else {
		t.Append("busiest day", noData, noData)
	}
	if wk := analysis.BusiestWeek(games, username); wk != nil {
		t.Append("busiest week", "w/o "+fmtDay(wk.WeekStart), fmt.Sprintf("%d games", wk.Games))
	} else {
		t.Append("busiest week", noData, noData)
	}
	if m := analysis.BusiestMonth(games, username); m != nil {
		t.Append("busiest month", m.MonthStart.Format("January 2006"), fmt.Sprintf("%d games", m.Games))
	} else {
		t.Append("busiest month", noData, noData)
	}
	if s := analysis.LongestStreakDays(games, username); s != nil {
		t.Append("longest streak", fmtDay(s.Start)+" to "+fmtDay(s.End), fmt.Sprintf("%d days", s.Days))
	} else {
		t.Append("longest streak", noData, noData)
	}
	if d := analysis.LongestDroughtDays(games, username); d != nil {
		t.Append("longest drought", fmtDay(d.Start)+" to "+fmtDay(d.End), fmt.Sprintf("%d days", d.Days))
	} else {
		t.Append("longest drought", noData, noData)
	}
	t.Render()
}

// PrintLongestGames prints the turn-based and duration-based longest games.
func PrintLongestGames(w io.Writer, games []model.GameRecord, username string) {
	t := newTable(w)
	t.Header("LONGEST", "SIDE", "VALUE", "IDENTITY", "OPPONENT", "WHEN")
	if lg := analysis.LongestGameByTurns(games, username); lg != nil {
		t.Append("by turns", lg.Side.String(), fmt.Sprintf("%d turns", lg.Turns),
			lg.Identity, lg.Opponent, fmtOptDay(lg.CompletedAt))
	} else {
		t.Append("by turns", noData, noData, noData, noData, noData)
	}
	if lg := analysis.LongestGameByDuration(games, username); lg != nil {
		t.Append("by duration", lg.Side.String(), fmt.Sprintf("%.0f min", lg.Minutes),
			lg.Identity, lg.Opponent, fmtOptDay(lg.CompletedAt))
	} else {
		t.Append("by duration", noData, noData, noData, noData, noData)
	}
	t.Render()
}

// highlightRow is one named entry of the highlights table.
type highlightRow struct {
	name string
	h    *model.GameHighlight
}

// HighlightRows flattens the highlight bag into display order.
func HighlightRows(h model.Highlights) []highlightRow {
	return []highlightRow{
		{"most clicks gained", h.MostClicksGained},
		{"most credits gained", h.MostCreditsGained},
		{"most credits spent", h.MostCreditsSpent},
		{"most credits from clicking", h.MostCreditsFromClicks},
		{"most cards drawn", h.MostCardsDrawn},
		{"most cards drawn by clicking", h.MostCardsDrawnFromClicks},
		{"most shuffles", h.MostShuffles},
		{"most cards played", h.MostCardsPlayed},
		{"most cards accessed", h.MostCardsAccessed},
		{"most unique accesses", h.MostUniqueAccesses},
		{"most runs started", h.MostRunsStarted},
		{"least runs in a win", h.LeastRunsInWin},
		{"most tags taken", h.MostTagsGained},
		{"most damage dealt", h.MostDamageDealt},
		{"most damage survived in a win", h.MostDamageTakenInWin},
		{"most clicks per turn", h.MostClicksPerTurn},
		{"least clicks per turn", h.LeastClicksPerTurn},
		{"most credits per turn", h.MostCreditsPerTurn},
		{"least credits per turn", h.LeastCreditsPerTurn},
		{"most cards played per turn", h.MostCardsPlayedPerTurn},
		{"slowest turns (min/turn)", h.MostMinutesPerTurn},
		{"fastest turns (min/turn)", h.LeastMinutesPerTurn},
		{"fake credits", h.FakeCredits},
		{"most cards rezzed", h.MostCardsRezzed},
		{"fewest rezzes in a win", h.FewestCardsRezzedInWin},
		{"fastest flatline win", h.FastestFlatlineWin},
		{"fastest agenda win", h.FastestAgendaWin},
		{"fastest win", h.FastestWin},
		{"longest win by turns", h.LongestWinByTurns},
		{"least credits spent in a win", h.LeastCreditsSpentInWin},
	}
}

// PrintHighlights prints the full superlative table. Unearned highlights
// render as no-data rows rather than being hidden, so the shape of the
// table is stable across uploads.
func PrintHighlights(w io.Writer, h model.Highlights) {
	t := newTable(w)
	t.Header("HIGHLIGHT", "VALUE", "SIDE", "IDENTITY", "VS", "WHEN")
	for _, row := range HighlightRows(h) {
		if row.h == nil {
			t.Append(row.name, noData, noData, noData, noData, noData)
			continue
		}
		t.Append(
			row.name,
			fmtValue(row.h.Value),
			row.h.Side.String(),
			row.h.Identity,
			row.h.Opponent,
			fmtOptDay(row.h.CompletedAt),
		)
	}
	t.Render()
}

// PrintReasons prints the most common win and loss reasons.
func PrintReasons(w io.Writer, reasons model.WinLossReasons) {
	t := newTable(w)
	t.Header("OUTCOME", "TOP REASON", "COUNT", "SHARE")
	for _, row := range []struct {
		label string
		r     *model.ReasonSummary
	}{{"wins", reasons.Win}, {"losses", reasons.Loss}} {
		if row.r == nil {
			t.Append(row.label, noData, noData, noData)
			continue
		}
		t.Append(row.label, row.r.Reason,
			fmt.Sprintf("%d of %d", row.r.Count, row.r.Total),
			fmt.Sprintf("%.0f%%", row.r.Percent))
	}
	t.Render()
}

func fmtValue(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%.2f", v)
}
