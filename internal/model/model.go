package model

import "time"

// Side represents which of the two asymmetric roles a player was on.
type Side int

const (
	SideNone   Side = 0
	SideCorp   Side = 1
	SideRunner Side = 2
)

func (s Side) String() string {
	switch s {
	case SideCorp:
		return "corp"
	case SideRunner:
		return "runner"
	default:
		return "?"
	}
}

// Opponent returns the other side, or SideNone for SideNone.
func (s Side) Opponent() Side {
	switch s {
	case SideCorp:
		return SideRunner
	case SideRunner:
		return SideCorp
	default:
		return SideNone
	}
}

// RoleSnapshot is one side's participant info for one game.
// Empty strings mean the field was absent from the raw record.
type RoleSnapshot struct {
	Username  string
	Identity  string
	EmailHash string
}

// SideStats holds the per-game counters recorded for either side.
// Every field is independently optional: nil means "not recorded",
// which is distinct from zero and must stay that way — several
// highlights require positivity or presence, not just magnitude.
type SideStats struct {
	ClicksGained         *float64
	CreditsGained        *float64
	CreditsSpent         *float64
	CreditsFromClicks    *float64
	CardsDrawn           *float64
	CardsDrawnFromClicks *float64
	Shuffles             *float64
	CardsPlayed          *float64
	CardsAccessed        *float64
	DamageDone           *float64
}

// CorpStats is the corp-side metric set. CardsRezzed only exists here:
// the raw export sometimes carries rez counts under the runner key, and
// the normalizer discards those rather than let them leak across roles.
type CorpStats struct {
	SideStats
	CardsRezzed *float64
}

// RunnerStats is the runner-side metric set. Runs and tags are
// runner-only for the same reason rez counts are corp-only.
type RunnerStats struct {
	SideStats
	RunsStarted *float64
	TagsGained  *float64
}

// GameRecord is the canonical unit produced by the normalizer.
type GameRecord struct {
	Winner               Side // SideNone when the game had no recorded winner
	Corp                 RoleSnapshot
	Runner               RoleSnapshot
	StartedAt            *time.Time
	CompletedAt          *time.Time
	ElapsedMinutes       *float64 // clamped to >= 0 when present
	Format               string   // lowercase, "" when absent
	TurnCount            *int     // non-negative when present
	CorpStats            CorpStats
	RunnerStats          RunnerStats
	RunnerUniqueAccesses *int
	Reason               string // "" when absent
}

// Stats returns the common stat block for the given side, or nil for SideNone.
func (g *GameRecord) Stats(side Side) *SideStats {
	switch side {
	case SideCorp:
		return &g.CorpStats.SideStats
	case SideRunner:
		return &g.RunnerStats.SideStats
	default:
		return nil
	}
}

// Role returns the snapshot for the given side, or an empty snapshot for SideNone.
func (g *GameRecord) Role(side Side) RoleSnapshot {
	switch side {
	case SideCorp:
		return g.Corp
	case SideRunner:
		return g.Runner
	default:
		return RoleSnapshot{}
	}
}

// UserProfile identifies the tracked player inferred from an upload.
type UserProfile struct {
	Username       string
	EmailHash      string
	TotalGames     int
	CorpGames      int
	RunnerGames    int
	MatchedGames   int
	UnmatchedGames int
	Coverage       float64 // MatchedGames / TotalGames
}

// AggregateStats are whole-history scalar summaries over the games the
// profile's user actually played (both usernames recorded).
type AggregateStats struct {
	TotalMinutes      float64
	TotalDays         int
	AvgGamesPerDay    float64
	AvgMinutesPerGame float64
	AvgMinutesPerDay  float64
}

// RoleRecord is the win/loss record for one side, over decided games only.
type RoleRecord struct {
	Side   Side
	Wins   int
	Losses int
	Total  int
}

// IdentityFavorite is the most-played identity for one side.
type IdentityFavorite struct {
	Side     Side
	Identity string
	Games    int
	Wins     int
	Losses   int
}

// FrequentOpponent is the single most frequent opposing username.
type FrequentOpponent struct {
	Username  string
	EmailHash string
	Games     int
	Wins      int // tracked player's wins against them
	Losses    int
}

// TopOpponent is one row of the top-N opponent leaderboard.
type TopOpponent struct {
	Username  string
	EmailHash string
	Games     int
	Wins      int
	Losses    int
}

// LongestGame is the game with the highest recorded turn count.
type LongestGame struct {
	Side        Side
	Turns       int
	Identity    string
	Opponent    string
	CompletedAt *time.Time
}

// LongestDurationGame is the game with the longest recorded wall-clock length.
type LongestDurationGame struct {
	Side        Side
	Minutes     float64
	Identity    string
	Opponent    string
	CompletedAt *time.Time
}

// DayActivityStat is the busiest calendar day.
type DayActivityStat struct {
	Day   time.Time // midnight UTC of the day
	Games int
}

// WeekActivityStat is the busiest week (weeks start on Sunday).
type WeekActivityStat struct {
	WeekStart time.Time
	Games     int
}

// MonthActivityStat is the busiest calendar month.
type MonthActivityStat struct {
	MonthStart time.Time
	Games      int
}

// LongestStreak is the longest run of consecutive days with at least one game.
type LongestStreak struct {
	Start time.Time
	End   time.Time
	Days  int
}

// LongestDrought is the longest run of consecutive days with no games,
// strictly between two played days. Start and End are the first and last
// non-played days of the gap.
type LongestDrought struct {
	Start time.Time
	End   time.Time
	Days  int
}

// GameHighlight is the record behind one superlative: the single game that
// achieved the extreme value of some per-game metric.
type GameHighlight struct {
	Side             Side
	Value            float64
	Identity         string
	Opponent         string
	OpponentIdentity string
	CompletedAt      *time.Time
	TurnCount        *int
	Won              bool
	Decided          bool
	Reason           string
}

// Highlights is the fixed bag of named superlatives. A nil entry means no
// game qualified, which callers render as "no data", never as an error.
type Highlights struct {
	MostClicksGained         *GameHighlight
	MostCreditsGained        *GameHighlight
	MostCreditsSpent         *GameHighlight
	MostCreditsFromClicks    *GameHighlight
	MostCardsDrawn           *GameHighlight
	MostCardsDrawnFromClicks *GameHighlight
	MostShuffles             *GameHighlight
	MostCardsPlayed          *GameHighlight
	MostCardsAccessed        *GameHighlight
	MostUniqueAccesses       *GameHighlight
	MostRunsStarted          *GameHighlight
	LeastRunsInWin           *GameHighlight
	MostTagsGained           *GameHighlight
	MostDamageDealt          *GameHighlight
	MostDamageTakenInWin     *GameHighlight
	MostClicksPerTurn        *GameHighlight
	LeastClicksPerTurn       *GameHighlight
	MostCreditsPerTurn       *GameHighlight
	LeastCreditsPerTurn      *GameHighlight
	MostCardsPlayedPerTurn   *GameHighlight
	MostMinutesPerTurn       *GameHighlight
	LeastMinutesPerTurn      *GameHighlight
	FakeCredits              *GameHighlight
	MostCardsRezzed          *GameHighlight
	FewestCardsRezzedInWin   *GameHighlight
	FastestFlatlineWin       *GameHighlight
	FastestAgendaWin         *GameHighlight
	FastestWin               *GameHighlight
	LongestWinByTurns        *GameHighlight
	LeastCreditsSpentInWin   *GameHighlight
}

// ReasonSummary is the most frequent normalized termination reason for one
// outcome bucket.
type ReasonSummary struct {
	Reason  string
	Count   int
	Total   int
	Percent float64
}

// WinLossReasons pairs the win-bucket and loss-bucket summaries.
type WinLossReasons struct {
	Win  *ReasonSummary
	Loss *ReasonSummary
}

// Summary is the value returned by upload.Summarize. Finder and highlight
// results are computed on demand from Games + Profile.Username, not stored.
type Summary struct {
	Games      []GameRecord
	Profile    *UserProfile
	Aggregates AggregateStats
}

// Float returns a pointer to v. Convenience for building records by hand.
func Float(v float64) *float64 { return &v }

// Int returns a pointer to v.
func Int(v int) *int { return &v }

// Time returns a pointer to t.
func Time(t time.Time) *time.Time { return &t }
