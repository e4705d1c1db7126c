package analysis

import (
	"strings"

	"github.com/arasv/runwrapped/internal/model"
)

// Selector extracts a candidate metric value from one game, given the side
// the tracked player resolved to. Returning false means the game is not
// eligible for this highlight — which is not the same as a value of zero.
// Each selector carries its own eligibility rules (side restriction,
// win/loss restriction, reason keyword, positivity); the framework has none.
type Selector func(g model.GameRecord, side model.Side) (float64, bool)

// Comparator reports whether candidate should replace the current best.
// Strict comparison keeps the first-encountered game on ties.
type Comparator func(candidate, best float64) bool

// MoreIsBetter keeps the maximum.
func MoreIsBetter(candidate, best float64) bool { return candidate > best }

// LessIsBetter keeps the minimum.
func LessIsBetter(candidate, best float64) bool { return candidate < best }

// FindHighlight runs one pass over games, resolves username's side in each,
// applies sel, and keeps the running best per cmp. Nil when nothing qualifies.
func FindHighlight(games []model.GameRecord, username string, sel Selector, cmp Comparator) *model.GameHighlight {
	var best *model.GameHighlight
	for i := range games {
		g := games[i]
		side, ok := ResolveSide(g, username)
		if !ok {
			continue
		}
		v, ok := sel(g, side)
		if !ok {
			continue
		}
		if best != nil && !cmp(v, best.Value) {
			continue
		}
		best = &model.GameHighlight{
			Side:             side,
			Value:            v,
			Identity:         g.Role(side).Identity,
			Opponent:         g.Role(side.Opponent()).Username,
			OpponentIdentity: g.Role(side.Opponent()).Identity,
			CompletedAt:      g.CompletedAt,
			TurnCount:        g.TurnCount,
			Won:              g.Winner != model.SideNone && g.Winner == side,
			Decided:          g.Winner != model.SideNone,
			Reason:           g.Reason,
		}
	}
	return best
}

// reasonContains matches a termination-reason keyword case-insensitively.
func reasonContains(g model.GameRecord, keyword string) bool {
	return strings.Contains(strings.ToLower(g.Reason), keyword)
}

func isConcede(g model.GameRecord) bool { return reasonContains(g, "concede") }

func wonBy(g model.GameRecord, side model.Side) bool {
	return g.Winner != model.SideNone && g.Winner == side
}

// stat builds a selector for a common per-side counter. Presence is the only
// requirement.
func stat(get func(*model.SideStats) *float64) Selector {
	return func(g model.GameRecord, side model.Side) (float64, bool) {
		v := get(g.Stats(side))
		if v == nil {
			return 0, false
		}
		return *v, true
	}
}

// positive wraps a selector with a strict > 0 requirement, for counters
// where a zero would crown a meaningless superlative.
func positive(sel Selector) Selector {
	return func(g model.GameRecord, side model.Side) (float64, bool) {
		v, ok := sel(g, side)
		return v, ok && v > 0
	}
}

// onSide restricts a selector to games the player played on the given side.
func onSide(want model.Side, sel Selector) Selector {
	return func(g model.GameRecord, side model.Side) (float64, bool) {
		if side != want {
			return 0, false
		}
		return sel(g, side)
	}
}

// inWin restricts a selector to games the player won.
func inWin(sel Selector) Selector {
	return func(g model.GameRecord, side model.Side) (float64, bool) {
		if !wonBy(g, side) {
			return 0, false
		}
		return sel(g, side)
	}
}

// noConcede excludes concede games, so trivial wins can't take superlatives
// such as "least credits spent in a win".
func noConcede(sel Selector) Selector {
	return func(g model.GameRecord, side model.Side) (float64, bool) {
		if isConcede(g) {
			return 0, false
		}
		return sel(g, side)
	}
}

// perTurn divides the selected value by the turn count. Both the metric and
// a positive turn count must be present.
func perTurn(sel Selector) Selector {
	return func(g model.GameRecord, side model.Side) (float64, bool) {
		v, ok := sel(g, side)
		if !ok || g.TurnCount == nil || *g.TurnCount <= 0 {
			return 0, false
		}
		return v / float64(*g.TurnCount), true
	}
}

// turnsToWin selects the turn count of wins whose reason matches keyword
// ("" matches every win). Used minimized for the "fastest" highlights.
func turnsToWin(keyword string) Selector {
	return func(g model.GameRecord, side model.Side) (float64, bool) {
		if !wonBy(g, side) || g.TurnCount == nil || *g.TurnCount <= 0 {
			return 0, false
		}
		if keyword != "" && !reasonContains(g, keyword) {
			return 0, false
		}
		return float64(*g.TurnCount), true
	}
}

// Named selectors that don't reduce to the combinators above.

// fakeCredits is credits spent beyond credits gained: economy that never
// existed. Only positive overspend counts.
func fakeCredits(g model.GameRecord, side model.Side) (float64, bool) {
	s := g.Stats(side)
	if s.CreditsSpent == nil || s.CreditsGained == nil {
		return 0, false
	}
	d := *s.CreditsSpent - *s.CreditsGained
	return d, d > 0
}

// damageTakenInWin is the opposing corp's recorded damage in a game the
// runner still won.
func damageTakenInWin(g model.GameRecord, side model.Side) (float64, bool) {
	if side != model.SideRunner || !wonBy(g, side) {
		return 0, false
	}
	v := g.CorpStats.DamageDone
	if v == nil || *v <= 0 {
		return 0, false
	}
	return *v, true
}

func cardsRezzed(g model.GameRecord, side model.Side) (float64, bool) {
	if side != model.SideCorp || g.CorpStats.CardsRezzed == nil {
		return 0, false
	}
	return *g.CorpStats.CardsRezzed, true
}

func runsStarted(g model.GameRecord, side model.Side) (float64, bool) {
	if side != model.SideRunner || g.RunnerStats.RunsStarted == nil {
		return 0, false
	}
	return *g.RunnerStats.RunsStarted, true
}

func tagsGained(g model.GameRecord, side model.Side) (float64, bool) {
	if side != model.SideRunner || g.RunnerStats.TagsGained == nil {
		return 0, false
	}
	return *g.RunnerStats.TagsGained, true
}

func uniqueAccesses(g model.GameRecord, side model.Side) (float64, bool) {
	if side != model.SideRunner || g.RunnerUniqueAccesses == nil || *g.RunnerUniqueAccesses <= 0 {
		return 0, false
	}
	return float64(*g.RunnerUniqueAccesses), true
}

func minutesPerTurn(g model.GameRecord, side model.Side) (float64, bool) {
	if g.ElapsedMinutes == nil || *g.ElapsedMinutes <= 0 || g.TurnCount == nil || *g.TurnCount <= 0 {
		return 0, false
	}
	return *g.ElapsedMinutes / float64(*g.TurnCount), true
}

var (
	clicksGained  = stat(func(s *model.SideStats) *float64 { return s.ClicksGained })
	creditsGained = stat(func(s *model.SideStats) *float64 { return s.CreditsGained })
	creditsSpent  = stat(func(s *model.SideStats) *float64 { return s.CreditsSpent })
	cardsDrawn    = stat(func(s *model.SideStats) *float64 { return s.CardsDrawn })
	cardsPlayed   = stat(func(s *model.SideStats) *float64 { return s.CardsPlayed })
)

// ComputeHighlights instantiates every named superlative over one pass each.
func ComputeHighlights(games []model.GameRecord, username string) model.Highlights {
	find := func(sel Selector, cmp Comparator) *model.GameHighlight {
		return FindHighlight(games, username, sel, cmp)
	}
	most := func(sel Selector) *model.GameHighlight { return find(sel, MoreIsBetter) }
	least := func(sel Selector) *model.GameHighlight { return find(sel, LessIsBetter) }

	return model.Highlights{
		MostClicksGained:  most(clicksGained),
		MostCreditsGained: most(creditsGained),
		MostCreditsSpent:  most(creditsSpent),
		MostCreditsFromClicks: most(positive(
			stat(func(s *model.SideStats) *float64 { return s.CreditsFromClicks }))),
		MostCardsDrawn: most(cardsDrawn),
		MostCardsDrawnFromClicks: most(positive(
			stat(func(s *model.SideStats) *float64 { return s.CardsDrawnFromClicks }))),
		MostShuffles: most(positive(
			stat(func(s *model.SideStats) *float64 { return s.Shuffles }))),
		MostCardsPlayed: most(cardsPlayed),
		MostCardsAccessed: most(positive(
			stat(func(s *model.SideStats) *float64 { return s.CardsAccessed }))),
		MostUniqueAccesses: most(uniqueAccesses),
		MostRunsStarted:    most(positive(runsStarted)),
		LeastRunsInWin:     least(noConcede(inWin(runsStarted))),
		MostTagsGained:     most(positive(tagsGained)),
		MostDamageDealt: most(positive(onSide(model.SideCorp,
			stat(func(s *model.SideStats) *float64 { return s.DamageDone })))),
		MostDamageTakenInWin:   most(damageTakenInWin),
		MostClicksPerTurn:      most(perTurn(clicksGained)),
		LeastClicksPerTurn:     least(perTurn(clicksGained)),
		MostCreditsPerTurn:     most(perTurn(creditsGained)),
		LeastCreditsPerTurn:    least(perTurn(creditsGained)),
		MostCardsPlayedPerTurn: most(perTurn(cardsPlayed)),
		MostMinutesPerTurn:     most(minutesPerTurn),
		LeastMinutesPerTurn:    least(minutesPerTurn),
		FakeCredits:            most(fakeCredits),
		MostCardsRezzed:        most(positive(cardsRezzed)),
		FewestCardsRezzedInWin: least(noConcede(inWin(cardsRezzed))),
		FastestFlatlineWin:     least(turnsToWin("flatline")),
		FastestAgendaWin:       least(turnsToWin("agenda")),
		FastestWin:             least(turnsToWin("")),
		LongestWinByTurns:      most(turnsToWin("")),
		LeastCreditsSpentInWin: least(noConcede(inWin(creditsSpent))),
	}
}
