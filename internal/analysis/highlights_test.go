package analysis

import (
	"testing"
	"time"

	"github.com/arasv/runwrapped/internal/model"
)

func TestFindHighlight_KeepsFirstOnTie(t *testing.T) {
	g1 := corpGame(model.SideCorp, day(2025, time.March, 1))
	g1.CorpStats.ClicksGained = model.Float(40)
	g2 := corpGame(model.SideCorp, day(2025, time.March, 2))
	g2.CorpStats.ClicksGained = model.Float(40)

	h := FindHighlight([]model.GameRecord{g1, g2}, me, clicksGained, MoreIsBetter)
	if h == nil {
		t.Fatal("expected a highlight")
	}
	if !h.CompletedAt.Equal(day(2025, time.March, 1)) {
		t.Errorf("expected the first-encountered game on a tie, got %v", h.CompletedAt)
	}
}

// A recorded zero and an absent value are different things: zero can win
// "most clicks" when every other game has nothing recorded, but an absent
// value can never be a candidate.
func TestHighlight_AbsentIsNotZero(t *testing.T) {
	recorded := corpGame(model.SideCorp, day(2025, time.March, 1))
	recorded.CorpStats.ClicksGained = model.Float(0)
	absent := corpGame(model.SideCorp, day(2025, time.March, 2))

	h := FindHighlight([]model.GameRecord{absent, recorded}, me, clicksGained, MoreIsBetter)
	if h == nil {
		t.Fatal("expected the recorded zero to qualify")
	}
	if h.Value != 0 || !h.CompletedAt.Equal(day(2025, time.March, 1)) {
		t.Errorf("expected the explicit zero game, got %+v", h)
	}

	if FindHighlight([]model.GameRecord{absent}, me, clicksGained, MoreIsBetter) != nil {
		t.Error("expected nil when the stat was never recorded")
	}
}

func TestHighlight_PositiveGuardRejectsZero(t *testing.T) {
	g := corpGame(model.SideCorp, day(2025, time.March, 1))
	g.CorpStats.Shuffles = model.Float(0)

	sel := positive(stat(func(s *model.SideStats) *float64 { return s.Shuffles }))
	if FindHighlight([]model.GameRecord{g}, me, sel, MoreIsBetter) != nil {
		t.Error("expected a zero shuffle count to not crown a superlative")
	}
}

func TestLeastRunsInWin_ExcludesLossesAndConcedes(t *testing.T) {
	withRuns := func(winner model.Side, runs float64, reason string, d int) model.GameRecord {
		g := runnerGame(winner, day(2025, time.March, d))
		g.RunnerStats.RunsStarted = model.Float(runs)
		g.Reason = reason
		return g
	}
	// The conceded win and the loss are ineligible; only the two honest
	// wins are candidates.
	games := []model.GameRecord{
		withRuns(model.SideRunner, 2, "Concede", 1),
		withRuns(model.SideCorp, 1, "Flatline", 2),
		withRuns(model.SideRunner, 5, "Agenda", 3),
		withRuns(model.SideRunner, 9, "Agenda", 4),
	}

	h := ComputeHighlights(games, me).LeastRunsInWin
	if h == nil {
		t.Fatal("expected a highlight")
	}
	if h.Value != 5 {
		t.Errorf("expected the 5-run honest win, got %v", h.Value)
	}
}

func TestFastestFlatlineWin(t *testing.T) {
	flatline := func(turns int, reason string, d int) model.GameRecord {
		g := corpGame(model.SideCorp, day(2025, time.March, d))
		g.TurnCount = model.Int(turns)
		g.Reason = reason
		return g
	}
	games := []model.GameRecord{
		flatline(4, "Flatline", 1), // keyword matches case-insensitively
		flatline(7, "flatline", 2),
		flatline(3, "Agenda", 3), // faster win, wrong reason
	}

	hl := ComputeHighlights(games, me)
	if hl.FastestFlatlineWin == nil || hl.FastestFlatlineWin.Value != 4 {
		t.Fatalf("expected the 4-turn flatline, got %+v", hl.FastestFlatlineWin)
	}
	// "" matches every win, so the agenda game is the overall fastest.
	if hl.FastestWin == nil || hl.FastestWin.Value != 3 {
		t.Errorf("expected the 3-turn win overall, got %+v", hl.FastestWin)
	}
	if hl.FastestAgendaWin == nil || hl.FastestAgendaWin.Value != 3 {
		t.Errorf("expected the agenda win, got %+v", hl.FastestAgendaWin)
	}
}

func TestFakeCredits_PositiveOverspendOnly(t *testing.T) {
	overspend := corpGame(model.SideCorp, day(2025, time.March, 1))
	overspend.CorpStats.CreditsGained = model.Float(10)
	overspend.CorpStats.CreditsSpent = model.Float(16)

	frugal := corpGame(model.SideCorp, day(2025, time.March, 2))
	frugal.CorpStats.CreditsGained = model.Float(20)
	frugal.CorpStats.CreditsSpent = model.Float(12)

	partial := corpGame(model.SideCorp, day(2025, time.March, 3))
	partial.CorpStats.CreditsSpent = model.Float(99) // gained absent

	h := ComputeHighlights([]model.GameRecord{overspend, frugal, partial}, me).FakeCredits
	if h == nil {
		t.Fatal("expected a fake-credits highlight")
	}
	if h.Value != 6 {
		t.Errorf("expected 6 fake credits, got %v", h.Value)
	}

	if h := ComputeHighlights([]model.GameRecord{frugal}, me).FakeCredits; h != nil {
		t.Errorf("expected no highlight without overspend, got %+v", h)
	}
}

// The only highlight that reads the opposing side's stats: corp damage in a
// game the runner survived and won.
func TestMostDamageTakenInWin(t *testing.T) {
	g := runnerGame(model.SideRunner, day(2025, time.March, 1))
	g.CorpStats.DamageDone = model.Float(11)

	h := ComputeHighlights([]model.GameRecord{g}, me).MostDamageTakenInWin
	if h == nil || h.Value != 11 || h.Side != model.SideRunner {
		t.Fatalf("expected 11 damage taken on the runner side, got %+v", h)
	}

	// Same damage in a loss does not qualify.
	loss := runnerGame(model.SideCorp, day(2025, time.March, 2))
	loss.CorpStats.DamageDone = model.Float(11)
	if h := ComputeHighlights([]model.GameRecord{loss}, me).MostDamageTakenInWin; h != nil {
		t.Errorf("expected no highlight for a lost game, got %+v", h)
	}
}

func TestPerTurnHighlights_RequireTurnCount(t *testing.T) {
	noTurns := corpGame(model.SideCorp, day(2025, time.March, 1))
	noTurns.CorpStats.ClicksGained = model.Float(30)

	withTurns := corpGame(model.SideCorp, day(2025, time.March, 2))
	withTurns.CorpStats.ClicksGained = model.Float(30)
	withTurns.TurnCount = model.Int(10)

	hl := ComputeHighlights([]model.GameRecord{noTurns, withTurns}, me)
	if hl.MostClicksPerTurn == nil || hl.MostClicksPerTurn.Value != 3 {
		t.Fatalf("expected 3 clicks/turn, got %+v", hl.MostClicksPerTurn)
	}
	if hl.MostClicksPerTurn.CompletedAt.Equal(day(2025, time.March, 1)) {
		t.Error("the turnless game must not be a per-turn candidate")
	}
}

func TestMinutesPerTurn(t *testing.T) {
	g := corpGame(model.SideCorp, day(2025, time.March, 1))
	g.ElapsedMinutes = model.Float(30)
	g.TurnCount = model.Int(12)

	hl := ComputeHighlights([]model.GameRecord{g}, me)
	if hl.MostMinutesPerTurn == nil || hl.MostMinutesPerTurn.Value != 2.5 {
		t.Fatalf("expected 2.5 min/turn, got %+v", hl.MostMinutesPerTurn)
	}
	if hl.LeastMinutesPerTurn == nil || hl.LeastMinutesPerTurn.Value != 2.5 {
		t.Errorf("a single game is both the most and the least, got %+v", hl.LeastMinutesPerTurn)
	}
}

func TestSideOnlyHighlights(t *testing.T) {
	corp := corpGame(model.SideCorp, day(2025, time.March, 1))
	corp.CorpStats.CardsRezzed = model.Float(8)
	corp.CorpStats.DamageDone = model.Float(5)

	runner := runnerGame(model.SideRunner, day(2025, time.March, 2))
	runner.RunnerStats.TagsGained = model.Float(4)
	runner.RunnerUniqueAccesses = model.Int(13)

	hl := ComputeHighlights([]model.GameRecord{corp, runner}, me)
	if hl.MostCardsRezzed == nil || hl.MostCardsRezzed.Side != model.SideCorp {
		t.Errorf("expected a corp-side rez highlight, got %+v", hl.MostCardsRezzed)
	}
	if hl.MostDamageDealt == nil || hl.MostDamageDealt.Value != 5 {
		t.Errorf("expected corp damage dealt, got %+v", hl.MostDamageDealt)
	}
	if hl.MostTagsGained == nil || hl.MostTagsGained.Side != model.SideRunner {
		t.Errorf("expected a runner-side tag highlight, got %+v", hl.MostTagsGained)
	}
	if hl.MostUniqueAccesses == nil || hl.MostUniqueAccesses.Value != 13 {
		t.Errorf("expected 13 unique accesses, got %+v", hl.MostUniqueAccesses)
	}
}

func TestComputeHighlights_EmptyHistory(t *testing.T) {
	hl := ComputeHighlights(nil, me)
	if hl.MostClicksGained != nil || hl.FastestWin != nil || hl.FakeCredits != nil {
		t.Errorf("expected every highlight nil for an empty history, got %+v", hl)
	}
}
