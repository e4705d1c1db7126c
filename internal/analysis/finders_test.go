package analysis

import (
	"testing"
	"time"

	"github.com/arasv/runwrapped/internal/model"
)

func TestSideRecord_DecidedGamesOnly(t *testing.T) {
	games := []model.GameRecord{
		corpGame(model.SideCorp, day(2025, time.March, 1)),
		corpGame(model.SideCorp, day(2025, time.March, 2)),
		corpGame(model.SideRunner, day(2025, time.March, 3)),
		corpGame(model.SideNone, day(2025, time.March, 4)), // undecided
		runnerGame(model.SideRunner, day(2025, time.March, 5)),
	}

	rec := SideRecord(games, me, model.SideCorp)
	if rec == nil {
		t.Fatal("expected a corp record")
	}
	if rec.Wins != 2 || rec.Losses != 1 || rec.Total != 3 {
		t.Errorf("expected 2-1 over 3 games, got %+v", rec)
	}

	rec = SideRecord(games, me, model.SideRunner)
	if rec == nil || rec.Wins != 1 || rec.Losses != 0 {
		t.Errorf("expected 1-0 runner record, got %+v", rec)
	}
}

func TestSideRecord_NilWhenNoDecidedGames(t *testing.T) {
	games := []model.GameRecord{
		corpGame(model.SideNone, day(2025, time.March, 1)),
	}
	if rec := SideRecord(games, me, model.SideCorp); rec != nil {
		t.Errorf("expected nil record, got %+v", rec)
	}
}

func TestFavoriteIdentity(t *testing.T) {
	withIdentity := func(id string, winner model.Side, d int) model.GameRecord {
		g := corpGame(winner, day(2025, time.March, d))
		g.Corp.Identity = id
		return g
	}
	games := []model.GameRecord{
		withIdentity("Personal Evolution", model.SideCorp, 1),
		withIdentity("Personal Evolution", model.SideRunner, 2),
		withIdentity("Personal Evolution", model.SideRunner, 3),
		withIdentity("Engineering the Future", model.SideCorp, 4),
		withIdentity("Engineering the Future", model.SideCorp, 5),
	}

	fav := FavoriteIdentity(games, me, model.SideCorp)
	if fav == nil {
		t.Fatal("expected a favorite")
	}
	if fav.Identity != "Personal Evolution" {
		t.Errorf("expected most-played identity, got %q", fav.Identity)
	}
	if fav.Games != 3 || fav.Wins != 1 || fav.Losses != 2 {
		t.Errorf("unexpected tally: %+v", fav)
	}
}

// Equal game counts fall back to most wins.
func TestFavoriteIdentity_TieBrokenByWins(t *testing.T) {
	withIdentity := func(id string, winner model.Side, d int) model.GameRecord {
		g := corpGame(winner, day(2025, time.March, d))
		g.Corp.Identity = id
		return g
	}
	games := []model.GameRecord{
		withIdentity("Personal Evolution", model.SideRunner, 1),
		withIdentity("Personal Evolution", model.SideRunner, 2),
		withIdentity("Engineering the Future", model.SideCorp, 3),
		withIdentity("Engineering the Future", model.SideRunner, 4),
	}

	fav := FavoriteIdentity(games, me, model.SideCorp)
	if fav == nil || fav.Identity != "Engineering the Future" {
		t.Fatalf("expected win tiebreak, got %+v", fav)
	}
}

func TestFavoriteIdentity_SkipsBlankIdentity(t *testing.T) {
	g := corpGame(model.SideCorp, day(2025, time.March, 1))
	g.Corp.Identity = ""
	if fav := FavoriteIdentity([]model.GameRecord{g}, me, model.SideCorp); fav != nil {
		t.Errorf("expected nil favorite when no identity recorded, got %+v", fav)
	}
}

func TestMostFrequentOpponent(t *testing.T) {
	vs := func(opp string, winner model.Side, d int) model.GameRecord {
		g := corpGame(winner, day(2025, time.March, d))
		g.Runner.Username = opp
		return g
	}
	games := []model.GameRecord{
		vs(rival, model.SideCorp, 1),
		vs(rival, model.SideRunner, 2),
		vs(rival, model.SideNone, 3), // undecided still counts as a meeting
		vs(extra, model.SideCorp, 4),
	}

	nemesis := MostFrequentOpponent(games, me)
	if nemesis == nil {
		t.Fatal("expected a nemesis")
	}
	if nemesis.Username != rival || nemesis.Games != 3 {
		t.Errorf("expected %s over 3 games, got %+v", rival, nemesis)
	}
	if nemesis.Wins != 1 || nemesis.Losses != 1 {
		t.Errorf("expected 1-1 with one undecided, got %+v", nemesis)
	}
}

func TestTopOpponents(t *testing.T) {
	vs := func(opp string, d int) model.GameRecord {
		g := runnerGame(model.SideRunner, day(2025, time.March, d))
		g.Corp.Username = opp
		return g
	}
	games := []model.GameRecord{
		vs("alice", 1),
		vs("bob", 2),
		vs("bob", 3),
		vs("carol", 4),
		vs("carol", 5),
		vs("carol", 6),
	}

	top := TopOpponents(games, me, 2)
	if len(top) != 2 {
		t.Fatalf("expected limit of 2, got %d", len(top))
	}
	if top[0].Username != "carol" || top[1].Username != "bob" {
		t.Errorf("expected carol then bob, got %s then %s", top[0].Username, top[1].Username)
	}

	// Equal counts keep first-encountered order.
	top = TopOpponents(games[:2], me, 5)
	if len(top) != 2 || top[0].Username != "alice" {
		t.Errorf("expected alice first on tie, got %+v", top)
	}

	if TopOpponents(nil, me, 5) != nil {
		t.Error("expected nil for empty history")
	}
}

func TestLongestGameByTurns(t *testing.T) {
	g1 := corpGame(model.SideCorp, day(2025, time.March, 1))
	g1.TurnCount = model.Int(12)
	g2 := runnerGame(model.SideRunner, day(2025, time.March, 2))
	g2.TurnCount = model.Int(31)
	g3 := corpGame(model.SideCorp, day(2025, time.March, 3)) // no turn count

	longest := LongestGameByTurns([]model.GameRecord{g1, g2, g3}, me)
	if longest == nil {
		t.Fatal("expected a longest game")
	}
	if longest.Turns != 31 || longest.Side != model.SideRunner {
		t.Errorf("expected 31-turn runner game, got %+v", longest)
	}
	if longest.Opponent != rival {
		t.Errorf("expected opponent %q, got %q", rival, longest.Opponent)
	}

	if LongestGameByTurns([]model.GameRecord{g3}, me) != nil {
		t.Error("expected nil when no game has a turn count")
	}
}

func TestLongestGameByDuration(t *testing.T) {
	g1 := corpGame(model.SideCorp, day(2025, time.March, 1))
	g1.ElapsedMinutes = model.Float(45.5)
	g2 := corpGame(model.SideCorp, day(2025, time.March, 2))
	g2.ElapsedMinutes = model.Float(0) // zero length is not a candidate

	longest := LongestGameByDuration([]model.GameRecord{g1, g2}, me)
	if longest == nil || longest.Minutes != 45.5 {
		t.Fatalf("expected the 45.5-minute game, got %+v", longest)
	}

	if LongestGameByDuration([]model.GameRecord{g2}, me) != nil {
		t.Error("expected nil when no game has a positive duration")
	}
}
