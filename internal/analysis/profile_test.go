package analysis

import (
	"testing"
	"time"

	"github.com/arasv/runwrapped/internal/model"
)

// Test usernames.
const (
	me    = "wiseguy"
	rival = "hqpressure"
	extra = "maxx4eva"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// corpGame builds a timestamped game with me on corp against rival.
func corpGame(winner model.Side, at time.Time) model.GameRecord {
	return model.GameRecord{
		Winner:      winner,
		Corp:        model.RoleSnapshot{Username: me, Identity: "Engineering the Future"},
		Runner:      model.RoleSnapshot{Username: rival, Identity: "Kate"},
		CompletedAt: model.Time(at),
	}
}

// runnerGame builds a timestamped game with me on runner against rival.
func runnerGame(winner model.Side, at time.Time) model.GameRecord {
	return model.GameRecord{
		Winner:      winner,
		Corp:        model.RoleSnapshot{Username: rival, Identity: "Personal Evolution"},
		Runner:      model.RoleSnapshot{Username: me, Identity: "Noise"},
		CompletedAt: model.Time(at),
	}
}

func TestResolveSide(t *testing.T) {
	g := corpGame(model.SideCorp, day(2025, time.March, 1))

	side, ok := ResolveSide(g, me)
	if !ok || side != model.SideCorp {
		t.Errorf("expected (corp, true), got (%v, %v)", side, ok)
	}
	side, ok = ResolveSide(g, rival)
	if !ok || side != model.SideRunner {
		t.Errorf("expected (runner, true), got (%v, %v)", side, ok)
	}
	if _, ok := ResolveSide(g, extra); ok {
		t.Error("expected non-participant to not resolve")
	}
}

// A game where the opposing seat has no recorded username does not count as
// played at all: it would otherwise pollute records, opponents, and streaks.
func TestResolveSide_RequiresBothUsernames(t *testing.T) {
	g := corpGame(model.SideCorp, day(2025, time.March, 1))
	g.Runner.Username = ""

	if _, ok := ResolveSide(g, me); ok {
		t.Error("expected game with missing opponent username to not resolve")
	}
	if _, ok := ResolveSide(g, ""); ok {
		t.Error("expected empty username to never resolve")
	}
}

func TestDetectProfile_MostFrequentUsername(t *testing.T) {
	games := []model.GameRecord{
		corpGame(model.SideCorp, day(2025, time.March, 1)),
		runnerGame(model.SideRunner, day(2025, time.March, 2)),
		{
			Corp:   model.RoleSnapshot{Username: me},
			Runner: model.RoleSnapshot{Username: extra},
		},
	}

	p := DetectProfile(games)
	if p == nil {
		t.Fatal("expected a profile")
	}
	if p.Username != me {
		t.Errorf("expected %q detected, got %q", me, p.Username)
	}
	if p.TotalGames != 3 || p.CorpGames != 2 || p.RunnerGames != 1 {
		t.Errorf("unexpected side split: total=%d corp=%d runner=%d",
			p.TotalGames, p.CorpGames, p.RunnerGames)
	}
	if p.MatchedGames != 3 || p.Coverage != 1.0 {
		t.Errorf("expected full coverage, got matched=%d coverage=%v", p.MatchedGames, p.Coverage)
	}
}

// Equal counts go to the username encountered first in the upload.
func TestDetectProfile_TieGoesToFirstSeen(t *testing.T) {
	games := []model.GameRecord{
		{
			Corp:   model.RoleSnapshot{Username: rival},
			Runner: model.RoleSnapshot{Username: me},
		},
	}
	p := DetectProfile(games)
	if p == nil || p.Username != rival {
		t.Fatalf("expected first-seen %q on tie, got %+v", rival, p)
	}
}

func TestDetectProfile_EmptyAndAnonymous(t *testing.T) {
	if p := DetectProfile(nil); p != nil {
		t.Errorf("expected nil profile for empty history, got %+v", p)
	}
	anonymous := []model.GameRecord{{}}
	if p := DetectProfile(anonymous); p != nil {
		t.Errorf("expected nil profile when no game has a username, got %+v", p)
	}
}

func TestDetectProfile_FirstEmailHashWins(t *testing.T) {
	g1 := corpGame(model.SideCorp, day(2025, time.March, 1))
	g2 := corpGame(model.SideCorp, day(2025, time.March, 2))
	g2.Corp.EmailHash = "hash-early"
	g3 := runnerGame(model.SideRunner, day(2025, time.March, 3))
	g3.Runner.EmailHash = "hash-late"

	p := DetectProfile([]model.GameRecord{g1, g2, g3})
	if p == nil || p.EmailHash != "hash-early" {
		t.Fatalf("expected first non-empty email hash kept, got %+v", p)
	}
}

func TestDetectProfile_Coverage(t *testing.T) {
	games := []model.GameRecord{
		corpGame(model.SideCorp, day(2025, time.March, 1)),
		corpGame(model.SideRunner, day(2025, time.March, 2)),
		{
			Corp:   model.RoleSnapshot{Username: rival},
			Runner: model.RoleSnapshot{Username: extra},
		},
	}
	p := DetectProfile(games)
	if p == nil {
		t.Fatal("expected a profile")
	}
	if p.UnmatchedGames != 1 {
		t.Errorf("expected 1 unmatched game, got %d", p.UnmatchedGames)
	}
	want := 2.0 / 3.0
	if p.Coverage != want {
		t.Errorf("expected coverage %v, got %v", want, p.Coverage)
	}
}
