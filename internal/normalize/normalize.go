// Package normalize maps raw game-history entries, as exported by the game
// server, into canonical model.GameRecord values. Every access is defensive:
// a missing or wrong-typed field becomes that field's absent value, never an
// error. Nothing below this layer ever sees raw input.
package normalize

import (
	"strings"

	"github.com/tidwall/gjson"

	"github.com/arasv/runwrapped/internal/model"
)

// sideStatPaths maps raw per-side stat keys (relative to stats.corp /
// stats.runner) onto the common stat block. Which keys are valid for which
// side is a convention of the exporting client, kept here as data so it can
// be checked against real exports rather than buried in logic.
var sideStatPaths = []struct {
	path   string
	assign func(*model.SideStats, *float64)
}{
	{"gain.click", func(s *model.SideStats, v *float64) { s.ClicksGained = v }},
	{"gain.credit", func(s *model.SideStats, v *float64) { s.CreditsGained = v }},
	{"spent.credit", func(s *model.SideStats, v *float64) { s.CreditsSpent = v }},
	{"click.credit", func(s *model.SideStats, v *float64) { s.CreditsFromClicks = v }},
	{"gain.card", func(s *model.SideStats, v *float64) { s.CardsDrawn = v }},
	{"click.card", func(s *model.SideStats, v *float64) { s.CardsDrawnFromClicks = v }},
	{"shuffle-count", func(s *model.SideStats, v *float64) { s.Shuffles = v }},
	{"cards-played", func(s *model.SideStats, v *float64) { s.CardsPlayed = v }},
	{"cards-accessed", func(s *model.SideStats, v *float64) { s.CardsAccessed = v }},
	{"damage-done", func(s *model.SideStats, v *float64) { s.DamageDone = v }},
}

// Corp-only and runner-only raw keys. Values under the wrong side are
// discarded so a malformed export can't leak rez counts onto the runner or
// tags onto the corp.
const (
	rezPath  = "cards-rezzed"
	runsPath = "runs-started"
	tagsPath = "tags-gained"
)

// Game normalizes one raw entry into a canonical GameRecord.
func Game(raw gjson.Result) model.GameRecord {
	g := model.GameRecord{
		Winner:      parseWinner(raw),
		Corp:        roleSnapshot(raw, "corp"),
		Runner:      roleSnapshot(raw, "runner"),
		StartedAt:   firstTime(raw, "start-date"),
		CompletedAt: firstTime(raw, "end-date", "start-date", "creation-date"),
		Format:      strings.ToLower(optString(raw, "format")),
		TurnCount:   optCount(raw, "turn"),
		Reason:      optString(raw, "reason"),
	}

	if m := optFloat(raw, "stats.time.elapsed"); m != nil {
		if *m < 0 {
			zero := 0.0
			m = &zero
		}
		g.ElapsedMinutes = m
	}

	corpStats := raw.Get("stats.corp")
	runnerStats := raw.Get("stats.runner")
	fillSideStats(&g.CorpStats.SideStats, corpStats)
	fillSideStats(&g.RunnerStats.SideStats, runnerStats)
	g.CorpStats.CardsRezzed = optFloat(corpStats, rezPath)
	g.RunnerStats.RunsStarted = optFloat(runnerStats, runsPath)
	g.RunnerStats.TagsGained = optFloat(runnerStats, tagsPath)

	g.RunnerUniqueAccesses = firstCount(raw, "stats.runner.unique-accesses", "runner.accessed-cards")

	return g
}

func fillSideStats(dst *model.SideStats, raw gjson.Result) {
	if !raw.Exists() {
		return
	}
	for _, sp := range sideStatPaths {
		sp.assign(dst, optFloat(raw, sp.path))
	}
}

func parseWinner(raw gjson.Result) model.Side {
	switch strings.ToLower(optString(raw, "winner")) {
	case "corp":
		return model.SideCorp
	case "runner":
		return model.SideRunner
	default:
		return model.SideNone
	}
}

func roleSnapshot(raw gjson.Result, side string) model.RoleSnapshot {
	return model.RoleSnapshot{
		Username:  firstString(raw, side+".player.username", side+".username"),
		Identity:  firstString(raw, side+".identity", side+".player.identity"),
		EmailHash: firstString(raw, side+".player.emailhash", side+".emailhash"),
	}
}

func firstCount(raw gjson.Result, paths ...string) *int {
	for _, p := range paths {
		if n := optCountOrLen(raw, p); n != nil {
			return n
		}
	}
	return nil
}
