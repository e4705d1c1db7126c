package analysis

import "github.com/arasv/runwrapped/internal/model"

// ResolveSide decides whether username played in g and on which side.
// A user only counts as having played a side when the opposing side also
// has a username recorded — this rejects bye and placeholder games from
// every downstream counter.
func ResolveSide(g model.GameRecord, username string) (model.Side, bool) {
	if username == "" {
		return model.SideNone, false
	}
	if g.Corp.Username == username && g.Runner.Username != "" {
		return model.SideCorp, true
	}
	if g.Runner.Username == username && g.Corp.Username != "" {
		return model.SideRunner, true
	}
	return model.SideNone, false
}

// DetectProfile infers which participant is "the tracked player": the
// username appearing most often across both sides of all games. Ties go to
// the username encountered first. Returns nil for an empty game list.
func DetectProfile(games []model.GameRecord) *model.UserProfile {
	if len(games) == 0 {
		return nil
	}

	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	order := 0
	note := func(name string) {
		if name == "" {
			return
		}
		if _, ok := firstSeen[name]; !ok {
			firstSeen[name] = order
			order++
		}
		counts[name]++
	}
	for _, g := range games {
		note(g.Corp.Username)
		note(g.Runner.Username)
	}
	if len(counts) == 0 {
		return nil
	}

	best := ""
	for name, n := range counts {
		if best == "" || n > counts[best] || (n == counts[best] && firstSeen[name] < firstSeen[best]) {
			best = name
		}
	}

	p := &model.UserProfile{
		Username:   best,
		TotalGames: len(games),
	}
	for _, g := range games {
		matched := false
		if g.Corp.Username == best {
			p.CorpGames++
			matched = true
			if p.EmailHash == "" && g.Corp.EmailHash != "" {
				p.EmailHash = g.Corp.EmailHash
			}
		}
		if g.Runner.Username == best {
			p.RunnerGames++
			matched = true
			if p.EmailHash == "" && g.Runner.EmailHash != "" {
				p.EmailHash = g.Runner.EmailHash
			}
		}
		if matched {
			p.MatchedGames++
		} else {
			p.UnmatchedGames++
		}
	}
	p.Coverage = float64(p.MatchedGames) / float64(p.TotalGames)
	return p
}
