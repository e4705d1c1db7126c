package analysis

import (
	"sort"

	"github.com/arasv/runwrapped/internal/model"
)

// SideRecord computes the decided-game win/loss record for username on the
// given side. Returns nil when no decided game matches.
func SideRecord(games []model.GameRecord, username string, side model.Side) *model.RoleRecord {
	rec := &model.RoleRecord{Side: side}
	for _, g := range games {
		if g.Winner == model.SideNone {
			continue
		}
		s, ok := ResolveSide(g, username)
		if !ok || s != side {
			continue
		}
		rec.Total++
		if g.Winner == side {
			rec.Wins++
		} else {
			rec.Losses++
		}
	}
	if rec.Total == 0 {
		return nil
	}
	return rec
}

// FavoriteIdentity groups username's decided games on the given side by
// identity and picks the one with the most games, ties broken by most wins.
func FavoriteIdentity(games []model.GameRecord, username string, side model.Side) *model.IdentityFavorite {
	type tally struct {
		games, wins, losses int
		order               int
	}
	byIdentity := make(map[string]*tally)
	order := 0
	for _, g := range games {
		if g.Winner == model.SideNone {
			continue
		}
		s, ok := ResolveSide(g, username)
		if !ok || s != side {
			continue
		}
		id := g.Role(side).Identity
		if id == "" {
			continue
		}
		t := byIdentity[id]
		if t == nil {
			t = &tally{order: order}
			order++
			byIdentity[id] = t
		}
		t.games++
		if g.Winner == side {
			t.wins++
		} else {
			t.losses++
		}
	}
	if len(byIdentity) == 0 {
		return nil
	}

	var best string
	for id, t := range byIdentity {
		if best == "" {
			best = id
			continue
		}
		b := byIdentity[best]
		if t.games > b.games ||
			(t.games == b.games && t.wins > b.wins) ||
			(t.games == b.games && t.wins == b.wins && t.order < b.order) {
			best = id
		}
	}
	t := byIdentity[best]
	return &model.IdentityFavorite{
		Side:     side,
		Identity: best,
		Games:    t.games,
		Wins:     t.wins,
		Losses:   t.losses,
	}
}

type opponentTally struct {
	username  string
	emailHash string
	games     int
	wins      int
	losses    int
	order     int
}

func tallyOpponents(games []model.GameRecord, username string) []*opponentTally {
	byName := make(map[string]*opponentTally)
	var all []*opponentTally
	for _, g := range games {
		side, ok := ResolveSide(g, username)
		if !ok {
			continue
		}
		opp := g.Role(side.Opponent())
		t := byName[opp.Username]
		if t == nil {
			t = &opponentTally{username: opp.Username, order: len(all)}
			byName[opp.Username] = t
			all = append(all, t)
		}
		t.games++
		if t.emailHash == "" && opp.EmailHash != "" {
			t.emailHash = opp.EmailHash
		}
		switch g.Winner {
		case side:
			t.wins++
		case side.Opponent():
			t.losses++
		}
	}
	return all
}

// MostFrequentOpponent returns the opposing username seen in the most games,
// ties broken by most wins against them, then first encounter.
func MostFrequentOpponent(games []model.GameRecord, username string) *model.FrequentOpponent {
	all := tallyOpponents(games, username)
	if len(all) == 0 {
		return nil
	}
	best := all[0]
	for _, t := range all[1:] {
		if t.games > best.games || (t.games == best.games && t.wins > best.wins) {
			best = t
		}
	}
	return &model.FrequentOpponent{
		Username:  best.username,
		EmailHash: best.emailHash,
		Games:     best.games,
		Wins:      best.wins,
		Losses:    best.losses,
	}
}

// TopOpponents returns up to limit opponents sorted by game count descending,
// first-encountered order on ties.
func TopOpponents(games []model.GameRecord, username string, limit int) []model.TopOpponent {
	all := tallyOpponents(games, username)
	if len(all) == 0 || limit <= 0 {
		return nil
	}
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].games > all[j].games
	})
	if len(all) > limit {
		all = all[:limit]
	}
	out := make([]model.TopOpponent, 0, len(all))
	for _, t := range all {
		out = append(out, model.TopOpponent{
			Username:  t.username,
			EmailHash: t.emailHash,
			Games:     t.games,
			Wins:      t.wins,
			Losses:    t.losses,
		})
	}
	return out
}

// LongestGameByTurns finds username's game with the highest recorded turn
// count. Games without a turn count are not candidates.
func LongestGameByTurns(games []model.GameRecord, username string) *model.LongestGame {
	var best *model.LongestGame
	for _, g := range games {
		side, ok := ResolveSide(g, username)
		if !ok || g.TurnCount == nil {
			continue
		}
		if best == nil || *g.TurnCount > best.Turns {
			best = &model.LongestGame{
				Side:        side,
				Turns:       *g.TurnCount,
				Identity:    g.Role(side).Identity,
				Opponent:    g.Role(side.Opponent()).Username,
				CompletedAt: g.CompletedAt,
			}
		}
	}
	return best
}

// LongestGameByDuration finds username's game with the longest positive
// recorded wall-clock length.
func LongestGameByDuration(games []model.GameRecord, username string) *model.LongestDurationGame {
	var best *model.LongestDurationGame
	for _, g := range games {
		side, ok := ResolveSide(g, username)
		if !ok || g.ElapsedMinutes == nil || *g.ElapsedMinutes <= 0 {
			continue
		}
		if best == nil || *g.ElapsedMinutes > best.Minutes {
			best = &model.LongestDurationGame{
				Side:        side,
				Minutes:     *g.ElapsedMinutes,
				Identity:    g.Role(side).Identity,
				Opponent:    g.Role(side.Opponent()).Username,
				CompletedAt: g.CompletedAt,
			}
		}
	}
	return best
}
