package analysis

import (
	"strings"

	"github.com/arasv/runwrapped/internal/model"
)

// UnknownReason is the bucket for games whose reason was recorded but blank.
const UnknownReason = "Unknown"

// SummarizeReasons finds the most common termination reason separately for
// username's wins and losses. Games without a recorded reason or without a
// winner contribute to neither bucket.
func SummarizeReasons(games []model.GameRecord, username string) model.WinLossReasons {
	winCounts := make(map[string]int)
	lossCounts := make(map[string]int)
	var winOrder, lossOrder []string
	winTotal, lossTotal := 0, 0

	for _, g := range games {
		side, ok := ResolveSide(g, username)
		if !ok || g.Winner == model.SideNone || g.Reason == "" {
			continue
		}
		reason := strings.TrimSpace(g.Reason)
		if reason == "" {
			reason = UnknownReason
		}
		if g.Winner == side {
			if _, seen := winCounts[reason]; !seen {
				winOrder = append(winOrder, reason)
			}
			winCounts[reason]++
			winTotal++
		} else {
			if _, seen := lossCounts[reason]; !seen {
				lossOrder = append(lossOrder, reason)
			}
			lossCounts[reason]++
			lossTotal++
		}
	}

	return model.WinLossReasons{
		Win:  topReason(winCounts, winOrder, winTotal),
		Loss: topReason(lossCounts, lossOrder, lossTotal),
	}
}

func topReason(counts map[string]int, order []string, total int) *model.ReasonSummary {
	if total == 0 {
		return nil
	}
	best := ""
	for _, r := range order {
		if best == "" || counts[r] > counts[best] {
			best = r
		}
	}
	return &model.ReasonSummary{
		Reason:  best,
		Count:   counts[best],
		Total:   total,
		Percent: float64(counts[best]) / float64(total) * 100,
	}
}
