package analysis

import (
	"testing"
	"time"

	"github.com/arasv/runwrapped/internal/model"
)

func TestSummarizeReasons(t *testing.T) {
	withReason := func(winner model.Side, reason string, d int) model.GameRecord {
		g := corpGame(winner, day(2025, time.March, d))
		g.Reason = reason
		return g
	}
	games := []model.GameRecord{
		withReason(model.SideCorp, "Agenda", 1),
		withReason(model.SideCorp, "Agenda", 2),
		withReason(model.SideCorp, "Flatline", 3),
		withReason(model.SideRunner, "Agenda", 4),
		withReason(model.SideRunner, "Decked", 5),
		withReason(model.SideRunner, "Decked", 6),
		withReason(model.SideNone, "Agenda", 7), // undecided, neither bucket
		withReason(model.SideCorp, "", 8),       // no reason, neither bucket
	}

	reasons := SummarizeReasons(games, me)
	if reasons.Win == nil {
		t.Fatal("expected a win summary")
	}
	if reasons.Win.Reason != "Agenda" || reasons.Win.Count != 2 || reasons.Win.Total != 3 {
		t.Errorf("unexpected win summary: %+v", reasons.Win)
	}
	if want := float64(2) / float64(3) * 100; reasons.Win.Percent != want {
		t.Errorf("expected win percent %v, got %v", want, reasons.Win.Percent)
	}

	if reasons.Loss == nil {
		t.Fatal("expected a loss summary")
	}
	if reasons.Loss.Reason != "Decked" || reasons.Loss.Count != 2 || reasons.Loss.Total != 3 {
		t.Errorf("unexpected loss summary: %+v", reasons.Loss)
	}
}

func TestSummarizeReasons_TieKeepsFirstSeen(t *testing.T) {
	withReason := func(reason string, d int) model.GameRecord {
		g := corpGame(model.SideCorp, day(2025, time.March, d))
		g.Reason = reason
		return g
	}
	games := []model.GameRecord{
		withReason("Flatline", 1),
		withReason("Agenda", 2),
	}
	reasons := SummarizeReasons(games, me)
	if reasons.Win == nil || reasons.Win.Reason != "Flatline" {
		t.Fatalf("expected first-seen reason on tie, got %+v", reasons.Win)
	}
}

func TestSummarizeReasons_BlankReasonBucketsAsUnknown(t *testing.T) {
	g := corpGame(model.SideCorp, day(2025, time.March, 1))
	g.Reason = "   "
	reasons := SummarizeReasons([]model.GameRecord{g}, me)
	if reasons.Win == nil || reasons.Win.Reason != UnknownReason {
		t.Fatalf("expected whitespace reason to bucket as %q, got %+v", UnknownReason, reasons.Win)
	}
}

func TestSummarizeReasons_EmptyBucketsAreNil(t *testing.T) {
	// Only wins recorded: the loss side stays nil, not zero-valued.
	g := corpGame(model.SideCorp, day(2025, time.March, 1))
	g.Reason = "Agenda"
	reasons := SummarizeReasons([]model.GameRecord{g}, me)
	if reasons.Win == nil {
		t.Error("expected a win summary")
	}
	if reasons.Loss != nil {
		t.Errorf("expected nil loss summary, got %+v", reasons.Loss)
	}

	empty := SummarizeReasons(nil, me)
	if empty.Win != nil || empty.Loss != nil {
		t.Error("expected both summaries nil for an empty history")
	}
}
