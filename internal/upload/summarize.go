package upload

import (
	"errors"

	"github.com/tidwall/gjson"

	"github.com/arasv/runwrapped/internal/analysis"
	"github.com/arasv/runwrapped/internal/model"
	"github.com/arasv/runwrapped/internal/normalize"
)

// The two ways an upload can fail. Anything that parses as a JSON array
// summarizes successfully, however sparse the entries are.
var (
	// ErrMalformedUpload means the text is not well-formed JSON.
	ErrMalformedUpload = errors.New("upload is not valid JSON")
	// ErrNotAList means the document parsed but its top level is not an array.
	ErrNotAList = errors.New("upload top level is not a list")
)

// Options adjusts Summarize. A nil *Options means defaults.
type Options struct {
	// Window, when set, keeps only games completed inside the inclusive
	// range. Games with no completion timestamp or a missing username on
	// either side are dropped before profile detection, so narrowing the
	// window can legitimately change which username is detected.
	Window *analysis.TimeRange
}

// ParseGames validates the raw text and returns one gjson.Result per entry.
func ParseGames(raw []byte) ([]gjson.Result, error) {
	if !gjson.ValidBytes(raw) {
		return nil, ErrMalformedUpload
	}
	doc := gjson.ParseBytes(raw)
	if !doc.IsArray() {
		return nil, ErrNotAList
	}
	return doc.Array(), nil
}

// Summarize is the orchestrator: parse, normalize, filter, detect the
// profile, aggregate. Finders and highlights are left to the caller, who
// runs them over Summary.Games with Summary.Profile.Username.
func Summarize(raw []byte, opts *Options) (*model.Summary, error) {
	entries, err := ParseGames(raw)
	if err != nil {
		return nil, err
	}

	games := make([]model.GameRecord, 0, len(entries))
	for _, e := range entries {
		games = append(games, normalize.Game(e))
	}

	if opts != nil && opts.Window != nil {
		games = filterWindow(games, *opts.Window)
	}

	summary := &model.Summary{
		Games:   games,
		Profile: analysis.DetectProfile(games),
	}
	if summary.Profile != nil {
		summary.Aggregates = analysis.ComputeAggregates(games, summary.Profile.Username)
	}
	return summary, nil
}

func filterWindow(games []model.GameRecord, window analysis.TimeRange) []model.GameRecord {
	kept := games[:0:0]
	for _, g := range games {
		if g.CompletedAt == nil || g.Corp.Username == "" || g.Runner.Username == "" {
			continue
		}
		if !window.Contains(*g.CompletedAt) {
			continue
		}
		kept = append(kept, g)
	}
	return kept
}
