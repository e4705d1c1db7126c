package normalize

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/tidwall/gjson"
)

// Coercion helpers: every accessor tolerates a missing or wrong-typed value
// and answers with nil ("no data") instead of a zero or a panic.

// optFloat reads a finite numeric value at path.
func optFloat(raw gjson.Result, path string) *float64 {
	v := raw.Get(path)
	if v.Type != gjson.Number {
		return nil
	}
	f := v.Float()
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}

// optCount reads a non-negative integer at path, accepting either a numeric
// value or a numeric string (older exports quote turn counts). Fractional
// values are floored; negatives and garbage yield nil.
func optCount(raw gjson.Result, path string) *int {
	v := raw.Get(path)
	var f float64
	switch v.Type {
	case gjson.Number:
		f = v.Float()
	case gjson.String:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v.String()), 64)
		if err != nil {
			return nil
		}
		f = parsed
	default:
		return nil
	}
	if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return nil
	}
	n := int(math.Floor(f))
	return &n
}

// optCountOrLen reads a count that some export versions store as the list
// itself rather than its length.
func optCountOrLen(raw gjson.Result, path string) *int {
	v := raw.Get(path)
	if v.IsArray() {
		n := len(v.Array())
		return &n
	}
	return optCount(raw, path)
}

// timeLayouts are the timestamp formats seen across export versions.
var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// optTime reads a timestamp at path: a string in any known layout, or a
// numeric unix value (milliseconds when implausibly large as seconds).
func optTime(raw gjson.Result, path string) *time.Time {
	v := raw.Get(path)
	switch v.Type {
	case gjson.String:
		s := strings.TrimSpace(v.String())
		if s == "" {
			return nil
		}
		for _, layout := range timeLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return &t
			}
		}
		return nil
	case gjson.Number:
		n := v.Float()
		if math.IsNaN(n) || math.IsInf(n, 0) || n <= 0 {
			return nil
		}
		var t time.Time
		if n > 1e12 {
			t = time.UnixMilli(int64(n)).UTC()
		} else {
			t = time.Unix(int64(n), 0).UTC()
		}
		return &t
	default:
		return nil
	}
}

// optString reads a non-empty string at path, "" otherwise.
func optString(raw gjson.Result, path string) string {
	v := raw.Get(path)
	if v.Type != gjson.String {
		return ""
	}
	return strings.TrimSpace(v.String())
}

// firstString returns the first non-empty string among the candidate paths.
func firstString(raw gjson.Result, paths ...string) string {
	for _, p := range paths {
		if s := optString(raw, p); s != "" {
			return s
		}
	}
	return ""
}

// firstTime returns the first parseable timestamp among the candidate paths.
func firstTime(raw gjson.Result, paths ...string) *time.Time {
	for _, p := range paths {
		if t := optTime(raw, p); t != nil {
			return t
		}
	}
	return nil
}
