package analysis

import "time"

// TimeRange is an inclusive [Start, End] window on completion timestamps.
type TimeRange struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls inside the window, inclusive on both ends.
func (tr TimeRange) Contains(t time.Time) bool {
	return !t.Before(tr.Start) && !t.After(tr.End)
}

// DayOf truncates t to midnight UTC of its calendar day. All calendar
// bucketing works in UTC so the same upload summarizes identically
// regardless of the host timezone.
func DayOf(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// WeekStartOf returns midnight UTC of the Sunday on or before t.
func WeekStartOf(t time.Time) time.Time {
	day := DayOf(t)
	return day.AddDate(0, 0, -int(day.Weekday()))
}

// MonthStartOf returns midnight UTC of the first day of t's month.
func MonthStartOf(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// daysBetween returns the whole-day difference end-start for two
// midnight-aligned days.
func daysBetween(start, end time.Time) int {
	return int(end.Sub(start) / (24 * time.Hour))
}
