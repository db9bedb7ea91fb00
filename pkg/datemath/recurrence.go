package datemath

import (
	"strings"
	"time"
)

// Repeat pattern names recognized by NextOccurrence. Stored patterns
// are matched by substring, so "every day / daily" still advances.
const (
	PatternDaily   = "daily"
	PatternWeekly  = "weekly"
	PatternMonthly = "monthly"
	PatternYearly  = "yearly"
)

// NextOccurrence advances a due time by one period of the given repeat
// pattern. Returns false when the pattern is not recognized.
func NextOccurrence(pattern string, t time.Time) (time.Time, bool) {
	p := strings.ToLower(pattern)
	switch {
	case strings.Contains(p, PatternDaily):
		return t.AddDate(0, 0, 1), true
	case strings.Contains(p, PatternWeekly):
		return t.AddDate(0, 0, 7), true
	case strings.Contains(p, PatternMonthly):
		return AddMonths(t, 1), true
	case strings.Contains(p, PatternYearly):
		return AddYears(t, 1), true
	}
	return time.Time{}, false
}

// AddMonths adds n calendar months, clamping the day-of-month to the
// last valid day of the target month (Jan 31 + 1 month = Feb 28/29),
// unlike time.AddDate which would normalize into March.
func AddMonths(t time.Time, n int) time.Time {
	firstOfMonth := time.Date(t.Year(), t.Month(), 1, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
	shifted := firstOfMonth.AddDate(0, n, 0)

	day := t.Day()
	if last := daysIn(shifted.Year(), shifted.Month()); day > last {
		day = last
	}
	return time.Date(shifted.Year(), shifted.Month(), day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

// AddYears adds n calendar years with the same day clamping
// (Feb 29 + 1 year = Feb 28).
func AddYears(t time.Time, n int) time.Time {
	return AddMonths(t, 12*n)
}

func daysIn(year int, month time.Month) int {
	// Day 0 of the next month is the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
