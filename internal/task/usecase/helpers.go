package usecase

import (
	"strings"
	"time"
)

// displayLayout is how due times are rendered in user-facing messages.
const displayLayout = "Monday, January 02 at 03:04 PM"

// isoLayout matches the timezone-less timestamps the extractor emits.
const isoLayout = "2006-01-02T15:04:05"

// parseISOInLocation parses an extractor timestamp. Offset-carrying
// RFC 3339 strings are honored as-is; bare timestamps are pinned to
// the planner timezone.
func parseISOInLocation(s string, loc *time.Location) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.In(loc), true
	}
	if t, err := time.ParseInLocation(isoLayout, s, loc); err == nil {
		return t, true
	}
	return time.Time{}, false
}

func absDuration(d time.Duration) time.Duration {
	if d < 0 {
		return -d
	}
	return d
}

// hasRelativeMarker reports whether the text already anchors its time
// relative to now, so a past-looking due time should be trusted.
func hasRelativeMarker(text string) bool {
	lower := strings.ToLower(text)
	for _, marker := range []string{"in ", "after ", "ago"} {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}
