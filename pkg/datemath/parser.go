package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Parser resolves informal time phrases into absolute timestamps in a
// single fixed timezone. It is a deterministic validator/fallback next
// to the LLM extraction service: no confident match is a normal outcome,
// never an error.
type Parser struct {
	location *time.Location
}

// NewParser creates a parser bound to the given IANA timezone string,
// e.g. "Asia/Kolkata".
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Location returns the timezone the parser resolves into.
func (p *Parser) Location() *time.Location {
	return p.location
}

var (
	reInHours   = regexp.MustCompile(`in (\d+) hours?`)
	reInMinutes = regexp.MustCompile(`in (\d+) minutes?`)
)

// clockKind tags which surface form a clock regexp captures.
type clockKind int

const (
	clockMeridiem     clockKind = iota // 9:30 pm
	clockHourMeridiem                  // 9 pm
	clock24                            // 21:30
	clockOClock                        // 9 o'clock
)

// Patterns are tried in order; the first match wins, so the meridiem
// forms shadow the bare 24-hour form.
var clockPatterns = []struct {
	re   *regexp.Regexp
	kind clockKind
}{
	{regexp.MustCompile(`(\d{1,2}):(\d{2})\s*(am|pm)`), clockMeridiem},
	{regexp.MustCompile(`(\d{1,2})\s*(am|pm)`), clockHourMeridiem},
	{regexp.MustCompile(`(\d{1,2}):(\d{2})`), clock24},
	{regexp.MustCompile(`(\d{1,2})\s*o'?clock`), clockOClock},
}

var eveningKeywords = []string{"dinner", "evening", "night", "pm", "tonight"}

// Resolve converts a free-form phrase into an absolute timestamp in the
// parser's timezone, using ref as "now". The second return value is
// false when no rule matched; malformed input never produces an error.
//
// Rules, in priority order:
//  1. "in N hours" / "in N minutes" relative to ref.
//  2. Explicit clock expressions (H:MM am/pm, H am/pm, H:MM, H o'clock)
//     with standard 12->24 conversion.
//  3. Bare hours <= 12 lean evening (+12h, except 12 itself) when the
//     text carries an evening/dinner keyword.
//  4. The date is today at that time, rolled forward one day when the
//     moment is not strictly after ref.
func (p *Parser) Resolve(text string, ref time.Time) (time.Time, bool) {
	lower := strings.ToLower(text)
	ref = ref.In(p.location)

	if strings.Contains(lower, "in ") {
		if m := reInHours.FindStringSubmatch(lower); m != nil {
			n, _ := strconv.Atoi(m[1])
			return ref.Add(time.Duration(n) * time.Hour), true
		}
		if m := reInMinutes.FindStringSubmatch(lower); m != nil {
			n, _ := strconv.Atoi(m[1])
			return ref.Add(time.Duration(n) * time.Minute), true
		}
	}

	for _, cp := range clockPatterns {
		m := cp.re.FindStringSubmatch(lower)
		if m == nil {
			continue
		}

		var hour, minute int
		switch cp.kind {
		case clockMeridiem:
			hour, _ = strconv.Atoi(m[1])
			minute, _ = strconv.Atoi(m[2])
			hour = to24Hour(hour, m[3])
		case clockHourMeridiem:
			hour, _ = strconv.Atoi(m[1])
			hour = to24Hour(hour, m[2])
		case clock24:
			hour, _ = strconv.Atoi(m[1])
			minute, _ = strconv.Atoi(m[2])
			hour = p.inferEvening(hour, lower)
		case clockOClock:
			hour, _ = strconv.Atoi(m[1])
			hour = p.inferEvening(hour, lower)
		}

		if hour > 23 || minute > 59 {
			continue
		}

		target := time.Date(ref.Year(), ref.Month(), ref.Day(), hour, minute, 0, 0, p.location)
		// Already past today: the user means the next occurrence.
		if !target.After(ref) {
			target = target.AddDate(0, 0, 1)
		}
		return target, true
	}

	return time.Time{}, false
}

// to24Hour applies standard 12-hour to 24-hour conversion.
func to24Hour(hour int, meridiem string) int {
	if meridiem == "pm" && hour != 12 {
		return hour + 12
	}
	if meridiem == "am" && hour == 12 {
		return 0
	}
	return hour
}

// inferEvening shifts ambiguous bare hours into the evening when the
// surrounding text suggests it. 12 stays 12.
func (p *Parser) inferEvening(hour int, lower string) int {
	if hour > 12 || hour == 12 {
		return hour
	}
	for _, kw := range eveningKeywords {
		if strings.Contains(lower, kw) {
			return hour + 12
		}
	}
	return hour
}
