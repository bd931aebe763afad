package timeexpr

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ParseError reports an expression that no resolution rule or fallback
// layout could interpret.
type ParseError struct {
	Expression string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("Unable to parse date/time: %s", e.Expression)
}

// Resolver turns natural-language time expressions into absolute instants.
// Relative expressions ("tomorrow", "2 hours later") resolve against a
// reference instant supplied per call; the literal words "now" and "today"
// resolve against the resolver's own clock. Civil-date arithmetic happens
// in the resolver's location.
type Resolver struct {
	now func() time.Time
	loc *time.Location
}

// NewResolver returns a Resolver using the system clock and local time zone.
func NewResolver() *Resolver {
	return NewResolverWithClock(time.Now, time.Local)
}

// NewResolverWithClock returns a Resolver with a fixed clock and location.
// Tests use this to pin "now".
func NewResolverWithClock(now func() time.Time, loc *time.Location) *Resolver {
	if now == nil {
		now = time.Now
	}
	if loc == nil {
		loc = time.Local
	}
	return &Resolver{now: now, loc: loc}
}

// rule is one pattern in the resolution table. Rules are tried in order
// against the lower-cased, trimmed expression; the first match wins.
type rule struct {
	name  string
	re    *regexp.Regexp
	apply func(r *Resolver, m []string, ref time.Time) (time.Time, error)
}

var resolutionRules = []rule{
	{
		name: "literal now",
		re:   regexp.MustCompile(`^(?:now|today)$`),
		apply: func(r *Resolver, _ []string, _ time.Time) (time.Time, error) {
			return r.now(), nil
		},
	},
	{
		name: "tomorrow",
		re:   regexp.MustCompile(`^tomorrow$`),
		apply: func(_ *Resolver, _ []string, ref time.Time) (time.Time, error) {
			return morningOf(ref.AddDate(0, 0, 1)), nil
		},
	},
	{
		name: "hours later",
		re:   regexp.MustCompile(`^(\d+) hours? later$`),
		apply: func(_ *Resolver, m []string, ref time.Time) (time.Time, error) {
			n, err := strconv.Atoi(m[1])
			if err != nil {
				return time.Time{}, err
			}
			return ref.Add(time.Duration(n) * time.Hour), nil
		},
	},
	{
		name: "days later",
		re:   regexp.MustCompile(`^(\d+) days? later$`),
		apply: func(_ *Resolver, m []string, ref time.Time) (time.Time, error) {
			n, err := strconv.Atoi(m[1])
			if err != nil {
				return time.Time{}, err
			}
			return ref.AddDate(0, 0, n), nil
		},
	},
	{
		name: "next week",
		re:   regexp.MustCompile(`^next week$`),
		apply: func(_ *Resolver, _ []string, ref time.Time) (time.Time, error) {
			return morningOf(ref.AddDate(0, 0, 7)), nil
		},
	},
	{
		name: "next weekday",
		re:   regexp.MustCompile(`^next (sunday|monday|tuesday|wednesday|thursday|friday|saturday)$`),
		apply: func(_ *Resolver, m []string, ref time.Time) (time.Time, error) {
			return morningOf(nextWeekday(ref, weekdayNames[m[1]])), nil
		},
	},
	{
		name: "anchor at time",
		re:   regexp.MustCompile(`^(today|tomorrow|sunday|monday|tuesday|wednesday|thursday|friday|saturday) at (\d{1,2})(?::(\d{2}))? ?(am|pm)?$`),
		apply: applyAnchorAtTime,
	},
}

var weekdayNames = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// Resolve converts expression into an absolute instant. Relative
// expressions resolve against ref; a zero ref means the resolver's clock.
// Unrecognized input yields a *ParseError carrying the original expression.
func (r *Resolver) Resolve(expression string, ref time.Time) (time.Time, error) {
	trimmed := strings.TrimSpace(expression)
	if ref.IsZero() {
		ref = r.now()
	}

	// ISO dates and date-times are absolute; the reference plays no part.
	if t, ok := r.parseStrictISO(trimmed); ok {
		return t, nil
	}

	lower := strings.ToLower(trimmed)
	for _, rl := range resolutionRules {
		m := rl.re.FindStringSubmatch(lower)
		if m == nil {
			continue
		}
		t, err := rl.apply(r, m, ref)
		if err != nil {
			return time.Time{}, &ParseError{Expression: expression}
		}
		return t, nil
	}

	if t, ok := r.parseFallback(trimmed); ok {
		return t, nil
	}
	return time.Time{}, &ParseError{Expression: expression}
}

var isoPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}(T\d{2}:\d{2}(:\d{2})?)?$`)

// parseStrictISO accepts YYYY-MM-DD with an optional THH:MM[:SS] suffix.
// Bare dates resolve to midnight in the resolver's location.
func (r *Resolver) parseStrictISO(s string) (time.Time, bool) {
	if !isoPattern.MatchString(s) {
		return time.Time{}, false
	}
	for _, layout := range []string{"2006-01-02T15:04:05", "2006-01-02T15:04", "2006-01-02"} {
		if t, err := time.ParseInLocation(layout, s, r.loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// fallbackLayouts are tried, in order, against the original expression when
// no rule matched. Go's reference time, so "01/02" is month/day.
var fallbackLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"01/02/2006 15:04",
	"01/02/2006",
	"January 2, 2006 3:04 PM",
	"January 2, 2006",
	"Jan 2, 2006 3:04 PM",
	"Jan 2, 2006",
}

func (r *Resolver) parseFallback(s string) (time.Time, bool) {
	for _, layout := range fallbackLayouts {
		if t, err := time.ParseInLocation(layout, s, r.loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func applyAnchorAtTime(_ *Resolver, m []string, ref time.Time) (time.Time, error) {
	anchor := m[1]
	hour, err := strconv.Atoi(m[2])
	if err != nil {
		return time.Time{}, err
	}
	minute := 0
	if m[3] != "" {
		if minute, err = strconv.Atoi(m[3]); err != nil {
			return time.Time{}, err
		}
	}
	meridiem := m[4]

	switch {
	case meridiem == "pm" && hour < 12:
		hour += 12
	case meridiem != "pm" && hour == 12:
		// "12" and "12am" both mean midnight.
		hour = 0
	}
	if hour > 23 || minute > 59 {
		return time.Time{}, fmt.Errorf("hour %d:%02d out of range", hour, minute)
	}

	var day time.Time
	switch anchor {
	case "today":
		day = ref
	case "tomorrow":
		day = ref.AddDate(0, 0, 1)
	default:
		day = nextWeekday(ref, weekdayNames[anchor])
	}
	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, day.Location()), nil
}

// morningOf is the civil date of t at 09:00, the default hour for day-level
// expressions.
func morningOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 9, 0, 0, 0, t.Location())
}

// nextWeekday is the next occurrence of wd strictly after ref's date, so
// asking for the current weekday lands a full week out.
func nextWeekday(ref time.Time, wd time.Weekday) time.Time {
	delta := (int(wd) - int(ref.Weekday())) % 7
	if delta <= 0 {
		delta += 7
	}
	return ref.AddDate(0, 0, delta)
}
