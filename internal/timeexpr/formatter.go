package timeexpr

import (
	"fmt"
	"time"
)

// TimeField is a calendar time value: either an all-day civil date or an
// absolute instant. TimeZone holds the IANA zone id reported by the
// calendar, when one was set.
type TimeField struct {
	Time     time.Time
	AllDay   bool
	TimeZone string
}

const (
	longDateLayout     = "Monday, January 2, 2006"
	longDateTimeLayout = "Monday, January 2, 2006 at 3:04 PM MST"
	notSpecified       = "Not specified"
)

// Format renders a time value for display. It never fails: nil and zero
// values render as "Not specified", strings that look like timestamps are
// parsed and prettied, and anything else is stringified as-is.
func Format(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return notSpecified
	case TimeField:
		return formatField(t)
	case *TimeField:
		if t == nil {
			return notSpecified
		}
		return formatField(*t)
	case time.Time:
		if t.IsZero() {
			return notSpecified
		}
		return FormatInstant(t)
	case string:
		if t == "" {
			return notSpecified
		}
		if parsed, err := time.Parse(time.RFC3339, t); err == nil {
			return FormatInstant(parsed)
		}
		// Offset-less ISO timestamps are read in the local zone
		for _, layout := range []string{"2006-01-02T15:04:05", "2006-01-02T15:04"} {
			if parsed, err := time.ParseInLocation(layout, t, time.Local); err == nil {
				return FormatInstant(parsed)
			}
		}
		if parsed, err := time.ParseInLocation("2006-01-02", t, time.Local); err == nil {
			return FormatAllDay(parsed)
		}
		return t
	default:
		return fmt.Sprintf("%v", v)
	}
}

// FormatInstant renders an absolute instant as a long date with time and a
// short zone label.
func FormatInstant(t time.Time) string {
	return t.Format(longDateTimeLayout)
}

// FormatAllDay renders a civil date with the all-day marker. The date is
// shown as stored, never shifted into another zone.
func FormatAllDay(t time.Time) string {
	return t.Format(longDateLayout) + " (All day)"
}

func formatField(f TimeField) string {
	if f.Time.IsZero() {
		return notSpecified
	}
	if f.AllDay {
		return FormatAllDay(f.Time)
	}
	return FormatInstant(f.Time)
}
