package ops

import (
	"time"

	"github.com/teemow/calagent/internal/calendar"
	"github.com/teemow/calagent/internal/timeexpr"
)

// ResolveWindow resolves the timeMin/timeMax pair for listing and searching.
// An absent timeMin means "now". timeMax resolves relative to the resolved
// timeMin and, when absent, defaults to timeMin plus defaultSpanDays civil
// days.
func ResolveWindow(r *timeexpr.Resolver, timeMinExpr, timeMaxExpr string, defaultSpanDays int) (time.Time, time.Time, error) {
	if timeMinExpr == "" {
		timeMinExpr = "now"
	}
	timeMin, err := r.Resolve(timeMinExpr, time.Time{})
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	if timeMaxExpr == "" {
		return timeMin, timeMin.AddDate(0, 0, defaultSpanDays), nil
	}
	timeMax, err := r.Resolve(timeMaxExpr, timeMin)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return timeMin, timeMax, nil
}

// ResolveUpdateTimes resolves the optional start/end expressions of an
// update against the stored event. When both are given, end resolves
// relative to the new start; an end alone resolves relative to the stored
// start (or the clock when the event has none). The returned zone is the
// event's stored zone so a moved event stays in its own timezone rather
// than picking up the process default.
func ResolveUpdateTimes(r *timeexpr.Resolver, startExpr, endExpr string, existing *calendar.EventSummary) (*time.Time, *time.Time, string, error) {
	var start, end *time.Time
	var zone string
	if existing != nil {
		zone = existing.Start.TimeZone
	}

	if startExpr != "" {
		s, err := r.Resolve(startExpr, time.Time{})
		if err != nil {
			return nil, nil, "", err
		}
		start = &s
	}

	if endExpr != "" {
		var ref time.Time
		switch {
		case start != nil:
			ref = *start
		case existing != nil && !existing.Start.Time.IsZero():
			ref = existing.Start.Time
		}
		e, err := r.Resolve(endExpr, ref)
		if err != nil {
			return nil, nil, "", err
		}
		end = &e
	}

	return start, end, zone, nil
}
