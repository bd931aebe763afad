// Package timeexpr resolves natural-language time expressions into absolute
// instants and formats calendar time values for display.
//
// Resolution walks an ordered rule table: strict ISO dates first, then the
// relative vocabulary ("now", "tomorrow", "2 hours later", "next friday",
// "tomorrow at 3pm"), then a list of common timestamp layouts. Day-level
// expressions land at 09:00 local time; expressions that name a clock time
// keep it. Input that matches nothing yields a ParseError.
//
// Example usage:
//
//	r := timeexpr.NewResolver()
//	start, err := r.Resolve("next monday", time.Time{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	end, err := r.Resolve("2 hours later", start)
package timeexpr
