package timeexpr

import (
	"errors"
	"testing"
	"time"
)

// June 18 2025 is a Wednesday.
var (
	testNow = time.Date(2025, time.June, 18, 10, 0, 0, 0, time.UTC)
	testRef = time.Date(2025, time.June, 18, 14, 30, 45, 0, time.UTC)
)

func newTestResolver() *Resolver {
	return NewResolverWithClock(func() time.Time { return testNow }, time.UTC)
}

func TestResolveISO(t *testing.T) {
	r := newTestResolver()

	tests := []struct {
		name string
		expr string
		want time.Time
	}{
		{
			name: "bare date",
			expr: "2025-03-07",
			want: time.Date(2025, time.March, 7, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "date with hour and minute",
			expr: "2025-03-07T15:30",
			want: time.Date(2025, time.March, 7, 15, 30, 0, 0, time.UTC),
		},
		{
			name: "date with seconds",
			expr: "2025-03-07T15:30:45",
			want: time.Date(2025, time.March, 7, 15, 30, 45, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.Resolve(tt.expr, testRef)
			if err != nil {
				t.Fatalf("Resolve(%q) returned error: %v", tt.expr, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("Resolve(%q) = %v, expected %v", tt.expr, got, tt.want)
			}
		})
	}
}

func TestResolveISOIgnoresReference(t *testing.T) {
	r := newTestResolver()

	otherRef := time.Date(1999, time.December, 31, 23, 59, 59, 0, time.UTC)
	a, err := r.Resolve("2025-03-07T15:30", testRef)
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	b, err := r.Resolve("2025-03-07T15:30", otherRef)
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if !a.Equal(b) {
		t.Errorf("ISO resolution depended on reference: %v vs %v", a, b)
	}
}

func TestResolveRelative(t *testing.T) {
	r := newTestResolver()

	tests := []struct {
		name string
		expr string
		want time.Time
	}{
		{
			name: "now uses the clock",
			expr: "now",
			want: testNow,
		},
		{
			name: "today uses the clock",
			expr: "today",
			want: testNow,
		},
		{
			name: "tomorrow lands at nine",
			expr: "tomorrow",
			want: time.Date(2025, time.June, 19, 9, 0, 0, 0, time.UTC),
		},
		{
			name: "hours later keeps minutes and seconds",
			expr: "3 hours later",
			want: time.Date(2025, time.June, 18, 17, 30, 45, 0, time.UTC),
		},
		{
			name: "single hour later",
			expr: "1 hour later",
			want: time.Date(2025, time.June, 18, 15, 30, 45, 0, time.UTC),
		},
		{
			name: "days later keeps time of day",
			expr: "3 days later",
			want: time.Date(2025, time.June, 21, 14, 30, 45, 0, time.UTC),
		},
		{
			name: "single day later",
			expr: "1 day later",
			want: time.Date(2025, time.June, 19, 14, 30, 45, 0, time.UTC),
		},
		{
			name: "next week lands at nine",
			expr: "next week",
			want: time.Date(2025, time.June, 25, 9, 0, 0, 0, time.UTC),
		},
		{
			name: "next friday is two days out",
			expr: "next friday",
			want: time.Date(2025, time.June, 20, 9, 0, 0, 0, time.UTC),
		},
		{
			name: "next monday crosses the weekend",
			expr: "next monday",
			want: time.Date(2025, time.June, 23, 9, 0, 0, 0, time.UTC),
		},
		{
			name: "naming the current weekday lands a week out",
			expr: "next wednesday",
			want: time.Date(2025, time.June, 25, 9, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.Resolve(tt.expr, testRef)
			if err != nil {
				t.Fatalf("Resolve(%q) returned error: %v", tt.expr, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("Resolve(%q) = %v, expected %v", tt.expr, got, tt.want)
			}
		})
	}
}

func TestResolveNextWeekdayAlwaysFuture(t *testing.T) {
	r := newTestResolver()

	for name, wd := range weekdayNames {
		got, err := r.Resolve("next "+name, testRef)
		if err != nil {
			t.Fatalf("Resolve(next %s) returned error: %v", name, err)
		}
		if got.Weekday() != wd {
			t.Errorf("Resolve(next %s) landed on %v", name, got.Weekday())
		}
		if !got.After(testRef) {
			t.Errorf("Resolve(next %s) = %v, not after reference %v", name, got, testRef)
		}
		if days := int(got.Sub(testRef).Hours() / 24); days > 7 {
			t.Errorf("Resolve(next %s) jumped %d days out", name, days)
		}
	}
}

func TestResolveAnchorAtTime(t *testing.T) {
	r := newTestResolver()

	tests := []struct {
		name string
		expr string
		want time.Time
	}{
		{
			name: "today at pm hour",
			expr: "today at 5pm",
			want: time.Date(2025, time.June, 18, 17, 0, 0, 0, time.UTC),
		},
		{
			name: "tomorrow with minutes",
			expr: "tomorrow at 9:30am",
			want: time.Date(2025, time.June, 19, 9, 30, 0, 0, time.UTC),
		},
		{
			name: "weekday at noon",
			expr: "monday at 12pm",
			want: time.Date(2025, time.June, 23, 12, 0, 0, 0, time.UTC),
		},
		{
			name: "twelve am is midnight",
			expr: "tuesday at 12am",
			want: time.Date(2025, time.June, 24, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "bare twelve is midnight",
			expr: "friday at 12",
			want: time.Date(2025, time.June, 20, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "nine pm",
			expr: "today at 9pm",
			want: time.Date(2025, time.June, 18, 21, 0, 0, 0, time.UTC),
		},
		{
			name: "24-hour clock passes through",
			expr: "today at 21",
			want: time.Date(2025, time.June, 18, 21, 0, 0, 0, time.UTC),
		},
		{
			name: "space before meridiem",
			expr: "tomorrow at 7 pm",
			want: time.Date(2025, time.June, 19, 19, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.Resolve(tt.expr, testRef)
			if err != nil {
				t.Fatalf("Resolve(%q) returned error: %v", tt.expr, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("Resolve(%q) = %v, expected %v", tt.expr, got, tt.want)
			}
		})
	}
}

func TestResolveFallbackLayouts(t *testing.T) {
	r := newTestResolver()

	tests := []struct {
		name string
		expr string
		want time.Time
	}{
		{
			name: "rfc3339",
			expr: "2025-06-18T09:30:00Z",
			want: time.Date(2025, time.June, 18, 9, 30, 0, 0, time.UTC),
		},
		{
			name: "date with space separator",
			expr: "2025-06-18 09:30",
			want: time.Date(2025, time.June, 18, 9, 30, 0, 0, time.UTC),
		},
		{
			name: "us slash date with time",
			expr: "06/18/2025 09:30",
			want: time.Date(2025, time.June, 18, 9, 30, 0, 0, time.UTC),
		},
		{
			name: "us slash date",
			expr: "06/18/2025",
			want: time.Date(2025, time.June, 18, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "month name with time",
			expr: "June 18, 2025 3:04 PM",
			want: time.Date(2025, time.June, 18, 15, 4, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.Resolve(tt.expr, testRef)
			if err != nil {
				t.Fatalf("Resolve(%q) returned error: %v", tt.expr, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("Resolve(%q) = %v, expected %v", tt.expr, got, tt.want)
			}
		})
	}
}

func TestResolveCaseAndWhitespace(t *testing.T) {
	r := newTestResolver()

	tests := []struct {
		name string
		expr string
		want time.Time
	}{
		{
			name: "padded tomorrow",
			expr: "  Tomorrow  ",
			want: time.Date(2025, time.June, 19, 9, 0, 0, 0, time.UTC),
		},
		{
			name: "shouted weekday",
			expr: "NEXT FRIDAY",
			want: time.Date(2025, time.June, 20, 9, 0, 0, 0, time.UTC),
		},
		{
			name: "padded iso",
			expr: " 2025-03-07 ",
			want: time.Date(2025, time.March, 7, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.Resolve(tt.expr, testRef)
			if err != nil {
				t.Fatalf("Resolve(%q) returned error: %v", tt.expr, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("Resolve(%q) = %v, expected %v", tt.expr, got, tt.want)
			}
		})
	}
}

func TestResolveUnparsable(t *testing.T) {
	r := newTestResolver()

	for _, expr := range []string{"next blorpday", "whenever", "13 o'clock", ""} {
		_, err := r.Resolve(expr, testRef)
		if err == nil {
			t.Errorf("Resolve(%q) expected error, got none", expr)
			continue
		}
		var pe *ParseError
		if !errors.As(err, &pe) {
			t.Errorf("Resolve(%q) error type = %T, expected *ParseError", expr, err)
			continue
		}
		want := "Unable to parse date/time: " + expr
		if err.Error() != want {
			t.Errorf("Resolve(%q) error = %q, expected %q", expr, err.Error(), want)
		}
	}
}

func TestResolveRoundTrip(t *testing.T) {
	r := newTestResolver()

	first, err := r.Resolve("2025-06-18T15:30:45", testRef)
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	again, err := r.Resolve(first.Format("2006-01-02T15:04:05"), testRef)
	if err != nil {
		t.Fatalf("Resolve of formatted instant returned error: %v", err)
	}
	if !again.Equal(first) {
		t.Errorf("round trip changed instant: %v vs %v", again, first)
	}
}

func TestResolveZeroReferenceUsesClock(t *testing.T) {
	r := newTestResolver()

	got, err := r.Resolve("tomorrow", time.Time{})
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	want := time.Date(2025, time.June, 19, 9, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("Resolve(tomorrow) with zero reference = %v, expected %v", got, want)
	}
}
