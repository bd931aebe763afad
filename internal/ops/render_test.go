package ops

import (
	"strings"
	"testing"
	"time"

	"github.com/teemow/calagent/internal/calendar"
	"github.com/teemow/calagent/internal/timeexpr"
)

func TestRenderEventCreatedOptionalFields(t *testing.T) {
	event := &calendar.EventSummary{
		ID:      "evt123",
		Summary: "Planning",
		Start:   timeexpr.TimeField{Time: time.Date(2025, time.June, 18, 15, 0, 0, 0, time.UTC)},
		End:     timeexpr.TimeField{Time: time.Date(2025, time.June, 18, 16, 0, 0, 0, time.UTC)},
	}

	got := renderEventCreated(event)
	if !strings.Contains(got, "Successfully created event: Planning") {
		t.Errorf("renderEventCreated() = %q", got)
	}
	if strings.Contains(got, "Location:") || strings.Contains(got, "Attendees:") || strings.Contains(got, "Link:") {
		t.Errorf("renderEventCreated() shows absent fields:\n%s", got)
	}

	event.Location = "Room 4"
	event.HTMLLink = "https://calendar.google.com/event"
	got = renderEventCreated(event)
	if !strings.Contains(got, "Location: Room 4") || !strings.Contains(got, "Link: https://calendar.google.com/event") {
		t.Errorf("renderEventCreated() = %q", got)
	}
}

func TestRenderEventListAllDayAndMissingTimes(t *testing.T) {
	events := []calendar.EventSummary{
		{
			ID:      "e1",
			Summary: "Holiday",
			Start: timeexpr.TimeField{
				Time:   time.Date(2025, time.December, 24, 0, 0, 0, 0, time.UTC),
				AllDay: true,
			},
		},
	}

	got := renderEventList(events, testClock, testClock.AddDate(0, 0, 7))
	if !strings.Contains(got, "Wednesday, December 24, 2025 (All day)") {
		t.Errorf("renderEventList() missing all-day date:\n%s", got)
	}
	// The end was never set; the formatter is total.
	if !strings.Contains(got, "End: Not specified") {
		t.Errorf("renderEventList() missing Not specified end:\n%s", got)
	}
}

func TestRenderEventListEmpty(t *testing.T) {
	got := renderEventList(nil, testClock, testClock.AddDate(0, 0, 7))
	if !strings.HasPrefix(got, "No events found between ") {
		t.Errorf("renderEventList() = %q", got)
	}
}

func TestRenderEventDetailsAttendees(t *testing.T) {
	event := &calendar.EventSummary{
		ID:      "evt123",
		Summary: "Planning",
		Attendees: []calendar.AttendeeInfo{
			{Email: "a@example.com", ResponseStatus: "accepted"},
			{Email: "b@example.com", ResponseStatus: "needsAction", Optional: true},
		},
	}

	got := renderEventDetails(event)
	if !strings.Contains(got, "Attendees (2):") {
		t.Errorf("renderEventDetails() = %q", got)
	}
	if !strings.Contains(got, "- a@example.com (accepted)") {
		t.Errorf("renderEventDetails() = %q", got)
	}
	if !strings.Contains(got, "- b@example.com (needsAction) [optional]") {
		t.Errorf("renderEventDetails() = %q", got)
	}
}

func TestRenderCalendarListEmpty(t *testing.T) {
	if got := renderCalendarList(nil); got != "No calendars found" {
		t.Errorf("renderCalendarList() = %q", got)
	}
}
