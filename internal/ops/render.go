package ops

import (
	"fmt"
	"time"

	"github.com/teemow/calagent/internal/calendar"
	"github.com/teemow/calagent/internal/timeexpr"
)

func renderEventCreated(event *calendar.EventSummary) string {
	result := fmt.Sprintf("Successfully created event: %s\n", event.Summary)
	result += fmt.Sprintf("ID: %s\n", event.ID)
	result += fmt.Sprintf("Start: %s\n", timeexpr.Format(event.Start))
	result += fmt.Sprintf("End: %s\n", timeexpr.Format(event.End))
	if event.Location != "" {
		result += fmt.Sprintf("Location: %s\n", event.Location)
	}
	if len(event.Attendees) > 0 {
		result += fmt.Sprintf("Attendees: %d invited\n", len(event.Attendees))
	}
	if event.HTMLLink != "" {
		result += fmt.Sprintf("Link: %s\n", event.HTMLLink)
	}
	return result
}

func renderEventDetails(event *calendar.EventSummary) string {
	result := fmt.Sprintf("Event: %s\n", event.Summary)
	result += fmt.Sprintf("ID: %s\n", event.ID)
	result += fmt.Sprintf("Start: %s\n", timeexpr.Format(event.Start))
	result += fmt.Sprintf("End: %s\n", timeexpr.Format(event.End))
	if event.Status != "" {
		result += fmt.Sprintf("Status: %s\n", event.Status)
	}
	if event.Description != "" {
		result += fmt.Sprintf("Description: %s\n", event.Description)
	}
	if event.Location != "" {
		result += fmt.Sprintf("Location: %s\n", event.Location)
	}
	if event.Creator != "" {
		result += fmt.Sprintf("Creator: %s\n", event.Creator)
	}
	if event.Organizer != "" {
		result += fmt.Sprintf("Organizer: %s\n", event.Organizer)
	}

	if len(event.Attendees) > 0 {
		result += fmt.Sprintf("\nAttendees (%d):\n", len(event.Attendees))
		for _, att := range event.Attendees {
			result += fmt.Sprintf("  - %s (%s)", att.Email, att.ResponseStatus)
			if att.Optional {
				result += " [optional]"
			}
			result += "\n"
		}
	}

	if event.HTMLLink != "" {
		result += fmt.Sprintf("Link: %s\n", event.HTMLLink)
	}
	return result
}

func renderEventUpdated(event *calendar.EventSummary) string {
	result := fmt.Sprintf("Successfully updated event: %s\n", event.Summary)
	result += fmt.Sprintf("ID: %s\n", event.ID)
	result += fmt.Sprintf("Start: %s\n", timeexpr.Format(event.Start))
	result += fmt.Sprintf("End: %s\n", timeexpr.Format(event.End))
	return result
}

func renderEventDeleted(eventID string) string {
	return fmt.Sprintf("Successfully deleted event %s", eventID)
}

func renderEventList(events []calendar.EventSummary, timeMin, timeMax time.Time) string {
	if len(events) == 0 {
		return fmt.Sprintf("No events found between %s and %s",
			timeexpr.Format(timeMin), timeexpr.Format(timeMax))
	}

	result := fmt.Sprintf("Found %d events:\n\n", len(events))
	for i, event := range events {
		result += renderEventItem(i+1, event)
	}
	return result
}

func renderSearchResults(query string, events []calendar.EventSummary) string {
	if len(events) == 0 {
		return fmt.Sprintf("No events found matching %q", query)
	}

	result := fmt.Sprintf("Found %d events matching %q:\n\n", len(events), query)
	for i, event := range events {
		result += renderEventItem(i+1, event)
	}
	return result
}

func renderEventItem(n int, event calendar.EventSummary) string {
	result := fmt.Sprintf("%d. %s\n", n, event.Summary)
	result += fmt.Sprintf("   ID: %s\n", event.ID)
	result += fmt.Sprintf("   Start: %s\n", timeexpr.Format(event.Start))
	result += fmt.Sprintf("   End: %s\n", timeexpr.Format(event.End))
	if event.Location != "" {
		result += fmt.Sprintf("   Location: %s\n", event.Location)
	}
	if len(event.Attendees) > 0 {
		result += fmt.Sprintf("   Attendees: %d\n", len(event.Attendees))
	}
	result += "\n"
	return result
}

func renderCalendarList(calendars []calendar.CalendarInfo) string {
	if len(calendars) == 0 {
		return "No calendars found"
	}

	result := fmt.Sprintf("Found %d calendars:\n\n", len(calendars))
	for i, cal := range calendars {
		result += fmt.Sprintf("%d. %s\n", i+1, cal.Summary)
		result += fmt.Sprintf("   ID: %s\n", cal.ID)
		if cal.Primary {
			result += "   Primary: yes\n"
		}
		if cal.AccessRole != "" {
			result += fmt.Sprintf("   Access: %s\n", cal.AccessRole)
		}
		if cal.TimeZone != "" {
			result += fmt.Sprintf("   Time zone: %s\n", cal.TimeZone)
		}
		if cal.Description != "" {
			result += fmt.Sprintf("   Description: %s\n", cal.Description)
		}
		result += "\n"
	}
	return result
}
