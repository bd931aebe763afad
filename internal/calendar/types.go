package calendar

import (
	"time"

	calendar "google.golang.org/api/calendar/v3"

	"github.com/teemow/calagent/internal/timeexpr"
)

// EventInput represents the input for creating a calendar event. Start and
// End are absolute instants; TimeZone is the IANA zone id sent alongside
// them.
type EventInput struct {
	Summary     string
	Description string
	Location    string
	Start       time.Time
	End         time.Time
	TimeZone    string
	Attendees   []string
	Reminders   *ReminderSettings
}

// EventPatch carries the fields of an update. Nil pointers mean "leave
// unchanged"; the remote only sees fields that are set.
type EventPatch struct {
	Summary     *string
	Description *string
	Location    *string
	Start       *time.Time
	End         *time.Time
	TimeZone    string
}

// ReminderSettings controls event notifications. When UseDefault is false
// the overrides replace the calendar's defaults.
type ReminderSettings struct {
	UseDefault bool
	Overrides  []ReminderOverride
}

// ReminderOverride is a single reminder. Method is "email" or "popup".
type ReminderOverride struct {
	Method  string
	Minutes int64
}

// EventSummary represents a simplified calendar event for display
type EventSummary struct {
	ID          string
	Summary     string
	Description string
	Location    string
	Start       timeexpr.TimeField
	End         timeexpr.TimeField
	Creator     string
	Organizer   string
	Status      string
	HTMLLink    string
	Attendees   []AttendeeInfo
}

// AttendeeInfo represents information about an event attendee
type AttendeeInfo struct {
	Email          string
	DisplayName    string
	ResponseStatus string // "needsAction", "declined", "tentative", "accepted"
	Optional       bool
	Organizer      bool
}

// CalendarInfo represents information about a calendar
type CalendarInfo struct {
	ID          string
	Summary     string
	Description string
	TimeZone    string
	Primary     bool
	AccessRole  string // "owner", "writer", "reader", "freeBusyReader"
}

// toEventSummary converts a Google Calendar event to an EventSummary
func toEventSummary(event *calendar.Event) EventSummary {
	summary := EventSummary{
		ID:          event.Id,
		Summary:     event.Summary,
		Description: event.Description,
		Location:    event.Location,
		Status:      event.Status,
		HTMLLink:    event.HtmlLink,
	}

	summary.Start = toTimeField(event.Start)
	summary.End = toTimeField(event.End)

	if event.Creator != nil {
		summary.Creator = event.Creator.Email
	}
	if event.Organizer != nil {
		summary.Organizer = event.Organizer.Email
	}

	for _, att := range event.Attendees {
		summary.Attendees = append(summary.Attendees, AttendeeInfo{
			Email:          att.Email,
			DisplayName:    att.DisplayName,
			ResponseStatus: att.ResponseStatus,
			Optional:       att.Optional,
			Organizer:      att.Organizer,
		})
	}

	return summary
}

// toTimeField converts the wire representation of an event boundary. A
// populated Date field marks an all-day event; the civil date is kept
// as-is rather than shifted through a zone.
func toTimeField(edt *calendar.EventDateTime) timeexpr.TimeField {
	if edt == nil {
		return timeexpr.TimeField{}
	}
	if edt.DateTime != "" {
		if t, err := time.Parse(time.RFC3339, edt.DateTime); err == nil {
			return timeexpr.TimeField{Time: t, TimeZone: edt.TimeZone}
		}
		return timeexpr.TimeField{}
	}
	if edt.Date != "" {
		if t, err := time.Parse("2006-01-02", edt.Date); err == nil {
			return timeexpr.TimeField{Time: t, AllDay: true, TimeZone: edt.TimeZone}
		}
	}
	return timeexpr.TimeField{}
}

// toCalendarInfo converts a Google Calendar list entry to CalendarInfo
func toCalendarInfo(entry *calendar.CalendarListEntry) CalendarInfo {
	return CalendarInfo{
		ID:          entry.Id,
		Summary:     entry.Summary,
		Description: entry.Description,
		TimeZone:    entry.TimeZone,
		Primary:     entry.Primary,
		AccessRole:  entry.AccessRole,
	}
}
