package ops

import (
	"strings"
	"time"

	"github.com/teemow/calagent/internal/calendar"
	"github.com/teemow/calagent/internal/timeexpr"
)

// RemoteCalendar is the calendar backend the dispatcher drives. calendar.Client
// implements it; tests substitute a fake.
type RemoteCalendar interface {
	CreateEvent(calendarID string, input calendar.EventInput) (*calendar.EventSummary, error)
	GetEvent(calendarID, eventID string) (*calendar.EventSummary, error)
	PatchEvent(calendarID, eventID string, patch calendar.EventPatch) (*calendar.EventSummary, error)
	DeleteEvent(calendarID, eventID string) error
	ListEvents(calendarID string, timeMin, timeMax time.Time, maxResults int64, orderBy string) ([]calendar.EventSummary, error)
	ListCalendars() ([]calendar.CalendarInfo, error)
}

// Result is the outcome of a dispatched operation. Success and failure share
// the same envelope: Text is always the full payload, and failures are
// recognizable only by their "Error: " prefix. OK exists for callers that
// need the outcome without re-parsing the text.
type Result struct {
	OK   bool
	Text string
}

// searchFetchLimit bounds the candidate window fetched for search. The
// remote has no full-text filter, so search over-fetches within the time
// window, matches locally, then truncates to the caller's maxResults.
const searchFetchLimit = 250

// Dispatcher validates, resolves and executes calendar operations.
type Dispatcher struct {
	resolver *timeexpr.Resolver
}

// NewDispatcher returns a dispatcher using the given resolver, or a
// system-clock resolver when nil.
func NewDispatcher(resolver *timeexpr.Resolver) *Dispatcher {
	if resolver == nil {
		resolver = timeexpr.NewResolver()
	}
	return &Dispatcher{resolver: resolver}
}

// Dispatch runs one operation against the given backend. Every failure is
// folded into the returned Result; nothing escapes as a Go error.
func (d *Dispatcher) Dispatch(remote RemoteCalendar, name string, args map[string]interface{}) Result {
	text, err := d.run(remote, name, args)
	if err != nil {
		return Result{Text: "Error: " + err.Error()}
	}
	return Result{OK: true, Text: text}
}

func (d *Dispatcher) run(remote RemoteCalendar, name string, args map[string]interface{}) (string, error) {
	schema, ok := SchemaFor(name)
	if !ok {
		return "", &UnknownOperationError{Name: name}
	}

	fields, err := validateArgs(schema, args)
	if err != nil {
		return "", err
	}

	switch name {
	case OpCreateEvent:
		return d.createEvent(remote, fields)
	case OpGetEvent:
		return d.getEvent(remote, fields)
	case OpUpdateEvent:
		return d.updateEvent(remote, fields)
	case OpDeleteEvent:
		return d.deleteEvent(remote, fields)
	case OpListEvents:
		return d.listEvents(remote, fields)
	case OpSearchEvents:
		return d.searchEvents(remote, fields)
	case OpListCalendars:
		return d.listCalendars(remote)
	}
	return "", &UnknownOperationError{Name: name}
}

func (d *Dispatcher) createEvent(remote RemoteCalendar, fields map[string]interface{}) (string, error) {
	start, err := d.resolver.Resolve(stringField(fields, "start"), time.Time{})
	if err != nil {
		return "", err
	}
	// The end expression is anchored to the new start, so "2 hours later"
	// means two hours after the event begins.
	end, err := d.resolver.Resolve(stringField(fields, "end"), start)
	if err != nil {
		return "", err
	}

	input := calendar.EventInput{
		Summary:     stringField(fields, "summary"),
		Description: stringField(fields, "description"),
		Location:    stringField(fields, "location"),
		Start:       start,
		End:         end,
	}
	if attendees, ok := fields["attendees"].([]string); ok {
		input.Attendees = attendees
	}
	if reminders, ok := fields["reminders"].(*calendar.ReminderSettings); ok {
		input.Reminders = reminders
	}

	created, err := remote.CreateEvent(stringField(fields, "calendarId"), input)
	if err != nil {
		return "", &RemoteError{Err: err}
	}
	return renderEventCreated(created), nil
}

func (d *Dispatcher) getEvent(remote RemoteCalendar, fields map[string]interface{}) (string, error) {
	event, err := remote.GetEvent(stringField(fields, "calendarId"), stringField(fields, "eventId"))
	if err != nil {
		return "", &RemoteError{Err: err}
	}
	return renderEventDetails(event), nil
}

func (d *Dispatcher) updateEvent(remote RemoteCalendar, fields map[string]interface{}) (string, error) {
	calendarID := stringField(fields, "calendarId")
	eventID := stringField(fields, "eventId")

	patch := calendar.EventPatch{}
	if v, ok := fields["summary"].(string); ok {
		patch.Summary = &v
	}
	if v, ok := fields["description"].(string); ok {
		patch.Description = &v
	}
	if v, ok := fields["location"].(string); ok {
		patch.Location = &v
	}

	startExpr := stringField(fields, "start")
	endExpr := stringField(fields, "end")
	if startExpr != "" || endExpr != "" {
		// Time changes need the stored event: an end alone resolves
		// against the stored start, and the stored zone carries over.
		existing, err := remote.GetEvent(calendarID, eventID)
		if err != nil {
			return "", &RemoteError{Err: err}
		}
		start, end, zone, err := ResolveUpdateTimes(d.resolver, startExpr, endExpr, existing)
		if err != nil {
			return "", err
		}
		patch.Start = start
		patch.End = end
		patch.TimeZone = zone
	}

	updated, err := remote.PatchEvent(calendarID, eventID, patch)
	if err != nil {
		return "", &RemoteError{Err: err}
	}
	return renderEventUpdated(updated), nil
}

func (d *Dispatcher) deleteEvent(remote RemoteCalendar, fields map[string]interface{}) (string, error) {
	eventID := stringField(fields, "eventId")
	if err := remote.DeleteEvent(stringField(fields, "calendarId"), eventID); err != nil {
		return "", &RemoteError{Err: err}
	}
	return renderEventDeleted(eventID), nil
}

func (d *Dispatcher) listEvents(remote RemoteCalendar, fields map[string]interface{}) (string, error) {
	timeMin, timeMax, err := ResolveWindow(d.resolver, stringField(fields, "timeMin"), stringField(fields, "timeMax"), 7)
	if err != nil {
		return "", err
	}

	events, err := remote.ListEvents(stringField(fields, "calendarId"), timeMin, timeMax, intField(fields, "maxResults"), stringField(fields, "orderBy"))
	if err != nil {
		return "", &RemoteError{Err: err}
	}
	return renderEventList(events, timeMin, timeMax), nil
}

func (d *Dispatcher) searchEvents(remote RemoteCalendar, fields map[string]interface{}) (string, error) {
	query := stringField(fields, "query")
	timeMin, timeMax, err := ResolveWindow(d.resolver, stringField(fields, "timeMin"), stringField(fields, "timeMax"), 30)
	if err != nil {
		return "", err
	}

	candidates, err := remote.ListEvents(stringField(fields, "calendarId"), timeMin, timeMax, searchFetchLimit, "startTime")
	if err != nil {
		return "", &RemoteError{Err: err}
	}

	var matches []calendar.EventSummary
	for _, event := range candidates {
		if matchesQuery(event, query) {
			matches = append(matches, event)
		}
	}
	if limit := intField(fields, "maxResults"); limit > 0 && int64(len(matches)) > limit {
		matches = matches[:limit]
	}
	return renderSearchResults(query, matches), nil
}

func (d *Dispatcher) listCalendars(remote RemoteCalendar) (string, error) {
	calendars, err := remote.ListCalendars()
	if err != nil {
		return "", &RemoteError{Err: err}
	}
	return renderCalendarList(calendars), nil
}

// matchesQuery reports whether the query appears in the event's title,
// description or location, case-insensitively.
func matchesQuery(event calendar.EventSummary, query string) bool {
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(event.Summary), q) ||
		strings.Contains(strings.ToLower(event.Description), q) ||
		strings.Contains(strings.ToLower(event.Location), q)
}

func stringField(fields map[string]interface{}, name string) string {
	v, _ := fields[name].(string)
	return v
}

func intField(fields map[string]interface{}, name string) int64 {
	v, _ := fields[name].(int64)
	return v
}
