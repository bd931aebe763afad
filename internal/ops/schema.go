package ops

// Operation names understood by the dispatcher.
const (
	OpCreateEvent   = "create_event"
	OpGetEvent      = "get_event"
	OpUpdateEvent   = "update_event"
	OpDeleteEvent   = "delete_event"
	OpListEvents    = "list_events"
	OpSearchEvents  = "search_events"
	OpListCalendars = "list_calendars"
)

// FieldKind describes how a field is validated and converted.
type FieldKind int

const (
	KindString FieldKind = iota
	// KindTimeExpr is a string holding a time expression; the dispatcher
	// resolves it before the backend sees it.
	KindTimeExpr
	KindInt
	KindStringList
	KindReminders
)

// FieldSpec declares a single operation argument.
type FieldSpec struct {
	Name        string
	Kind        FieldKind
	Required    bool
	Default     interface{} // filled in when the field is absent; nil means no default
	Enum        []string    // allowed values for string fields, empty means unrestricted
	Description string
}

// Schema declares one operation: its name, a description for tool listings,
// and the argument specs.
type Schema struct {
	Name        string
	Description string
	Fields      []FieldSpec
}

var calendarIDField = FieldSpec{
	Name:        "calendarId",
	Kind:        KindString,
	Default:     "primary",
	Description: "Calendar ID (defaults to 'primary')",
}

var eventIDField = FieldSpec{
	Name:        "eventId",
	Kind:        KindString,
	Required:    true,
	Description: "ID of the event",
}

// registry lists the seven calendar operations. It is the single source of
// truth for the tool surface: tool definitions and dispatcher validation
// both derive from it.
var registry = []Schema{
	{
		Name:        OpCreateEvent,
		Description: "Create a new event in Google Calendar",
		Fields: []FieldSpec{
			{
				Name:        "summary",
				Kind:        KindString,
				Required:    true,
				Description: "Title of the event",
			},
			{
				Name:        "description",
				Kind:        KindString,
				Description: "Description or notes for the event",
			},
			{
				Name:        "location",
				Kind:        KindString,
				Description: "Location of the event",
			},
			{
				Name:        "start",
				Kind:        KindTimeExpr,
				Required:    true,
				Description: "Start time: ISO format like '2024-01-15T10:00:00' or natural language like 'tomorrow at 3pm', 'next monday'",
			},
			{
				Name:        "end",
				Kind:        KindTimeExpr,
				Required:    true,
				Description: "End time: same formats as start; relative phrases like '2 hours later' resolve against the start time",
			},
			{
				Name:        "attendees",
				Kind:        KindStringList,
				Description: "Email addresses of attendees to invite",
			},
			calendarIDField,
			{
				Name:        "reminders",
				Kind:        KindReminders,
				Description: "Reminder settings: {useDefault: bool, overrides: [{method: 'email'|'popup', minutes: number}]}",
			},
		},
	},
	{
		Name:        OpGetEvent,
		Description: "Get details of a specific calendar event",
		Fields: []FieldSpec{
			eventIDField,
			calendarIDField,
		},
	},
	{
		Name:        OpUpdateEvent,
		Description: "Update an existing calendar event; only the supplied fields change",
		Fields: []FieldSpec{
			eventIDField,
			calendarIDField,
			{
				Name:        "summary",
				Kind:        KindString,
				Description: "New title of the event",
			},
			{
				Name:        "description",
				Kind:        KindString,
				Description: "New description of the event",
			},
			{
				Name:        "location",
				Kind:        KindString,
				Description: "New location of the event",
			},
			{
				Name:        "start",
				Kind:        KindTimeExpr,
				Description: "New start time: same formats as create_event",
			},
			{
				Name:        "end",
				Kind:        KindTimeExpr,
				Description: "New end time; relative phrases resolve against the new start when given, otherwise against the stored start",
			},
		},
	},
	{
		Name:        OpDeleteEvent,
		Description: "Delete a calendar event",
		Fields: []FieldSpec{
			eventIDField,
			calendarIDField,
		},
	},
	{
		Name:        OpListEvents,
		Description: "List events in a Google Calendar within a time window",
		Fields: []FieldSpec{
			calendarIDField,
			{
				Name:        "timeMin",
				Kind:        KindTimeExpr,
				Description: "Start of the time window (time expression, defaults to now)",
			},
			{
				Name:        "timeMax",
				Kind:        KindTimeExpr,
				Description: "End of the time window (time expression, defaults to timeMin + 7 days)",
			},
			{
				Name:        "maxResults",
				Kind:        KindInt,
				Default:     int64(10),
				Description: "Maximum number of events to return",
			},
			{
				Name:        "orderBy",
				Kind:        KindString,
				Default:     "startTime",
				Enum:        []string{"startTime", "updated"},
				Description: "Sort order: 'startTime' or 'updated'",
			},
		},
	},
	{
		Name:        OpSearchEvents,
		Description: "Search events by text across title, description and location",
		Fields: []FieldSpec{
			{
				Name:        "query",
				Kind:        KindString,
				Required:    true,
				Description: "Text to match against event titles, descriptions and locations",
			},
			calendarIDField,
			{
				Name:        "timeMin",
				Kind:        KindTimeExpr,
				Description: "Start of the time window (time expression, defaults to now)",
			},
			{
				Name:        "timeMax",
				Kind:        KindTimeExpr,
				Description: "End of the time window (time expression, defaults to timeMin + 30 days)",
			},
			{
				Name:        "maxResults",
				Kind:        KindInt,
				Default:     int64(10),
				Description: "Maximum number of matching events to return",
			},
		},
	},
	{
		Name:        OpListCalendars,
		Description: "List all calendars accessible to the account",
	},
}

// Registry returns all operation schemas in declaration order.
func Registry() []Schema {
	return registry
}

// SchemaFor looks up an operation schema by name.
func SchemaFor(name string) (*Schema, bool) {
	for i := range registry {
		if registry[i].Name == name {
			return &registry[i], true
		}
	}
	return nil, false
}
