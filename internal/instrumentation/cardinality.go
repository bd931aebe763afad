package instrumentation

import "strings"

// Cardinality management helpers for metrics.
// These functions reduce high-cardinality label values to prevent metrics explosion.
//
// # Warning
//
// High cardinality in metrics can cause:
// - Increased memory usage in Prometheus/metrics backends
// - Slower query performance
// - Higher storage costs
//
// Always use these helpers when recording metrics with calendar or user identifiers.

// ExtractUserDomain extracts the domain part from an email address.
// This reduces cardinality by using the domain instead of the full email.
//
// Example:
//
//	ExtractUserDomain("jane@example.com")  // "example.com"
//	ExtractUserDomain("user@gmail.com")    // "gmail.com"
//	ExtractUserDomain("invalid")           // "unknown"
//	ExtractUserDomain("")                  // "unknown"
func ExtractUserDomain(email string) string {
	if email == "" {
		return "unknown"
	}

	parts := strings.Split(email, "@")
	if len(parts) == 2 && parts[1] != "" {
		return parts[1]
	}

	return "unknown"
}

// ExtractCalendarDomain reduces a Google Calendar identifier to a low-cardinality
// label value. Most calendar IDs are email addresses (user calendars and group
// calendars), which collapse to their domain. The "primary" alias is kept as is,
// and opaque identifiers (resource calendars, holiday calendars) become "other".
//
// Example:
//
//	ExtractCalendarDomain("primary")              // "primary"
//	ExtractCalendarDomain("jane@example.com")     // "example.com"
//	ExtractCalendarDomain("a1b2c3@group.v.calendar.google.com")  // "group.v.calendar.google.com"
//	ExtractCalendarDomain("de.german#holiday")    // "other"
//	ExtractCalendarDomain("")                     // "unknown"
func ExtractCalendarDomain(calendarID string) string {
	if calendarID == "" {
		return "unknown"
	}
	if calendarID == "primary" {
		return "primary"
	}

	if domain := ExtractUserDomain(calendarID); domain != "unknown" {
		return domain
	}

	return "other"
}

// Common operation types for Google API metrics.
// Status and Service constants are defined in config.go.
const (
	OperationList   = "list"
	OperationGet    = "get"
	OperationCreate = "create"
	OperationUpdate = "update"
	OperationDelete = "delete"
	OperationSearch = "search"
)
