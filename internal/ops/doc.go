// Package ops defines the calendar operation surface and executes it.
//
// The schema registry declares every operation with its field specs
// (required/optional/default). Tool definitions for the MCP server and
// dispatcher validation both derive from the registry, so the two can
// never drift apart.
//
// The dispatcher validates raw arguments, resolves time expressions (with
// the cross-field rules: a create's end anchors to its start, an update's
// end anchors to the stored start, list/search windows default to now plus
// a span), calls the calendar backend, and renders the outcome as plain
// text. Failures never escape as Go errors; they come back in the same
// Result envelope with an "Error: " prefix.
package ops
