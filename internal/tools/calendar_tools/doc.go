// Package calendar_tools provides MCP (Model Context Protocol) tools for Google Calendar operations.
//
// This package exposes Google Calendar functionality through a standardized MCP interface,
// allowing AI assistants to create, inspect, update, delete, list and search
// calendar events and to list calendars on behalf of users.
//
// Tool definitions are generated from the operation registry in internal/ops;
// incoming calls are delegated to the operation dispatcher, which validates
// arguments, resolves natural-language time expressions and renders results.
// The tools support multi-account authentication via the optional account argument.
package calendar_tools
