// Package logging provides structured logging utilities for the calagent application.
//
// This package centralizes logging patterns to ensure consistent, structured logging
// throughout the codebase using the standard library's slog package.
//
// # Key Features
//
//   - Consistent attribute naming across the codebase
//   - Token sanitization for safe logging
//   - Adapter bridging slog to the mcp-go transport logger
//
// # Usage Patterns
//
// Attach standard attributes to log records:
//
//	slog.Info("token refreshed",
//	    logging.Account("work"),
//	    logging.Status(logging.StatusSuccess))
//
// Sanitize sensitive data before logging:
//
//	slog.Warn("token rejected",
//	    logging.Err(err),
//	    slog.String("token", logging.SanitizeToken(token)))
//
// # Security Considerations
//
// Tokens are never logged directly; SanitizeToken reduces them to a length
// indicator. Calendar identifiers (frequently email addresses) are handled by
// the instrumentation package's cardinality helpers.
package logging
