// Package server provides the MCP server context and the HTTP sidecars for
// the calagent application.
//
// # Key Components
//
// ServerContext manages Google Calendar clients with lazy initialization and
// caching. It supports multiple accounts behind a single token provider; the
// file-based provider reads tokens the auth command (or the google_* tools)
// saved to disk.
//
// HealthChecker serves the /healthz, /readyz and /healthz/detailed endpoints
// for Kubernetes probes when the server runs with the streamable HTTP
// transport.
//
// MetricsServer exposes Prometheus metrics on a dedicated port, keeping
// operational metrics off the main MCP endpoint.
package server
