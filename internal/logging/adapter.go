package logging

import (
	"fmt"
	"log/slog"

	"github.com/mark3labs/mcp-go/util"
)

// MCPAdapter adapts an slog.Logger to the mcp-go util.Logger interface,
// so the streamable HTTP transport logs through the same structured logger
// as the rest of the server.
type MCPAdapter struct {
	logger *slog.Logger
}

var _ util.Logger = (*MCPAdapter)(nil)

// NewMCPAdapter creates a new MCPAdapter wrapping the given slog.Logger.
// If logger is nil, slog.Default() is used.
func NewMCPAdapter(logger *slog.Logger) *MCPAdapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &MCPAdapter{logger: logger}
}

// Infof logs a printf-style message at info level.
func (a *MCPAdapter) Infof(format string, v ...any) {
	a.logger.Info(fmt.Sprintf(format, v...))
}

// Errorf logs a printf-style message at error level.
func (a *MCPAdapter) Errorf(format string, v ...any) {
	a.logger.Error(fmt.Sprintf(format, v...))
}

// Logger returns the underlying slog.Logger for direct access when needed.
func (a *MCPAdapter) Logger() *slog.Logger {
	return a.logger
}
