package calendar_tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/teemow/calagent/internal/calendar"
	"github.com/teemow/calagent/internal/google"
	"github.com/teemow/calagent/internal/ops"
	"github.com/teemow/calagent/internal/server"
	"github.com/teemow/calagent/internal/tools/common"
)

// getCalendarClient retrieves or creates a calendar client for the specified account
func getCalendarClient(ctx context.Context, account string, sc *server.ServerContext) (*calendar.Client, error) {
	client := sc.CalendarClientForAccount(account)
	if client != nil {
		return client, nil
	}

	// Check if token exists before trying to create a client
	if !calendar.HasTokenForAccountWithProvider(account, sc.TokenProvider()) {
		return nil, fmt.Errorf("%s", google.GetAuthenticationErrorMessage(account))
	}

	client, err := calendar.NewClientForAccountWithProvider(ctx, account, sc.TokenProvider())
	if err != nil {
		return nil, fmt.Errorf("failed to create Calendar client for account %s: %w", account, err)
	}
	sc.SetCalendarClientForAccount(account, client)
	return client, nil
}

// RegisterCalendarTools registers the calendar operations with the MCP
// server. Tool definitions are generated from the operation registry, so the
// advertised surface and the dispatcher's validation can never drift apart.
func RegisterCalendarTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	dispatcher := ops.NewDispatcher(nil)

	for _, schema := range ops.Registry() {
		schema := schema
		s.AddTool(toolFromSchema(schema),
			common.InstrumentedToolHandlerWithService(schema.Name, "calendar", operationKind(schema.Name), sc,
				func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
					return handleOperation(ctx, request, sc, dispatcher, schema.Name)
				}))
	}

	return nil
}

// handleOperation resolves the account's calendar client and hands the raw
// arguments to the dispatcher. Dispatch folds every failure into its text
// envelope, so the only error produced here is a missing or broken client.
func handleOperation(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext, dispatcher *ops.Dispatcher, operation string) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	account := common.GetAccountFromArgs(args)

	client, err := getCalendarClient(ctx, account, sc)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := dispatcher.Dispatch(client, operation, args)
	if !result.OK {
		return mcp.NewToolResultError(result.Text), nil
	}
	return mcp.NewToolResultText(result.Text), nil
}

// toolFromSchema converts an operation schema into an MCP tool definition.
// Every tool additionally accepts the transport-level account selector,
// which the dispatcher itself never sees.
func toolFromSchema(schema ops.Schema) mcp.Tool {
	opts := []mcp.ToolOption{
		mcp.WithDescription(schema.Description),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
		),
	}

	for _, f := range schema.Fields {
		opts = append(opts, fieldOption(f))
	}

	return mcp.NewTool(schema.Name, opts...)
}

func fieldOption(f ops.FieldSpec) mcp.ToolOption {
	switch f.Kind {
	case ops.KindInt:
		propOpts := []mcp.PropertyOption{mcp.Description(f.Description)}
		if f.Required {
			propOpts = append(propOpts, mcp.Required())
		}
		if d, ok := f.Default.(int64); ok {
			propOpts = append(propOpts, mcp.DefaultNumber(float64(d)))
		}
		return mcp.WithNumber(f.Name, propOpts...)

	case ops.KindStringList:
		propOpts := []mcp.PropertyOption{
			mcp.Description(f.Description),
			mcp.Items(map[string]any{"type": "string"}),
		}
		if f.Required {
			propOpts = append(propOpts, mcp.Required())
		}
		return mcp.WithArray(f.Name, propOpts...)

	case ops.KindReminders:
		propOpts := []mcp.PropertyOption{mcp.Description(f.Description)}
		if f.Required {
			propOpts = append(propOpts, mcp.Required())
		}
		return mcp.WithObject(f.Name, propOpts...)

	default: // KindString, KindTimeExpr
		propOpts := []mcp.PropertyOption{mcp.Description(f.Description)}
		if f.Required {
			propOpts = append(propOpts, mcp.Required())
		}
		if d, ok := f.Default.(string); ok {
			propOpts = append(propOpts, mcp.DefaultString(d))
		}
		if len(f.Enum) > 0 {
			propOpts = append(propOpts, mcp.Enum(f.Enum...))
		}
		return mcp.WithString(f.Name, propOpts...)
	}
}

// operationKind maps an operation name to the low-cardinality operation
// label recorded on Google API metrics.
func operationKind(name string) string {
	switch name {
	case ops.OpCreateEvent:
		return "create"
	case ops.OpGetEvent:
		return "get"
	case ops.OpUpdateEvent:
		return "update"
	case ops.OpDeleteEvent:
		return "delete"
	case ops.OpListEvents, ops.OpListCalendars:
		return "list"
	case ops.OpSearchEvents:
		return "search"
	}
	return "other"
}
