package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command for the calagent application
var rootCmd = &cobra.Command{
	Use:   "calagent",
	Short: "MCP server exposing Google Calendar to AI assistants",
	Long: `calagent is an MCP (Model Context Protocol) server that lets AI assistants
manage Google Calendar: create, inspect, update, delete, list and search
events, and list calendars.

Times may be given in ISO form ('2025-04-01T14:00:00') or natural language
('tomorrow at 3pm', 'next monday', '2 hours later'); relative phrases resolve
against the field they belong to, so an end time of '2 hours later' means two
hours after the event starts.`,
	SilenceUsage: true,
}

// version will be set by main
var version = "dev"

// SetVersion sets the version for the root command
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

// Execute is the main entry point for the CLI application
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "calagent version %s\n" .Version}}`)

	// If no subcommand is provided, run the serve command by default
	if len(os.Args) == 1 {
		os.Args = append(os.Args, "serve")
	}

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newAuthCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newGenerateDocsCmd())
}
