package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/teemow/calagent/internal/google"
)

func newAuthCmd() *cobra.Command {
	var account string

	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Authorize Google Calendar access for an account",
		Long: `Run the OAuth authorization flow from the terminal.

Prints the Google authorization URL, waits for the authorization code on
standard input, then exchanges and saves the token. Requires the
GOOGLE_CLIENT_ID and GOOGLE_CLIENT_SECRET environment variables.

Tokens are stored per account, so one server can act for several Google
accounts (e.g. --account work).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Pick up a pre-multi-account token file if one is lying around
			if err := google.MigrateDefaultToken(); err != nil {
				return fmt.Errorf("failed to migrate legacy token: %w", err)
			}

			if google.HasTokenForAccount(account) {
				fmt.Printf("A token already exists for account %q; continuing will replace it.\n\n", account)
			}

			authURL, err := google.GetAuthURLForAccount(account)
			if err != nil {
				return fmt.Errorf("failed to build auth URL: %w", err)
			}

			fmt.Printf("Visit this URL in your browser and grant access:\n\n  %s\n\n", authURL)
			fmt.Print("Paste the authorization code here: ")

			reader := bufio.NewReader(os.Stdin)
			code, err := reader.ReadString('\n')
			if err != nil {
				return fmt.Errorf("failed to read authorization code: %w", err)
			}
			code = strings.TrimSpace(code)
			if code == "" {
				return fmt.Errorf("no authorization code provided")
			}

			if err := google.SaveTokenForAccount(context.Background(), account, code); err != nil {
				return fmt.Errorf("failed to save token for account %s: %w", account, err)
			}

			fmt.Printf("\nAuthorization successful. Token saved for account %q.\n", account)
			return nil
		},
	}

	cmd.Flags().StringVar(&account, "account", "default", "Google account name to authorize")
	return cmd
}
