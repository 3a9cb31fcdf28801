package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/anastluc/gdocs-participation-statistics/internal/adapters/driven/auth"
	"github.com/anastluc/gdocs-participation-statistics/internal/adapters/driven/config"
	"github.com/anastluc/gdocs-participation-statistics/internal/adapters/driven/googledocs"
	"github.com/anastluc/gdocs-participation-statistics/internal/core/domain"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage Google authentication",
	Long: `Authenticate with Google and inspect the stored credentials.

The login flow opens a browser consent page and stores the resulting
token as token.json in ~/.gdocstats/. It requires a credentials.json
OAuth client file, downloaded from the Google Cloud Console, in
~/.gdocstats/ or the working directory.

Examples:
  gdocstats auth login
  gdocstats auth status`,
}

var authLoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authenticate with Google via the browser",
	RunE:  runAuthLogin,
}

var authStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current authentication state",
	RunE:  runAuthStatus,
}

func init() {
	authCmd.AddCommand(authLoginCmd)
	authCmd.AddCommand(authStatusCmd)
	rootCmd.AddCommand(authCmd)
}

func runAuthLogin(cmd *cobra.Command, _ []string) error {
	configDir, err := config.Dir()
	if err != nil {
		return fmt.Errorf("resolving config directory: %w", err)
	}

	token, err := auth.Login(cmd.Context(), configDir)
	if err != nil {
		return err
	}

	cmd.Printf("Authenticated. Token stored at %s\n", auth.TokenPath(configDir))
	if !token.Expiry.IsZero() {
		cmd.Printf("Access token expires %s\n", token.Expiry.Format("2006-01-02 15:04:05 MST"))
	}
	return nil
}

func runAuthStatus(cmd *cobra.Command, _ []string) error {
	configDir, err := config.Dir()
	if err != nil {
		return fmt.Errorf("resolving config directory: %w", err)
	}

	token, err := auth.LoadToken(configDir)
	if err != nil {
		if errors.Is(err, domain.ErrAuthRequired) {
			cmd.Println("Not authenticated. Run 'gdocstats auth login' first.")
			return nil
		}
		return err
	}

	cmd.Printf("Token stored at %s\n", auth.TokenPath(configDir))
	if !token.Expiry.IsZero() {
		cmd.Printf("Access token expires %s\n", token.Expiry.Format("2006-01-02 15:04:05 MST"))
	}

	// Verify the token actually works against the API.
	ts, err := auth.TokenSource(cmd.Context(), configDir)
	if err != nil {
		cmd.Printf("Token cannot be refreshed: %v\n", err)
		return nil
	}
	client, err := googledocs.NewClient(cmd.Context(), ts, googledocs.DefaultFetchDelay)
	if err != nil {
		return fmt.Errorf("creating API client: %w", err)
	}
	email, err := client.AuthenticatedUser(cmd.Context())
	if err != nil {
		cmd.Printf("Token is stored but the API rejected it: %v\n", err)
		cmd.Println("Run 'gdocstats auth login' to re-authenticate.")
		return nil
	}
	cmd.Printf("Authenticated as %s\n", email)
	return nil
}
