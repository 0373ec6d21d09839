package cmd

import (
	"github.com/spf13/cobra"

	"github.com/agileboot/agileboot-cli/internal/app"
)

var (
	//nolint:gochecknoglobals // Cobra command requires a global definition.
	authCmd = &cobra.Command{
		Use:   "auth",
		Short: "Authentication management commands",
		Long: `Manage authentication against the AgileBoot backend.

Use 'auth login' to log in with a password and save the token,
and 'auth whoami' to check who the saved token belongs to.`,
	}

	//nolint:gochecknoglobals // Cobra command requires a global definition.
	authLoginCmd = &cobra.Command{
		Use:   "login",
		Short: "Log in with a password and save the token",
		Long: `Logs in to the backend with a username and password.

The login process:
1. The system configuration is fetched to find out whether a captcha is required
2. If it is, the captcha image is saved to captcha_output_path and you are asked for its code
3. You are asked for the username (unless --username is given) and the password
4. The token returned by the backend is saved to the configuration file

Other keys and the formatting of the configuration file are preserved.`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			username, _ := cmd.Flags().GetString("username")

			app.ExecuteAuthLoginCommand(cmd.Context(), appConfig, username)
		},
	}

	//nolint:gochecknoglobals // Cobra command requires a global definition.
	authWhoAmICmd = &cobra.Command{
		Use:   "whoami",
		Short: "Show the user the saved token belongs to",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			app.ExecuteWhoAmICommand(cmd.Context(), appConfig)
		},
	}
)

//nolint:gochecknoinits // Cobra requires the init function to set up commands.
func init() {
	authLoginCmd.Flags().StringP(
		"username",
		"u",
		"",
		"username to log in with (prompted for when empty).")

	authCmd.AddCommand(authLoginCmd, authWhoAmICmd)

	rootCmd.AddCommand(authCmd)
}
