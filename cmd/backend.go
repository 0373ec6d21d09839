package cmd

import (
	"github.com/spf13/cobra"

	"github.com/agileboot/agileboot-cli/internal/app"
	"github.com/agileboot/agileboot-cli/internal/logger"
)

var (
	//nolint:gochecknoglobals // Cobra command requires a global definition.
	configCmd = &cobra.Command{
		Use:   "config",
		Short: "Show the public system configuration",
		Long: `Shows whether the captcha is enabled on login and lists the
dictionaries (option lists) published by the backend.`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			app.ExecuteConfigCommand(cmd.Context(), appConfig)
		},
	}

	//nolint:gochecknoglobals // Cobra command requires a global definition.
	captchaCmd = &cobra.Command{
		Use:   "captcha",
		Short: "Fetch a captcha image",
		Long: `Fetches a new captcha and saves the decoded image.

Without --output the image is written to captcha_output_path
and named after the captcha key.`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			outputPath, _ := cmd.Flags().GetString("output")

			app.ExecuteCaptchaCommand(cmd.Context(), appConfig, outputPath)
		},
	}

	//nolint:gochecknoglobals // Cobra command requires a global definition.
	routesCmd = &cobra.Command{
		Use:   "routes",
		Short: "Print the route tree of the current user",
		Long: `Fetches the dynamic routes of the logged in user and prints them.

Every route gets an id made of its name and path, children included.
Routes sharing an id are reported as warnings.`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			formatName, _ := cmd.Flags().GetString("format")

			format, err := app.ParseRouteFormat(formatName)
			if err != nil {
				logger.Fatalf(cmd.Context(), "Failed to parse flags: %v", err)
			}

			app.ExecuteRoutesCommand(cmd.Context(), appConfig, format)
		},
	}
)

//nolint:gochecknoinits // Cobra requires the init function to set up commands.
func init() {
	captchaCmd.Flags().StringP(
		"output",
		"o",
		"",
		"file to save the captcha image to (the directory will be created if it doesn't exist).")

	routesCmd.Flags().StringP(
		"format",
		"f",
		string(app.RouteFormatTree),
		"output format: tree, json or yaml.")

	rootCmd.AddCommand(configCmd, captchaCmd, routesCmd)
}
