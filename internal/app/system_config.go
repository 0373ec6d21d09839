package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/fatih/color"

	"github.com/agileboot/agileboot-cli/internal/client/agileboot"
	"github.com/agileboot/agileboot-cli/internal/config"
	"github.com/agileboot/agileboot-cli/internal/logger"
)

// ExecuteConfigCommand prints the system configuration published by the backend.
func ExecuteConfigCommand(ctx context.Context, cfg *config.Config) {
	s := newSessionService(ctx, cfg)

	systemConfig, err := s.SystemConfig(ctx)
	if err != nil {
		logger.Fatalf(ctx, "Failed to get system config: %v", err)
	}

	printSystemConfig(os.Stdout, systemConfig)
}

// printSystemConfig writes the captcha state and the dictionary sorted by type.
func printSystemConfig(out io.Writer, systemConfig *agileboot.ConfigDTO) {
	captchaState := "disabled"
	if systemConfig.IsCaptchaOn {
		captchaState = "enabled"
	}

	fmt.Fprintf(out, "Captcha: %s\n", captchaState)

	if len(systemConfig.Dictionary) == 0 {
		fmt.Fprintln(out, "Dictionary: empty")

		return
	}

	fmt.Fprintln(out, "Dictionary:")

	heading := color.New(color.Bold)
	types := make([]string, 0, len(systemConfig.Dictionary))

	for dictionaryType := range systemConfig.Dictionary {
		types = append(types, dictionaryType)
	}

	slices.Sort(types)

	for _, dictionaryType := range types {
		fmt.Fprintf(out, "  %s\n", heading.Sprint(dictionaryType))

		for _, option := range systemConfig.Dictionary[dictionaryType] {
			fmt.Fprintf(out, "    %d\t%s", option.Value, option.Label)

			if option.CSSTag != "" {
				fmt.Fprintf(out, " (%s)", option.CSSTag)
			}

			fmt.Fprintln(out)
		}
	}
}
