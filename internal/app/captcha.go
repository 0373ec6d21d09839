package app

import (
	"context"

	"github.com/dustin/go-humanize"

	"github.com/agileboot/agileboot-cli/internal/config"
	"github.com/agileboot/agileboot-cli/internal/logger"
)

// ExecuteCaptchaCommand fetches a captcha and writes its image to outputPath,
// or to the configured captcha directory when outputPath is empty.
func ExecuteCaptchaCommand(ctx context.Context, cfg *config.Config, outputPath string) {
	s := newSessionService(ctx, cfg)

	captcha, err := s.SaveCaptcha(ctx, outputPath)
	if err != nil {
		logger.Fatalf(ctx, "Failed to get captcha: %v", err)
	}

	logger.Infof(ctx, "Captcha saved to %s (%s)", captcha.Path, humanize.Bytes(uint64(captcha.Size)))
	logger.Infof(ctx, "Captcha key: %s", captcha.Key)
}
