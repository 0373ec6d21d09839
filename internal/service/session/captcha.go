package session

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/agileboot/agileboot-cli/internal/client/agileboot"
	"github.com/agileboot/agileboot-cli/internal/constants"
	"github.com/agileboot/agileboot-cli/internal/logger"
	"github.com/agileboot/agileboot-cli/internal/utils"
)

const captchaFilePrefix = "captcha"

// SaveCaptcha fetches a new captcha and writes its image to disk.
// An empty outputPath places the file in the configured captcha directory,
// named after the captcha key.
func (s *ServiceImpl) SaveCaptcha(ctx context.Context, outputPath string) (*SavedCaptcha, error) {
	resp, err := s.client.GetCaptchaCode(ctx)
	if err != nil {
		return nil, err
	}

	if err = resp.Err(); err != nil {
		return nil, err
	}

	if resp.Data == nil {
		return nil, agileboot.ErrEmptyCaptchaImage
	}

	image, err := resp.Data.DecodeImage()
	if err != nil {
		return nil, err
	}

	if outputPath == "" {
		outputPath = captchaPath(s.cfg.CaptchaOutputPath, resp.Data.CaptchaCodeKey, image)
	}

	if err = os.MkdirAll(filepath.Dir(outputPath), constants.DefaultFolderPermissions); err != nil {
		return nil, fmt.Errorf("failed to create captcha directory: %w", err)
	}

	if err = os.WriteFile(outputPath, image, constants.DefaultFilePermissions); err != nil {
		return nil, fmt.Errorf("failed to write captcha image: %w", err)
	}

	logger.Debugf(ctx, "Captcha %s written to %s", resp.Data.CaptchaCodeKey, outputPath)

	return &SavedCaptcha{
		Key:  resp.Data.CaptchaCodeKey,
		Path: outputPath,
		Size: len(image),
	}, nil
}

func captchaPath(dir, key string, image []byte) string {
	name := captchaFilePrefix
	if key != "" {
		name += "-" + utils.SanitizeFilename(key)
	}

	return filepath.Join(dir, name+utils.DetectImageExtension(image))
}
