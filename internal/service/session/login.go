package session

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/agileboot/agileboot-cli/internal/client/agileboot"
	"github.com/agileboot/agileboot-cli/internal/config"
	"github.com/agileboot/agileboot-cli/internal/logger"
)

// Login authenticates with a password and persists the token in the config file.
// The username falls back to the configured one and is prompted for when both are empty.
// When the backend has the captcha enabled, the image is fetched and its code prompted for
// only after the credentials, since captchas expire quickly.
func (s *ServiceImpl) Login(ctx context.Context, username string) (*agileboot.TokenDTO, error) {
	systemConfig, err := s.SystemConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get system config: %w", err)
	}

	request := agileboot.LoginByPasswordDTO{}

	if request.Username, err = s.resolveUsername(username); err != nil {
		return nil, err
	}

	password, err := s.prompter.AskPassword()
	if err != nil {
		return nil, fmt.Errorf("failed to read password: %w", err)
	}

	if password == "" {
		return nil, ErrEmptyPassword
	}

	request.Password = password

	if systemConfig.IsCaptchaOn {
		if err = s.solveCaptcha(ctx, &request); err != nil {
			return nil, err
		}
	}

	logger.Infof(ctx, "Logging in as %s", request.Username)

	resp, err := s.client.LoginByPassword(ctx, request)
	if err != nil {
		return nil, err
	}

	if err = resp.Err(); err != nil {
		return nil, err
	}

	if resp.Data == nil || resp.Data.Token == "" {
		return nil, ErrEmptyToken
	}

	s.client.SetAuthToken(resp.Data.Token)
	s.cfg.AuthToken = resp.Data.Token

	if err = config.SaveConfig(s.cfg); err != nil {
		return nil, fmt.Errorf("failed to save configuration: %w", err)
	}

	logger.Infof(ctx, "Token saved to %s", s.cfg.Filename)

	return resp.Data, nil
}

func (s *ServiceImpl) solveCaptcha(ctx context.Context, request *agileboot.LoginByPasswordDTO) error {
	captcha, err := s.SaveCaptcha(ctx, "")
	if err != nil {
		return fmt.Errorf("failed to get captcha: %w", err)
	}

	// The image is only needed until the code has been typed in.
	defer func() {
		if removeErr := os.Remove(captcha.Path); removeErr != nil {
			logger.Debugf(ctx, "Failed to remove captcha image: %v", removeErr)
		}
	}()

	code, err := s.prompter.AskCaptchaCode(captcha.Path)
	if err != nil {
		return fmt.Errorf("failed to read captcha code: %w", err)
	}

	code = strings.TrimSpace(code)
	if code == "" {
		return ErrEmptyCaptchaCode
	}

	request.CaptchaCode = code
	request.CaptchaCodeKey = captcha.Key

	return nil
}

func (s *ServiceImpl) resolveUsername(username string) (string, error) {
	username = strings.TrimSpace(username)
	if username != "" {
		return username, nil
	}

	entered, err := s.prompter.AskUsername(s.cfg.Username)
	if err != nil {
		return "", fmt.Errorf("failed to read username: %w", err)
	}

	entered = strings.TrimSpace(entered)
	if entered == "" {
		return "", ErrEmptyUsername
	}

	return entered, nil
}
