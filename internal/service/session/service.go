package session

import (
	"context"
	"time"

	"github.com/agileboot/agileboot-cli/internal/client/agileboot"
	"github.com/agileboot/agileboot-cli/internal/config"
	"github.com/agileboot/agileboot-cli/internal/logger"
)

// Service implements the CLI workflows.
type Service interface {
	// SystemConfig returns the public system configuration.
	SystemConfig(ctx context.Context) (*agileboot.ConfigDTO, error)
	// SaveCaptcha fetches a new captcha and writes its image to disk.
	// An empty outputPath places the file in the configured captcha directory.
	SaveCaptcha(ctx context.Context, outputPath string) (*SavedCaptcha, error)
	// Login authenticates with a password and persists the token in the config file.
	Login(ctx context.Context, username string) (*agileboot.TokenDTO, error)
	// CurrentUser describes the user the configured token belongs to.
	CurrentUser(ctx context.Context) (*CurrentUser, error)
	// Routes returns the route tree of the current user with unique ids assigned.
	Routes(ctx context.Context) ([]agileboot.RouteItem, error)
}

// SavedCaptcha describes a captcha image written to disk.
type SavedCaptcha struct {
	// Key must be sent back together with the solved code.
	Key  string
	Path string
	Size int
}

// CurrentUser is the logged in user together with what is known about its token.
type CurrentUser struct {
	User agileboot.CurrentLoginUserDTO
	// Claims is nil when the token is not a readable JWT.
	Claims *agileboot.TokenClaims
}

// ServiceImpl is the default Service.
type ServiceImpl struct {
	cfg      *config.Config
	client   agileboot.Client
	prompter Prompter
}

// NewService creates a session service.
func NewService(cfg *config.Config, client agileboot.Client, prompter Prompter) *ServiceImpl {
	return &ServiceImpl{
		cfg:      cfg,
		client:   client,
		prompter: prompter,
	}
}

// SystemConfig returns the public system configuration.
func (s *ServiceImpl) SystemConfig(ctx context.Context) (*agileboot.ConfigDTO, error) {
	resp, err := s.client.GetConfig(ctx)
	if err != nil {
		return nil, err
	}

	if err = resp.Err(); err != nil {
		return nil, err
	}

	if resp.Data == nil {
		return &agileboot.ConfigDTO{}, nil
	}

	return resp.Data, nil
}

// CurrentUser describes the user the configured token belongs to.
func (s *ServiceImpl) CurrentUser(ctx context.Context) (*CurrentUser, error) {
	resp, err := s.client.GetLoginUserInfo(ctx)
	if err != nil {
		return nil, err
	}

	if err = resp.Err(); err != nil {
		return nil, err
	}

	if resp.Data == nil {
		return nil, agileboot.ErrEmptyResponse
	}

	result := &CurrentUser{User: resp.Data.CurrentUser}

	claims, err := agileboot.ParseTokenClaims(s.cfg.AuthToken)
	if err != nil {
		logger.Debugf(ctx, "Token claims are not readable: %v", err)

		return result, nil
	}

	result.Claims = claims

	if claims.IsExpired(time.Now()) {
		logger.Warnf(ctx, "Token expired at %s, run 'auth login' to get a new one", claims.ExpiresAt.Format(time.DateTime))
	}

	return result, nil
}

// Routes returns the route tree of the current user with unique ids assigned.
func (s *ServiceImpl) Routes(ctx context.Context) ([]agileboot.RouteItem, error) {
	resp, err := s.client.GetAsyncRoutes(ctx)
	if err != nil {
		return nil, err
	}

	if err = resp.Err(); err != nil {
		return nil, err
	}

	for _, id := range agileboot.DuplicateRouteIDs(resp.Data) {
		logger.Warnf(ctx, "Route id %q is not unique", id)
	}

	return resp.Data, nil
}
