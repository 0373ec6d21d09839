package app

import (
	"context"

	"github.com/agileboot/agileboot-cli/internal/client/agileboot"
	"github.com/agileboot/agileboot-cli/internal/config"
	"github.com/agileboot/agileboot-cli/internal/logger"
	"github.com/agileboot/agileboot-cli/internal/service/session"
)

// newSessionService wires the backend client into the session service or terminates the process.
func newSessionService(ctx context.Context, cfg *config.Config) session.Service {
	client, err := agileboot.NewClient(cfg)
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize backend client: %v", err)
	}

	logger.Debugf(ctx, "Using backend at %s", client.GetBaseURL())

	return session.NewService(cfg, client, session.NewSurveyPrompter())
}

// mustHaveAuthToken terminates the process when no token is configured.
func mustHaveAuthToken(ctx context.Context, cfg *config.Config) {
	if err := config.RequireAuthToken(cfg); err != nil {
		logger.Fatalf(ctx, "%v", err)
	}
}
