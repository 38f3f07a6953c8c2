package jobs

import (
	"fmt"
	"log/slog"

	"foodorder/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	tokenCleanupJob *TokenCleanupJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	purgeTokensHandler commands.PurgeExpiredTokensCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		tokenCleanupJob: NewTokenCleanupJob(purgeTokensHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.tokenCleanupJob.Start(); err != nil {
		return fmt.Errorf("failed to start token cleanup job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.tokenCleanupJob.Stop()
}
