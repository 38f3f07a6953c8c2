package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"foodorder/internal/core/application/usecases/commands"
)

// TokenCleanupJob periodically removes refresh token records that expired
// or were revoked. Runs hourly; nothing user-facing depends on the exact
// moment a stale token row disappears.
type TokenCleanupJob struct {
	handler commands.PurgeExpiredTokensCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewTokenCleanupJob creates the scheduled refresh token cleanup job.
func NewTokenCleanupJob(handler commands.PurgeExpiredTokensCommandHandler, logger *slog.Logger) *TokenCleanupJob {
	return &TokenCleanupJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "token_cleanup_job"),
	}
}

// Start begins the cleanup job, running at the top of every hour.
func (j *TokenCleanupJob) Start() error {
	_, err := j.cron.AddFunc("0 0 * * * *", func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewPurgeExpiredTokensCommand(time.Now())
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Token cleanup command construction failed", "error", cmdErr)
			return
		}

		deleted, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Token cleanup job failed", "error", handleErr)
			return
		}

		if deleted > 0 {
			j.logger.InfoContext(ctx, "Purged stale refresh tokens", "deleted", deleted)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Token cleanup job started (running hourly)")
	return nil
}

// Stop stops the cleanup job.
func (j *TokenCleanupJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Token cleanup job stopped")
}
