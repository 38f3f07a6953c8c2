// Package jobs provides scheduled background tasks for the ordering system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic maintenance work.
//
// # Available Jobs
//
// 1. TokenCleanupJob - Runs hourly to purge expired and revoked refresh tokens
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(purgeTokensHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Cleanup failures are logged and retried on the next tick; a failed run
// never interrupts request handling.
package jobs
