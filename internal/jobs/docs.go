// Package jobs provides scheduled background tasks for the returns service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations around the return request lifecycle.
//
// # Available Jobs
//
// 1. PendingDigestJob - Runs daily at 08:00 to mail the admin a digest of return requests still awaiting review
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(reviewListingHandler, notifier, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - A failed digest run is logged and retried at the next scheduled time
// - Failed job starts will stop any already running jobs
package jobs
