package jobs

import (
	"fmt"
	"log/slog"

	"returns/internal/core/application/usecases/queries"
	"returns/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	pendingDigestJob *PendingDigestJob
}

// NewJobManager creates a job manager with all required jobs.
func NewJobManager(
	reviewListingHandler queries.GetRequestsForReviewQueryHandler,
	notifier ports.Notifier,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		pendingDigestJob: NewPendingDigestJob(reviewListingHandler, notifier, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.pendingDigestJob.Start(); err != nil {
		return fmt.Errorf("failed to start pending digest job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.pendingDigestJob.Stop()
}
