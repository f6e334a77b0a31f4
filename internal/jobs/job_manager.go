package jobs

import (
	"fmt"
	"log/slog"

	"ordering/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	analyticsSnapshotJob *AnalyticsSnapshotJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes query handlers as dependencies to wire up the job execution.
func NewJobManager(
	analyticsHandler queries.GetOrderAnalyticsQueryHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		analyticsSnapshotJob: NewAnalyticsSnapshotJob(analyticsHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.analyticsSnapshotJob.Start(); err != nil {
		return fmt.Errorf("failed to start analytics snapshot job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.analyticsSnapshotJob.Stop()
}
