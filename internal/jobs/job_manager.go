package jobs

import (
	"fmt"
	"log/slog"

	"salesorders/internal/core/application/usecases/commands"
	"salesorders/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	recurrenceRestartJob *RecurrenceRestartJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes query and command handlers as dependencies to wire up job execution.
func NewJobManager(
	waitingRecurrentOrdersHandler queries.GetWaitingRecurrentOrdersQueryHandler,
	restartOrderHandler commands.RestartOrderCommandHandler,
	recurrenceSchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		recurrenceRestartJob: NewRecurrenceRestartJob(
			waitingRecurrentOrdersHandler, restartOrderHandler, recurrenceSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.recurrenceRestartJob.Start(); err != nil {
		return fmt.Errorf("failed to start recurrence restart job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.recurrenceRestartJob.Stop()
}
