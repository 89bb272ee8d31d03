// Package jobs provides the scheduled background tasks of the order
// lifecycle engine, built on github.com/robfig/cron/v3.
package jobs

import (
	"fmt"
	"log/slog"

	"eats/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	reannounceJob *CookedOrderReannounceJob
}

// NewJobManager creates a job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	reannounceHandler commands.ReannounceCookedOrdersCommandHandler,
	reannounceSchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		reannounceJob: NewCookedOrderReannounceJob(reannounceHandler, reannounceSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.reannounceJob.Start(); err != nil {
		return fmt.Errorf("failed to start cooked order re-announcement job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.reannounceJob.Stop()
}
