package jobs

import (
	"fmt"
	"log/slog"

	"depot/internal/core/application/usecases/commands"
)

// job is a scheduled task the manager starts and stops.
type job interface {
	Start() error
	Stop()
}

// Schedules holds the cron expression of each job. An empty expression disables the job.
type Schedules struct {
	Dispatch      string
	DeliveryRound string
}

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	jobs    []namedJob
	started []namedJob
	logger  *slog.Logger
}

type namedJob struct {
	name string
	job  job
}

// NewJobManager creates a job manager holding the jobs enabled in schedules.
func NewJobManager(
	dispatchHandler commands.DispatchPendingOrdersCommandHandler,
	deliveryRoundHandler commands.RunDeliveryRoundCommandHandler,
	schedules Schedules,
	logger *slog.Logger,
) *JobManager {
	jm := &JobManager{logger: logger.With("component", "job_manager")}

	if schedules.Dispatch != "" {
		jm.jobs = append(jm.jobs, namedJob{
			name: "dispatch",
			job:  NewDispatchJob(dispatchHandler, schedules.Dispatch, logger),
		})
	}
	if schedules.DeliveryRound != "" {
		jm.jobs = append(jm.jobs, namedJob{
			name: "delivery round",
			job:  NewDeliveryRoundJob(deliveryRoundHandler, schedules.DeliveryRound, logger),
		})
	}

	return jm
}

// Len returns the number of enabled jobs.
func (jm *JobManager) Len() int {
	return len(jm.jobs)
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	for _, nj := range jm.jobs {
		if err := nj.job.Start(); err != nil {
			// Stop already started jobs if this one fails
			jm.StopAll()
			return fmt.Errorf("failed to start %s job: %w", nj.name, err)
		}
		jm.started = append(jm.started, nj)
	}
	return nil
}

// StopAll stops started jobs in reverse order.
func (jm *JobManager) StopAll() {
	for i := len(jm.started) - 1; i >= 0; i-- {
		jm.started[i].job.Stop()
	}
	jm.started = nil
}
