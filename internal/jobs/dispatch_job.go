package jobs

import (
	"context"
	"errors"
	"log/slog"

	"depot/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DispatchJob periodically hands pending orders to the best suited drivers.
type DispatchJob struct {
	handler  commands.DispatchPendingOrdersCommandHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewDispatchJob creates a job running handler on schedule, a six field cron expression.
func NewDispatchJob(
	handler commands.DispatchPendingOrdersCommandHandler,
	schedule string,
	logger *slog.Logger,
) *DispatchJob {
	return &DispatchJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "dispatch_job"),
	}
}

// Run dispatches once and returns the number of assigned orders.
func (j *DispatchJob) Run(ctx context.Context) int {
	dispatched, err := j.handler.Handle(ctx, commands.NewDispatchPendingOrdersCommand())
	if err != nil {
		// An empty pool is the normal idle state
		if !errors.Is(err, commands.ErrNoPendingOrders) {
			j.logger.ErrorContext(ctx, "Dispatch job failed", "error", err)
		}
		return 0
	}

	if dispatched > 0 {
		j.logger.InfoContext(ctx, "Pending orders dispatched", "dispatched", dispatched)
	}
	return dispatched
}

// Start schedules Run.
func (j *DispatchJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.Run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Dispatch job started", "schedule", j.schedule)
	return nil
}

// Stop stops the schedule and waits for a running dispatch to finish.
func (j *DispatchJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Dispatch job stopped")
}
