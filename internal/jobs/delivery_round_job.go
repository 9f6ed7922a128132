package jobs

import (
	"context"
	"log/slog"

	"depot/internal/core/application/usecases/commands"
	"depot/internal/core/domain/model/driver"

	"github.com/robfig/cron/v3"
)

// DeliveryRoundJob periodically sends every loaded driver on delivery.
type DeliveryRoundJob struct {
	handler  commands.RunDeliveryRoundCommandHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewDeliveryRoundJob creates a job running handler on schedule, a six field cron expression.
func NewDeliveryRoundJob(
	handler commands.RunDeliveryRoundCommandHandler,
	schedule string,
	logger *slog.Logger,
) *DeliveryRoundJob {
	return &DeliveryRoundJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "delivery_round_job"),
	}
}

// Run performs one round and logs each report.
func (j *DeliveryRoundJob) Run(ctx context.Context) []driver.Report {
	reports, err := j.handler.Handle(ctx, commands.NewRunDeliveryRoundCommand())
	if err != nil {
		j.logger.ErrorContext(ctx, "Delivery round failed", "error", err)
		return nil
	}

	for _, r := range reports {
		j.logger.InfoContext(ctx, "Deliveries performed",
			"driver_id", r.DriverID.String(),
			"driver", r.DriverName,
			"delivered", r.Delivered(),
			"failed", r.Failed(),
		)
	}
	return reports
}

// Start schedules Run.
func (j *DeliveryRoundJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.Run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Delivery round job started", "schedule", j.schedule)
	return nil
}

// Stop stops the schedule and waits for a running round to finish.
func (j *DeliveryRoundJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Delivery round job stopped")
}
