package commands

import (
	"context"

	"depot/internal/core/domain/model/driver"
)

// PerformDeliveriesCommandHandler runs a driver's queue and returns the report.
//
// Example:
//
//	report, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(report)
type PerformDeliveriesCommandHandler struct {
	uowFactory UoWFactory
}

// NewPerformDeliveriesCommandHandler creates a handler for delivery runs.
func NewPerformDeliveriesCommandHandler(uowFactory UoWFactory) PerformDeliveriesCommandHandler {
	return PerformDeliveriesCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle runs the deliveries. A driver without vehicle or orders yields a
// descriptive report and no error.
func (h PerformDeliveriesCommandHandler) Handle(
	ctx context.Context,
	cmd PerformDeliveriesCommand,
) (driver.Report, error) {
	if err := cmd.Validate(); err != nil {
		return driver.Report{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return driver.Report{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	report, err := uow.Depot().PerformDeliveries(cmd.DriverID())
	if err != nil {
		return driver.Report{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return driver.Report{}, err
	}

	return report, nil
}
