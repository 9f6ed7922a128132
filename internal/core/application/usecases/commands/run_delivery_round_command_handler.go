package commands

import (
	"context"

	"depot/internal/core/domain/model/driver"
)

// RunDeliveryRoundCommandHandler performs deliveries for all drivers at once.
//
// Example:
//
//	// Run periodically to simulate the working day
//	ticker := time.NewTicker(time.Minute)
//	for range ticker.C {
//	    reports, err := handler.Handle(ctx, NewRunDeliveryRoundCommand())
//	    ...
//	}
type RunDeliveryRoundCommandHandler struct {
	uowFactory UoWFactory
}

// NewRunDeliveryRoundCommandHandler creates a handler for delivery rounds.
func NewRunDeliveryRoundCommandHandler(uowFactory UoWFactory) RunDeliveryRoundCommandHandler {
	return RunDeliveryRoundCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns one report per driver that held a vehicle and queued orders,
// in registration order. Idle drivers are skipped.
func (h RunDeliveryRoundCommandHandler) Handle(
	ctx context.Context,
	cmd RunDeliveryRoundCommand,
) ([]driver.Report, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	d := uow.Depot()
	var reports []driver.Report
	for _, dr := range d.Drivers() {
		if !dr.HasVehicle() || dr.PendingOrderCount() == 0 {
			continue
		}

		report, err := d.PerformDeliveries(dr.ID())
		if err != nil {
			return nil, err
		}
		reports = append(reports, report)
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	return reports, nil
}
