package commands

import "context"

// AssignVehicleCommandHandler hands vehicles to drivers.
//
// Example:
//
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, depot.ErrDriverNotRegistered):
//	    log.Println("Unknown driver")
//	case errors.Is(err, depot.ErrVehicleNotAvailable):
//	    log.Println("Vehicle already taken")
//	case errors.Is(err, driver.ErrVehicleAlreadyAssigned):
//	    log.Println("Driver already has a vehicle")
//	}
type AssignVehicleCommandHandler struct {
	uowFactory UoWFactory
}

// NewAssignVehicleCommandHandler creates a handler for vehicle assignment.
func NewAssignVehicleCommandHandler(uowFactory UoWFactory) AssignVehicleCommandHandler {
	return AssignVehicleCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle performs the assignment. Nothing is committed on error.
func (h AssignVehicleCommandHandler) Handle(ctx context.Context, cmd AssignVehicleCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.Depot().AssignVehicle(cmd.DriverID(), cmd.VehicleID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
