package commands

import "context"

// AddVehicleCommandHandler puts new vehicles in the available pool.
type AddVehicleCommandHandler struct {
	uowFactory UoWFactory
}

// NewAddVehicleCommandHandler creates a handler for vehicle registration.
func NewAddVehicleCommandHandler(uowFactory UoWFactory) AddVehicleCommandHandler {
	return AddVehicleCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle builds the vehicle and adds it to the depot.
// Invalid attributes are reported before the depot is touched.
func (h AddVehicleCommandHandler) Handle(ctx context.Context, cmd AddVehicleCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	v, err := cmd.Build()
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.Depot().AddVehicle(v); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
