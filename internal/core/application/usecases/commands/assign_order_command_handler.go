package commands

import "context"

// AssignOrderCommandHandler queues pending orders on drivers.
// The depot refuses drivers without vehicle with depot.ErrDriverHasNoVehicle.
type AssignOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewAssignOrderCommandHandler creates a handler for order assignment.
func NewAssignOrderCommandHandler(uowFactory UoWFactory) AssignOrderCommandHandler {
	return AssignOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle moves the order from the pending pool to the driver queue.
func (h AssignOrderCommandHandler) Handle(ctx context.Context, cmd AssignOrderCommand) error {
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

	if err := uow.Depot().AssignOrder(cmd.DriverID(), cmd.OrderID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
