package commands

import (
	"context"

	"depot/internal/core/domain/model/driver"
)

// AddDriverCommandHandler registers drivers in the depot.
type AddDriverCommandHandler struct {
	uowFactory UoWFactory
}

// NewAddDriverCommandHandler creates a handler for driver registration.
func NewAddDriverCommandHandler(uowFactory UoWFactory) AddDriverCommandHandler {
	return AddDriverCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle creates the driver and registers it.
func (h AddDriverCommandHandler) Handle(ctx context.Context, cmd AddDriverCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	dr, err := driver.NewDriver(cmd.DriverID(), cmd.Name())
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

	if err = uow.Depot().AddDriver(dr); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
