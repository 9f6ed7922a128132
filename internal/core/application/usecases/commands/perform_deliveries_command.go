package commands

import (
	"errors"

	"depot/internal/core/domain/model/kernel"
	"depot/internal/pkg/guard"
)

var ErrPerformDeliveriesCommandIsNotConstructed = errors.New(
	"PerformDeliveriesCommand must be created via NewPerformDeliveriesCommand constructor",
)

// PerformDeliveriesCommand runs the delivery queue of one driver.
type PerformDeliveriesCommand struct { //nolint:recvcheck //using for validation
	driverID kernel.UUID

	guard guard.ConstructorGuard
}

// NewPerformDeliveriesCommand creates the command.
func NewPerformDeliveriesCommand(driverID kernel.UUID) (PerformDeliveriesCommand, error) {
	if err := driverID.Validate(); err != nil {
		return PerformDeliveriesCommand{}, err
	}

	return PerformDeliveriesCommand{
		driverID: driverID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c PerformDeliveriesCommand) Validate() error {
	return c.guard.Validate(ErrPerformDeliveriesCommandIsNotConstructed)
}

// DriverID returns the driver whose queue is run.
func (c PerformDeliveriesCommand) DriverID() kernel.UUID {
	return c.driverID
}
