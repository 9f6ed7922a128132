package commands

import (
	"errors"
	"strings"

	"depot/internal/core/domain/model/kernel"
	"depot/internal/pkg/guard"
)

var ErrAssignOrderCommandIsNotConstructed = errors.New(
	"AssignOrderCommand must be created via NewAssignOrderCommand constructor",
)

// AssignOrderCommand asks the depot to queue a pending order on a driver.
type AssignOrderCommand struct { //nolint:recvcheck //using for validation
	driverID kernel.UUID
	orderID  string

	guard guard.ConstructorGuard
}

// NewAssignOrderCommand creates the command.
func NewAssignOrderCommand(driverID kernel.UUID, orderID string) (AssignOrderCommand, error) {
	var errOrderID error
	if strings.TrimSpace(orderID) == "" {
		errOrderID = ErrOrderIDIsRequired
	}
	if err := errors.Join(driverID.Validate(), errOrderID); err != nil {
		return AssignOrderCommand{}, err
	}

	return AssignOrderCommand{
		driverID: driverID,
		orderID:  orderID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignOrderCommand) Validate() error {
	return c.guard.Validate(ErrAssignOrderCommandIsNotConstructed)
}

// DriverID returns the driver that receives the order.
func (c AssignOrderCommand) DriverID() kernel.UUID {
	return c.driverID
}

// OrderID returns the pending order reference.
func (c AssignOrderCommand) OrderID() string {
	return c.orderID
}
