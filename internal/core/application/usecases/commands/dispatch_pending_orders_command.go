package commands

import (
	"errors"

	"depot/internal/pkg/guard"
)

// DispatchPendingOrdersCommand triggers the automatic assignment of every pending order.
//
// Example:
//
//	cmd := NewDispatchPendingOrdersCommand()
//	handler := NewDispatchPendingOrdersCommandHandler(uowFactory)
//
//	dispatched, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, ErrNoPendingOrders) {
//	    return nil
//	}
type DispatchPendingOrdersCommand struct {
	guard guard.ConstructorGuard
}

var (
	ErrDispatchPendingOrdersCommandIsNotConstructed = errors.New(
		"DispatchPendingOrdersCommand must be created via NewDispatchPendingOrdersCommand constructor",
	)
)

// NewDispatchPendingOrdersCommand creates the parameterless command.
func NewDispatchPendingOrdersCommand() DispatchPendingOrdersCommand {
	return DispatchPendingOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c *DispatchPendingOrdersCommand) Validate() error {
	return c.guard.Validate(ErrDispatchPendingOrdersCommandIsNotConstructed)
}
