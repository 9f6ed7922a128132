package commands

import (
	"errors"

	"depot/internal/pkg/guard"
)

// RunDeliveryRoundCommand runs the queue of every driver that has work to do.
type RunDeliveryRoundCommand struct {
	guard guard.ConstructorGuard
}

var (
	ErrRunDeliveryRoundCommandIsNotConstructed = errors.New(
		"RunDeliveryRoundCommand must be created via NewRunDeliveryRoundCommand constructor",
	)
)

// NewRunDeliveryRoundCommand creates the parameterless command.
func NewRunDeliveryRoundCommand() RunDeliveryRoundCommand {
	return RunDeliveryRoundCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c *RunDeliveryRoundCommand) Validate() error {
	return c.guard.Validate(ErrRunDeliveryRoundCommandIsNotConstructed)
}
