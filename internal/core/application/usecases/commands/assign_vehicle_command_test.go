package commands_test

import (
	"testing"

	"depot/internal/core/application/usecases/commands"
	"depot/internal/core/domain/model/depot"
	"depot/internal/core/domain/model/driver"
	"depot/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAssignVehicleCommand_InvalidIDs(t *testing.T) {
	_, err := commands.NewAssignVehicleCommand(kernel.UUID{}, kernel.NewUUID())
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestAssignVehicleCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	d := depot.NewDepot()
	truck := addTruck(t, d, 1)
	bob := addDriver(t, d, "Bob")
	cmd, err := commands.NewAssignVehicleCommand(bob.ID(), truck.ID())
	require.NoError(t, err)
	factory, uow := expectCommit(ctx, d)

	h := commands.NewAssignVehicleCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, truck, bob.Vehicle())
	assert.Empty(t, d.AvailableVehicles())
	uow.AssertExpectations(t)
}

func TestAssignVehicleCommandHandler_Handle_AlreadyAssigned(t *testing.T) {
	ctx := t.Context()
	d := depot.NewDepot()
	truck := addTruck(t, d, 1)
	moto := addMotorcycle(t, d)
	bob := addDriver(t, d, "Bob")
	require.NoError(t, d.AssignVehicle(bob.ID(), truck.ID()))
	cmd, _ := commands.NewAssignVehicleCommand(bob.ID(), moto.ID())
	factory, uow := expectRollback(ctx, d)

	h := commands.NewAssignVehicleCommandHandler(factory)
	err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, driver.ErrVehicleAlreadyAssigned)
	assert.Len(t, d.AvailableVehicles(), 1)
	uow.AssertExpectations(t)
}

func TestAssignVehicleCommandHandler_Handle_UnknownDriver(t *testing.T) {
	ctx := t.Context()
	d := depot.NewDepot()
	truck := addTruck(t, d, 1)
	cmd, _ := commands.NewAssignVehicleCommand(kernel.NewUUID(), truck.ID())
	factory, _ := expectRollback(ctx, d)

	h := commands.NewAssignVehicleCommandHandler(factory)
	err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, depot.ErrDriverNotRegistered)
}
