package commands_test

import (
	"testing"

	"depot/internal/core/application/usecases/commands"
	"depot/internal/core/domain/model/depot"
	"depot/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAssignOrderCommand_InvalidInput(t *testing.T) {
	_, err := commands.NewAssignOrderCommand(kernel.UUID{}, "")
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	require.ErrorIs(t, err, commands.ErrOrderIDIsRequired)
}

func TestAssignOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	d := depot.NewDepot()
	moto := addMotorcycle(t, d)
	bob := addDriver(t, d, "Bob")
	o := addOrder(t, d, "CMD-1", 10)
	require.NoError(t, d.AssignVehicle(bob.ID(), moto.ID()))
	cmd, _ := commands.NewAssignOrderCommand(bob.ID(), "CMD-1")
	factory, uow := expectCommit(ctx, d)

	h := commands.NewAssignOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, o, bob.PendingOrders()[0])
	assert.Empty(t, d.PendingOrders())
	uow.AssertExpectations(t)
}

func TestAssignOrderCommandHandler_Handle_DriverWithoutVehicle(t *testing.T) {
	ctx := t.Context()
	d := depot.NewDepot()
	bob := addDriver(t, d, "Bob")
	addOrder(t, d, "CMD-1", 10)
	cmd, _ := commands.NewAssignOrderCommand(bob.ID(), "CMD-1")
	factory, uow := expectRollback(ctx, d)

	h := commands.NewAssignOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, depot.ErrDriverHasNoVehicle)
	assert.Len(t, d.PendingOrders(), 1)
	uow.AssertExpectations(t)
}
