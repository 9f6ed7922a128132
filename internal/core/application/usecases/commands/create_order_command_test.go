package commands_test

import (
	"testing"

	"depot/internal/core/application/usecases/commands"
	"depot/internal/core/domain/model/depot"
	"depot/internal/core/domain/model/order"
	"depot/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand_ValidInput(t *testing.T) {
	cmd, err := commands.NewCreateOrderCommand("CMD-1", "Main St", 100)
	require.NoError(t, err)
	assert.Equal(t, "CMD-1", cmd.OrderID())
	assert.Equal(t, "Main St", cmd.Destination())
	assert.InDelta(t, 100, cmd.WeightKg(), 0)
}

func TestNewCreateOrderCommand_InvalidInput(t *testing.T) {
	_, err := commands.NewCreateOrderCommand("", " ", 0)
	require.ErrorIs(t, err, commands.ErrOrderIDIsRequired)
	require.ErrorIs(t, err, commands.ErrDestinationIsRequired)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

func TestNewCreateOrderCommand_WeightBoundaries(t *testing.T) {
	for _, w := range []float64{0, -3, 100.0001} {
		_, err := commands.NewCreateOrderCommand("CMD-1", "Main St", w)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange, "weight %v", w)
	}
}

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	d := depot.NewDepot()
	cmd, _ := commands.NewCreateOrderCommand("CMD-1", "Main St", 10)
	factory, uow := expectCommit(ctx, d)

	h := commands.NewCreateOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	o, err := d.PendingOrder("CMD-1")
	require.NoError(t, err)
	assert.Equal(t, order.Pending, o.Status())
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_Duplicate(t *testing.T) {
	ctx := t.Context()
	d := depot.NewDepot()
	addOrder(t, d, "CMD-1", 5)
	cmd, _ := commands.NewCreateOrderCommand("CMD-1", "Main St", 10)
	factory, uow := expectRollback(ctx, d)

	h := commands.NewCreateOrderCommandHandler(factory)
	err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, depot.ErrOrderAlreadyTracked)
	uow.AssertExpectations(t)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	factory := new(MockUoWFactory)
	h := commands.NewCreateOrderCommandHandler(factory)

	err := h.Handle(t.Context(), commands.CreateOrderCommand{})

	require.Error(t, err)
	factory.AssertNotCalled(t, "Create")
}
