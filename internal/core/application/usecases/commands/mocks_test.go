package commands_test

import (
	"context"

	"depot/internal/core/application/usecases/commands"
	"depot/internal/core/domain/model/depot"

	"github.com/stretchr/testify/mock"
)

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Depot() *depot.Depot {
	args := m.Called()
	return args.Get(0).(*depot.Depot)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

// expectCommit prepares a factory whose unit of work begins, serves d and commits.
func expectCommit(ctx context.Context, d *depot.Depot) (*MockUoWFactory, *MockUoW) {
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("Depot").Return(d).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()
	return factory, uow
}

// expectRollback prepares a factory whose unit of work begins, serves d and is rolled back.
func expectRollback(ctx context.Context, d *depot.Depot) (*MockUoWFactory, *MockUoW) {
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("Depot").Return(d).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()
	return factory, uow
}
