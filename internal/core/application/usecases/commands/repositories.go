// Package commands contains business operations that modify the depot.
// All commands follow a consistent pattern: validation, unit of work, aggregate call, commit.
package commands

import (
	"context"

	"depot/internal/core/domain/model/depot"
)

// Unit of Work interfaces give command handlers exclusive access to the depot.
type (
	// TxManager handles the unit of work lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// DepotFactory provides the depot bound to the active unit of work.
	DepotFactory interface {
		Depot() *depot.Depot
	}

	// UoW manages one change of the depot aggregate.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   d := uow.Depot()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		DepotFactory
	}

	// UoWFactory creates new unit of work instances.
	UoWFactory interface {
		Create() UoW
	}
)
