// Package ports defines the contracts between the application core and the
// adapters that store the depot and publish its events.
package ports

import (
	"context"

	"depot/internal/core/domain/model/depot"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is the transaction boundary around the depot aggregate.
// Client code must explicitly manage the lifecycle:
//
//	if err := uow.Begin(ctx); err != nil { ... }
//	defer uow.Rollback(ctx)
//	... uow.Depot() ...
//	return uow.Commit(ctx)
type UnitOfWork interface {
	// Begin acquires exclusive access to the depot.
	Begin(ctx context.Context) error

	// Commit keeps the changes, releases the depot and publishes the buffered events.
	// Returns error if no unit of work is active.
	Commit(ctx context.Context) error

	// Rollback discards the changes and releases the depot.
	// It is a no-op after Commit, so it can always be deferred.
	Rollback(ctx context.Context) error

	// Depot returns the aggregate bound to the active unit of work, nil before Begin.
	Depot() *depot.Depot
}
