// Package memory keeps the depot aggregate in process memory and implements
// the Unit of Work pattern on top of it.
//
// The store holds one lock per depot:
//   - a unit of work takes the write lock in Begin and releases it in Commit or Rollback
//   - readers share the read lock through View
//
// A unit of work mutates a snapshot of the depot. Commit swaps the snapshot in,
// Rollback drops it, so a failed command never leaves partial changes behind.
// Domain events collected by the snapshot are published after the lock is released,
// one commit at a time and in commit order.
//
// Usage:
//
//	store := memory.NewStore()
//	factory := memory.NewUnitOfWorkFactory(store, publisher, logger)
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer uow.Rollback(ctx)
//
//	if err := uow.Depot().AddVehicle(truck); err != nil {
//	    return err
//	}
//	return uow.Commit(ctx)
package memory

import (
	"context"
	"sync"

	"depot/internal/core/domain/model/depot"
)

// Store owns the single depot of the process.
type Store struct {
	mu    sync.RWMutex
	depot *depot.Depot

	// publishMu is taken before mu is released on commit, so events leave in commit order.
	publishMu sync.Mutex
}

// NewStore creates a store with an empty depot.
func NewStore() *Store {
	return &Store{depot: depot.NewDepot()}
}

// View runs fn under the read lock. fn must not mutate the depot.
func (s *Store) View(ctx context.Context, fn func(d *depot.Depot) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return fn(s.depot)
}
