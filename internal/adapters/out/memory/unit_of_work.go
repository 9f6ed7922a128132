package memory

import (
	"context"
	"errors"
	"log/slog"

	"depot/internal/core/domain/model/depot"
	"depot/internal/core/ports"
)

var (
	// ErrUnitOfWorkIsActive is returned by Begin on a unit of work that already began.
	ErrUnitOfWorkIsActive = errors.New("unit of work is already active")
	// ErrNoActiveUnitOfWork is returned by Commit without a preceding Begin.
	ErrNoActiveUnitOfWork = errors.New("no active unit of work")
)

// UnitOfWorkFactory creates unit of work instances bound to one store.
type UnitOfWorkFactory struct {
	store     *Store
	publisher ports.EventPublisher
	logger    *slog.Logger
}

// NewUnitOfWorkFactory creates a factory. publisher receives the events of every
// committed unit of work; publication errors are logged and never fail the commit.
func NewUnitOfWorkFactory(store *Store, publisher ports.EventPublisher, logger *slog.Logger) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{
		store:     store,
		publisher: publisher,
		logger:    logger.With("component", "memory-uow"),
	}
}

// Create produces a new, inactive UnitOfWork.
func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{
		store:     f.store,
		publisher: f.publisher,
		logger:    f.logger,
	}
}

// UnitOfWork gives one command exclusive access to a snapshot of the depot.
// A UnitOfWork must not be shared between goroutines.
type UnitOfWork struct {
	store     *Store
	publisher ports.EventPublisher
	logger    *slog.Logger

	working *depot.Depot
}

// Begin takes the write lock and snapshots the depot.
func (uow *UnitOfWork) Begin(ctx context.Context) error {
	if uow.working != nil {
		return ErrUnitOfWorkIsActive
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	uow.store.mu.Lock()
	uow.working = uow.store.depot.Clone()
	return nil
}

// Depot returns the snapshot, nil when the unit of work is not active.
func (uow *UnitOfWork) Depot() *depot.Depot {
	return uow.working
}

// Commit stores the snapshot, releases the lock, then publishes the events it raised.
// Readers are not blocked by publication; the next commit waits for it.
func (uow *UnitOfWork) Commit(ctx context.Context) error {
	if uow.working == nil {
		return ErrNoActiveUnitOfWork
	}

	events := uow.working.PullEvents()
	uow.store.depot = uow.working
	uow.working = nil
	uow.store.publishMu.Lock()
	uow.store.mu.Unlock()

	defer uow.store.publishMu.Unlock()
	uow.publish(ctx, events)
	return nil
}

// Rollback drops the snapshot and releases the lock. It does nothing when the
// unit of work is not active.
func (uow *UnitOfWork) Rollback(_ context.Context) error {
	if uow.working == nil {
		return nil
	}

	uow.working = nil
	uow.store.mu.Unlock()
	return nil
}

func (uow *UnitOfWork) publish(ctx context.Context, events []depot.Event) {
	if len(events) == 0 || uow.publisher == nil {
		return
	}

	if err := uow.publisher.Publish(ctx, events...); err != nil {
		uow.logger.Error("failed to publish depot events", "count", len(events), "error", err)
		return
	}
	uow.logger.Debug("depot events published", "count", len(events))
}
