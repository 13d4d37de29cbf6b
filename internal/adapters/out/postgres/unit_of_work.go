// Package postgres provides the GORM-based Unit of Work, schema migration, and
// database bootstrap of the seller service.
//
// A unit of work wraps one database transaction. Repositories obtained from it
// share that transaction and report every order they add or update back to the
// unit of work; once the transaction commits, the domain events of those orders
// are handed to the configured ports.EventPublisher.
//
// Usage:
//
//	factory := NewGormUnitOfWorkFactory(db, publisher, logger)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer uow.Rollback(ctx)
//
//	if err := uow.OrderRepository().Add(ctx, o); err != nil {
//	    return err
//	}
//	if err := uow.ProductCatalog().AdjustStock(ctx, adjustments); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Each UnitOfWork instance belongs to one goroutine; concurrent operations
// create their own.
package postgres

import (
	"context"

	"seller/internal/adapters/out/postgres/orderrepo"
	"seller/internal/adapters/out/postgres/productrepo"
	"seller/internal/core/domain/model/kernel"
	"seller/internal/core/domain/model/order"
	"seller/internal/core/ports"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// trackedAggregate is an aggregate added or updated during the unit of work.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

// eventSource is implemented by aggregates that record domain events.
type eventSource interface {
	DomainEvents() []order.Event
	ClearDomainEvents()
}

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one connection
// pool and one event publisher.
type GormUnitOfWorkFactory struct {
	db        *gorm.DB
	publisher ports.EventPublisher
	logger    *log.Entry
}

func NewGormUnitOfWorkFactory(db *gorm.DB, publisher ports.EventPublisher, logger *log.Entry) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{
		db:        db,
		publisher: publisher,
		logger:    logger.WithField("component", "unit_of_work"),
	}
}

// Create produces a fresh unit of work with no transaction and nothing tracked.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		publisher:         f.publisher,
		logger:            f.logger,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates a database transaction and tracks the aggregates
// changed inside it.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	publisher         ports.EventPublisher
	logger            *log.Entry
	trackedAggregates []trackedAggregate
}

// Begin starts a transaction. Calling it again while one is open is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

// Commit finalizes the transaction and then publishes the events of every
// tracked aggregate. Publication failures are logged; the commit stands.
//
// Returns gorm.ErrInvalidTransaction if no transaction is open.
func (uow *GormUnitOfWork) Commit(ctx context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	if err != nil {
		uow.trackedAggregates = uow.trackedAggregates[:0]
		return err
	}

	uow.publishTrackedEvents(ctx)
	return nil
}

// Rollback discards the transaction and everything tracked in it.
//
// Returns gorm.ErrInvalidTransaction if no transaction is open, which is the
// normal outcome of a deferred Rollback after Commit.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return err
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

// OrderRepository returns a repository bound to the open transaction, or to
// the pool when none is open.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

// ProductCatalog returns a catalog bound to the open transaction, or to the
// pool when none is open.
func (uow *GormUnitOfWork) ProductCatalog() ports.ProductCatalog {
	return productrepo.NewGormProductCatalog(uow.conn())
}

// TrackAggregate registers an aggregate changed within this unit of work.
// Repositories call it after every successful write.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

func (uow *GormUnitOfWork) publishTrackedEvents(ctx context.Context) {
	tracked := uow.trackedAggregates
	uow.trackedAggregates = make([]trackedAggregate, 0)

	seen := make(map[any]struct{}, len(tracked))
	var events []order.Event
	var sources []eventSource
	for _, t := range tracked {
		if _, ok := seen[t.Aggregate]; ok {
			continue
		}
		seen[t.Aggregate] = struct{}{}

		source, ok := t.Aggregate.(eventSource)
		if !ok {
			continue
		}
		events = append(events, source.DomainEvents()...)
		sources = append(sources, source)
	}

	for _, s := range sources {
		s.ClearDomainEvents()
	}

	if len(events) == 0 || uow.publisher == nil {
		return
	}

	if err := uow.publisher.Publish(ctx, events...); err != nil {
		uow.logger.WithError(err).WithField("events", len(events)).Error("failed to publish order events")
	}
}
