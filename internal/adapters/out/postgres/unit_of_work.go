// Package postgres provides the GORM-based Unit of Work and the schema
// migrations of the service.
//
// Every repository handed out by a GormUnitOfWork runs on the transaction
// opened by Begin, so a business change and its audit entry commit or roll
// back together:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	if err := uow.BoxRepository().Update(ctx, b); err != nil {
//	    return err
//	}
//	if err := uow.SystemLogRepository().Add(ctx, entry); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Rollback after a successful Commit returns gorm.ErrInvalidTransaction and
// changes nothing, which makes the deferred rollback safe.
//
// Each UnitOfWork instance owns one transaction and must not be shared
// between goroutines.
package postgres

import (
	"context"

	"rfidship/internal/adapters/out/postgres/boxrepo"
	"rfidship/internal/adapters/out/postgres/productrfidrepo"
	"rfidship/internal/adapters/out/postgres/shipmentrepo"
	"rfidship/internal/adapters/out/postgres/systemlogrepo"
	"rfidship/internal/adapters/out/postgres/userrepo"
	"rfidship/internal/core/domain/model/box"
	"rfidship/internal/core/domain/model/kernel"
	"rfidship/internal/core/domain/model/shipment"
	"rfidship/internal/core/domain/model/user"
	"rfidship/internal/core/ports"

	"gorm.io/gorm"
)

// FactoryOption configures a GormUnitOfWorkFactory.
type FactoryOption func(*GormUnitOfWorkFactory)

// WithClock sets the clock of every entity loaded through the created
// units of work.
func WithClock(clock kernel.Clock) FactoryOption {
	return func(f *GormUnitOfWorkFactory) {
		if clock != nil {
			f.clock = clock
		}
	}
}

// GormUnitOfWorkFactory creates UnitOfWork instances over one GORM
// connection pool. Every call to Create returns an independent instance.
//
// Example:
//
//	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
//	if err != nil {
//	    log.Fatal("failed to connect database")
//	}
//	factory := NewGormUnitOfWorkFactory(db)
type GormUnitOfWorkFactory struct {
	db    *gorm.DB
	clock kernel.Clock
}

func NewGormUnitOfWorkFactory(db *gorm.DB, opts ...FactoryOption) *GormUnitOfWorkFactory {
	f := &GormUnitOfWorkFactory{db: db, clock: kernel.SystemClock}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return f.CreateGorm()
}

// CreateGorm returns the concrete unit of work. It satisfies every narrow
// unit of work interface the command handlers declare.
func (f *GormUnitOfWorkFactory) CreateGorm() *GormUnitOfWork {
	return &GormUnitOfWork{db: f.db, clock: f.clock}
}

// GormUnitOfWork coordinates one database transaction for one business
// operation.
type GormUnitOfWork struct {
	db    *gorm.DB
	tx    *gorm.DB
	clock kernel.Clock
}

// Begin opens the transaction. Calling Begin again while a transaction is
// open is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	tx := uow.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}
	uow.tx = tx
	return nil
}

// Commit makes the changes permanent and closes the transaction.
// Returns gorm.ErrInvalidTransaction when no transaction is open.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards the changes and closes the transaction.
// Returns gorm.ErrInvalidTransaction when no transaction is open.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// conn returns the open transaction, or the pool outside of one.
func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

func (uow *GormUnitOfWork) UserRepository() ports.UserRepository {
	return userrepo.NewGormUserRepository(uow.conn(), user.WithClock(uow.clock))
}

func (uow *GormUnitOfWork) ProductRfidRepository() ports.ProductRfidRepository {
	return productrfidrepo.NewGormProductRfidRepository(uow.conn(), uow.clock)
}

func (uow *GormUnitOfWork) BoxRepository() ports.BoxRepository {
	return boxrepo.NewGormBoxRepository(uow.conn(), box.WithClock(uow.clock))
}

func (uow *GormUnitOfWork) ShipmentRepository() ports.ShipmentRepository {
	return shipmentrepo.NewGormShipmentRepository(
		uow.conn(),
		[]shipment.Option{shipment.WithClock(uow.clock)},
		[]box.Option{box.WithClock(uow.clock)},
	)
}

func (uow *GormUnitOfWork) SystemLogRepository() ports.SystemLogRepository {
	return systemlogrepo.NewGormSystemLogRepository(uow.conn())
}
