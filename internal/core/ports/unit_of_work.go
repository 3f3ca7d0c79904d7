package ports

import (
	"context"
)

// UnitOfWorkFactory hands out one UnitOfWork per command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is the transaction around one workflow operation. Repositories
// obtained from it share the transaction opened by Begin, so an audit entry
// is stored if and only if the change it describes is stored.
type UnitOfWork interface {
	Begin(ctx context.Context) error

	// Commit fails when Begin was not called.
	Commit(ctx context.Context) error

	// Rollback is safe to defer: after Commit it changes nothing and the
	// error it returns can be ignored.
	Rollback(ctx context.Context) error

	UserRepository() UserRepository
	ProductRfidRepository() ProductRfidRepository
	BoxRepository() BoxRepository
	ShipmentRepository() ShipmentRepository
	SystemLogRepository() SystemLogRepository
}
