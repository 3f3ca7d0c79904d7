// Package commands contains the workflow operations that modify system state.
// Every command follows the same shape: validated construction, one unit of
// work per call, actor check, entity mutation, persistence, one audit entry
// per logical action and a result projection.
package commands

import (
	"context"

	"rfidship/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler asks only for the repositories it touches.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	ProductRfidRepoFactory interface {
		ProductRfidRepository() ports.ProductRfidRepository
	}

	BoxRepoFactory interface {
		BoxRepository() ports.BoxRepository
	}

	ShipmentRepoFactory interface {
		ShipmentRepository() ports.ShipmentRepository
	}

	SystemLogRepoFactory interface {
		SystemLogRepository() ports.SystemLogRepository
	}

	// RfidUoW serves the RFID creation commands.
	RfidUoW interface {
		TxManager
		UserRepoFactory
		ProductRfidRepoFactory
		SystemLogRepoFactory
	}

	RfidUoWFactory interface {
		Create() RfidUoW
	}

	// BoxUoW serves box creation and packing.
	BoxUoW interface {
		TxManager
		UserRepoFactory
		ProductRfidRepoFactory
		BoxRepoFactory
		SystemLogRepoFactory
	}

	BoxUoWFactory interface {
		Create() BoxUoW
	}

	// ShipmentUoW serves the shipment workflow. Boxes are updated together
	// with the shipment they join or leave.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   s, _ := uow.ShipmentRepository().Get(ctx, shipmentNo)
	//   b, _ := uow.BoxRepository().Get(ctx, boxNo)
	//   // ... mutate, update both
	//
	//   err = uow.Commit(ctx)
	ShipmentUoW interface {
		TxManager
		UserRepoFactory
		BoxRepoFactory
		ShipmentRepoFactory
		SystemLogRepoFactory
	}

	ShipmentUoWFactory interface {
		Create() ShipmentUoW
	}

	// UserUoW serves account administration and authentication.
	UserUoW interface {
		TxManager
		UserRepoFactory
		SystemLogRepoFactory
	}

	UserUoWFactory interface {
		Create() UserUoW
	}
)
