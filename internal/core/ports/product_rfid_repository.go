package ports

import (
	"context"

	"rfidship/internal/core/domain/model/kernel"
	"rfidship/internal/core/domain/model/productrfid"
)

// ProductRfidRepository defines the persistence contract for tagged
// product units. The RFID tag is unique; so is the (SKU, serial) pair.
type ProductRfidRepository interface {
	// Add persists a new unit.
	Add(ctx context.Context, aggregate *productrfid.ProductRfid) error

	// Update persists the box back-reference of an existing unit.
	Update(ctx context.Context, aggregate *productrfid.ProductRfid) error

	Get(ctx context.Context, tag kernel.RfidTag) (*productrfid.ProductRfid, error)

	// Exists is the pre-commit uniqueness check used by the generator.
	Exists(ctx context.Context, tag kernel.RfidTag) (bool, error)

	GetBySkuAndSerial(
		ctx context.Context,
		sku kernel.SKU,
		serial kernel.SerialNumber,
	) (*productrfid.ProductRfid, error)

	// ListByBox returns the units packed in a box, in packing order.
	ListByBox(ctx context.Context, boxNo kernel.BoxNumber) ([]*productrfid.ProductRfid, error)

	Delete(ctx context.Context, tag kernel.RfidTag) error
}
