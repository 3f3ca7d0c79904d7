package ports

import (
	"context"

	"rfidship/internal/core/domain/model/kernel"
	"rfidship/internal/core/domain/model/shipment"
)

// ShipmentRepository defines the persistence contract for shipments.
// Update stores the shipment row; box assignments are stored through
// BoxRepository.Update.
type ShipmentRepository interface {
	Add(ctx context.Context, aggregate *shipment.Shipment) error

	Update(ctx context.Context, aggregate *shipment.Shipment) error

	// Get retrieves a shipment with its boxes and their packed units.
	Get(ctx context.Context, shipmentNo kernel.ShipmentNumber) (*shipment.Shipment, error)

	// Exists is the collision check used by the shipment number generator.
	Exists(ctx context.Context, shipmentNo kernel.ShipmentNumber) (bool, error)

	Delete(ctx context.Context, shipmentNo kernel.ShipmentNumber) error
}
