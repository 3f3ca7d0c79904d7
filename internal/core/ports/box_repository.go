package ports

import (
	"context"

	"rfidship/internal/core/domain/model/box"
	"rfidship/internal/core/domain/model/kernel"
)

// BoxRepository defines the persistence contract for boxes.
//
// Update stores the box row only (shipment assignment and timestamps);
// the back-references of packed units are stored through
// ProductRfidRepository.Update.
type BoxRepository interface {
	Add(ctx context.Context, aggregate *box.Box) error

	// AddBatch persists several new boxes in one statement.
	AddBatch(ctx context.Context, aggregates []*box.Box) error

	Update(ctx context.Context, aggregate *box.Box) error

	// Get retrieves a box with its packed units.
	Get(ctx context.Context, boxNo kernel.BoxNumber) (*box.Box, error)

	Exists(ctx context.Context, boxNo kernel.BoxNumber) (bool, error)

	// GetLatestByPrefix returns the highest box number starting with prefix,
	// or errs.ObjectNotFoundError when the prefix is unused.
	//
	// Example:
	//   latest, err := repo.GetLatestByPrefix(ctx, "B0012025")
	//   // latest.String() == "B001202500042"
	GetLatestByPrefix(ctx context.Context, prefix string) (kernel.BoxNumber, error)

	Delete(ctx context.Context, boxNo kernel.BoxNumber) error
}
