package queries

import (
	"errors"

	"rfidship/internal/core/domain/model/kernel"
	"rfidship/internal/pkg/errs"
	"rfidship/internal/pkg/guard"
)

var ErrGetBoxesQueryIsNotConstructed = errors.New(
	"GetBoxesQuery must be created via NewGetBoxesQuery constructor",
)

// GetBoxesQuery lists boxes, newest first.
//
// Example:
//
//	query, err := NewGetBoxesQuery(1, 20, "", "PACKED")
//	page, err := NewGetBoxesQueryHandler(db).Handle(ctx, query)
type GetBoxesQuery struct {
	page       Page
	shipmentNo *kernel.ShipmentNumber
	status     string
	guard      guard.ConstructorGuard
}

// NewGetBoxesQuery validates the page strictly: page >= 1 and limit in
// 1..100. Empty shipmentNo and status mean no filter; status is CREATED or
// PACKED.
func NewGetBoxesQuery(page, limit int, shipmentNo, status string) (GetBoxesQuery, error) {
	p, err := newStrictPage(page, limit)
	if err != nil {
		return GetBoxesQuery{}, err
	}

	query := GetBoxesQuery{page: p, guard: guard.NewConstructorGuard()}
	if shipmentNo != "" {
		parsed, parseErr := kernel.NewShipmentNumber(shipmentNo)
		if parseErr != nil {
			return GetBoxesQuery{}, parseErr
		}
		query.shipmentNo = &parsed
	}
	switch status {
	case "", boxStatusCreated, boxStatusPacked:
		query.status = status
	default:
		return GetBoxesQuery{}, errs.NewValueIsInvalidError("status must be CREATED or PACKED")
	}

	return query, nil
}

func (q GetBoxesQuery) Validate() error {
	return q.guard.Validate(ErrGetBoxesQueryIsNotConstructed)
}
