package queries

import (
	"errors"
	"time"

	"rfidship/internal/core/domain/model/kernel"
	"rfidship/internal/pkg/guard"
)

var ErrGetShipmentQueryIsNotConstructed = errors.New(
	"GetShipmentQuery must be created via NewGetShipmentQuery constructor",
)

// GetShipmentQuery loads one shipment with its boxes.
type GetShipmentQuery struct {
	shipmentNo kernel.ShipmentNumber
	guard      guard.ConstructorGuard
}

func NewGetShipmentQuery(shipmentNo string) (GetShipmentQuery, error) {
	parsed, err := kernel.NewShipmentNumber(shipmentNo)
	if err != nil {
		return GetShipmentQuery{}, err
	}
	return GetShipmentQuery{shipmentNo: parsed, guard: guard.NewConstructorGuard()}, nil
}

func (q GetShipmentQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentQueryIsNotConstructed)
}

// ShipmentView is a shipment with its boxes in the order they were added.
type ShipmentView struct {
	ShipmentNo    string    `json:"shipmentNo"`
	UserCode      string    `json:"userCode"`
	Note          string    `json:"note"`
	Status        string    `json:"status"`
	BoxCount      int       `json:"boxCount"`
	TotalProducts int       `json:"totalProducts"`
	CreatedBy     string    `json:"createdBy"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
	Boxes         []BoxItem `json:"boxes"`
}
