package kernel

import "rfidship/internal/pkg/errs"

var ErrShipmentNumberIsNotConstructed = errs.NewValueIsRequiredError("ShipmentNumber must be created via NewShipmentNumber")

// ShipmentNumber identifies a shipment: user code followed by a
// time-derived suffix, 16 characters in total.
type ShipmentNumber struct {
	identifier
}

// NewShipmentNumber validates a shipment number received from a client.
// New numbers are produced by the shipment number generator service, which
// calls this constructor on its output as well.
func NewShipmentNumber(raw string) (ShipmentNumber, error) {
	id, err := shipmentNumberFormat.parse(raw)
	if err != nil {
		return ShipmentNumber{}, err
	}
	return ShipmentNumber{identifier: id}, nil
}

func (s ShipmentNumber) Validate() error {
	return s.guard.Validate(ErrShipmentNumberIsNotConstructed)
}

func (s ShipmentNumber) IsEqual(other ShipmentNumber) bool {
	return s.value == other.value
}
