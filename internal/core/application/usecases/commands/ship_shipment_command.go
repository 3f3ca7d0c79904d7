package commands

import (
	"errors"

	"rfidship/internal/core/domain/model/kernel"
	"rfidship/internal/pkg/guard"
)

var (
	ErrShipShipmentCommandIsNotConstructed = errors.New(
		"ShipShipmentCommand must be created via NewShipShipmentCommand constructor",
	)
	ErrUpdateShipmentNoteCommandIsNotConstructed = errors.New(
		"UpdateShipmentNoteCommand must be created via NewUpdateShipmentNoteCommand constructor",
	)
)

// ShipShipmentCommand moves a shipment to SHIPPED, freezing its boxes.
type ShipShipmentCommand struct {
	actor      Actor
	shipmentNo kernel.ShipmentNumber
	guard      guard.ConstructorGuard
}

func NewShipShipmentCommand(actor Actor, shipmentNo string) (ShipShipmentCommand, error) {
	parsed, shipmentErr := kernel.NewShipmentNumber(shipmentNo)
	if err := errors.Join(actor.Validate(), shipmentErr); err != nil {
		return ShipShipmentCommand{}, err
	}

	return ShipShipmentCommand{
		actor:      actor,
		shipmentNo: parsed,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c ShipShipmentCommand) Validate() error {
	return c.guard.Validate(ErrShipShipmentCommandIsNotConstructed)
}

func (c ShipShipmentCommand) Actor() Actor                      { return c.actor }
func (c ShipShipmentCommand) ShipmentNo() kernel.ShipmentNumber { return c.shipmentNo }

// UpdateShipmentNoteCommand replaces the free-text note of a shipment.
type UpdateShipmentNoteCommand struct {
	actor      Actor
	shipmentNo kernel.ShipmentNumber
	note       string
	guard      guard.ConstructorGuard
}

func NewUpdateShipmentNoteCommand(actor Actor, shipmentNo, note string) (UpdateShipmentNoteCommand, error) {
	parsed, shipmentErr := kernel.NewShipmentNumber(shipmentNo)
	if err := errors.Join(actor.Validate(), shipmentErr); err != nil {
		return UpdateShipmentNoteCommand{}, err
	}

	return UpdateShipmentNoteCommand{
		actor:      actor,
		shipmentNo: parsed,
		note:       note,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateShipmentNoteCommand) Validate() error {
	return c.guard.Validate(ErrUpdateShipmentNoteCommandIsNotConstructed)
}

func (c UpdateShipmentNoteCommand) Actor() Actor                      { return c.actor }
func (c UpdateShipmentNoteCommand) ShipmentNo() kernel.ShipmentNumber { return c.shipmentNo }
func (c UpdateShipmentNoteCommand) Note() string                      { return c.note }
