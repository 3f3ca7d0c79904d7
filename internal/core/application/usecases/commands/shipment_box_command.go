package commands

import (
	"errors"

	"rfidship/internal/core/domain/model/kernel"
	"rfidship/internal/pkg/guard"
)

var (
	ErrAddBoxToShipmentCommandIsNotConstructed = errors.New(
		"AddBoxToShipmentCommand must be created via NewAddBoxToShipmentCommand constructor",
	)
	ErrRemoveBoxFromShipmentCommandIsNotConstructed = errors.New(
		"RemoveBoxFromShipmentCommand must be created via NewRemoveBoxFromShipmentCommand constructor",
	)
)

type shipmentBoxArgs struct {
	actor      Actor
	shipmentNo kernel.ShipmentNumber
	boxNo      kernel.BoxNumber
}

func parseShipmentBoxArgs(actor Actor, shipmentNo, boxNo string) (shipmentBoxArgs, error) {
	parsedShipmentNo, shipmentErr := kernel.NewShipmentNumber(shipmentNo)
	parsedBoxNo, boxErr := kernel.NewBoxNumber(boxNo)
	if err := errors.Join(actor.Validate(), shipmentErr, boxErr); err != nil {
		return shipmentBoxArgs{}, err
	}
	return shipmentBoxArgs{actor: actor, shipmentNo: parsedShipmentNo, boxNo: parsedBoxNo}, nil
}

// AddBoxToShipmentCommand loads a packed box onto a shipment.
type AddBoxToShipmentCommand struct {
	shipmentBoxArgs
	guard guard.ConstructorGuard
}

func NewAddBoxToShipmentCommand(actor Actor, shipmentNo, boxNo string) (AddBoxToShipmentCommand, error) {
	args, err := parseShipmentBoxArgs(actor, shipmentNo, boxNo)
	if err != nil {
		return AddBoxToShipmentCommand{}, err
	}
	return AddBoxToShipmentCommand{shipmentBoxArgs: args, guard: guard.NewConstructorGuard()}, nil
}

func (c AddBoxToShipmentCommand) Validate() error {
	return c.guard.Validate(ErrAddBoxToShipmentCommandIsNotConstructed)
}

// RemoveBoxFromShipmentCommand takes a box off a shipment that has not
// shipped yet.
type RemoveBoxFromShipmentCommand struct {
	shipmentBoxArgs
	guard guard.ConstructorGuard
}

func NewRemoveBoxFromShipmentCommand(
	actor Actor,
	shipmentNo, boxNo string,
) (RemoveBoxFromShipmentCommand, error) {
	args, err := parseShipmentBoxArgs(actor, shipmentNo, boxNo)
	if err != nil {
		return RemoveBoxFromShipmentCommand{}, err
	}
	return RemoveBoxFromShipmentCommand{shipmentBoxArgs: args, guard: guard.NewConstructorGuard()}, nil
}

func (c RemoveBoxFromShipmentCommand) Validate() error {
	return c.guard.Validate(ErrRemoveBoxFromShipmentCommandIsNotConstructed)
}

func (a shipmentBoxArgs) Actor() Actor                      { return a.actor }
func (a shipmentBoxArgs) ShipmentNo() kernel.ShipmentNumber { return a.shipmentNo }
func (a shipmentBoxArgs) BoxNo() kernel.BoxNumber           { return a.boxNo }
