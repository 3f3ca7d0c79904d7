package commands

import (
	"errors"

	"rfidship/internal/pkg/guard"
)

var ErrCreateShipmentCommandIsNotConstructed = errors.New(
	"CreateShipmentCommand must be created via NewCreateShipmentCommand constructor",
)

// CreateShipmentCommand opens an empty shipment under the caller's code.
type CreateShipmentCommand struct {
	actor Actor
	note  string
	guard guard.ConstructorGuard
}

func NewCreateShipmentCommand(actor Actor, note string) (CreateShipmentCommand, error) {
	if err := actor.Validate(); err != nil {
		return CreateShipmentCommand{}, err
	}

	return CreateShipmentCommand{
		actor: actor,
		note:  note,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c CreateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateShipmentCommandIsNotConstructed)
}

func (c CreateShipmentCommand) Actor() Actor { return c.actor }
func (c CreateShipmentCommand) Note() string { return c.note }
