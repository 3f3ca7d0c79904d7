package commands

import (
	"errors"

	"rfidship/internal/core/domain/model/kernel"
	"rfidship/internal/pkg/guard"
)

var ErrRemoveRfidFromBoxCommandIsNotConstructed = errors.New(
	"RemoveRfidFromBoxCommand must be created via NewRemoveRfidFromBoxCommand constructor",
)

// RemoveRfidFromBoxCommand unpacks one product unit.
type RemoveRfidFromBoxCommand struct {
	actor Actor
	boxNo kernel.BoxNumber
	rfid  kernel.RfidTag
	guard guard.ConstructorGuard
}

func NewRemoveRfidFromBoxCommand(actor Actor, boxNo, rfid string) (RemoveRfidFromBoxCommand, error) {
	parsedBoxNo, boxErr := kernel.NewBoxNumber(boxNo)
	parsedRfid, rfidErr := kernel.NewRfidTag(rfid)
	if err := errors.Join(actor.Validate(), boxErr, rfidErr); err != nil {
		return RemoveRfidFromBoxCommand{}, err
	}

	return RemoveRfidFromBoxCommand{
		actor: actor,
		boxNo: parsedBoxNo,
		rfid:  parsedRfid,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c RemoveRfidFromBoxCommand) Validate() error {
	return c.guard.Validate(ErrRemoveRfidFromBoxCommandIsNotConstructed)
}

func (c RemoveRfidFromBoxCommand) Actor() Actor            { return c.actor }
func (c RemoveRfidFromBoxCommand) BoxNo() kernel.BoxNumber { return c.boxNo }
func (c RemoveRfidFromBoxCommand) Rfid() kernel.RfidTag    { return c.rfid }
