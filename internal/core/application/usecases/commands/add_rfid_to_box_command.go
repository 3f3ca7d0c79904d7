package commands

import (
	"errors"

	"rfidship/internal/core/domain/model/kernel"
	"rfidship/internal/pkg/guard"
)

var ErrAddRfidToBoxCommandIsNotConstructed = errors.New(
	"AddRfidToBoxCommand must be created via NewAddRfidToBoxCommand constructor",
)

// AddRfidToBoxCommand packs one product unit into a box.
type AddRfidToBoxCommand struct {
	actor Actor
	boxNo kernel.BoxNumber
	rfid  kernel.RfidTag
	guard guard.ConstructorGuard
}

func NewAddRfidToBoxCommand(actor Actor, boxNo, rfid string) (AddRfidToBoxCommand, error) {
	parsedBoxNo, boxErr := kernel.NewBoxNumber(boxNo)
	parsedRfid, rfidErr := kernel.NewRfidTag(rfid)
	if err := errors.Join(actor.Validate(), boxErr, rfidErr); err != nil {
		return AddRfidToBoxCommand{}, err
	}

	return AddRfidToBoxCommand{
		actor: actor,
		boxNo: parsedBoxNo,
		rfid:  parsedRfid,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c AddRfidToBoxCommand) Validate() error {
	return c.guard.Validate(ErrAddRfidToBoxCommandIsNotConstructed)
}

func (c AddRfidToBoxCommand) Actor() Actor            { return c.actor }
func (c AddRfidToBoxCommand) BoxNo() kernel.BoxNumber { return c.boxNo }
func (c AddRfidToBoxCommand) Rfid() kernel.RfidTag    { return c.rfid }
