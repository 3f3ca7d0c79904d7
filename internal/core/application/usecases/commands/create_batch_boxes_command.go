package commands

import (
	"errors"

	"rfidship/internal/core/domain/model/kernel"
	"rfidship/internal/core/domain/services"
	"rfidship/internal/pkg/errs"
	"rfidship/internal/pkg/guard"
)

// MaxBoxBatch bounds CreateBatchBoxes.
const MaxBoxBatch = 100

var ErrCreateBatchBoxesCommandIsNotConstructed = errors.New(
	"CreateBatchBoxesCommand must be created via NewCreateBatchBoxesCommand constructor",
)

// CreateBatchBoxesCommand requests quantity consecutive box numbers.
type CreateBatchBoxesCommand struct {
	actor    Actor
	code     kernel.UserCode
	quantity int
	guard    guard.ConstructorGuard
}

func NewCreateBatchBoxesCommand(actor Actor, code string, quantity int) (CreateBatchBoxesCommand, error) {
	boxCode, codeErr := services.ParseBoxCode(code)

	var quantityErr error
	if quantity < 1 || quantity > MaxBoxBatch {
		quantityErr = errs.NewValueIsOutOfRangeError("quantity", quantity, 1, MaxBoxBatch)
	}

	if err := errors.Join(actor.Validate(), codeErr, quantityErr); err != nil {
		return CreateBatchBoxesCommand{}, err
	}

	return CreateBatchBoxesCommand{
		actor:    actor,
		code:     boxCode,
		quantity: quantity,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c CreateBatchBoxesCommand) Validate() error {
	return c.guard.Validate(ErrCreateBatchBoxesCommandIsNotConstructed)
}

func (c CreateBatchBoxesCommand) Actor() Actor          { return c.actor }
func (c CreateBatchBoxesCommand) Code() kernel.UserCode { return c.code }
func (c CreateBatchBoxesCommand) Quantity() int         { return c.quantity }
