package commands

import (
	"errors"

	"rfidship/internal/core/domain/model/kernel"
	"rfidship/internal/pkg/errs"
	"rfidship/internal/pkg/guard"
)

var ErrGenerateProductRfidsCommandIsNotConstructed = errors.New(
	"GenerateProductRfidsCommand must be created via NewGenerateProductRfidsCommand constructor",
)

// GenerateProductRfidsCommand requests quantity units of a SKU with serials
// counted from 0001.
type GenerateProductRfidsCommand struct {
	actor    Actor
	sku      kernel.SKU
	quantity int
	guard    guard.ConstructorGuard
}

func NewGenerateProductRfidsCommand(actor Actor, sku string, quantity int) (GenerateProductRfidsCommand, error) {
	parsedSKU, skuErr := kernel.NewSKU(sku)

	var quantityErr error
	if quantity < 1 || quantity > MaxRfidBatch {
		quantityErr = errs.NewValueIsOutOfRangeError("quantity", quantity, 1, MaxRfidBatch)
	}

	if err := errors.Join(actor.Validate(), skuErr, quantityErr); err != nil {
		return GenerateProductRfidsCommand{}, err
	}

	return GenerateProductRfidsCommand{
		actor:    actor,
		sku:      parsedSKU,
		quantity: quantity,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c GenerateProductRfidsCommand) Validate() error {
	return c.guard.Validate(ErrGenerateProductRfidsCommandIsNotConstructed)
}

func (c GenerateProductRfidsCommand) Actor() Actor    { return c.actor }
func (c GenerateProductRfidsCommand) SKU() kernel.SKU { return c.sku }
func (c GenerateProductRfidsCommand) Quantity() int   { return c.quantity }
