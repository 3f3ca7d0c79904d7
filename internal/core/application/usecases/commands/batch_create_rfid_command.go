package commands

import (
	"errors"

	"rfidship/internal/core/domain/model/kernel"
	"rfidship/internal/pkg/errs"
	"rfidship/internal/pkg/guard"
)

// MaxRfidBatch bounds BatchCreateRfid and GenerateProductRfids.
const MaxRfidBatch = 1000

var ErrBatchCreateRfidCommandIsNotConstructed = errors.New(
	"BatchCreateRfidCommand must be created via NewBatchCreateRfidCommand constructor",
)

// BatchCreateRfidCommand requests a contiguous run of serials for one SKU,
// starting at startSerial. Serials that cannot be created are reported,
// not fatal.
type BatchCreateRfidCommand struct {
	actor       Actor
	sku         kernel.SKU
	productNo   *kernel.ProductNumber
	startSerial kernel.SerialNumber
	quantity    int
	guard       guard.ConstructorGuard
}

// NewBatchCreateRfidCommand parses the inputs. startSerial must be 0001 to
// 9999 and quantity 1 to MaxRfidBatch.
func NewBatchCreateRfidCommand(
	actor Actor,
	sku, productNo, startSerial string,
	quantity int,
) (BatchCreateRfidCommand, error) {
	parsedSKU, skuErr := kernel.NewSKU(sku)
	parsedProductNo, productErr := parseOptionalProductNumber(productNo)
	parsedStart, startErr := parseStartSerial(startSerial)

	var quantityErr error
	if quantity < 1 || quantity > MaxRfidBatch {
		quantityErr = errs.NewValueIsOutOfRangeError("quantity", quantity, 1, MaxRfidBatch)
	}

	if err := errors.Join(actor.Validate(), skuErr, productErr, startErr, quantityErr); err != nil {
		return BatchCreateRfidCommand{}, err
	}

	return BatchCreateRfidCommand{
		actor:       actor,
		sku:         parsedSKU,
		productNo:   parsedProductNo,
		startSerial: parsedStart,
		quantity:    quantity,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c BatchCreateRfidCommand) Validate() error {
	return c.guard.Validate(ErrBatchCreateRfidCommandIsNotConstructed)
}

func (c BatchCreateRfidCommand) Actor() Actor                     { return c.actor }
func (c BatchCreateRfidCommand) SKU() kernel.SKU                  { return c.sku }
func (c BatchCreateRfidCommand) ProductNo() *kernel.ProductNumber { return c.productNo }
func (c BatchCreateRfidCommand) StartSerial() kernel.SerialNumber { return c.startSerial }
func (c BatchCreateRfidCommand) Quantity() int                    { return c.quantity }

func parseStartSerial(raw string) (kernel.SerialNumber, error) {
	serial, err := kernel.NewSerialNumber(raw)
	if err != nil {
		return kernel.SerialNumber{}, err
	}
	return kernel.NewSerialNumberFromInt(serial.Int())
}
