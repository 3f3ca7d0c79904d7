package commands

import (
	"errors"

	"rfidship/internal/core/domain/model/kernel"
	"rfidship/internal/pkg/guard"
)

var ErrCreateRfidCommandIsNotConstructed = errors.New(
	"CreateRfidCommand must be created via NewCreateRfidCommand constructor",
)

// CreateRfidCommand requests one tagged product unit for an explicit serial.
//
// Example:
//
//	cmd, err := NewCreateRfidCommand(actor, "A252600201234", "", "0001")
//	result, err := handler.Handle(ctx, cmd)
//	// result.Rfid == "A2526002012340001"
type CreateRfidCommand struct {
	actor     Actor
	sku       kernel.SKU
	productNo *kernel.ProductNumber
	serialNo  kernel.SerialNumber
	guard     guard.ConstructorGuard
}

// NewCreateRfidCommand parses the raw inputs. An empty productNo is derived
// from the SKU later.
func NewCreateRfidCommand(actor Actor, sku, productNo, serialNo string) (CreateRfidCommand, error) {
	parsedSKU, skuErr := kernel.NewSKU(sku)
	parsedProductNo, productErr := parseOptionalProductNumber(productNo)
	parsedSerial, serialErr := kernel.NewSerialNumber(serialNo)

	if err := errors.Join(actor.Validate(), skuErr, productErr, serialErr); err != nil {
		return CreateRfidCommand{}, err
	}

	return CreateRfidCommand{
		actor:     actor,
		sku:       parsedSKU,
		productNo: parsedProductNo,
		serialNo:  parsedSerial,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c CreateRfidCommand) Validate() error {
	return c.guard.Validate(ErrCreateRfidCommandIsNotConstructed)
}

func (c CreateRfidCommand) Actor() Actor                     { return c.actor }
func (c CreateRfidCommand) SKU() kernel.SKU                  { return c.sku }
func (c CreateRfidCommand) ProductNo() *kernel.ProductNumber { return c.productNo }
func (c CreateRfidCommand) SerialNo() kernel.SerialNumber    { return c.serialNo }

func parseOptionalProductNumber(raw string) (*kernel.ProductNumber, error) {
	if raw == "" {
		return nil, nil
	}
	productNo, err := kernel.NewProductNumber(raw)
	if err != nil {
		return nil, err
	}
	return &productNo, nil
}
