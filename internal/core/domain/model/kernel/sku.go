package kernel

import (
	"rfidship/internal/pkg/errs"
	"rfidship/internal/pkg/guard"
)

var ErrSKUIsNotConstructed = errs.NewValueIsRequiredError("SKU must be created via NewSKU")

const productNumberLength = 8

// SKU is the 13 character stock keeping unit: product number (8),
// color (3) and size (2).
//
// Example:
//
//	sku, err := kernel.NewSKU("A252600201234")
//	sku.ProductNumber().String() // "A2526002"
type SKU struct {
	identifier
}

// NewSKU validates a 13 character SKU. Color and size segments are not
// interpreted; only the product number prefix has meaning in this domain.
func NewSKU(raw string) (SKU, error) {
	id, err := skuFormat.parse(raw)
	if err != nil {
		return SKU{}, err
	}
	return SKU{identifier: id}, nil
}

func (s SKU) Validate() error {
	return s.guard.Validate(ErrSKUIsNotConstructed)
}

func (s SKU) IsEqual(other SKU) bool {
	return s.value == other.value
}

// ProductNumber returns the product number encoded in the first 8 characters.
// The result shares the SKU charset, so it needs no further validation.
func (s SKU) ProductNumber() ProductNumber {
	if len(s.value) < productNumberLength {
		return ProductNumber{}
	}
	return ProductNumber{identifier: identifier{
		value: s.value[:productNumberLength],
		guard: guard.NewConstructorGuard(),
	}}
}
