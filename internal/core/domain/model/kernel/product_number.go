package kernel

import "rfidship/internal/pkg/errs"

var ErrProductNumberIsNotConstructed = errs.NewValueIsRequiredError("ProductNumber must be created via NewProductNumber")

// ProductNumber is the 8 character product code. It is always the prefix of the SKUs of that product.
type ProductNumber struct {
	identifier
}

func NewProductNumber(raw string) (ProductNumber, error) {
	id, err := productNumberFormat.parse(raw)
	if err != nil {
		return ProductNumber{}, err
	}
	return ProductNumber{identifier: id}, nil
}

func (p ProductNumber) Validate() error {
	return p.guard.Validate(ErrProductNumberIsNotConstructed)
}

func (p ProductNumber) IsEqual(other ProductNumber) bool {
	return p.value == other.value
}
