package productrfid

import (
	"errors"
	"fmt"
	"time"

	"rfidship/internal/core/domain/model/kernel"
	"rfidship/internal/pkg/errs"
	"rfidship/internal/pkg/guard"
)

var ErrProductRfidIsNotConstructed = errors.New("ProductRfid must be created via NewProductRfid constructor")

// ProductRfid is a tagged product unit.
//
// Invariants:
//   - productNo always equals the first 8 characters of sku
//   - boxNo is nil while the unit is not packed
type ProductRfid struct {
	rfid      kernel.RfidTag
	sku       kernel.SKU
	productNo kernel.ProductNumber
	serialNo  kernel.SerialNumber
	createdBy kernel.UUID
	createdAt time.Time
	boxNo     *kernel.BoxNumber
	// storedBoxNo is the back-reference as last read from or written to storage.
	storedBoxNo *kernel.BoxNumber
	guard       guard.ConstructorGuard
}

// NewProductRfid creates an unpacked product unit.
//
// Returns errs.MismatchError when productNo differs from the SKU prefix.
// Validation errors of the remaining arguments are joined.
//
// Example:
//
//	sku, _ := kernel.NewSKU("A252600201234")
//	serial, _ := kernel.NewSerialNumber("0001")
//	tag, _ := kernel.NewRfidTag("A2526002012340001")
//	p, err := productrfid.NewProductRfid(tag, sku, sku.ProductNumber(), serial, actorID, time.Now())
func NewProductRfid(
	rfid kernel.RfidTag,
	sku kernel.SKU,
	productNo kernel.ProductNumber,
	serialNo kernel.SerialNumber,
	createdBy kernel.UUID,
	createdAt time.Time,
) (*ProductRfid, error) {
	return RestoreProductRfid(rfid, sku, productNo, serialNo, createdBy, createdAt, nil)
}

// RestoreProductRfid rebuilds a ProductRfid loaded from storage, including
// its box back-reference. That reference also becomes the stored state used
// by the repository to reject a write that lost a packing race.
func RestoreProductRfid(
	rfid kernel.RfidTag,
	sku kernel.SKU,
	productNo kernel.ProductNumber,
	serialNo kernel.SerialNumber,
	createdBy kernel.UUID,
	createdAt time.Time,
	boxNo *kernel.BoxNumber,
) (*ProductRfid, error) {
	p := &ProductRfid{
		createdAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setRfid(rfid),
		p.setSKU(sku, productNo),
		p.setSerialNo(serialNo),
		p.setCreatedBy(createdBy),
		p.setBoxNo(boxNo),
	); err != nil {
		return nil, err
	}
	p.MarkStored()

	return p, nil
}

func (p *ProductRfid) Validate() error {
	if p == nil {
		return ErrProductRfidIsNotConstructed
	}
	return p.guard.Validate(ErrProductRfidIsNotConstructed)
}

// IsEqual compares units by RFID tag.
func (p *ProductRfid) IsEqual(other *ProductRfid) bool {
	return other != nil && p.rfid.IsEqual(other.rfid)
}

func (p *ProductRfid) Rfid() kernel.RfidTag {
	return p.rfid
}

func (p *ProductRfid) SKU() kernel.SKU {
	return p.sku
}

func (p *ProductRfid) ProductNo() kernel.ProductNumber {
	return p.productNo
}

func (p *ProductRfid) SerialNo() kernel.SerialNumber {
	return p.serialNo
}

func (p *ProductRfid) CreatedBy() kernel.UUID {
	return p.createdBy
}

func (p *ProductRfid) CreatedAt() time.Time {
	return p.createdAt
}

// BoxNo returns the box the unit is packed in, or nil.
func (p *ProductRfid) BoxNo() *kernel.BoxNumber {
	if p.boxNo == nil {
		return nil
	}
	boxNo := *p.boxNo
	return &boxNo
}

// StoredBoxNo returns the box reference the unit had when it was loaded or
// last saved. Repositories use it to detect a concurrent repack.
func (p *ProductRfid) StoredBoxNo() *kernel.BoxNumber {
	if p.storedBoxNo == nil {
		return nil
	}
	boxNo := *p.storedBoxNo
	return &boxNo
}

// MarkStored records the current box reference as persisted.
func (p *ProductRfid) MarkStored() {
	p.storedBoxNo = p.BoxNo()
}

func (p *ProductRfid) IsAssignedToBox() bool {
	return p.boxNo != nil
}

// IsAssignedTo reports whether the unit is packed in the given box.
func (p *ProductRfid) IsAssignedTo(boxNo kernel.BoxNumber) bool {
	return p.boxNo != nil && p.boxNo.IsEqual(boxNo)
}

// AssignToBox sets the box back-reference. It fails with errs.ConflictError
// when the unit is already packed, including in the same box.
func (p *ProductRfid) AssignToBox(boxNo kernel.BoxNumber) error {
	if err := boxNo.Validate(); err != nil {
		return err
	}
	if p.boxNo != nil {
		return errs.NewConflictError(
			fmt.Sprintf("RFID %s is already assigned to box %s", p.rfid, p.boxNo),
		)
	}
	p.boxNo = &boxNo
	return nil
}

// RemoveFromBox clears the box back-reference.
func (p *ProductRfid) RemoveFromBox() {
	p.boxNo = nil
}

func (p *ProductRfid) setRfid(rfid kernel.RfidTag) error {
	if err := rfid.Validate(); err != nil {
		return err
	}
	p.rfid = rfid
	return nil
}

func (p *ProductRfid) setSKU(sku kernel.SKU, productNo kernel.ProductNumber) error {
	if err := errors.Join(sku.Validate(), productNo.Validate()); err != nil {
		return err
	}
	if expected := sku.ProductNumber(); !expected.IsEqual(productNo) {
		return errs.NewMismatchError("productNo", productNo, fmt.Sprintf("SKU prefix %s", expected))
	}
	p.sku = sku
	p.productNo = productNo
	return nil
}

func (p *ProductRfid) setSerialNo(serialNo kernel.SerialNumber) error {
	if err := serialNo.Validate(); err != nil {
		return err
	}
	p.serialNo = serialNo
	return nil
}

func (p *ProductRfid) setCreatedBy(createdBy kernel.UUID) error {
	if err := createdBy.Validate(); err != nil {
		return err
	}
	p.createdBy = createdBy
	return nil
}

func (p *ProductRfid) setBoxNo(boxNo *kernel.BoxNumber) error {
	if boxNo == nil {
		return nil
	}
	if err := boxNo.Validate(); err != nil {
		return err
	}
	value := *boxNo
	p.boxNo = &value
	return nil
}
