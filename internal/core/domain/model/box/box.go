package box

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"rfidship/internal/core/domain/model/kernel"
	"rfidship/internal/core/domain/model/productrfid"
	"rfidship/internal/pkg/errs"
	"rfidship/internal/pkg/guard"
)

var ErrBoxIsNotConstructed = errors.New("Box must be created via NewBox constructor")

// PackingStatus is the read-side projection of the lock state.
type PackingStatus string

const (
	StatusCreated PackingStatus = "CREATED"
	StatusPacked  PackingStatus = "PACKED"
)

// Option configures optional Box collaborators.
type Option func(*Box)

// WithClock replaces the clock used to stamp updatedAt.
func WithClock(clock kernel.Clock) Option {
	return func(b *Box) {
		if clock != nil {
			b.clock = clock
		}
	}
}

// Box is the packing aggregate.
//
// Box follows these invariants:
//   - boxNo starts with "B" followed by the owning code
//   - a product unit is packed at most once
//   - contents are frozen while shipmentNo is set
//   - every mutation moves updatedAt forward
type Box struct {
	boxNo      kernel.BoxNumber
	code       kernel.UserCode
	createdBy  kernel.UUID
	createdAt  time.Time
	updatedAt  time.Time
	shipmentNo *kernel.ShipmentNumber
	// storedShipmentNo is the lock as last read from or written to storage.
	storedShipmentNo *kernel.ShipmentNumber
	productRfids     []*productrfid.ProductRfid
	clock            kernel.Clock
	guard            guard.ConstructorGuard
}

// NewBox creates an empty, unassigned box.
//
// Parameters:
//   - boxNo: the generated box number
//   - code: the 3 character code embedded in boxNo
//   - createdBy: actor creating the box
//   - createdAt: creation time, also used as initial updatedAt
//
// Example:
//
//	code, _ := kernel.NewUserCode("001")
//	boxNo, _ := kernel.NewBoxNumberFromParts(kernel.BoxNumberPrefix(code, 2025), 1)
//	b, err := box.NewBox(boxNo, code, actorID, time.Now())
func NewBox(
	boxNo kernel.BoxNumber,
	code kernel.UserCode,
	createdBy kernel.UUID,
	createdAt time.Time,
	opts ...Option,
) (*Box, error) {
	return RestoreBox(boxNo, code, createdBy, createdAt, createdAt, nil, nil, opts...)
}

// RestoreBox rebuilds a box from storage. The product units must already
// carry a back-reference to boxNo.
//
// The shipment lock passed in is remembered as the stored state (see
// StoredShipmentNo). The box repository only applies an update while the
// row still holds that lock, which is how two requests assigning the same
// box to different shipments are told apart.
func RestoreBox(
	boxNo kernel.BoxNumber,
	code kernel.UserCode,
	createdBy kernel.UUID,
	createdAt time.Time,
	updatedAt time.Time,
	shipmentNo *kernel.ShipmentNumber,
	productRfids []*productrfid.ProductRfid,
	opts ...Option,
) (*Box, error) {
	b := &Box{
		createdAt: createdAt,
		updatedAt: updatedAt,
		clock:     kernel.SystemClock,
		guard:     guard.NewConstructorGuard(),
	}
	for _, opt := range opts {
		opt(b)
	}

	if err := errors.Join(
		b.setIdentity(boxNo, code),
		b.setCreatedBy(createdBy),
		b.setShipmentNo(shipmentNo),
	); err != nil {
		return nil, err
	}
	if err := b.setProductRfids(productRfids); err != nil {
		return nil, err
	}
	b.MarkStored()

	return b, nil
}

func (b *Box) Validate() error {
	if b == nil {
		return ErrBoxIsNotConstructed
	}
	return b.guard.Validate(ErrBoxIsNotConstructed)
}

// IsEqual compares boxes by box number.
func (b *Box) IsEqual(other *Box) bool {
	return other != nil && b.boxNo.IsEqual(other.boxNo)
}

func (b *Box) BoxNo() kernel.BoxNumber {
	return b.boxNo
}

func (b *Box) Code() kernel.UserCode {
	return b.code
}

func (b *Box) CreatedBy() kernel.UUID {
	return b.createdBy
}

func (b *Box) CreatedAt() time.Time {
	return b.createdAt
}

func (b *Box) UpdatedAt() time.Time {
	return b.updatedAt
}

// ShipmentNo returns the shipment holding this box, or nil.
func (b *Box) ShipmentNo() *kernel.ShipmentNumber {
	if b.shipmentNo == nil {
		return nil
	}
	shipmentNo := *b.shipmentNo
	return &shipmentNo
}

// ProductRfids returns the packed units in packing order. The slice is a
// copy; the units are shared.
func (b *Box) ProductRfids() []*productrfid.ProductRfid {
	return slices.Clone(b.productRfids)
}

func (b *Box) ProductCount() int {
	return len(b.productRfids)
}

func (b *Box) IsEmpty() bool {
	return len(b.productRfids) == 0
}

// IsLocked reports whether the box belongs to a shipment.
func (b *Box) IsLocked() bool {
	return b.shipmentNo != nil
}

// IsAssignedTo reports whether the box belongs to the given shipment.
func (b *Box) IsAssignedTo(shipmentNo kernel.ShipmentNumber) bool {
	return b.shipmentNo != nil && b.shipmentNo.IsEqual(shipmentNo)
}

func (b *Box) PackingStatus() PackingStatus {
	if b.IsLocked() {
		return StatusPacked
	}
	return StatusCreated
}

// Contains reports whether a unit with the given tag is packed here.
func (b *Box) Contains(tag kernel.RfidTag) bool {
	return b.indexOf(tag) >= 0
}

// AddProductRfid packs a unit into the box.
//
// Business rules:
//   - the box must not be assigned to a shipment
//   - the unit must not be packed anywhere, this box included
//
// Both violations return errs.ConflictError. On success the unit's
// back-reference points to this box.
func (b *Box) AddProductRfid(rfid *productrfid.ProductRfid) error {
	if err := rfid.Validate(); err != nil {
		return err
	}
	if err := b.EnsureUnlocked(); err != nil {
		return err
	}
	if err := rfid.AssignToBox(b.boxNo); err != nil {
		return err
	}

	b.productRfids = append(b.productRfids, rfid)
	b.touch()
	return nil
}

// RemoveProductRfid unpacks the unit with the given tag and returns it with
// its back-reference cleared.
//
// Returns errs.ConflictError when the box is locked and
// errs.ObjectNotFoundError when the tag is not in the box.
func (b *Box) RemoveProductRfid(tag kernel.RfidTag) (*productrfid.ProductRfid, error) {
	if err := b.EnsureUnlocked(); err != nil {
		return nil, err
	}

	idx := b.indexOf(tag)
	if idx < 0 {
		return nil, errs.NewObjectNotFoundError("rfid", tag.String())
	}

	removed := b.productRfids[idx]
	b.productRfids = slices.Delete(b.productRfids, idx, idx+1)
	removed.RemoveFromBox()
	b.touch()
	return removed, nil
}

// AssignToShipment locks the box under a shipment. Assigning to the same
// shipment again is a no-op; a different shipment is a conflict.
func (b *Box) AssignToShipment(shipmentNo kernel.ShipmentNumber) error {
	if err := shipmentNo.Validate(); err != nil {
		return err
	}
	if b.shipmentNo != nil {
		if b.shipmentNo.IsEqual(shipmentNo) {
			return nil
		}
		return errs.NewConflictError(
			fmt.Sprintf("box %s is already assigned to shipment %s", b.boxNo, b.shipmentNo),
		)
	}

	b.shipmentNo = &shipmentNo
	b.touch()
	return nil
}

// StoredShipmentNo returns the shipment lock the box had when it was loaded
// or last saved.
func (b *Box) StoredShipmentNo() *kernel.ShipmentNumber {
	if b.storedShipmentNo == nil {
		return nil
	}
	shipmentNo := *b.storedShipmentNo
	return &shipmentNo
}

// MarkStored records the current shipment lock as persisted.
func (b *Box) MarkStored() {
	b.storedShipmentNo = b.ShipmentNo()
}

// RemoveFromShipment unlocks the box.
func (b *Box) RemoveFromShipment() {
	b.shipmentNo = nil
	b.touch()
}

// EnsureUnlocked returns errs.ConflictError while the box belongs to a shipment.
func (b *Box) EnsureUnlocked() error {
	if b.IsLocked() {
		return errs.NewConflictError("cannot modify box assigned to shipment")
	}
	return nil
}

func (b *Box) indexOf(tag kernel.RfidTag) int {
	return slices.IndexFunc(b.productRfids, func(p *productrfid.ProductRfid) bool {
		return p.Rfid().IsEqual(tag)
	})
}

func (b *Box) touch() {
	b.updatedAt = b.clock()
}

func (b *Box) setIdentity(boxNo kernel.BoxNumber, code kernel.UserCode) error {
	if err := errors.Join(boxNo.Validate(), code.Validate()); err != nil {
		return err
	}
	if expected := "B" + code.String(); boxNo.String()[:len(expected)] != expected {
		return errs.NewMismatchError("boxNo", boxNo, "code "+code.String())
	}
	b.boxNo = boxNo
	b.code = code
	return nil
}

func (b *Box) setCreatedBy(createdBy kernel.UUID) error {
	if err := createdBy.Validate(); err != nil {
		return err
	}
	b.createdBy = createdBy
	return nil
}

func (b *Box) setShipmentNo(shipmentNo *kernel.ShipmentNumber) error {
	if shipmentNo == nil {
		return nil
	}
	if err := shipmentNo.Validate(); err != nil {
		return err
	}
	value := *shipmentNo
	b.shipmentNo = &value
	return nil
}

func (b *Box) setProductRfids(productRfids []*productrfid.ProductRfid) error {
	for _, p := range productRfids {
		if err := p.Validate(); err != nil {
			return err
		}
		if !p.IsAssignedTo(b.boxNo) {
			return errs.NewMismatchError("rfid box", p.BoxNo(), b.boxNo)
		}
	}
	b.productRfids = slices.Clone(productRfids)
	return nil
}
