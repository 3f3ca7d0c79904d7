package shipment

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"rfidship/internal/core/domain/model/box"
	"rfidship/internal/core/domain/model/kernel"
	"rfidship/internal/pkg/errs"
	"rfidship/internal/pkg/guard"
)

var ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment constructor")

const maxNoteLength = 500

// Option configures optional Shipment collaborators.
type Option func(*Shipment)

// WithClock replaces the clock used to stamp updatedAt.
func WithClock(clock kernel.Clock) Option {
	return func(s *Shipment) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// Shipment is the aggregate root for dispatching boxes. A shipment is opened
// by a user, collects packed boxes while it is Created, and is closed by Ship.
// Once shipped its box list is frozen for good; only the free text note can
// still be edited.
//
// A Shipment owns the boxes it holds. Adding a box locks it through
// box.AssignToShipment, and removing it unlocks it again, so callers must
// persist the box together with the shipment in one unit of work.
//
// Shipment follows these invariants:
//   - every contained box is assigned to this shipment
//   - boxes are ordered by the time they were added
//   - a shipment is shipped only with at least one box
type Shipment struct {
	shipmentNo kernel.ShipmentNumber
	userCode   kernel.UserCode
	createdBy  kernel.UUID
	createdAt  time.Time
	updatedAt  time.Time
	note       string
	status     Status
	boxes      []*box.Box
	clock      kernel.Clock
	guard      guard.ConstructorGuard
}

// NewShipment creates an empty shipment in Created status. The number is
// expected to come from the shipment number generator, which has already
// checked it against storage; the store still rejects duplicates.
//
// Returns the joined validation errors of every invalid argument.
//
// Example:
//
//	no, _ := kernel.NewShipmentNumber("001M7Q2K9ZXA4B7C")
//	code, _ := kernel.NewUserCode("001")
//	s, err := shipment.NewShipment(no, code, actorID, "fragile", time.Now())
func NewShipment(
	shipmentNo kernel.ShipmentNumber,
	userCode kernel.UserCode,
	createdBy kernel.UUID,
	note string,
	createdAt time.Time,
	opts ...Option,
) (*Shipment, error) {
	return RestoreShipment(shipmentNo, userCode, createdBy, note, Created, createdAt, createdAt, nil, opts...)
}

// RestoreShipment rebuilds a shipment and its boxes from storage.
//
// Business Rules:
//   - status must be valid
//   - every box must already be assigned to shipmentNo
func RestoreShipment(
	shipmentNo kernel.ShipmentNumber,
	userCode kernel.UserCode,
	createdBy kernel.UUID,
	note string,
	status Status,
	createdAt time.Time,
	updatedAt time.Time,
	boxes []*box.Box,
	opts ...Option,
) (*Shipment, error) {
	s := &Shipment{
		createdAt: createdAt,
		updatedAt: updatedAt,
		clock:     kernel.SystemClock,
		guard:     guard.NewConstructorGuard(),
	}
	for _, opt := range opts {
		opt(s)
	}

	if err := errors.Join(
		s.setShipmentNo(shipmentNo),
		s.setUserCode(userCode),
		s.setCreatedBy(createdBy),
		s.setNote(note),
		s.setStatus(status),
	); err != nil {
		return nil, err
	}
	if err := s.setBoxes(boxes); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *Shipment) Validate() error {
	if s == nil {
		return ErrShipmentIsNotConstructed
	}
	return s.guard.Validate(ErrShipmentIsNotConstructed)
}

// IsEqual compares shipments by shipment number.
func (s *Shipment) IsEqual(other *Shipment) bool {
	return other != nil && s.shipmentNo.IsEqual(other.shipmentNo)
}

func (s *Shipment) ShipmentNo() kernel.ShipmentNumber {
	return s.shipmentNo
}

func (s *Shipment) UserCode() kernel.UserCode {
	return s.userCode
}

func (s *Shipment) CreatedBy() kernel.UUID {
	return s.createdBy
}

func (s *Shipment) CreatedAt() time.Time {
	return s.createdAt
}

func (s *Shipment) UpdatedAt() time.Time {
	return s.updatedAt
}

func (s *Shipment) Note() string {
	return s.note
}

func (s *Shipment) Status() Status {
	return s.status
}

func (s *Shipment) IsShipped() bool {
	return s.status == Shipped
}

// Boxes returns the boxes in the order they were added.
func (s *Shipment) Boxes() []*box.Box {
	return slices.Clone(s.boxes)
}

func (s *Shipment) BoxCount() int {
	return len(s.boxes)
}

// TotalProducts counts the product units over all boxes.
func (s *Shipment) TotalProducts() int {
	total := 0
	for _, b := range s.boxes {
		total += b.ProductCount()
	}
	return total
}

// Contains reports whether the box is part of the shipment.
func (s *Shipment) Contains(boxNo kernel.BoxNumber) bool {
	return s.indexOf(boxNo) >= 0
}

// AddBox assigns a box to the shipment.
//
// This method enforces the following business rules:
//   - the shipment must not be shipped
//   - the box must contain at least one product unit
//   - the box must not belong to a different shipment
//
// Adding a box that is already part of the shipment is a no-op. All
// violations return errs.ConflictError.
func (s *Shipment) AddBox(b *box.Box) error {
	if err := b.Validate(); err != nil {
		return err
	}
	if err := s.status.ValidateModify(); err != nil {
		return err
	}
	if b.IsEmpty() {
		return errs.NewConflictError("cannot add empty box to shipment")
	}
	if s.Contains(b.BoxNo()) {
		return nil
	}
	if err := b.AssignToShipment(s.shipmentNo); err != nil {
		return err
	}

	s.boxes = append(s.boxes, b)
	s.touch()
	return nil
}

// RemoveBox releases a box from the shipment and returns it unlocked.
//
// Returns errs.ConflictError when the shipment is shipped and
// errs.ObjectNotFoundError when the box is not part of it.
func (s *Shipment) RemoveBox(boxNo kernel.BoxNumber) (*box.Box, error) {
	if err := s.status.ValidateModify(); err != nil {
		return nil, err
	}

	idx := s.indexOf(boxNo)
	if idx < 0 {
		return nil, errs.NewObjectNotFoundError("box", boxNo.String())
	}

	removed := s.boxes[idx]
	s.boxes = slices.Delete(s.boxes, idx, idx+1)
	removed.RemoveFromShipment()
	s.touch()
	return removed, nil
}

// Ship transitions the shipment to Shipped. It fails when the shipment is
// already shipped or holds no boxes. The transition is irreversible.
func (s *Shipment) Ship() error {
	if s.status == Created && len(s.boxes) == 0 {
		return errs.NewConflictError("cannot ship empty shipment")
	}

	newStatus, err := s.status.Ship()
	if err != nil {
		return err
	}

	s.status = newStatus
	s.touch()
	return nil
}

// UpdateNote replaces the free-form note. It is allowed in every status.
func (s *Shipment) UpdateNote(note string) error {
	if err := s.setNote(note); err != nil {
		return err
	}
	s.touch()
	return nil
}

func (s *Shipment) indexOf(boxNo kernel.BoxNumber) int {
	return slices.IndexFunc(s.boxes, func(b *box.Box) bool {
		return b.BoxNo().IsEqual(boxNo)
	})
}

func (s *Shipment) touch() {
	s.updatedAt = s.clock()
}

func (s *Shipment) setShipmentNo(shipmentNo kernel.ShipmentNumber) error {
	if err := shipmentNo.Validate(); err != nil {
		return err
	}
	s.shipmentNo = shipmentNo
	return nil
}

func (s *Shipment) setUserCode(userCode kernel.UserCode) error {
	if err := userCode.Validate(); err != nil {
		return err
	}
	s.userCode = userCode
	return nil
}

func (s *Shipment) setCreatedBy(createdBy kernel.UUID) error {
	if err := createdBy.Validate(); err != nil {
		return err
	}
	s.createdBy = createdBy
	return nil
}

func (s *Shipment) setNote(note string) error {
	if len([]rune(note)) > maxNoteLength {
		return errs.NewValueIsInvalidErrorWithCause(
			"note is invalid",
			fmt.Errorf("note must be at most %d characters", maxNoteLength),
		)
	}
	s.note = note
	return nil
}

func (s *Shipment) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	s.status = status
	return nil
}

func (s *Shipment) setBoxes(boxes []*box.Box) error {
	for _, b := range boxes {
		if err := b.Validate(); err != nil {
			return err
		}
		if !b.IsAssignedTo(s.shipmentNo) {
			return errs.NewMismatchError("box shipment", b.ShipmentNo(), s.shipmentNo)
		}
	}
	s.boxes = slices.Clone(boxes)
	return nil
}
