package shipment

import (
	"fmt"

	"rfidship/internal/pkg/errs"
)

// Status is the lifecycle state of a shipment.
//
// State transitions:
//
//	Created ──> Shipped
//
// There is no reverse transition.
type Status int

const (
	// Unknown catches uninitialized Status values.
	Unknown Status = iota

	// Created is the initial state. Boxes can be added and removed.
	Created

	// Shipped is terminal. Box membership is frozen.
	Shipped
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown: "UNKNOWN",
		Created: "CREATED",
		Shipped: "SHIPPED",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Created: "CREATED",
		Shipped: "SHIPPED",
	}
}

// ParseStatus converts the persisted representation back into a Status.
func ParseStatus(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks that the status is Created or Shipped.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns "CREATED", "SHIPPED" or "UNKNOWN". It is also the
// persisted form.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// ValidateModify checks that box membership may still change.
func (s Status) ValidateModify() error {
	if s == Shipped {
		return errs.NewConflictError("cannot modify shipped shipment")
	}
	if err := s.Validate(); err != nil {
		return err
	}
	return nil
}

// Ship transitions Created -> Shipped.
//
// Returns:
//   - (Shipped, nil) on a valid transition
//   - (0, ConflictError) when already shipped
//   - (0, ValueIsInvalidError) for Unknown or out of range values
func (s Status) Ship() (Status, error) {
	switch s {
	case Created:
		return Shipped, nil
	case Shipped:
		return 0, errs.NewConflictError("shipment is already shipped")
	default:
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to ship", s.String()),
		)
	}
}
