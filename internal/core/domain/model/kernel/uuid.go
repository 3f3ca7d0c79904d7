package kernel

import (
	"fmt"

	"rfidship/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrUUIDIsNotConstructed is returned by Validate for a zero-value UUID, for
// example one left unset in a struct literal or decoded from an empty column.
var ErrUUIDIsNotConstructed = errs.NewValueIsRequiredError("UUID must be created via NewUUID, UUIDFromString, or UUIDFromBytes")

// UUID identifies users and audit actors. It wraps github.com/google/uuid so
// the domain never handles the raw 16 byte array and cannot mix it up with
// the fixed-format business codes (box and shipment numbers, RFID tags).
//
// The zero value is the nil UUID and is invalid: obtain one from NewUUID for
// a new user, or from UUIDFromString and UUIDFromBytes when the value comes
// from a token claim or a database row. UUID is a comparable value type and
// safe to share between goroutines.
//
// Example:
//
//	id := kernel.NewUUID()
//	parsed, err := kernel.UUIDFromString(id.String())
//	if err != nil {
//		return err
//	}
//	parsed.IsEqual(id) // true
type UUID struct {
	id uuid.UUID
}

// NewUUID generates a random (version 4) UUID. It is used when a user is
// created and never fails.
func NewUUID() UUID {
	return UUID{id: uuid.New()}
}

// UUIDFromString parses a UUID received as text, typically the subject of
// an access token or a path parameter. The canonical, braced, urn and
// hyphenless forms are accepted.
//
// The nil UUID parses fine at the library level but is rejected here with
// ErrUUIDIsNotConstructed, so a missing claim cannot pose as a valid actor.
func UUIDFromString(s string) (UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	parsed := UUID{id: id}
	if err = parsed.Validate(); err != nil {
		return UUID{}, err
	}
	return parsed, nil
}

// UUIDFromBytes builds a UUID from its 16 byte form, as stored by the
// postgres adapter.
func UUIDFromBytes(b []byte) (UUID, error) {
	id, err := uuid.FromBytes(b)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	parsed := UUID{id: id}
	if err = parsed.Validate(); err != nil {
		return UUID{}, err
	}
	return parsed, nil
}

// String returns the canonical hyphenated form, as used in JSON responses
// and audit entries.
func (u UUID) String() string {
	return u.id.String()
}

// Bytes returns the wrapped google/uuid value.
func (u UUID) Bytes() uuid.UUID {
	return u.id
}

func (u UUID) IsEqual(other UUID) bool {
	return u.id == other.id
}

// Validate returns ErrUUIDIsNotConstructed for the nil UUID. Entity
// constructors call it on every UUID argument.
func (u UUID) Validate() error {
	if u.id == uuid.Nil {
		return ErrUUIDIsNotConstructed
	}
	return nil
}
