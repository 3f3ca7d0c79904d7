package kernel

import "rfidship/internal/pkg/errs"

var ErrRfidTagIsNotConstructed = errs.NewValueIsRequiredError("RfidTag must be created via NewRfidTag")

// RfidTag is the 17 character code written to a physical tag. Depending on
// the deployment's derivation strategy it is either SKU(13) + serial(4) or
// a 17 digit uppercase hex hash.
type RfidTag struct {
	identifier
}

// NewRfidTag validates a tag read from a request or from storage. The tag
// must be exactly 17 uppercase letters or digits; which derivation produced
// it is not checked here.
//
// Example:
//
//	tag, err := kernel.NewRfidTag("A2526002012340001")
func NewRfidTag(raw string) (RfidTag, error) {
	id, err := rfidTagFormat.parse(raw)
	if err != nil {
		return RfidTag{}, err
	}
	return RfidTag{identifier: id}, nil
}

func (r RfidTag) Validate() error {
	return r.guard.Validate(ErrRfidTagIsNotConstructed)
}

func (r RfidTag) IsEqual(other RfidTag) bool {
	return r.value == other.value
}

// IsHex reports whether the tag only uses [A-F0-9], the charset of hashed tags.
func (r RfidTag) IsHex() bool {
	return upperHex.MatchString(r.value)
}
