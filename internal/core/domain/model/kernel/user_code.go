package kernel

import "rfidship/internal/pkg/errs"

var ErrUserCodeIsNotConstructed = errs.NewValueIsRequiredError("UserCode must be created via NewUserCode")

// UserCode is the 3 character code of a user or packing station.
// Box numbering uses the all-digit subset (see IsNumeric).
type UserCode struct {
	identifier
}

// NewUserCode validates a 3 character code. Letters are allowed so that
// administrative accounts can use codes such as "ADM", but such codes
// cannot own boxes.
func NewUserCode(raw string) (UserCode, error) {
	id, err := userCodeFormat.parse(raw)
	if err != nil {
		return UserCode{}, err
	}
	return UserCode{identifier: id}, nil
}

func (c UserCode) Validate() error {
	return c.guard.Validate(ErrUserCodeIsNotConstructed)
}

func (c UserCode) IsEqual(other UserCode) bool {
	return c.value == other.value
}

// IsNumeric reports whether the code consists of digits only.
func (c UserCode) IsNumeric() bool {
	return digitsOnly.MatchString(c.value)
}
