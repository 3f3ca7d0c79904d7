package user

import (
	"fmt"

	"rfidship/internal/pkg/errs"
)

// Type is the role of a user.
type Type int

const (
	UnknownType Type = iota
	Admin
	Regular
	Supplier
)

func getTypeStrings() map[Type]string {
	//nolint:exhaustive // UnknownType is intentionally excluded as it's invalid
	return map[Type]string{
		Admin:    "admin",
		Regular:  "user",
		Supplier: "supplier",
	}
}

// ParseType converts "admin", "user" or "supplier" into a Type.
func ParseType(s string) (Type, error) {
	for t, str := range getTypeStrings() {
		if str == s {
			return t, nil
		}
	}
	return UnknownType, errs.NewValueIsInvalidErrorWithCause(
		"user type is invalid",
		fmt.Errorf("%q must be one of admin, user, supplier", s),
	)
}

func (t Type) Validate() error {
	if _, ok := getTypeStrings()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("user type is invalid", fmt.Errorf("%d is not a valid user type", t))
	}
	return nil
}

func (t Type) String() string {
	if str, ok := getTypeStrings()[t]; ok {
		return str
	}
	return "unknown"
}
