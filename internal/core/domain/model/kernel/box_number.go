package kernel

import (
	"fmt"
	"strconv"

	"rfidship/internal/pkg/errs"
)

var ErrBoxNumberIsNotConstructed = errs.NewValueIsRequiredError("BoxNumber must be created via NewBoxNumber")

const (
	boxNumberPrefixLength = 8
	// MaxBoxSerial is the largest serial a box prefix can hold.
	MaxBoxSerial = 99999
)

// BoxNumber identifies a box: "B" + code(3) + year(4) + serial(5),
// e.g. B001202500001.
type BoxNumber struct {
	identifier
}

// NewBoxNumber validates a box number received from a client or storage.
// Everything after the leading "B" must be digits, so a prefix built from a
// lettered user code is rejected.
//
// Use NewBoxNumberFromParts to compose the next number in a sequence.
func NewBoxNumber(raw string) (BoxNumber, error) {
	id, err := boxNumberFormat.parse(raw)
	if err != nil {
		return BoxNumber{}, err
	}
	return BoxNumber{identifier: id}, nil
}

// BoxNumberPrefix returns the numbering prefix shared by all boxes of one
// code in one year.
func BoxNumberPrefix(code UserCode, year int) string {
	return fmt.Sprintf("B%s%04d", code.String(), year)
}

// NewBoxNumberFromParts composes a box number from its prefix and serial.
func NewBoxNumberFromParts(prefix string, serial int) (BoxNumber, error) {
	if serial > MaxBoxSerial {
		return BoxNumber{}, errs.NewSequenceOverflowError("box serial", serial, MaxBoxSerial)
	}
	if serial < 1 {
		return BoxNumber{}, errs.NewValueIsOutOfRangeError("box serial", serial, 1, MaxBoxSerial)
	}
	return NewBoxNumber(fmt.Sprintf("%s%05d", prefix, serial))
}

func (b BoxNumber) Validate() error {
	return b.guard.Validate(ErrBoxNumberIsNotConstructed)
}

func (b BoxNumber) IsEqual(other BoxNumber) bool {
	return b.value == other.value
}

// Prefix returns the first 8 characters ("B" + code + year).
func (b BoxNumber) Prefix() string {
	if len(b.value) < boxNumberPrefixLength {
		return ""
	}
	return b.value[:boxNumberPrefixLength]
}

// Serial parses the trailing 5 digit serial.
func (b BoxNumber) Serial() (int, error) {
	if len(b.value) < boxNumberPrefixLength {
		return 0, ErrBoxNumberIsNotConstructed
	}
	n, err := strconv.Atoi(b.value[boxNumberPrefixLength:])
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause("box number", fmt.Errorf("%s has no numeric serial", b.value))
	}
	return n, nil
}
