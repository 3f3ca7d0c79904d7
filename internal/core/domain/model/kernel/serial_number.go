package kernel

import (
	"fmt"
	"strconv"

	"rfidship/internal/pkg/errs"
)

var ErrSerialNumberIsNotConstructed = errs.NewValueIsRequiredError("SerialNumber must be created via NewSerialNumber")

const (
	// MinSerial and MaxSerial bound the serials a generator may hand out.
	MinSerial = 1
	MaxSerial = 9999
)

// SerialNumber distinguishes individual units of one SKU. It is four
// zero-padded digits.
type SerialNumber struct {
	identifier
}

// NewSerialNumber validates four digits, for example "0001". "0000" passes
// the format check; generators never produce it because they start at
// MinSerial.
func NewSerialNumber(raw string) (SerialNumber, error) {
	id, err := serialNumberFormat.parse(raw)
	if err != nil {
		return SerialNumber{}, err
	}
	return SerialNumber{identifier: id}, nil
}

// NewSerialNumberFromInt zero-pads n. Only MinSerial..MaxSerial is accepted.
func NewSerialNumberFromInt(n int) (SerialNumber, error) {
	if n < MinSerial || n > MaxSerial {
		return SerialNumber{}, errs.NewValueIsOutOfRangeError("serial number", n, MinSerial, MaxSerial)
	}
	return NewSerialNumber(fmt.Sprintf("%04d", n))
}

func (s SerialNumber) Validate() error {
	return s.guard.Validate(ErrSerialNumberIsNotConstructed)
}

func (s SerialNumber) IsEqual(other SerialNumber) bool {
	return s.value == other.value
}

// Int returns the numeric value of the serial.
func (s SerialNumber) Int() int {
	n, _ := strconv.Atoi(s.value)
	return n
}
