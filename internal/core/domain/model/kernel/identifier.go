package kernel

import (
	"fmt"
	"regexp"

	"rfidship/internal/pkg/errs"
	"rfidship/internal/pkg/guard"
)

var (
	upperAlnum = regexp.MustCompile(`^[A-Z0-9]+$`)
	digitsOnly = regexp.MustCompile(`^[0-9]+$`)
	upperHex   = regexp.MustCompile(`^[A-F0-9]+$`)
	// "B" + code(3) + year(4) + serial(5), all digits after the marker.
	boxNumberPattern = regexp.MustCompile(`^B\d{3}\d{4}\d{5}$`)
)

// identifier is the shared representation of every fixed-format code.
type identifier struct {
	value string
	guard guard.ConstructorGuard
}

// String returns the raw code.
func (i identifier) String() string {
	return i.value
}

// format describes the length and charset rule of one identifier type.
type format struct {
	name        string
	length      int
	charset     *regexp.Regexp
	charsetRule string
}

func (f format) parse(raw string) (identifier, error) {
	if raw == "" {
		return identifier{}, errs.NewValueIsRequiredError(f.name)
	}
	if len(raw) != f.length {
		return identifier{}, errs.NewValueIsInvalidErrorWithCause(
			f.name,
			fmt.Errorf("%s must be exactly %d characters", f.name, f.length),
		)
	}
	if !f.charset.MatchString(raw) {
		return identifier{}, errs.NewValueIsInvalidErrorWithCause(
			f.name,
			fmt.Errorf("%s must contain only %s", f.name, f.charsetRule),
		)
	}
	return identifier{value: raw, guard: guard.NewConstructorGuard()}, nil
}

const alnumRule = "uppercase letters and numbers"

var (
	userCodeFormat       = format{name: "user code", length: 3, charset: upperAlnum, charsetRule: alnumRule}
	productNumberFormat  = format{name: "product number", length: 8, charset: upperAlnum, charsetRule: alnumRule}
	skuFormat            = format{name: "SKU", length: 13, charset: upperAlnum, charsetRule: alnumRule}
	serialNumberFormat   = format{name: "serial number", length: 4, charset: digitsOnly, charsetRule: "digits"}
	rfidTagFormat        = format{name: "RFID tag", length: 17, charset: upperAlnum, charsetRule: alnumRule}
	boxNumberFormat      = format{name: "box number", length: 13, charset: boxNumberPattern, charsetRule: `"B" followed by digits`}
	shipmentNumberFormat = format{name: "shipment number", length: 16, charset: upperAlnum, charsetRule: alnumRule}
)
