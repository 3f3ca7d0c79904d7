package services

import (
	"encoding/hex"
	"fmt"
	"hash/fnv"
	"strings"

	"rfidship/internal/core/domain/model/kernel"
	"rfidship/internal/pkg/errs"
)

// Derivation strategy names accepted by ParseDerivationStrategy.
const (
	DerivationConcat = "concat"
	DerivationHashed = "hashed"
)

const rfidLength = 17

// IdentifierDerivationStrategy computes the RFID tag of a product unit.
// One strategy is chosen per deployment; tags from different strategies
// are not interchangeable.
type IdentifierDerivationStrategy interface {
	Name() string
	Derive(sku kernel.SKU, productNo kernel.ProductNumber, serial kernel.SerialNumber) (kernel.RfidTag, error)
}

// ParseDerivationStrategy maps a configuration value to a strategy. An
// empty name selects concatenation.
func ParseDerivationStrategy(name string) (IdentifierDerivationStrategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", DerivationConcat:
		return ConcatenationDerivation{}, nil
	case DerivationHashed:
		return HashedDerivation{}, nil
	default:
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"rfid derivation",
			fmt.Errorf("%q must be one of %s, %s", name, DerivationConcat, DerivationHashed),
		)
	}
}

// ConcatenationDerivation yields sku || serial, e.g.
// "A252600201234" + "0001" = "A2526002012340001".
type ConcatenationDerivation struct{}

func (ConcatenationDerivation) Name() string {
	return DerivationConcat
}

func (ConcatenationDerivation) Derive(
	sku kernel.SKU,
	_ kernel.ProductNumber,
	serial kernel.SerialNumber,
) (kernel.RfidTag, error) {
	return kernel.NewRfidTag(sku.String() + serial.String())
}

// HashedDerivation maps sku || productNo || serial through 128 bit FNV-1a
// and keeps the first 17 uppercase hex digits.
type HashedDerivation struct{}

func (HashedDerivation) Name() string {
	return DerivationHashed
}

func (HashedDerivation) Derive(
	sku kernel.SKU,
	productNo kernel.ProductNumber,
	serial kernel.SerialNumber,
) (kernel.RfidTag, error) {
	h := fnv.New128a()
	_, _ = h.Write([]byte(sku.String() + productNo.String() + serial.String()))
	digest := strings.ToUpper(hex.EncodeToString(h.Sum(nil)))
	return kernel.NewRfidTag(digest[:rfidLength])
}
