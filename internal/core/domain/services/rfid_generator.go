package services

import (
	"context"
	"fmt"

	"rfidship/internal/core/domain/model/kernel"
	"rfidship/internal/core/domain/model/productrfid"
	"rfidship/internal/pkg/errs"
)

// RfidLookup is the part of the product repository the generator needs.
type RfidLookup interface {
	Exists(ctx context.Context, tag kernel.RfidTag) (bool, error)
}

// RfidGenerator builds new ProductRfid entities.
//
// Business rules:
//   - productNo defaults to the first 8 characters of the SKU
//   - an explicit productNo must equal that prefix (errs.MismatchError)
//   - an RFID that already exists is a conflict; there is no retry, the
//     caller has to pick another serial
//
// Example:
//
//	gen := services.NewRfidGenerator(uow.ProductRfidRepository(), services.ConcatenationDerivation{})
//	unit, err := gen.Generate(ctx, sku, nil, serial, actorID)
//	// unit.Rfid().String() == sku.String() + serial.String()
type RfidGenerator struct {
	repo     RfidLookup
	strategy IdentifierDerivationStrategy
	opts     options
}

func NewRfidGenerator(repo RfidLookup, strategy IdentifierDerivationStrategy, opts ...Option) RfidGenerator {
	if strategy == nil {
		strategy = ConcatenationDerivation{}
	}
	return RfidGenerator{repo: repo, strategy: strategy, opts: newOptions(opts)}
}

// Generate returns an unsaved product unit for sku and serial.
func (g RfidGenerator) Generate(
	ctx context.Context,
	sku kernel.SKU,
	productNo *kernel.ProductNumber,
	serial kernel.SerialNumber,
	actor kernel.UUID,
) (*productrfid.ProductRfid, error) {
	if err := sku.Validate(); err != nil {
		return nil, err
	}

	prefix := sku.ProductNumber()
	if productNo != nil && !productNo.IsEqual(prefix) {
		return nil, errs.NewMismatchError("productNo", *productNo, fmt.Sprintf("SKU prefix %s", prefix))
	}

	tag, err := g.strategy.Derive(sku, prefix, serial)
	if err != nil {
		return nil, err
	}

	exists, err := g.repo.Exists(ctx, tag)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errs.NewConflictError(fmt.Sprintf("RFID %s already exists", tag))
	}

	return productrfid.NewProductRfid(tag, sku, prefix, serial, actor, g.opts.clock())
}
