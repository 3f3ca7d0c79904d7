package queries

import (
	"errors"

	"rfidship/internal/core/domain/model/kernel"
	"rfidship/internal/pkg/errs"
	"rfidship/internal/pkg/guard"
)

var ErrQueryProductRfidsQueryIsNotConstructed = errors.New(
	"QueryProductRfidsQuery must be created via NewQueryProductRfidsQuery constructor",
)

// Lifecycle states of a product unit as reported by QueryProductRfidsQuery.
const (
	RfidStatusAvailable = "available"
	RfidStatusBound     = "bound"
	RfidStatusShipped   = "shipped"
)

// QueryProductRfidsQuery lists product units, newest first.
type QueryProductRfidsQuery struct {
	sku    *kernel.SKU
	boxNo  *kernel.BoxNumber
	status string
	page   Page
	guard  guard.ConstructorGuard
}

// NewQueryProductRfidsQuery defaults the page to 1 and the limit to 20,
// capped at 100. Empty filters are ignored.
func NewQueryProductRfidsQuery(sku, boxNo, status string, page, limit int) (QueryProductRfidsQuery, error) {
	query := QueryProductRfidsQuery{
		page:  newLenientPage(page, limit, DefaultPageLimit),
		guard: guard.NewConstructorGuard(),
	}

	if sku != "" {
		parsed, err := kernel.NewSKU(sku)
		if err != nil {
			return QueryProductRfidsQuery{}, err
		}
		query.sku = &parsed
	}
	if boxNo != "" {
		parsed, err := kernel.NewBoxNumber(boxNo)
		if err != nil {
			return QueryProductRfidsQuery{}, err
		}
		query.boxNo = &parsed
	}
	switch status {
	case "", RfidStatusAvailable, RfidStatusBound, RfidStatusShipped:
		query.status = status
	default:
		return QueryProductRfidsQuery{}, errs.NewValueIsInvalidError("status must be available, bound or shipped")
	}

	return query, nil
}

func (q QueryProductRfidsQuery) Validate() error {
	return q.guard.Validate(ErrQueryProductRfidsQueryIsNotConstructed)
}
