package queries

import (
	"errors"

	"rfidship/internal/core/domain/model/kernel"
	"rfidship/internal/pkg/guard"
)

var ErrGetBoxByNoQueryIsNotConstructed = errors.New(
	"GetBoxByNoQuery must be created via NewGetBoxByNoQuery constructor",
)

// GetBoxByNoQuery loads one box with the units packed in it.
type GetBoxByNoQuery struct {
	boxNo kernel.BoxNumber
	guard guard.ConstructorGuard
}

func NewGetBoxByNoQuery(boxNo string) (GetBoxByNoQuery, error) {
	parsed, err := kernel.NewBoxNumber(boxNo)
	if err != nil {
		return GetBoxByNoQuery{}, err
	}
	return GetBoxByNoQuery{boxNo: parsed, guard: guard.NewConstructorGuard()}, nil
}

func (q GetBoxByNoQuery) Validate() error {
	return q.guard.Validate(ErrGetBoxByNoQueryIsNotConstructed)
}

// BoxView is a box with its contents in packing order.
type BoxView struct {
	BoxItem
	ProductRfids []RfidItem `json:"productRfids"`
}
