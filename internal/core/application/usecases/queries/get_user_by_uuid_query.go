package queries

import (
	"errors"

	"rfidship/internal/core/domain/model/kernel"
	"rfidship/internal/pkg/guard"
)

var ErrGetUserByUUIDQueryIsNotConstructed = errors.New(
	"GetUserByUUIDQuery must be created via NewGetUserByUUIDQuery constructor",
)

// GetUserByUUIDQuery loads one account on behalf of requester. Suppliers
// may only read their own account.
type GetUserByUUIDQuery struct {
	target    kernel.UUID
	requester kernel.UUID
	guard     guard.ConstructorGuard
}

func NewGetUserByUUIDQuery(target, requester string) (GetUserByUUIDQuery, error) {
	targetID, targetErr := kernel.UUIDFromString(target)
	requesterID, requesterErr := kernel.UUIDFromString(requester)
	if err := errors.Join(targetErr, requesterErr); err != nil {
		return GetUserByUUIDQuery{}, err
	}
	return GetUserByUUIDQuery{target: targetID, requester: requesterID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetUserByUUIDQuery) Validate() error {
	return q.guard.Validate(ErrGetUserByUUIDQueryIsNotConstructed)
}
