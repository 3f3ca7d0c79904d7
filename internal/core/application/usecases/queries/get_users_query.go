package queries

import (
	"errors"

	"rfidship/internal/core/domain/model/kernel"
	"rfidship/internal/core/domain/model/user"
	"rfidship/internal/pkg/guard"
)

var ErrGetUsersQueryIsNotConstructed = errors.New(
	"GetUsersQuery must be created via NewGetUsersQuery constructor",
)

// GetUsersQuery lists accounts, newest first. Limit defaults to 20.
type GetUsersQuery struct {
	page     Page
	userType *user.Type
	code     *kernel.UserCode
	guard    guard.ConstructorGuard
}

func NewGetUsersQuery(page, limit int, userType, code string) (GetUsersQuery, error) {
	query := GetUsersQuery{
		page:  newLenientPage(page, limit, DefaultPageLimit),
		guard: guard.NewConstructorGuard(),
	}

	if userType != "" {
		parsed, err := user.ParseType(userType)
		if err != nil {
			return GetUsersQuery{}, err
		}
		query.userType = &parsed
	}
	if code != "" {
		parsed, err := kernel.NewUserCode(code)
		if err != nil {
			return GetUsersQuery{}, err
		}
		query.code = &parsed
	}

	return query, nil
}

func (q GetUsersQuery) Validate() error {
	return q.guard.Validate(ErrGetUsersQueryIsNotConstructed)
}
