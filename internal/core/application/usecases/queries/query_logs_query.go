package queries

import (
	"errors"
	"time"

	"rfidship/internal/core/domain/model/kernel"
	"rfidship/internal/pkg/errs"
	"rfidship/internal/pkg/guard"
)

var ErrQueryLogsQueryIsNotConstructed = errors.New(
	"QueryLogsQuery must be created via NewQueryLogsQuery constructor",
)

// LogFilter selects audit records. Zero fields are ignored; From and To
// bound created_at inclusively.
type LogFilter struct {
	UserUUID   string
	Action     string
	TargetType string
	TargetID   string
	From       *time.Time
	To         *time.Time
}

// QueryLogsQuery lists audit records, newest first. Limit defaults to 50.
type QueryLogsQuery struct {
	userUUID *kernel.UUID
	filter   LogFilter
	page     Page
	guard    guard.ConstructorGuard
}

func NewQueryLogsQuery(filter LogFilter, page, limit int) (QueryLogsQuery, error) {
	query := QueryLogsQuery{
		filter: filter,
		page:   newLenientPage(page, limit, DefaultLogPageLimit),
		guard:  guard.NewConstructorGuard(),
	}

	if filter.UserUUID != "" {
		parsed, err := kernel.UUIDFromString(filter.UserUUID)
		if err != nil {
			return QueryLogsQuery{}, errs.NewValueIsInvalidErrorWithCause("userUuid", err)
		}
		query.userUUID = &parsed
	}
	if filter.From != nil && filter.To != nil && filter.From.After(*filter.To) {
		return QueryLogsQuery{}, errs.NewValueIsInvalidError("startDate must not be after endDate")
	}

	return query, nil
}

func (q QueryLogsQuery) Validate() error {
	return q.guard.Validate(ErrQueryLogsQueryIsNotConstructed)
}
