package queries

import (
	"context"

	"rfidship/internal/core/domain/model/user"
	"rfidship/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetUserByUUIDQueryHandler struct {
	db *gorm.DB
}

func NewGetUserByUUIDQueryHandler(db *gorm.DB) GetUserByUUIDQueryHandler {
	return GetUserByUUIDQueryHandler{db: db}
}

// Handle returns errs.ObjectNotFoundError for an unknown requester or
// target and errs.ForbiddenError when a supplier asks for someone else.
func (h GetUserByUUIDQueryHandler) Handle(ctx context.Context, query GetUserByUUIDQuery) (UserItem, error) {
	if err := query.Validate(); err != nil {
		return UserItem{}, err
	}

	requester, err := h.load(ctx, query.requester.String())
	if err != nil {
		return UserItem{}, err
	}
	if requester.UserType == user.Supplier.String() && !query.target.IsEqual(query.requester) {
		return UserItem{}, errs.NewForbiddenError("suppliers can only view their own account")
	}
	if query.target.IsEqual(query.requester) {
		return requester.item(), nil
	}

	target, err := h.load(ctx, query.target.String())
	if err != nil {
		return UserItem{}, err
	}
	return target.item(), nil
}

func (h GetUserByUUIDQueryHandler) load(ctx context.Context, id string) (userRow, error) {
	var rows []userRow
	if err := h.db.WithContext(ctx).Raw(`
		SELECT `+userColumns+`
		FROM users u
		WHERE u.uuid = ?
	`, id).Scan(&rows).Error; err != nil {
		return userRow{}, err
	}
	if len(rows) == 0 {
		return userRow{}, errs.NewObjectNotFoundError("user", id)
	}
	return rows[0], nil
}
