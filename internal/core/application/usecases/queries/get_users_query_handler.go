package queries

import (
	"context"

	"gorm.io/gorm"
)

type GetUsersQueryHandler struct {
	db *gorm.DB
}

func NewGetUsersQueryHandler(db *gorm.DB) GetUsersQueryHandler {
	return GetUsersQueryHandler{db: db}
}

func (h GetUsersQueryHandler) Handle(ctx context.Context, query GetUsersQuery) (PageResult[UserItem], error) {
	if err := query.Validate(); err != nil {
		return PageResult[UserItem]{}, err
	}

	filtered := h.db.WithContext(ctx).Table("users AS u")
	if query.userType != nil {
		filtered = filtered.Where("u.user_type = ?", query.userType.String())
	}
	if query.code != nil {
		filtered = filtered.Where("u.code = ?", query.code.String())
	}
	filtered = filtered.Session(&gorm.Session{})

	var total int64
	if err := filtered.Count(&total).Error; err != nil {
		return PageResult[UserItem]{}, err
	}

	var rows []userRow
	if err := query.page.apply(filtered.
		Select(userColumns).
		Order("u.created_at DESC").
		Order("u.account ASC")).
		Scan(&rows).Error; err != nil {
		return PageResult[UserItem]{}, err
	}

	return newPageResult(items[userRow, UserItem](rows), total, query.page), nil
}
