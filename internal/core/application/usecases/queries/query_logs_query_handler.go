package queries

import (
	"context"

	"gorm.io/gorm"
)

type QueryLogsQueryHandler struct {
	db *gorm.DB
}

func NewQueryLogsQueryHandler(db *gorm.DB) QueryLogsQueryHandler {
	return QueryLogsQueryHandler{db: db}
}

// Handle joins the acting user's name when the account still exists.
func (h QueryLogsQueryHandler) Handle(ctx context.Context, query QueryLogsQuery) (PageResult[LogItem], error) {
	if err := query.Validate(); err != nil {
		return PageResult[LogItem]{}, err
	}

	filtered := h.db.WithContext(ctx).
		Table("system_logs AS l").
		Joins("LEFT JOIN users u ON u.uuid = l.user_uuid")
	if query.userUUID != nil {
		filtered = filtered.Where("l.user_uuid = ?", query.userUUID.String())
	}
	if query.filter.Action != "" {
		filtered = filtered.Where("l.action = ?", query.filter.Action)
	}
	if query.filter.TargetType != "" {
		filtered = filtered.Where("l.target_type = ?", query.filter.TargetType)
	}
	if query.filter.TargetID != "" {
		filtered = filtered.Where("l.target_id = ?", query.filter.TargetID)
	}
	if query.filter.From != nil {
		filtered = filtered.Where("l.created_at >= ?", *query.filter.From)
	}
	if query.filter.To != nil {
		filtered = filtered.Where("l.created_at <= ?", *query.filter.To)
	}
	filtered = filtered.Session(&gorm.Session{})

	var total int64
	if err := filtered.Count(&total).Error; err != nil {
		return PageResult[LogItem]{}, err
	}

	var rows []logRow
	if err := query.page.apply(filtered.
		Select(logColumns).
		Order("l.created_at DESC").
		Order("l.id DESC")).
		Scan(&rows).Error; err != nil {
		return PageResult[LogItem]{}, err
	}

	return newPageResult(items[logRow, LogItem](rows), total, query.page), nil
}
