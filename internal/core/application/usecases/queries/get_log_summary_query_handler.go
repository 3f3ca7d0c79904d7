package queries

import (
	"context"

	"gorm.io/gorm"
)

type GetLogSummaryQueryHandler struct {
	db *gorm.DB
}

func NewGetLogSummaryQueryHandler(db *gorm.DB) GetLogSummaryQueryHandler {
	return GetLogSummaryQueryHandler{db: db}
}

func (h GetLogSummaryQueryHandler) Handle(ctx context.Context, query GetLogSummaryQuery) (LogSummary, error) {
	if err := query.Validate(); err != nil {
		return LogSummary{}, err
	}

	var summary LogSummary
	if err := h.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*) AS total_logs,
			COUNT(DISTINCT user_uuid) AS unique_users
		FROM system_logs
	`).Row().Scan(&summary.TotalLogs, &summary.UniqueUsers); err != nil {
		return LogSummary{}, err
	}

	summary.MostCommonActions = make([]ActionCount, 0, summaryTopActions)
	if err := h.db.WithContext(ctx).Raw(`
		SELECT action, COUNT(*) AS count
		FROM system_logs
		GROUP BY action
		ORDER BY count DESC, action ASC
		LIMIT ?
	`, summaryTopActions).Scan(&summary.MostCommonActions).Error; err != nil {
		return LogSummary{}, err
	}

	var recent []logRow
	if err := h.db.WithContext(ctx).Raw(`
		SELECT `+logColumns+`
		FROM system_logs l
		LEFT JOIN users u ON u.uuid = l.user_uuid
		ORDER BY l.created_at DESC, l.id DESC
		LIMIT ?
	`, summaryRecentEvents).Scan(&recent).Error; err != nil {
		return LogSummary{}, err
	}
	summary.RecentActivity = items[logRow, LogItem](recent)

	return summary, nil
}
