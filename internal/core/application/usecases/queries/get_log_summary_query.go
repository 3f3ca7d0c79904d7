package queries

import (
	"errors"

	"rfidship/internal/pkg/guard"
)

var ErrGetLogSummaryQueryIsNotConstructed = errors.New(
	"GetLogSummaryQuery must be created via NewGetLogSummaryQuery constructor",
)

const (
	summaryTopActions   = 5
	summaryRecentEvents = 10
)

// GetLogSummaryQuery aggregates the whole audit trail. It takes no
// parameters.
type GetLogSummaryQuery struct {
	guard guard.ConstructorGuard
}

func NewGetLogSummaryQuery() GetLogSummaryQuery {
	return GetLogSummaryQuery{guard: guard.NewConstructorGuard()}
}

func (q GetLogSummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetLogSummaryQueryIsNotConstructed)
}

type ActionCount struct {
	Action string `json:"action"`
	Count  int64  `json:"count"`
}

// LogSummary reports totals, the five most frequent actions and the ten
// latest records.
type LogSummary struct {
	TotalLogs         int64         `json:"totalLogs"`
	UniqueUsers       int64         `json:"uniqueUsers"`
	MostCommonActions []ActionCount `json:"mostCommonActions"`
	RecentActivity    []LogItem     `json:"recentActivity"`
}
