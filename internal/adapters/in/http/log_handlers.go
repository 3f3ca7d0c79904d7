package http

import (
	"net/http"

	"rfidship/internal/core/application/usecases/queries"
	"rfidship/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// QueryLogs handles GET /api/v1/logs. startDate and endDate are RFC 3339
// timestamps.
func (s *Server) QueryLogs(c echo.Context, params servers.QueryLogsParams) error {
	filter := queries.LogFilter{
		UserUUID:   valueOr(params.UserUuid, ""),
		Action:     valueOr(params.Action, ""),
		TargetType: valueOr(params.TargetType, ""),
		TargetID:   valueOr(params.TargetId, ""),
		From:       params.StartDate,
		To:         params.EndDate,
	}

	query, err := queries.NewQueryLogsQuery(filter, valueOr(params.Page, 0), valueOr(params.Limit, 0))
	if err != nil {
		return err
	}
	result, err := s.handlers.QueryLogs.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result)
}

// GetLogSummary handles GET /api/v1/logs/summary.
func (s *Server) GetLogSummary(c echo.Context) error {
	result, err := s.handlers.GetLogSummary.Handle(c.Request().Context(), queries.NewGetLogSummaryQuery())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result)
}
