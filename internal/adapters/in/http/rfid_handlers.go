package http

import (
	"net/http"

	"rfidship/internal/core/application/usecases/commands"
	"rfidship/internal/core/application/usecases/queries"
	"rfidship/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// CreateRfid handles POST /api/v1/rfids.
func (s *Server) CreateRfid(c echo.Context) error {
	var req servers.CreateRfidJSONRequestBody
	if err := bind(c, &req); err != nil {
		return err
	}
	caller, err := actor(c)
	if err != nil {
		return err
	}

	cmd, err := commands.NewCreateRfidCommand(caller, req.Sku, valueOr(req.ProductNo, ""), req.SerialNo)
	if err != nil {
		return err
	}
	result, err := s.handlers.CreateRfid.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, result)
}

// BatchCreateRfid handles POST /api/v1/rfids/batch. Skipped items are part
// of a successful response.
func (s *Server) BatchCreateRfid(c echo.Context) error {
	var req servers.BatchCreateRfidJSONRequestBody
	if err := bind(c, &req); err != nil {
		return err
	}
	caller, err := actor(c)
	if err != nil {
		return err
	}

	cmd, err := commands.NewBatchCreateRfidCommand(caller, req.Sku, valueOr(req.ProductNo, ""), req.StartSerial, req.Quantity)
	if err != nil {
		return err
	}
	result, err := s.handlers.BatchCreateRfid.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, result)
}

// GenerateProductRfids handles POST /api/v1/rfids/generate.
func (s *Server) GenerateProductRfids(c echo.Context) error {
	var req servers.GenerateProductRfidsJSONRequestBody
	if err := bind(c, &req); err != nil {
		return err
	}
	caller, err := actor(c)
	if err != nil {
		return err
	}

	cmd, err := commands.NewGenerateProductRfidsCommand(caller, req.Sku, req.Quantity)
	if err != nil {
		return err
	}
	result, err := s.handlers.GenerateProductRfids.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, result)
}

// QueryProductRfids handles GET /api/v1/rfids.
func (s *Server) QueryProductRfids(c echo.Context, params servers.QueryProductRfidsParams) error {
	query, err := queries.NewQueryProductRfidsQuery(
		valueOr(params.Sku, ""),
		valueOr(params.BoxNo, ""),
		string(valueOr(params.Status, "")),
		valueOr(params.Page, 0),
		valueOr(params.Limit, 0),
	)
	if err != nil {
		return err
	}
	result, err := s.handlers.QueryProductRfids.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result)
}
