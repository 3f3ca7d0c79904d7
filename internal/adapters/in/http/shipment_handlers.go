package http

import (
	"net/http"

	"rfidship/internal/core/application/usecases/commands"
	"rfidship/internal/core/application/usecases/queries"
	"rfidship/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// CreateShipment handles POST /api/v1/shipments.
func (s *Server) CreateShipment(c echo.Context) error {
	var req servers.CreateShipmentJSONRequestBody
	if err := bind(c, &req); err != nil {
		return err
	}
	caller, err := actor(c)
	if err != nil {
		return err
	}

	cmd, err := commands.NewCreateShipmentCommand(caller, valueOr(req.Note, ""))
	if err != nil {
		return err
	}
	result, err := s.handlers.CreateShipment.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, result)
}

// GetShipment handles GET /api/v1/shipments/{shipmentNo}.
func (s *Server) GetShipment(c echo.Context, shipmentNo servers.ShipmentNo) error {
	query, err := queries.NewGetShipmentQuery(shipmentNo)
	if err != nil {
		return err
	}
	result, err := s.handlers.GetShipment.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result)
}

// AddBoxToShipment handles POST /api/v1/shipments/{shipmentNo}/boxes.
func (s *Server) AddBoxToShipment(c echo.Context, shipmentNo servers.ShipmentNo) error {
	var req servers.AddBoxToShipmentJSONRequestBody
	if err := bind(c, &req); err != nil {
		return err
	}
	caller, err := actor(c)
	if err != nil {
		return err
	}

	cmd, err := commands.NewAddBoxToShipmentCommand(caller, shipmentNo, req.BoxNo)
	if err != nil {
		return err
	}
	result, err := s.handlers.AddBoxToShipment.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result)
}

// RemoveBoxFromShipment handles DELETE /api/v1/shipments/{shipmentNo}/boxes/{boxNo}.
func (s *Server) RemoveBoxFromShipment(c echo.Context, shipmentNo servers.ShipmentNo, boxNo servers.BoxNo) error {
	caller, err := actor(c)
	if err != nil {
		return err
	}

	cmd, err := commands.NewRemoveBoxFromShipmentCommand(caller, shipmentNo, boxNo)
	if err != nil {
		return err
	}
	result, err := s.handlers.RemoveBoxFromShipment.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result)
}

// ShipShipment handles POST /api/v1/shipments/{shipmentNo}/ship.
func (s *Server) ShipShipment(c echo.Context, shipmentNo servers.ShipmentNo) error {
	caller, err := actor(c)
	if err != nil {
		return err
	}

	cmd, err := commands.NewShipShipmentCommand(caller, shipmentNo)
	if err != nil {
		return err
	}
	result, err := s.handlers.ShipShipment.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result)
}

// UpdateShipmentNote handles PATCH /api/v1/shipments/{shipmentNo}/note.
func (s *Server) UpdateShipmentNote(c echo.Context, shipmentNo servers.ShipmentNo) error {
	var req servers.UpdateShipmentNoteJSONRequestBody
	if err := bind(c, &req); err != nil {
		return err
	}
	caller, err := actor(c)
	if err != nil {
		return err
	}

	cmd, err := commands.NewUpdateShipmentNoteCommand(caller, shipmentNo, valueOr(req.Note, ""))
	if err != nil {
		return err
	}
	result, err := s.handlers.UpdateShipmentNote.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result)
}
