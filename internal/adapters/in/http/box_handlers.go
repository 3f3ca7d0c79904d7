package http

import (
	"net/http"

	"rfidship/internal/core/application/usecases/commands"
	"rfidship/internal/core/application/usecases/queries"
	"rfidship/internal/core/ports"
	"rfidship/internal/generated/servers"
	"rfidship/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const maxLabelsPerRequest = 100

// CreateBox handles POST /api/v1/boxes.
func (s *Server) CreateBox(c echo.Context) error {
	var req servers.CreateBoxJSONRequestBody
	if err := bind(c, &req); err != nil {
		return err
	}
	caller, err := actor(c)
	if err != nil {
		return err
	}

	cmd, err := commands.NewCreateBoxCommand(caller, req.Code)
	if err != nil {
		return err
	}
	result, err := s.handlers.CreateBox.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, result)
}

// CreateBatchBoxes handles POST /api/v1/boxes/batch.
func (s *Server) CreateBatchBoxes(c echo.Context) error {
	var req servers.CreateBatchBoxesJSONRequestBody
	if err := bind(c, &req); err != nil {
		return err
	}
	caller, err := actor(c)
	if err != nil {
		return err
	}

	cmd, err := commands.NewCreateBatchBoxesCommand(caller, req.Code, req.Quantity)
	if err != nil {
		return err
	}
	result, err := s.handlers.CreateBatchBoxes.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, result)
}

// GetBoxes handles GET /api/v1/boxes. Page and limit default to 1 and 20
// when absent; explicit values are validated strictly.
func (s *Server) GetBoxes(c echo.Context, params servers.GetBoxesParams) error {
	query, err := queries.NewGetBoxesQuery(
		valueOr(params.Page, 1),
		valueOr(params.Limit, queries.DefaultPageLimit),
		valueOr(params.ShipmentNo, ""),
		string(valueOr(params.Status, "")),
	)
	if err != nil {
		return err
	}
	result, err := s.handlers.GetBoxes.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result)
}

// GetBoxByNo handles GET /api/v1/boxes/{boxNo}.
func (s *Server) GetBoxByNo(c echo.Context, boxNo servers.BoxNo) error {
	query, err := queries.NewGetBoxByNoQuery(boxNo)
	if err != nil {
		return err
	}
	result, err := s.handlers.GetBoxByNo.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result)
}

// GetBoxLabels handles GET /api/v1/boxes/labels?boxNo=...&boxNo=... and
// returns a PDF with one label per box in request order.
func (s *Server) GetBoxLabels(c echo.Context, params servers.GetBoxLabelsParams) error {
	boxNos := params.BoxNo
	if len(boxNos) == 0 {
		return errs.NewValueIsRequiredError("boxNo")
	}
	if len(boxNos) > maxLabelsPerRequest {
		return errs.NewValueIsOutOfRangeError("boxNo count", len(boxNos), 1, maxLabelsPerRequest)
	}

	labels := make([]ports.BoxLabel, 0, len(boxNos))
	for _, boxNo := range boxNos {
		query, err := queries.NewGetBoxByNoQuery(boxNo)
		if err != nil {
			return err
		}
		view, err := s.handlers.GetBoxByNo.Handle(c.Request().Context(), query)
		if err != nil {
			return err
		}
		label := ports.BoxLabel{
			BoxNo:        view.BoxNo,
			Code:         view.Code,
			ProductCount: view.ProductCount,
			CreatedAt:    view.CreatedAt,
		}
		if view.ShipmentNo != nil {
			label.ShipmentNo = *view.ShipmentNo
		}
		labels = append(labels, label)
	}

	doc, err := s.labels.Render(labels)
	if err != nil {
		return err
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, `inline; filename="box-labels.pdf"`)
	return c.Blob(http.StatusOK, "application/pdf", doc)
}

// AddRfidToBox handles POST /api/v1/boxes/{boxNo}/rfids.
func (s *Server) AddRfidToBox(c echo.Context, boxNo servers.BoxNo) error {
	var req servers.AddRfidToBoxJSONRequestBody
	if err := bind(c, &req); err != nil {
		return err
	}
	caller, err := actor(c)
	if err != nil {
		return err
	}

	cmd, err := commands.NewAddRfidToBoxCommand(caller, boxNo, req.Rfid)
	if err != nil {
		return err
	}
	result, err := s.handlers.AddRfidToBox.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result)
}

// RemoveRfidFromBox handles DELETE /api/v1/boxes/{boxNo}/rfids/{rfid}.
func (s *Server) RemoveRfidFromBox(c echo.Context, boxNo servers.BoxNo, rfid string) error {
	caller, err := actor(c)
	if err != nil {
		return err
	}

	cmd, err := commands.NewRemoveRfidFromBoxCommand(caller, boxNo, rfid)
	if err != nil {
		return err
	}
	result, err := s.handlers.RemoveRfidFromBox.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result)
}
