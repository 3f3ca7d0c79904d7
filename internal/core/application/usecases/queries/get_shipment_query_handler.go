package queries

import (
	"context"
	"time"

	"rfidship/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetShipmentQueryHandler struct {
	db *gorm.DB
}

func NewGetShipmentQueryHandler(db *gorm.DB) GetShipmentQueryHandler {
	return GetShipmentQueryHandler{db: db}
}

// Handle returns errs.ObjectNotFoundError for an unknown shipment.
func (h GetShipmentQueryHandler) Handle(ctx context.Context, query GetShipmentQuery) (ShipmentView, error) {
	if err := query.Validate(); err != nil {
		return ShipmentView{}, err
	}

	view, err := h.loadHeader(ctx, query)
	if err != nil {
		return ShipmentView{}, err
	}

	var boxes []boxRow
	if err = h.db.WithContext(ctx).Raw(`
		SELECT `+boxColumns+`
		FROM boxes b
		WHERE b.shipment_no = ?
		ORDER BY b.updated_at, b.box_no
	`, view.ShipmentNo).Scan(&boxes).Error; err != nil {
		return ShipmentView{}, err
	}

	view.Boxes = items[boxRow, BoxItem](boxes)
	view.BoxCount = len(view.Boxes)
	for _, b := range view.Boxes {
		view.TotalProducts += b.ProductCount
	}

	return view, nil
}

func (h GetShipmentQueryHandler) loadHeader(ctx context.Context, query GetShipmentQuery) (ShipmentView, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			shipment_no,
			user_code,
			note,
			status,
			created_by,
			created_at,
			updated_at
		FROM shipments
		WHERE shipment_no = ?
	`, query.shipmentNo.String()).Rows()
	if err != nil {
		return ShipmentView{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return ShipmentView{}, err
		}
		return ShipmentView{}, errs.NewObjectNotFoundError("shipment", query.shipmentNo.String())
	}

	var view ShipmentView
	var createdBy uuid.UUID
	var createdAt, updatedAt time.Time
	if err = rows.Scan(
		&view.ShipmentNo,
		&view.UserCode,
		&view.Note,
		&view.Status,
		&createdBy,
		&createdAt,
		&updatedAt,
	); err != nil {
		return ShipmentView{}, err
	}
	view.CreatedBy = createdBy.String()
	view.CreatedAt = createdAt
	view.UpdatedAt = updatedAt

	return view, rows.Err()
}
