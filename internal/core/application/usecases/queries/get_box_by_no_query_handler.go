package queries

import (
	"context"

	"rfidship/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetBoxByNoQueryHandler struct {
	db *gorm.DB
}

func NewGetBoxByNoQueryHandler(db *gorm.DB) GetBoxByNoQueryHandler {
	return GetBoxByNoQueryHandler{db: db}
}

// Handle returns errs.ObjectNotFoundError for an unknown box.
func (h GetBoxByNoQueryHandler) Handle(ctx context.Context, query GetBoxByNoQuery) (BoxView, error) {
	if err := query.Validate(); err != nil {
		return BoxView{}, err
	}

	var boxes []boxRow
	if err := h.db.WithContext(ctx).Raw(`
		SELECT `+boxColumns+`
		FROM boxes b
		WHERE b.box_no = ?
	`, query.boxNo.String()).Scan(&boxes).Error; err != nil {
		return BoxView{}, err
	}
	if len(boxes) == 0 {
		return BoxView{}, errs.NewObjectNotFoundError("box", query.boxNo.String())
	}

	var units []rfidRow
	if err := h.db.WithContext(ctx).Raw(`
		SELECT `+rfidColumns+`
		FROM product_rfids p
		`+rfidJoins+`
		WHERE p.box_no = ?
		ORDER BY p.updated_at, p.rfid
	`, query.boxNo.String()).Scan(&units).Error; err != nil {
		return BoxView{}, err
	}

	return BoxView{
		BoxItem:      boxes[0].item(),
		ProductRfids: items[rfidRow, RfidItem](units),
	}, nil
}
