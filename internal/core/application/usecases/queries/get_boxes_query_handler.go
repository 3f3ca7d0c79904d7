package queries

import (
	"context"

	"gorm.io/gorm"
)

type GetBoxesQueryHandler struct {
	db *gorm.DB
}

func NewGetBoxesQueryHandler(db *gorm.DB) GetBoxesQueryHandler {
	return GetBoxesQueryHandler{db: db}
}

func (h GetBoxesQueryHandler) Handle(ctx context.Context, query GetBoxesQuery) (PageResult[BoxItem], error) {
	if err := query.Validate(); err != nil {
		return PageResult[BoxItem]{}, err
	}

	filtered := h.db.WithContext(ctx).Table("boxes AS b")
	if query.shipmentNo != nil {
		filtered = filtered.Where("b.shipment_no = ?", query.shipmentNo.String())
	}
	switch query.status {
	case boxStatusCreated:
		filtered = filtered.Where("b.shipment_no IS NULL")
	case boxStatusPacked:
		filtered = filtered.Where("b.shipment_no IS NOT NULL")
	}
	filtered = filtered.Session(&gorm.Session{})

	var total int64
	if err := filtered.Count(&total).Error; err != nil {
		return PageResult[BoxItem]{}, err
	}

	var rows []boxRow
	if err := query.page.apply(filtered.
		Select(boxColumns).
		Order("b.created_at DESC").
		Order("b.box_no DESC")).
		Scan(&rows).Error; err != nil {
		return PageResult[BoxItem]{}, err
	}

	return newPageResult(items[boxRow, BoxItem](rows), total, query.page), nil
}
