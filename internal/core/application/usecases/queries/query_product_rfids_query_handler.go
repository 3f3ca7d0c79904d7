package queries

import (
	"context"

	"gorm.io/gorm"
)

type QueryProductRfidsQueryHandler struct {
	db *gorm.DB
}

func NewQueryProductRfidsQueryHandler(db *gorm.DB) QueryProductRfidsQueryHandler {
	return QueryProductRfidsQueryHandler{db: db}
}

func (h QueryProductRfidsQueryHandler) Handle(
	ctx context.Context,
	query QueryProductRfidsQuery,
) (PageResult[RfidItem], error) {
	if err := query.Validate(); err != nil {
		return PageResult[RfidItem]{}, err
	}

	filtered := h.db.WithContext(ctx).Table("product_rfids AS p").Joins(rfidJoins)
	if query.sku != nil {
		filtered = filtered.Where("p.sku = ?", query.sku.String())
	}
	if query.boxNo != nil {
		filtered = filtered.Where("p.box_no = ?", query.boxNo.String())
	}
	switch query.status {
	case RfidStatusAvailable:
		filtered = filtered.Where("p.box_no IS NULL")
	case RfidStatusBound:
		filtered = filtered.Where("p.box_no IS NOT NULL AND (s.status IS NULL OR s.status <> 'SHIPPED')")
	case RfidStatusShipped:
		filtered = filtered.Where("s.status = 'SHIPPED'")
	}
	filtered = filtered.Session(&gorm.Session{})

	var total int64
	if err := filtered.Count(&total).Error; err != nil {
		return PageResult[RfidItem]{}, err
	}

	var rows []rfidRow
	if err := query.page.apply(filtered.
		Select(rfidColumns).
		Order("p.created_at DESC").
		Order("p.rfid ASC")).
		Scan(&rows).Error; err != nil {
		return PageResult[RfidItem]{}, err
	}

	return newPageResult(items[rfidRow, RfidItem](rows), total, query.page), nil
}
