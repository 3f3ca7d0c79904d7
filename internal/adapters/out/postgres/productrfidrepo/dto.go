// Package productrfidrepo persists tagged product units. Its DTO is shared
// with boxrepo, which preloads the units packed in a box.
package productrfidrepo

import (
	"time"

	"rfidship/internal/core/domain/model/kernel"
	"rfidship/internal/core/domain/model/productrfid"

	"github.com/google/uuid"
)

// ProductRfidDTO is the product_rfids row. UpdatedAt moves when the unit is
// packed or unpacked and orders the contents of a box.
type ProductRfidDTO struct {
	Rfid      string    `gorm:"column:rfid;type:varchar(17);primaryKey"`
	SKU       string    `gorm:"column:sku;type:varchar(13);not null;uniqueIndex:uq_product_rfids_sku_serial"`
	ProductNo string    `gorm:"column:product_no;type:varchar(8);not null;index"`
	SerialNo  string    `gorm:"column:serial_no;type:varchar(4);not null;uniqueIndex:uq_product_rfids_sku_serial"`
	BoxNo     *string   `gorm:"column:box_no;type:varchar(13);index"`
	CreatedBy uuid.UUID `gorm:"column:created_by;type:uuid;not null"`
	CreatedAt time.Time `gorm:"column:created_at;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null"`
}

func (ProductRfidDTO) TableName() string {
	return "product_rfids"
}

// FromDomain maps a unit to its row. UpdatedAt is left to the caller.
func FromDomain(p *productrfid.ProductRfid) ProductRfidDTO {
	var boxNo *string
	if p.BoxNo() != nil {
		raw := p.BoxNo().String()
		boxNo = &raw
	}

	return ProductRfidDTO{
		Rfid:      p.Rfid().String(),
		SKU:       p.SKU().String(),
		ProductNo: p.ProductNo().String(),
		SerialNo:  p.SerialNo().String(),
		BoxNo:     boxNo,
		CreatedBy: p.CreatedBy().Bytes(),
		CreatedAt: p.CreatedAt(),
	}
}

// ToDomain rebuilds a unit from its row.
func ToDomain(dto ProductRfidDTO) (*productrfid.ProductRfid, error) {
	tag, err := kernel.NewRfidTag(dto.Rfid)
	if err != nil {
		return nil, err
	}
	sku, err := kernel.NewSKU(dto.SKU)
	if err != nil {
		return nil, err
	}
	productNo, err := kernel.NewProductNumber(dto.ProductNo)
	if err != nil {
		return nil, err
	}
	serial, err := kernel.NewSerialNumber(dto.SerialNo)
	if err != nil {
		return nil, err
	}
	createdBy, err := kernel.UUIDFromBytes(dto.CreatedBy[:])
	if err != nil {
		return nil, err
	}

	var boxNo *kernel.BoxNumber
	if dto.BoxNo != nil {
		parsed, boxErr := kernel.NewBoxNumber(*dto.BoxNo)
		if boxErr != nil {
			return nil, boxErr
		}
		boxNo = &parsed
	}

	return productrfid.RestoreProductRfid(tag, sku, productNo, serial, createdBy, dto.CreatedAt, boxNo)
}

// ToDomainList converts rows in order.
func ToDomainList(dtos []ProductRfidDTO) ([]*productrfid.ProductRfid, error) {
	units := make([]*productrfid.ProductRfid, 0, len(dtos))
	for _, dto := range dtos {
		p, err := ToDomain(dto)
		if err != nil {
			return nil, err
		}
		units = append(units, p)
	}
	return units, nil
}
