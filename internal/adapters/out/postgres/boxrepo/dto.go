// Package boxrepo persists boxes together with the units packed in them.
package boxrepo

import (
	"time"

	"rfidship/internal/adapters/out/postgres/productrfidrepo"
	"rfidship/internal/core/domain/model/box"
	"rfidship/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// BoxDTO is the boxes row. ProductRfids is read-only: units are written
// through productrfidrepo.
type BoxDTO struct {
	BoxNo        string                           `gorm:"column:box_no;type:varchar(13);primaryKey"`
	Code         string                           `gorm:"column:code;type:varchar(3);not null"`
	ShipmentNo   *string                          `gorm:"column:shipment_no;type:varchar(16);index"`
	CreatedBy    uuid.UUID                        `gorm:"column:created_by;type:uuid;not null"`
	CreatedAt    time.Time                        `gorm:"column:created_at;not null;autoCreateTime:false"`
	UpdatedAt    time.Time                        `gorm:"column:updated_at;not null;autoUpdateTime:false"`
	ProductRfids []productrfidrepo.ProductRfidDTO `gorm:"foreignKey:BoxNo;references:BoxNo"`
}

func (BoxDTO) TableName() string {
	return "boxes"
}

// FromDomain maps the box row. Packed units are not included.
func FromDomain(b *box.Box) BoxDTO {
	var shipmentNo *string
	if b.ShipmentNo() != nil {
		raw := b.ShipmentNo().String()
		shipmentNo = &raw
	}

	return BoxDTO{
		BoxNo:      b.BoxNo().String(),
		Code:       b.Code().String(),
		ShipmentNo: shipmentNo,
		CreatedBy:  b.CreatedBy().Bytes(),
		CreatedAt:  b.CreatedAt(),
		UpdatedAt:  b.UpdatedAt(),
	}
}

// ToDomain rebuilds a box and its preloaded units.
func ToDomain(dto BoxDTO, opts ...box.Option) (*box.Box, error) {
	boxNo, err := kernel.NewBoxNumber(dto.BoxNo)
	if err != nil {
		return nil, err
	}
	code, err := kernel.NewUserCode(dto.Code)
	if err != nil {
		return nil, err
	}
	createdBy, err := kernel.UUIDFromBytes(dto.CreatedBy[:])
	if err != nil {
		return nil, err
	}

	var shipmentNo *kernel.ShipmentNumber
	if dto.ShipmentNo != nil {
		parsed, shipmentErr := kernel.NewShipmentNumber(*dto.ShipmentNo)
		if shipmentErr != nil {
			return nil, shipmentErr
		}
		shipmentNo = &parsed
	}

	units, err := productrfidrepo.ToDomainList(dto.ProductRfids)
	if err != nil {
		return nil, err
	}

	return box.RestoreBox(boxNo, code, createdBy, dto.CreatedAt, dto.UpdatedAt, shipmentNo, units, opts...)
}
