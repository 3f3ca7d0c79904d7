// Package shipmentrepo persists shipments. Loading a shipment also loads
// its boxes and their packed units.
package shipmentrepo

import (
	"time"

	"rfidship/internal/adapters/out/postgres/boxrepo"
	"rfidship/internal/core/domain/model/box"
	"rfidship/internal/core/domain/model/kernel"
	"rfidship/internal/core/domain/model/shipment"

	"github.com/google/uuid"
)

// ShipmentDTO is the shipments row. Boxes is read-only.
type ShipmentDTO struct {
	ShipmentNo string           `gorm:"column:shipment_no;type:varchar(16);primaryKey"`
	UserCode   string           `gorm:"column:user_code;type:varchar(3);not null"`
	Note       string           `gorm:"column:note;type:varchar(500);not null"`
	Status     string           `gorm:"column:status;type:varchar(20);not null"`
	CreatedBy  uuid.UUID        `gorm:"column:created_by;type:uuid;not null"`
	CreatedAt  time.Time        `gorm:"column:created_at;not null;autoCreateTime:false"`
	UpdatedAt  time.Time        `gorm:"column:updated_at;not null;autoUpdateTime:false"`
	Boxes      []boxrepo.BoxDTO `gorm:"foreignKey:ShipmentNo;references:ShipmentNo"`
}

func (ShipmentDTO) TableName() string {
	return "shipments"
}

func fromDomain(s *shipment.Shipment) ShipmentDTO {
	return ShipmentDTO{
		ShipmentNo: s.ShipmentNo().String(),
		UserCode:   s.UserCode().String(),
		Note:       s.Note(),
		Status:     s.Status().String(),
		CreatedBy:  s.CreatedBy().Bytes(),
		CreatedAt:  s.CreatedAt(),
		UpdatedAt:  s.UpdatedAt(),
	}
}

func toDomain(dto ShipmentDTO, shipmentOpts []shipment.Option, boxOpts []box.Option) (*shipment.Shipment, error) {
	shipmentNo, err := kernel.NewShipmentNumber(dto.ShipmentNo)
	if err != nil {
		return nil, err
	}
	userCode, err := kernel.NewUserCode(dto.UserCode)
	if err != nil {
		return nil, err
	}
	createdBy, err := kernel.UUIDFromBytes(dto.CreatedBy[:])
	if err != nil {
		return nil, err
	}
	status, err := shipment.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	boxes := make([]*box.Box, 0, len(dto.Boxes))
	for _, boxDTO := range dto.Boxes {
		b, boxErr := boxrepo.ToDomain(boxDTO, boxOpts...)
		if boxErr != nil {
			return nil, boxErr
		}
		boxes = append(boxes, b)
	}

	return shipment.RestoreShipment(
		shipmentNo,
		userCode,
		createdBy,
		dto.Note,
		status,
		dto.CreatedAt,
		dto.UpdatedAt,
		boxes,
		shipmentOpts...,
	)
}
