package shipmentrepo

import (
	"context"

	"rfidship/internal/adapters/out/postgres/gormerr"
	"rfidship/internal/adapters/out/postgres/productrfidrepo"
	"rfidship/internal/core/domain/model/box"
	"rfidship/internal/core/domain/model/kernel"
	"rfidship/internal/core/domain/model/shipment"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const entityName = "shipment"

// GormShipmentRepository implements ports.ShipmentRepository using GORM.
type GormShipmentRepository struct {
	db           *gorm.DB
	shipmentOpts []shipment.Option
	boxOpts      []box.Option
}

func NewGormShipmentRepository(
	db *gorm.DB,
	shipmentOpts []shipment.Option,
	boxOpts []box.Option,
) *GormShipmentRepository {
	return &GormShipmentRepository{db: db, shipmentOpts: shipmentOpts, boxOpts: boxOpts}
}

func (r *GormShipmentRepository) Add(ctx context.Context, aggregate *shipment.Shipment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&dto).Error; err != nil {
		return gormerr.Translate(err, entityName, dto.ShipmentNo)
	}
	return nil
}

// Update stores note, status and modification time.
func (r *GormShipmentRepository) Update(ctx context.Context, aggregate *shipment.Shipment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&ShipmentDTO{}).
		Where("shipment_no = ?", dto.ShipmentNo).
		Updates(map[string]any{
			"note":       dto.Note,
			"status":     dto.Status,
			"updated_at": dto.UpdatedAt,
		})
	return gormerr.NotFoundUnlessAffected(result, entityName, dto.ShipmentNo)
}

// Get loads the shipment with its boxes in the order they were assigned.
func (r *GormShipmentRepository) Get(
	ctx context.Context,
	shipmentNo kernel.ShipmentNumber,
) (*shipment.Shipment, error) {
	if err := shipmentNo.Validate(); err != nil {
		return nil, err
	}

	var dto ShipmentDTO
	if err := r.db.WithContext(ctx).
		Preload("Boxes", func(db *gorm.DB) *gorm.DB {
			return db.Order("updated_at ASC").Order("box_no ASC")
		}).
		Preload("Boxes.ProductRfids", productrfidrepo.PackingOrder).
		First(&dto, "shipment_no = ?", shipmentNo.String()).Error; err != nil {
		return nil, gormerr.Translate(err, entityName, shipmentNo.String())
	}
	return toDomain(dto, r.shipmentOpts, r.boxOpts)
}

func (r *GormShipmentRepository) Exists(ctx context.Context, shipmentNo kernel.ShipmentNumber) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&ShipmentDTO{}).
		Where("shipment_no = ?", shipmentNo.String()).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *GormShipmentRepository) Delete(ctx context.Context, shipmentNo kernel.ShipmentNumber) error {
	result := r.db.WithContext(ctx).Delete(&ShipmentDTO{}, "shipment_no = ?", shipmentNo.String())
	return gormerr.NotFoundUnlessAffected(result, entityName, shipmentNo.String())
}
