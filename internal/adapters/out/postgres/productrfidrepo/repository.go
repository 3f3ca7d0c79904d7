package productrfidrepo

import (
	"context"

	"rfidship/internal/adapters/out/postgres/gormerr"
	"rfidship/internal/core/domain/model/kernel"
	"rfidship/internal/core/domain/model/productrfid"

	"gorm.io/gorm"
)

const entityName = "product rfid"

// GormProductRfidRepository implements ports.ProductRfidRepository using GORM.
type GormProductRfidRepository struct {
	db    *gorm.DB
	clock kernel.Clock
}

// NewGormProductRfidRepository creates a repository that stamps packing
// changes with clock, or the system clock when clock is nil.
func NewGormProductRfidRepository(db *gorm.DB, clock kernel.Clock) *GormProductRfidRepository {
	if clock == nil {
		clock = kernel.SystemClock
	}
	return &GormProductRfidRepository{db: db, clock: clock}
}

// Add inserts a new unit. A taken tag or (SKU, serial) pair is reported
// as errs.ConflictError.
func (r *GormProductRfidRepository) Add(ctx context.Context, aggregate *productrfid.ProductRfid) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := FromDomain(aggregate)
	dto.UpdatedAt = dto.CreatedAt
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return gormerr.Translate(err, entityName, dto.Rfid)
	}
	aggregate.MarkStored()
	return nil
}

// Update stores the box back-reference and stamps the packing time. The
// write only applies while the stored reference still matches the one the
// aggregate was loaded with, so two writers packing the same unit cannot
// both succeed; the loser gets errs.ConflictError.
func (r *GormProductRfidRepository) Update(ctx context.Context, aggregate *productrfid.ProductRfid) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := FromDomain(aggregate)
	query := r.db.WithContext(ctx).
		Model(&ProductRfidDTO{}).
		Where("rfid = ?", dto.Rfid)
	if stored := aggregate.StoredBoxNo(); stored != nil {
		query = query.Where("box_no = ?", stored.String())
	} else {
		query = query.Where("box_no IS NULL")
	}

	result := query.Updates(map[string]any{
		"box_no":     dto.BoxNo,
		"updated_at": r.clock(),
	})
	err := gormerr.StaleUnlessAffected(result, func() (bool, error) {
		return r.Exists(ctx, aggregate.Rfid())
	}, entityName, dto.Rfid)
	if err != nil {
		return err
	}

	aggregate.MarkStored()
	return nil
}

func (r *GormProductRfidRepository) Get(ctx context.Context, tag kernel.RfidTag) (*productrfid.ProductRfid, error) {
	if err := tag.Validate(); err != nil {
		return nil, err
	}

	var dto ProductRfidDTO
	if err := r.db.WithContext(ctx).First(&dto, "rfid = ?", tag.String()).Error; err != nil {
		return nil, gormerr.Translate(err, entityName, tag.String())
	}
	return ToDomain(dto)
}

func (r *GormProductRfidRepository) Exists(ctx context.Context, tag kernel.RfidTag) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&ProductRfidDTO{}).
		Where("rfid = ?", tag.String()).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *GormProductRfidRepository) GetBySkuAndSerial(
	ctx context.Context,
	sku kernel.SKU,
	serial kernel.SerialNumber,
) (*productrfid.ProductRfid, error) {
	var dto ProductRfidDTO
	err := r.db.WithContext(ctx).
		Where("sku = ? AND serial_no = ?", sku.String(), serial.String()).
		First(&dto).Error
	if err != nil {
		return nil, gormerr.Translate(err, entityName, sku.String()+serial.String())
	}
	return ToDomain(dto)
}

// ListByBox returns the packed units ordered by packing time.
func (r *GormProductRfidRepository) ListByBox(
	ctx context.Context,
	boxNo kernel.BoxNumber,
) ([]*productrfid.ProductRfid, error) {
	var dtos []ProductRfidDTO
	if err := r.db.WithContext(ctx).
		Where("box_no = ?", boxNo.String()).
		Scopes(PackingOrder).
		Find(&dtos).Error; err != nil {
		return nil, err
	}
	return ToDomainList(dtos)
}

func (r *GormProductRfidRepository) Delete(ctx context.Context, tag kernel.RfidTag) error {
	result := r.db.WithContext(ctx).Delete(&ProductRfidDTO{}, "rfid = ?", tag.String())
	return gormerr.NotFoundUnlessAffected(result, entityName, tag.String())
}

// PackingOrder sorts units the way they were packed. boxrepo reuses it when
// preloading box contents.
func PackingOrder(db *gorm.DB) *gorm.DB {
	return db.Order("updated_at ASC").Order("rfid ASC")
}
