package boxrepo

import (
	"context"

	"rfidship/internal/adapters/out/postgres/gormerr"
	"rfidship/internal/adapters/out/postgres/productrfidrepo"
	"rfidship/internal/core/domain/model/box"
	"rfidship/internal/core/domain/model/kernel"
	"rfidship/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	entityName = "box"
	batchSize  = 100
)

// GormBoxRepository implements ports.BoxRepository using GORM.
type GormBoxRepository struct {
	db   *gorm.DB
	opts []box.Option
}

// NewGormBoxRepository creates a repository whose loaded boxes are built
// with opts.
func NewGormBoxRepository(db *gorm.DB, opts ...box.Option) *GormBoxRepository {
	return &GormBoxRepository{db: db, opts: opts}
}

func (r *GormBoxRepository) Add(ctx context.Context, aggregate *box.Box) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := FromDomain(aggregate)
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&dto).Error; err != nil {
		return gormerr.Translate(err, entityName, dto.BoxNo)
	}
	aggregate.MarkStored()
	return nil
}

// AddBatch inserts all boxes in one statement per batchSize rows.
func (r *GormBoxRepository) AddBatch(ctx context.Context, aggregates []*box.Box) error {
	if len(aggregates) == 0 {
		return nil
	}

	dtos := make([]BoxDTO, 0, len(aggregates))
	for _, b := range aggregates {
		if err := b.Validate(); err != nil {
			return err
		}
		dtos = append(dtos, FromDomain(b))
	}

	err := r.db.WithContext(ctx).Omit(clause.Associations).CreateInBatches(&dtos, batchSize).Error
	if err != nil {
		return gormerr.Translate(err, entityName, dtos[0].BoxNo+"..."+dtos[len(dtos)-1].BoxNo)
	}
	for _, b := range aggregates {
		b.MarkStored()
	}
	return nil
}

// Update stores the shipment assignment and the modification time.
func (r *GormBoxRepository) Update(ctx context.Context, aggregate *box.Box) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := FromDomain(aggregate)
	query := r.db.WithContext(ctx).
		Model(&BoxDTO{}).
		Where("box_no = ?", dto.BoxNo)
	if stored := aggregate.StoredShipmentNo(); stored != nil {
		query = query.Where("shipment_no = ?", stored.String())
	} else {
		query = query.Where("shipment_no IS NULL")
	}

	result := query.Updates(map[string]any{
		"shipment_no": dto.ShipmentNo,
		"updated_at":  dto.UpdatedAt,
	})
	err := gormerr.StaleUnlessAffected(result, func() (bool, error) {
		return r.Exists(ctx, aggregate.BoxNo())
	}, entityName, dto.BoxNo)
	if err != nil {
		return err
	}

	aggregate.MarkStored()
	return nil
}

func (r *GormBoxRepository) Get(ctx context.Context, boxNo kernel.BoxNumber) (*box.Box, error) {
	if err := boxNo.Validate(); err != nil {
		return nil, err
	}

	var dto BoxDTO
	if err := r.db.WithContext(ctx).
		Preload("ProductRfids", productrfidrepo.PackingOrder).
		First(&dto, "box_no = ?", boxNo.String()).Error; err != nil {
		return nil, gormerr.Translate(err, entityName, boxNo.String())
	}
	return ToDomain(dto, r.opts...)
}

func (r *GormBoxRepository) Exists(ctx context.Context, boxNo kernel.BoxNumber) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&BoxDTO{}).
		Where("box_no = ?", boxNo.String()).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// GetLatestByPrefix relies on box numbers of one prefix having the same
// length, so the lexical maximum is the highest serial.
func (r *GormBoxRepository) GetLatestByPrefix(ctx context.Context, prefix string) (kernel.BoxNumber, error) {
	var latest string
	err := r.db.WithContext(ctx).
		Model(&BoxDTO{}).
		Select("box_no").
		Where("box_no LIKE ?", prefix+"%").
		Order("box_no DESC").
		Limit(1).
		Scan(&latest).Error
	if err != nil {
		return kernel.BoxNumber{}, err
	}
	if latest == "" {
		return kernel.BoxNumber{}, errs.NewObjectNotFoundError("box prefix", prefix)
	}
	return kernel.NewBoxNumber(latest)
}

func (r *GormBoxRepository) Delete(ctx context.Context, boxNo kernel.BoxNumber) error {
	result := r.db.WithContext(ctx).Delete(&BoxDTO{}, "box_no = ?", boxNo.String())
	return gormerr.NotFoundUnlessAffected(result, entityName, boxNo.String())
}
