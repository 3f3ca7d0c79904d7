package systemlogrepo

import (
	"context"

	"rfidship/internal/core/domain/model/systemlog"

	"gorm.io/gorm"
)

// GormSystemLogRepository implements ports.SystemLogRepository using GORM.
type GormSystemLogRepository struct {
	db *gorm.DB
}

func NewGormSystemLogRepository(db *gorm.DB) *GormSystemLogRepository {
	return &GormSystemLogRepository{db: db}
}

// Add inserts the entry and assigns the generated id to it.
func (r *GormSystemLogRepository) Add(ctx context.Context, entry *systemlog.Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	dto := fromDomain(entry)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}
	return entry.AssignID(dto.ID)
}
