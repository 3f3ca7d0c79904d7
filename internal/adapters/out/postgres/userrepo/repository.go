package userrepo

import (
	"context"

	"rfidship/internal/adapters/out/postgres/gormerr"
	"rfidship/internal/core/domain/model/kernel"
	"rfidship/internal/core/domain/model/user"

	"gorm.io/gorm"
)

const entityName = "user"

// GormUserRepository implements ports.UserRepository using GORM.
type GormUserRepository struct {
	db   *gorm.DB
	opts []user.Option
}

func NewGormUserRepository(db *gorm.DB, opts ...user.Option) *GormUserRepository {
	return &GormUserRepository{db: db, opts: opts}
}

// Add inserts a new user. A taken account or code is reported as
// errs.ConflictError.
func (r *GormUserRepository) Add(ctx context.Context, aggregate *user.User) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return gormerr.Translate(err, entityName, dto.Account)
	}
	return nil
}

// Update overwrites every column, zero values included.
func (r *GormUserRepository) Update(ctx context.Context, aggregate *user.User) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&UserDTO{}).
		Where("uuid = ?", dto.UUID).
		Select("*").
		Omit("uuid", "created_at").
		Updates(&dto)
	return gormerr.NotFoundUnlessAffected(result, entityName, aggregate.ID().String())
}

func (r *GormUserRepository) Get(ctx context.Context, id kernel.UUID) (*user.User, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	return r.first(ctx, id.String(), "uuid = ?", id.Bytes())
}

func (r *GormUserRepository) GetByAccount(ctx context.Context, account string) (*user.User, error) {
	return r.first(ctx, account, "account = ?", account)
}

func (r *GormUserRepository) GetByCode(ctx context.Context, code kernel.UserCode) (*user.User, error) {
	return r.first(ctx, code.String(), "code = ?", code.String())
}

func (r *GormUserRepository) Delete(ctx context.Context, id kernel.UUID) error {
	result := r.db.WithContext(ctx).Delete(&UserDTO{}, "uuid = ?", id.Bytes())
	return gormerr.NotFoundUnlessAffected(result, entityName, id.String())
}

func (r *GormUserRepository) first(ctx context.Context, key string, query string, args ...any) (*user.User, error) {
	var dto UserDTO
	if err := r.db.WithContext(ctx).Where(query, args...).First(&dto).Error; err != nil {
		return nil, gormerr.Translate(err, entityName, key)
	}
	return toDomain(dto, r.opts)
}
