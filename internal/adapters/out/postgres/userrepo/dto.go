// Package userrepo persists user accounts.
package userrepo

import (
	"time"

	"rfidship/internal/core/domain/model/kernel"
	"rfidship/internal/core/domain/model/user"

	"github.com/google/uuid"
)

// UserDTO is the users row. Password holds the bcrypt hash.
type UserDTO struct {
	UUID        uuid.UUID  `gorm:"column:uuid;type:uuid;primaryKey"`
	Account     string     `gorm:"column:account;type:varchar(50);not null;uniqueIndex:uq_users_account"`
	Password    string     `gorm:"column:password;type:varchar(255);not null"`
	Code        string     `gorm:"column:code;type:varchar(3);not null;uniqueIndex:uq_users_code"`
	Name        string     `gorm:"column:name;type:varchar(100);not null"`
	UserType    string     `gorm:"column:user_type;type:varchar(20);not null"`
	IsActive    bool       `gorm:"column:is_active;not null"`
	LastLoginAt *time.Time `gorm:"column:last_login_at"`
	CreatedAt   time.Time  `gorm:"column:created_at;not null;autoCreateTime:false"`
	UpdatedAt   time.Time  `gorm:"column:updated_at;not null;autoUpdateTime:false"`
}

func (UserDTO) TableName() string {
	return "users"
}

func fromDomain(u *user.User) UserDTO {
	return UserDTO{
		UUID:        u.ID().Bytes(),
		Account:     u.Account(),
		Password:    u.PasswordHash(),
		Code:        u.Code().String(),
		Name:        u.Name(),
		UserType:    u.Type().String(),
		IsActive:    u.IsActive(),
		LastLoginAt: u.LastLoginAt(),
		CreatedAt:   u.CreatedAt(),
		UpdatedAt:   u.UpdatedAt(),
	}
}

func toDomain(dto UserDTO, opts []user.Option) (*user.User, error) {
	id, err := kernel.UUIDFromBytes(dto.UUID[:])
	if err != nil {
		return nil, err
	}
	code, err := kernel.NewUserCode(dto.Code)
	if err != nil {
		return nil, err
	}
	userType, err := user.ParseType(dto.UserType)
	if err != nil {
		return nil, err
	}

	return user.RestoreUser(
		id,
		dto.Account,
		dto.Password,
		code,
		dto.Name,
		userType,
		dto.IsActive,
		dto.LastLoginAt,
		dto.CreatedAt,
		dto.UpdatedAt,
		opts...,
	)
}
