// Package systemlogrepo appends audit records.
package systemlogrepo

import (
	"time"

	"rfidship/internal/core/domain/model/systemlog"

	"github.com/google/uuid"
)

// SystemLogDTO is the system_logs row. Optional attributes are NULL when
// empty.
type SystemLogDTO struct {
	ID          int64     `gorm:"column:id;primaryKey;autoIncrement"`
	UserUUID    uuid.UUID `gorm:"column:user_uuid;type:uuid;not null;index"`
	Action      string    `gorm:"column:action;type:varchar(50);not null;index"`
	TargetType  *string   `gorm:"column:target_type;type:varchar(50)"`
	TargetID    *string   `gorm:"column:target_id;type:varchar(100)"`
	Description *string   `gorm:"column:description;type:text"`
	IPAddress   *string   `gorm:"column:ip_address;type:varchar(45)"`
	CreatedAt   time.Time `gorm:"column:created_at;not null;index"`
}

func (SystemLogDTO) TableName() string {
	return "system_logs"
}

func fromDomain(e *systemlog.Entry) SystemLogDTO {
	return SystemLogDTO{
		UserUUID:    e.UserUUID().Bytes(),
		Action:      e.Action(),
		TargetType:  nullable(e.TargetType()),
		TargetID:    nullable(e.TargetID()),
		Description: nullable(e.Description()),
		IPAddress:   nullable(e.IPAddress()),
		CreatedAt:   e.CreatedAt(),
	}
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
