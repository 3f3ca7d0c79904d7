package queries

import (
	"strconv"
	"time"

	"github.com/google/uuid"
)

// BoxItem is one row of the box list. Status is CREATED while the box is
// unassigned and PACKED once it belongs to a shipment.
type BoxItem struct {
	BoxNo        string    `json:"boxNo"`
	Code         string    `json:"code"`
	ShipmentNo   *string   `json:"shipmentNo"`
	Status       string    `json:"status"`
	ProductCount int       `json:"productCount"`
	CreatedBy    string    `json:"createdBy"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// RfidItem is one product unit with its derived lifecycle status.
type RfidItem struct {
	Rfid      string    `json:"rfid"`
	SKU       string    `json:"sku"`
	ProductNo string    `json:"productNo"`
	SerialNo  string    `json:"serialNo"`
	Status    string    `json:"status"`
	BoxNo     *string   `json:"boxNo"`
	CreatedBy string    `json:"createdBy"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// UserItem never carries the password hash.
type UserItem struct {
	UUID        string     `json:"uuid"`
	Account     string     `json:"account"`
	Code        string     `json:"code"`
	Name        string     `json:"name"`
	UserType    string     `json:"userType"`
	IsActive    bool       `json:"isActive"`
	LastLoginAt *time.Time `json:"lastLoginAt"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// LogItem is one audit record. ID is rendered as a string because it is a
// 64 bit sequence.
type LogItem struct {
	ID          string    `json:"id"`
	UserUUID    string    `json:"userUuid"`
	UserName    *string   `json:"userName,omitempty"`
	Action      string    `json:"action"`
	TargetType  *string   `json:"targetType,omitempty"`
	TargetID    *string   `json:"targetId,omitempty"`
	Description *string   `json:"description,omitempty"`
	IPAddress   *string   `json:"ipAddress,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

const (
	boxStatusCreated = "CREATED"
	boxStatusPacked  = "PACKED"
)

type boxRow struct {
	BoxNo        string
	Code         string
	ShipmentNo   *string
	ProductCount int
	CreatedBy    uuid.UUID
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

const boxColumns = `b.box_no, b.code, b.shipment_no, b.created_by, b.created_at, b.updated_at,
	(SELECT COUNT(*) FROM product_rfids p WHERE p.box_no = b.box_no) AS product_count`

func (r boxRow) item() BoxItem {
	status := boxStatusCreated
	if r.ShipmentNo != nil {
		status = boxStatusPacked
	}
	return BoxItem{
		BoxNo:        r.BoxNo,
		Code:         r.Code,
		ShipmentNo:   r.ShipmentNo,
		Status:       status,
		ProductCount: r.ProductCount,
		CreatedBy:    r.CreatedBy.String(),
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

type rfidRow struct {
	Rfid      string
	SKU       string `gorm:"column:sku"`
	ProductNo string
	SerialNo  string
	Status    string
	BoxNo     *string
	CreatedBy uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}

// rfidColumns expects product_rfids p, boxes b and shipments s joined.
const rfidColumns = `p.rfid, p.sku, p.product_no, p.serial_no, p.box_no, p.created_by, p.created_at, p.updated_at,
	CASE
		WHEN p.box_no IS NULL THEN 'available'
		WHEN s.status = 'SHIPPED' THEN 'shipped'
		ELSE 'bound'
	END AS status`

const rfidJoins = `LEFT JOIN boxes b ON b.box_no = p.box_no
	LEFT JOIN shipments s ON s.shipment_no = b.shipment_no`

func (r rfidRow) item() RfidItem {
	return RfidItem{
		Rfid:      r.Rfid,
		SKU:       r.SKU,
		ProductNo: r.ProductNo,
		SerialNo:  r.SerialNo,
		Status:    r.Status,
		BoxNo:     r.BoxNo,
		CreatedBy: r.CreatedBy.String(),
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

type userRow struct {
	UUID        uuid.UUID `gorm:"column:uuid"`
	Account     string
	Code        string
	Name        string
	UserType    string
	IsActive    bool
	LastLoginAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

const userColumns = `u.uuid, u.account, u.code, u.name, u.user_type, u.is_active, u.last_login_at,
	u.created_at, u.updated_at`

func (r userRow) item() UserItem {
	return UserItem{
		UUID:        r.UUID.String(),
		Account:     r.Account,
		Code:        r.Code,
		Name:        r.Name,
		UserType:    r.UserType,
		IsActive:    r.IsActive,
		LastLoginAt: r.LastLoginAt,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

type logRow struct {
	ID          int64
	UserUUID    uuid.UUID
	UserName    *string
	Action      string
	TargetType  *string
	TargetID    *string
	Description *string
	IPAddress   *string
	CreatedAt   time.Time
}

// logColumns expects system_logs l with users u left joined.
const logColumns = `l.id, l.user_uuid, u.name AS user_name, l.action, l.target_type, l.target_id,
	l.description, l.ip_address, l.created_at`

func (r logRow) item() LogItem {
	return LogItem{
		ID:          formatID(r.ID),
		UserUUID:    r.UserUUID.String(),
		UserName:    r.UserName,
		Action:      r.Action,
		TargetType:  r.TargetType,
		TargetID:    r.TargetID,
		Description: r.Description,
		IPAddress:   r.IPAddress,
		CreatedAt:   r.CreatedAt,
	}
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}

func items[R interface{ item() T }, T any](rows []R) []T {
	out := make([]T, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.item())
	}
	return out
}
