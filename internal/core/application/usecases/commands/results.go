package commands

import (
	"time"

	"rfidship/internal/core/domain/model/box"
	"rfidship/internal/core/domain/model/productrfid"
	"rfidship/internal/core/domain/model/shipment"
	"rfidship/internal/core/domain/model/user"
)

// RfidResult is the projection of one product unit.
type RfidResult struct {
	Rfid      string    `json:"rfid"`
	SKU       string    `json:"sku"`
	ProductNo string    `json:"productNo"`
	SerialNo  string    `json:"serialNo"`
	BoxNo     *string   `json:"boxNo"`
	CreatedBy string    `json:"createdBy"`
	CreatedAt time.Time `json:"createdAt"`
}

// BoxResult is the projection of a box without its contents.
type BoxResult struct {
	BoxNo        string    `json:"boxNo"`
	Code         string    `json:"code"`
	ShipmentNo   *string   `json:"shipmentNo"`
	Status       string    `json:"status"`
	ProductCount int       `json:"productCount"`
	CreatedBy    string    `json:"createdBy"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// BoxDetail adds the packed units to BoxResult.
type BoxDetail struct {
	BoxResult
	ProductRfids []RfidResult `json:"productRfids"`
}

// ShipmentResult is the projection of a shipment without its boxes.
type ShipmentResult struct {
	ShipmentNo    string    `json:"shipmentNo"`
	UserCode      string    `json:"userCode"`
	Note          string    `json:"note"`
	Status        string    `json:"status"`
	BoxCount      int       `json:"boxCount"`
	TotalProducts int       `json:"totalProducts"`
	CreatedBy     string    `json:"createdBy"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// ShipmentDetail adds the boxes to ShipmentResult.
type ShipmentDetail struct {
	ShipmentResult
	Boxes []BoxResult `json:"boxes"`
}

// UserResult is the public projection of an account. The password hash is
// never exposed.
type UserResult struct {
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

func newRfidResult(p *productrfid.ProductRfid) RfidResult {
	result := RfidResult{
		Rfid:      p.Rfid().String(),
		SKU:       p.SKU().String(),
		ProductNo: p.ProductNo().String(),
		SerialNo:  p.SerialNo().String(),
		CreatedBy: p.CreatedBy().String(),
		CreatedAt: p.CreatedAt(),
	}
	if boxNo := p.BoxNo(); boxNo != nil {
		value := boxNo.String()
		result.BoxNo = &value
	}
	return result
}

func newBoxResult(b *box.Box) BoxResult {
	result := BoxResult{
		BoxNo:        b.BoxNo().String(),
		Code:         b.Code().String(),
		Status:       string(b.PackingStatus()),
		ProductCount: b.ProductCount(),
		CreatedBy:    b.CreatedBy().String(),
		CreatedAt:    b.CreatedAt(),
		UpdatedAt:    b.UpdatedAt(),
	}
	if shipmentNo := b.ShipmentNo(); shipmentNo != nil {
		value := shipmentNo.String()
		result.ShipmentNo = &value
	}
	return result
}

func newBoxDetail(b *box.Box) BoxDetail {
	units := b.ProductRfids()
	detail := BoxDetail{
		BoxResult:    newBoxResult(b),
		ProductRfids: make([]RfidResult, 0, len(units)),
	}
	for _, p := range units {
		detail.ProductRfids = append(detail.ProductRfids, newRfidResult(p))
	}
	return detail
}

func newShipmentResult(s *shipment.Shipment) ShipmentResult {
	return ShipmentResult{
		ShipmentNo:    s.ShipmentNo().String(),
		UserCode:      s.UserCode().String(),
		Note:          s.Note(),
		Status:        s.Status().String(),
		BoxCount:      s.BoxCount(),
		TotalProducts: s.TotalProducts(),
		CreatedBy:     s.CreatedBy().String(),
		CreatedAt:     s.CreatedAt(),
		UpdatedAt:     s.UpdatedAt(),
	}
}

func newShipmentDetail(s *shipment.Shipment) ShipmentDetail {
	boxes := s.Boxes()
	detail := ShipmentDetail{
		ShipmentResult: newShipmentResult(s),
		Boxes:          make([]BoxResult, 0, len(boxes)),
	}
	for _, b := range boxes {
		detail.Boxes = append(detail.Boxes, newBoxResult(b))
	}
	return detail
}

func newUserResult(u *user.User) UserResult {
	return UserResult{
		UUID:        u.ID().String(),
		Account:     u.Account(),
		Code:        u.Code().String(),
		Name:        u.Name(),
		UserType:    u.Type().String(),
		IsActive:    u.IsActive(),
		LastLoginAt: u.LastLoginAt(),
		CreatedAt:   u.CreatedAt(),
		UpdatedAt:   u.UpdatedAt(),
	}
}
