package services

import (
	"context"

	"rfidship/internal/core/domain/model/kernel"
	"rfidship/internal/core/domain/model/systemlog"
)

// Action is the audit code stored with every entry.
type Action string

const (
	ActionCreateRfid            Action = "CREATE_RFID"
	ActionBatchCreateRfid       Action = "BATCH_CREATE_RFID"
	ActionCreateBox             Action = "CREATE_BOX"
	ActionBatchCreateBox        Action = "BATCH_CREATE_BOX"
	ActionAddRfidToBox          Action = "ADD_RFID_TO_BOX"
	ActionRemoveRfidFromBox     Action = "REMOVE_RFID_FROM_BOX"
	ActionCreateShipment        Action = "CREATE_SHIPMENT"
	ActionAddBoxToShipment      Action = "ADD_BOX_TO_SHIPMENT"
	ActionRemoveBoxFromShipment Action = "REMOVE_BOX_FROM_SHIPMENT"
	ActionShipShipment          Action = "SHIP_SHIPMENT"
	ActionUpdateShipmentNote    Action = "UPDATE_SHIPMENT_NOTE"
	ActionCreateUser            Action = "CREATE_USER"
	ActionUpdateUser            Action = "UPDATE_USER"
	ActionDeleteUser            Action = "DELETE_USER"
	ActionLoginSuccess          Action = "LOGIN_SUCCESS"
	ActionLoginFailed           Action = "LOGIN_FAILED"
)

// Audit target types.
const (
	TargetRfid     = "rfid"
	TargetBox      = "box"
	TargetShipment = "shipment"
	TargetUser     = "user"
)

// AuditLog is the storage the trail appends to.
type AuditLog interface {
	Add(ctx context.Context, entry *systemlog.Entry) error
}

// AuditRecord describes one logical action.
type AuditRecord struct {
	Actor       kernel.UUID
	Action      Action
	TargetType  string
	TargetID    string
	Description string
	IPAddress   string
}

// AuditTrail writes audit entries through the repository of the current
// unit of work. A failed write fails the surrounding operation.
type AuditTrail struct {
	log  AuditLog
	opts options
}

func NewAuditTrail(log AuditLog, opts ...Option) AuditTrail {
	return AuditTrail{log: log, opts: newOptions(opts)}
}

// Record appends one entry and returns it with its storage id.
func (a AuditTrail) Record(ctx context.Context, record AuditRecord) (*systemlog.Entry, error) {
	entry, err := systemlog.NewEntry(
		record.Actor,
		string(record.Action),
		a.opts.clock(),
		systemlog.WithTarget(record.TargetType, record.TargetID),
		systemlog.WithDescription(record.Description),
		systemlog.WithIPAddress(record.IPAddress),
	)
	if err != nil {
		return nil, err
	}

	if err = a.log.Add(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}
