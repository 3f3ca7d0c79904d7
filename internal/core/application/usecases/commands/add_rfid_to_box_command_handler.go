package commands

import (
	"context"
	"fmt"

	"rfidship/internal/core/domain/services"
)

// AddRfidToBoxCommandHandler packs a unit into a box and stores both sides
// of the membership.
//
// Business rules:
//   - the box must exist and must not belong to a shipment
//   - the unit must exist and must not be packed anywhere
type AddRfidToBoxCommandHandler struct {
	uowFactory BoxUoWFactory
	opts       []services.Option
}

func NewAddRfidToBoxCommandHandler(uowFactory BoxUoWFactory, opts ...services.Option) AddRfidToBoxCommandHandler {
	return AddRfidToBoxCommandHandler{uowFactory: uowFactory, opts: opts}
}

func (h AddRfidToBoxCommandHandler) Handle(ctx context.Context, command AddRfidToBoxCommand) (BoxDetail, error) {
	if err := command.Validate(); err != nil {
		return BoxDetail{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return BoxDetail{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := loadActiveActor(ctx, uow.UserRepository(), command.Actor()); err != nil {
		return BoxDetail{}, err
	}

	boxes := uow.BoxRepository()
	rfids := uow.ProductRfidRepository()

	b, err := boxes.Get(ctx, command.BoxNo())
	if err != nil {
		return BoxDetail{}, err
	}
	if err = b.EnsureUnlocked(); err != nil {
		return BoxDetail{}, err
	}

	unit, err := rfids.Get(ctx, command.Rfid())
	if err != nil {
		return BoxDetail{}, err
	}

	if err = b.AddProductRfid(unit); err != nil {
		return BoxDetail{}, err
	}

	if err = boxes.Update(ctx, b); err != nil {
		return BoxDetail{}, err
	}
	if err = rfids.Update(ctx, unit); err != nil {
		return BoxDetail{}, err
	}

	if err = recordAudit(ctx, uow.SystemLogRepository(), command.Actor(), services.AuditRecord{
		Action:      services.ActionAddRfidToBox,
		TargetType:  services.TargetBox,
		TargetID:    b.BoxNo().String(),
		Description: fmt.Sprintf("Added RFID %s to box", unit.Rfid()),
	}, h.opts); err != nil {
		return BoxDetail{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return BoxDetail{}, err
	}

	return newBoxDetail(b), nil
}
