package commands

import (
	"context"
	"fmt"

	"rfidship/internal/core/domain/services"
	"rfidship/internal/pkg/errs"
)

// RemoveRfidFromBoxCommandHandler unpacks a unit and clears its back-reference.
type RemoveRfidFromBoxCommandHandler struct {
	uowFactory BoxUoWFactory
	opts       []services.Option
}

func NewRemoveRfidFromBoxCommandHandler(
	uowFactory BoxUoWFactory,
	opts ...services.Option,
) RemoveRfidFromBoxCommandHandler {
	return RemoveRfidFromBoxCommandHandler{uowFactory: uowFactory, opts: opts}
}

func (h RemoveRfidFromBoxCommandHandler) Handle(
	ctx context.Context,
	command RemoveRfidFromBoxCommand,
) (BoxDetail, error) {
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
	if !unit.IsAssignedToBox() {
		return BoxDetail{}, errs.NewConflictError("RFID is not assigned to any box")
	}
	if !unit.IsAssignedTo(b.BoxNo()) {
		return BoxDetail{}, errs.NewConflictError("RFID is not assigned to this box")
	}

	removed, err := b.RemoveProductRfid(command.Rfid())
	if err != nil {
		return BoxDetail{}, err
	}

	if err = boxes.Update(ctx, b); err != nil {
		return BoxDetail{}, err
	}
	if err = rfids.Update(ctx, removed); err != nil {
		return BoxDetail{}, err
	}

	if err = recordAudit(ctx, uow.SystemLogRepository(), command.Actor(), services.AuditRecord{
		Action:      services.ActionRemoveRfidFromBox,
		TargetType:  services.TargetBox,
		TargetID:    b.BoxNo().String(),
		Description: fmt.Sprintf("Removed RFID %s from box", removed.Rfid()),
	}, h.opts); err != nil {
		return BoxDetail{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return BoxDetail{}, err
	}

	return newBoxDetail(b), nil
}
