package commands

import (
	"context"
	"fmt"

	"rfidship/internal/core/domain/services"
)

type ShipShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
	opts       []services.Option
}

func NewShipShipmentCommandHandler(uowFactory ShipmentUoWFactory, opts ...services.Option) ShipShipmentCommandHandler {
	return ShipShipmentCommandHandler{uowFactory: uowFactory, opts: opts}
}

func (h ShipShipmentCommandHandler) Handle(ctx context.Context, command ShipShipmentCommand) (ShipmentResult, error) {
	if err := command.Validate(); err != nil {
		return ShipmentResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ShipmentResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := loadActiveActor(ctx, uow.UserRepository(), command.Actor()); err != nil {
		return ShipmentResult{}, err
	}

	shipments := uow.ShipmentRepository()

	s, err := shipments.Get(ctx, command.ShipmentNo())
	if err != nil {
		return ShipmentResult{}, err
	}

	if err = s.Ship(); err != nil {
		return ShipmentResult{}, err
	}

	if err = shipments.Update(ctx, s); err != nil {
		return ShipmentResult{}, err
	}

	if err = recordAudit(ctx, uow.SystemLogRepository(), command.Actor(), services.AuditRecord{
		Action:      services.ActionShipShipment,
		TargetType:  services.TargetShipment,
		TargetID:    s.ShipmentNo().String(),
		Description: fmt.Sprintf("Shipped shipment with %d boxes", s.BoxCount()),
	}, h.opts); err != nil {
		return ShipmentResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return ShipmentResult{}, err
	}

	return newShipmentResult(s), nil
}

type UpdateShipmentNoteCommandHandler struct {
	uowFactory ShipmentUoWFactory
	opts       []services.Option
}

func NewUpdateShipmentNoteCommandHandler(
	uowFactory ShipmentUoWFactory,
	opts ...services.Option,
) UpdateShipmentNoteCommandHandler {
	return UpdateShipmentNoteCommandHandler{uowFactory: uowFactory, opts: opts}
}

func (h UpdateShipmentNoteCommandHandler) Handle(
	ctx context.Context,
	command UpdateShipmentNoteCommand,
) (ShipmentResult, error) {
	if err := command.Validate(); err != nil {
		return ShipmentResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ShipmentResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := loadActiveActor(ctx, uow.UserRepository(), command.Actor()); err != nil {
		return ShipmentResult{}, err
	}

	shipments := uow.ShipmentRepository()

	s, err := shipments.Get(ctx, command.ShipmentNo())
	if err != nil {
		return ShipmentResult{}, err
	}

	if err = s.UpdateNote(command.Note()); err != nil {
		return ShipmentResult{}, err
	}

	if err = shipments.Update(ctx, s); err != nil {
		return ShipmentResult{}, err
	}

	if err = recordAudit(ctx, uow.SystemLogRepository(), command.Actor(), services.AuditRecord{
		Action:      services.ActionUpdateShipmentNote,
		TargetType:  services.TargetShipment,
		TargetID:    s.ShipmentNo().String(),
		Description: "Updated shipment note",
	}, h.opts); err != nil {
		return ShipmentResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return ShipmentResult{}, err
	}

	return newShipmentResult(s), nil
}
