package commands

import (
	"context"
	"fmt"

	"rfidship/internal/core/domain/services"
)

type RemoveBoxFromShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
	opts       []services.Option
}

func NewRemoveBoxFromShipmentCommandHandler(
	uowFactory ShipmentUoWFactory,
	opts ...services.Option,
) RemoveBoxFromShipmentCommandHandler {
	return RemoveBoxFromShipmentCommandHandler{uowFactory: uowFactory, opts: opts}
}

func (h RemoveBoxFromShipmentCommandHandler) Handle(
	ctx context.Context,
	command RemoveBoxFromShipmentCommand,
) (ShipmentDetail, error) {
	if err := command.Validate(); err != nil {
		return ShipmentDetail{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ShipmentDetail{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := loadActiveActor(ctx, uow.UserRepository(), command.Actor()); err != nil {
		return ShipmentDetail{}, err
	}

	shipments := uow.ShipmentRepository()

	s, err := shipments.Get(ctx, command.ShipmentNo())
	if err != nil {
		return ShipmentDetail{}, err
	}

	removed, err := s.RemoveBox(command.BoxNo())
	if err != nil {
		return ShipmentDetail{}, err
	}

	if err = uow.BoxRepository().Update(ctx, removed); err != nil {
		return ShipmentDetail{}, err
	}
	if err = shipments.Update(ctx, s); err != nil {
		return ShipmentDetail{}, err
	}

	if err = recordAudit(ctx, uow.SystemLogRepository(), command.Actor(), services.AuditRecord{
		Action:      services.ActionRemoveBoxFromShipment,
		TargetType:  services.TargetShipment,
		TargetID:    s.ShipmentNo().String(),
		Description: fmt.Sprintf("Removed box %s from shipment", removed.BoxNo()),
	}, h.opts); err != nil {
		return ShipmentDetail{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return ShipmentDetail{}, err
	}

	return newShipmentDetail(s), nil
}
