package commands

import (
	"context"
	"fmt"

	"rfidship/internal/core/domain/services"
)

type CreateShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
	opts       []services.Option
}

func NewCreateShipmentCommandHandler(
	uowFactory ShipmentUoWFactory,
	opts ...services.Option,
) CreateShipmentCommandHandler {
	return CreateShipmentCommandHandler{uowFactory: uowFactory, opts: opts}
}

func (h CreateShipmentCommandHandler) Handle(
	ctx context.Context,
	command CreateShipmentCommand,
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

	actor, err := loadActiveActor(ctx, uow.UserRepository(), command.Actor())
	if err != nil {
		return ShipmentResult{}, err
	}

	shipments := uow.ShipmentRepository()

	s, err := services.NewShipmentGenerator(shipments, h.opts...).
		Generate(ctx, actor.Code(), actor.ID(), command.Note())
	if err != nil {
		return ShipmentResult{}, err
	}

	if err = shipments.Add(ctx, s); err != nil {
		return ShipmentResult{}, err
	}

	if err = recordAudit(ctx, uow.SystemLogRepository(), command.Actor(), services.AuditRecord{
		Action:      services.ActionCreateShipment,
		TargetType:  services.TargetShipment,
		TargetID:    s.ShipmentNo().String(),
		Description: fmt.Sprintf("Created shipment: %s", s.ShipmentNo()),
	}, h.opts); err != nil {
		return ShipmentResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return ShipmentResult{}, err
	}

	return newShipmentResult(s), nil
}
