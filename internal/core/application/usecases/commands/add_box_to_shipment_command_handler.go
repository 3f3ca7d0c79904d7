package commands

import (
	"context"
	"fmt"

	"rfidship/internal/core/domain/services"
)

// AddBoxToShipmentCommandHandler assigns a box to a shipment.
//
// Business rules:
//   - the shipment must not be shipped
//   - the box must hold at least one unit
//   - a box already on another shipment is a conflict; on this one a no-op
type AddBoxToShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
	opts       []services.Option
}

func NewAddBoxToShipmentCommandHandler(
	uowFactory ShipmentUoWFactory,
	opts ...services.Option,
) AddBoxToShipmentCommandHandler {
	return AddBoxToShipmentCommandHandler{uowFactory: uowFactory, opts: opts}
}

func (h AddBoxToShipmentCommandHandler) Handle(
	ctx context.Context,
	command AddBoxToShipmentCommand,
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
	boxes := uow.BoxRepository()

	s, err := shipments.Get(ctx, command.ShipmentNo())
	if err != nil {
		return ShipmentDetail{}, err
	}

	b, err := boxes.Get(ctx, command.BoxNo())
	if err != nil {
		return ShipmentDetail{}, err
	}

	alreadyAdded := s.Contains(b.BoxNo())
	if err = s.AddBox(b); err != nil {
		return ShipmentDetail{}, err
	}
	if alreadyAdded {
		return newShipmentDetail(s), nil
	}

	if err = boxes.Update(ctx, b); err != nil {
		return ShipmentDetail{}, err
	}
	if err = shipments.Update(ctx, s); err != nil {
		return ShipmentDetail{}, err
	}

	if err = recordAudit(ctx, uow.SystemLogRepository(), command.Actor(), services.AuditRecord{
		Action:      services.ActionAddBoxToShipment,
		TargetType:  services.TargetShipment,
		TargetID:    s.ShipmentNo().String(),
		Description: fmt.Sprintf("Added box %s to shipment", b.BoxNo()),
	}, h.opts); err != nil {
		return ShipmentDetail{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return ShipmentDetail{}, err
	}

	return newShipmentDetail(s), nil
}
