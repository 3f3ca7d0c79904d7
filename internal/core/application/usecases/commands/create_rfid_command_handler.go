package commands

import (
	"context"
	"errors"
	"fmt"

	"rfidship/internal/core/domain/services"
	"rfidship/internal/pkg/errs"
)

// CreateRfidCommandHandler creates one product unit and audits it.
//
// Business rules:
//   - the actor must exist and be active
//   - the (SKU, serial) pair must be unused
//   - the derived RFID must be unused
type CreateRfidCommandHandler struct {
	uowFactory RfidUoWFactory
	strategy   services.IdentifierDerivationStrategy
	opts       []services.Option
}

func NewCreateRfidCommandHandler(
	uowFactory RfidUoWFactory,
	strategy services.IdentifierDerivationStrategy,
	opts ...services.Option,
) CreateRfidCommandHandler {
	return CreateRfidCommandHandler{uowFactory: uowFactory, strategy: strategy, opts: opts}
}

func (h CreateRfidCommandHandler) Handle(ctx context.Context, command CreateRfidCommand) (RfidResult, error) {
	if err := command.Validate(); err != nil {
		return RfidResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return RfidResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := loadActiveActor(ctx, uow.UserRepository(), command.Actor()); err != nil {
		return RfidResult{}, err
	}

	rfids := uow.ProductRfidRepository()

	_, err := rfids.GetBySkuAndSerial(ctx, command.SKU(), command.SerialNo())
	if err == nil {
		return RfidResult{}, errs.NewConflictError(fmt.Sprintf(
			"serial number %s already exists for SKU %s", command.SerialNo(), command.SKU(),
		))
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return RfidResult{}, err
	}

	unit, err := services.NewRfidGenerator(rfids, h.strategy, h.opts...).
		Generate(ctx, command.SKU(), command.ProductNo(), command.SerialNo(), command.Actor().ID())
	if err != nil {
		return RfidResult{}, err
	}

	if err = rfids.Add(ctx, unit); err != nil {
		return RfidResult{}, err
	}

	if err = recordAudit(ctx, uow.SystemLogRepository(), command.Actor(), services.AuditRecord{
		Action:      services.ActionCreateRfid,
		TargetType:  services.TargetRfid,
		TargetID:    unit.Rfid().String(),
		Description: fmt.Sprintf("Created RFID for SKU: %s", unit.SKU()),
	}, h.opts); err != nil {
		return RfidResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return RfidResult{}, err
	}

	return newRfidResult(unit), nil
}
