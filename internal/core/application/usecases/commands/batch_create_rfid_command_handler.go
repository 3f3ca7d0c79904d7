package commands

import (
	"context"
	"errors"
	"fmt"

	"rfidship/internal/core/domain/model/kernel"
	"rfidship/internal/core/domain/services"
	"rfidship/internal/pkg/errs"
)

// Batch item outcomes.
const (
	ItemCreated = "created"
	ItemSkipped = "skipped"
)

// Skip reasons reported per batch item.
const (
	ReasonSerialOverflow = "Serial number exceeds 9999"
	ReasonSerialExists   = "Serial number already exists"
)

// BatchRfidItem is the outcome of one serial. Reason is set only for
// skipped items.
type BatchRfidItem struct {
	Rfid      string `json:"rfid,omitempty"`
	SKU       string `json:"sku"`
	ProductNo string `json:"productNo"`
	SerialNo  string `json:"serialNo"`
	Status    string `json:"status"`
	Reason    string `json:"reason,omitempty"`
}

// BatchCreateRfidResult reports every requested serial.
// TotalCreated + Failed always equals TotalRequested.
type BatchCreateRfidResult struct {
	TotalRequested int             `json:"totalRequested"`
	TotalCreated   int             `json:"totalCreated"`
	Failed         int             `json:"failed"`
	Items          []BatchRfidItem `json:"items"`
}

// BatchCreateRfidCommandHandler creates a run of product units.
//
// Per-serial domain failures (overflow past 9999, existing serial, RFID
// collision) are collected into the result and the batch continues.
// Storage failures abort the whole batch. One BATCH_CREATE_RFID audit entry
// is written for the call.
type BatchCreateRfidCommandHandler struct {
	uowFactory RfidUoWFactory
	strategy   services.IdentifierDerivationStrategy
	opts       []services.Option
}

func NewBatchCreateRfidCommandHandler(
	uowFactory RfidUoWFactory,
	strategy services.IdentifierDerivationStrategy,
	opts ...services.Option,
) BatchCreateRfidCommandHandler {
	return BatchCreateRfidCommandHandler{uowFactory: uowFactory, strategy: strategy, opts: opts}
}

func (h BatchCreateRfidCommandHandler) Handle(
	ctx context.Context,
	command BatchCreateRfidCommand,
) (BatchCreateRfidResult, error) {
	if err := command.Validate(); err != nil {
		return BatchCreateRfidResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return BatchCreateRfidResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := loadActiveActor(ctx, uow.UserRepository(), command.Actor()); err != nil {
		return BatchCreateRfidResult{}, err
	}

	rfids := uow.ProductRfidRepository()
	generator := services.NewRfidGenerator(rfids, h.strategy, h.opts...)
	sku := command.SKU()
	productNo := sku.ProductNumber()

	result := BatchCreateRfidResult{
		TotalRequested: command.Quantity(),
		Items:          make([]BatchRfidItem, 0, command.Quantity()),
	}
	skip := func(item BatchRfidItem, reason string) {
		item.Status = ItemSkipped
		item.Reason = reason
		result.Items = append(result.Items, item)
		result.Failed++
	}

	start := command.StartSerial().Int()
	for n := start; n < start+command.Quantity(); n++ {
		item := BatchRfidItem{SKU: sku.String(), ProductNo: productNo.String(), SerialNo: fmt.Sprintf("%04d", n)}

		serial, err := kernel.NewSerialNumberFromInt(n)
		if err != nil {
			skip(item, ReasonSerialOverflow)
			continue
		}

		existing, err := rfids.GetBySkuAndSerial(ctx, sku, serial)
		if err == nil {
			item.Rfid = existing.Rfid().String()
			skip(item, ReasonSerialExists)
			continue
		}
		if !errors.Is(err, errs.ErrObjectNotFound) {
			return BatchCreateRfidResult{}, err
		}

		unit, err := generator.Generate(ctx, sku, command.ProductNo(), serial, command.Actor().ID())
		if err != nil {
			if isItemFailure(err) {
				skip(item, err.Error())
				continue
			}
			return BatchCreateRfidResult{}, err
		}

		if err = rfids.Add(ctx, unit); err != nil {
			return BatchCreateRfidResult{}, err
		}

		item.Rfid = unit.Rfid().String()
		item.Status = ItemCreated
		result.Items = append(result.Items, item)
		result.TotalCreated++
	}

	if err := recordAudit(ctx, uow.SystemLogRepository(), command.Actor(), services.AuditRecord{
		Action:     services.ActionBatchCreateRfid,
		TargetType: services.TargetRfid,
		TargetID:   sku.String(),
		Description: fmt.Sprintf("Batch created %d RFIDs for SKU: %s, starting from %s",
			result.TotalCreated, sku, command.StartSerial()),
	}, h.opts); err != nil {
		return BatchCreateRfidResult{}, err
	}

	if err := uow.Commit(ctx); err != nil {
		return BatchCreateRfidResult{}, err
	}

	return result, nil
}

// isItemFailure reports errors that concern a single serial rather than
// the whole batch.
func isItemFailure(err error) bool {
	return errors.Is(err, errs.ErrConflict) ||
		errors.Is(err, errs.ErrMismatch) ||
		errors.Is(err, errs.ErrValueIsInvalid) ||
		errors.Is(err, errs.ErrValueIsOutOfRange)
}
