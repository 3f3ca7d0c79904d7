package commands

import (
	"context"
	"fmt"
	"log/slog"

	"rfidship/internal/core/domain/model/kernel"
	"rfidship/internal/core/domain/services"
)

// GenerateProductRfidsResult lists the tags that were created. StartSerial
// and EndSerial are empty when nothing was created.
type GenerateProductRfidsResult struct {
	SKU            string   `json:"sku"`
	GeneratedCount int      `json:"generatedCount"`
	StartSerial    string   `json:"startSerial"`
	EndSerial      string   `json:"endSerial"`
	Rfids          []string `json:"rfids"`
}

// GenerateProductRfidsCommandHandler creates units for serials 0001..quantity.
// Serials that fail are logged and skipped; every created unit gets its own
// CREATE_RFID audit entry.
type GenerateProductRfidsCommandHandler struct {
	uowFactory RfidUoWFactory
	strategy   services.IdentifierDerivationStrategy
	logger     *slog.Logger
	opts       []services.Option
}

func NewGenerateProductRfidsCommandHandler(
	uowFactory RfidUoWFactory,
	strategy services.IdentifierDerivationStrategy,
	logger *slog.Logger,
	opts ...services.Option,
) GenerateProductRfidsCommandHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return GenerateProductRfidsCommandHandler{
		uowFactory: uowFactory,
		strategy:   strategy,
		logger:     logger.With("component", "generate-product-rfids"),
		opts:       opts,
	}
}

func (h GenerateProductRfidsCommandHandler) Handle(
	ctx context.Context,
	command GenerateProductRfidsCommand,
) (GenerateProductRfidsResult, error) {
	if err := command.Validate(); err != nil {
		return GenerateProductRfidsResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return GenerateProductRfidsResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := loadActiveActor(ctx, uow.UserRepository(), command.Actor()); err != nil {
		return GenerateProductRfidsResult{}, err
	}

	rfids := uow.ProductRfidRepository()
	logs := uow.SystemLogRepository()
	generator := services.NewRfidGenerator(rfids, h.strategy, h.opts...)
	sku := command.SKU()

	result := GenerateProductRfidsResult{SKU: sku.String(), Rfids: make([]string, 0, command.Quantity())}
	var created []kernel.SerialNumber

	for n := kernel.MinSerial; n <= command.Quantity(); n++ {
		serial, err := kernel.NewSerialNumberFromInt(n)
		if err != nil {
			return GenerateProductRfidsResult{}, err
		}

		unit, err := generator.Generate(ctx, sku, nil, serial, command.Actor().ID())
		if err != nil {
			if isItemFailure(err) {
				h.logger.WarnContext(ctx, "skipping serial",
					"sku", sku.String(), "serial", serial.String(), "error", err)
				continue
			}
			return GenerateProductRfidsResult{}, err
		}

		if err = rfids.Add(ctx, unit); err != nil {
			return GenerateProductRfidsResult{}, err
		}

		if err = recordAudit(ctx, logs, command.Actor(), services.AuditRecord{
			Action:      services.ActionCreateRfid,
			TargetType:  services.TargetRfid,
			TargetID:    unit.Rfid().String(),
			Description: fmt.Sprintf("Created RFID for SKU: %s", sku),
		}, h.opts); err != nil {
			return GenerateProductRfidsResult{}, err
		}

		result.Rfids = append(result.Rfids, unit.Rfid().String())
		created = append(created, serial)
	}

	if err := uow.Commit(ctx); err != nil {
		return GenerateProductRfidsResult{}, err
	}

	result.GeneratedCount = len(created)
	if len(created) > 0 {
		result.StartSerial = created[0].String()
		result.EndSerial = created[len(created)-1].String()
	}

	h.logger.InfoContext(ctx, "product rfids generated",
		"sku", sku.String(), "requested", command.Quantity(), "generated", result.GeneratedCount)

	return result, nil
}
