package commands

import (
	"context"
	"fmt"

	"rfidship/internal/core/domain/services"
)

// CreateBatchBoxesResult lists the allocated box numbers in serial order.
type CreateBatchBoxesResult struct {
	Code           string   `json:"code"`
	Year           int      `json:"year"`
	GeneratedCount int      `json:"generatedCount"`
	BoxNos         []string `json:"boxNos"`
}

// CreateBatchBoxesCommandHandler allocates a run of boxes all-or-nothing.
type CreateBatchBoxesCommandHandler struct {
	uowFactory BoxUoWFactory
	opts       []services.Option
}

func NewCreateBatchBoxesCommandHandler(uowFactory BoxUoWFactory, opts ...services.Option) CreateBatchBoxesCommandHandler {
	return CreateBatchBoxesCommandHandler{uowFactory: uowFactory, opts: opts}
}

func (h CreateBatchBoxesCommandHandler) Handle(
	ctx context.Context,
	command CreateBatchBoxesCommand,
) (CreateBatchBoxesResult, error) {
	if err := command.Validate(); err != nil {
		return CreateBatchBoxesResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return CreateBatchBoxesResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := loadActiveActor(ctx, uow.UserRepository(), command.Actor()); err != nil {
		return CreateBatchBoxesResult{}, err
	}

	repo := uow.BoxRepository()

	boxes, err := services.NewBoxGenerator(repo, h.opts...).
		GenerateBatch(ctx, command.Code().String(), command.Quantity(), command.Actor().ID())
	if err != nil {
		return CreateBatchBoxesResult{}, err
	}

	if err = repo.AddBatch(ctx, boxes); err != nil {
		return CreateBatchBoxesResult{}, err
	}

	result := CreateBatchBoxesResult{
		Code:           command.Code().String(),
		Year:           boxes[0].CreatedAt().Year(),
		GeneratedCount: len(boxes),
		BoxNos:         make([]string, 0, len(boxes)),
	}
	for _, b := range boxes {
		result.BoxNos = append(result.BoxNos, b.BoxNo().String())
	}

	if err = recordAudit(ctx, uow.SystemLogRepository(), command.Actor(), services.AuditRecord{
		Action:     services.ActionBatchCreateBox,
		TargetType: services.TargetBox,
		TargetID:   result.BoxNos[0],
		Description: fmt.Sprintf("Batch created %d boxes with code %s: %s to %s",
			len(boxes), command.Code(), result.BoxNos[0], result.BoxNos[len(boxes)-1]),
	}, h.opts); err != nil {
		return CreateBatchBoxesResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CreateBatchBoxesResult{}, err
	}

	return result, nil
}
