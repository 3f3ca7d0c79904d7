package commands

import (
	"context"
	"fmt"

	"rfidship/internal/core/domain/services"
	"rfidship/internal/pkg/errs"
)

// CreateBoxCommandHandler allocates and stores one empty box.
//
// The existence check right before the insert turns most concurrent
// allocations of the same number into a conflict; the unique key catches
// the rest.
type CreateBoxCommandHandler struct {
	uowFactory BoxUoWFactory
	opts       []services.Option
}

func NewCreateBoxCommandHandler(uowFactory BoxUoWFactory, opts ...services.Option) CreateBoxCommandHandler {
	return CreateBoxCommandHandler{uowFactory: uowFactory, opts: opts}
}

func (h CreateBoxCommandHandler) Handle(ctx context.Context, command CreateBoxCommand) (BoxResult, error) {
	if err := command.Validate(); err != nil {
		return BoxResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return BoxResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := loadActiveActor(ctx, uow.UserRepository(), command.Actor()); err != nil {
		return BoxResult{}, err
	}

	boxes := uow.BoxRepository()

	b, err := services.NewBoxGenerator(boxes, h.opts...).
		Generate(ctx, command.Code().String(), command.Actor().ID())
	if err != nil {
		return BoxResult{}, err
	}

	exists, err := boxes.Exists(ctx, b.BoxNo())
	if err != nil {
		return BoxResult{}, err
	}
	if exists {
		return BoxResult{}, errs.NewConflictError(fmt.Sprintf("box %s already exists", b.BoxNo()))
	}

	if err = boxes.Add(ctx, b); err != nil {
		return BoxResult{}, err
	}

	if err = recordAudit(ctx, uow.SystemLogRepository(), command.Actor(), services.AuditRecord{
		Action:      services.ActionCreateBox,
		TargetType:  services.TargetBox,
		TargetID:    b.BoxNo().String(),
		Description: fmt.Sprintf("Created box: %s", b.BoxNo()),
	}, h.opts); err != nil {
		return BoxResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return BoxResult{}, err
	}

	return newBoxResult(b), nil
}
