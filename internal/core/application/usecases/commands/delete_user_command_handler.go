package commands

import (
	"context"
	"fmt"

	"rfidship/internal/core/domain/services"
	"rfidship/internal/pkg/errs"
)

type DeleteUserCommandHandler struct {
	uowFactory UserUoWFactory
	opts       []services.Option
}

func NewDeleteUserCommandHandler(uowFactory UserUoWFactory, opts ...services.Option) DeleteUserCommandHandler {
	return DeleteUserCommandHandler{uowFactory: uowFactory, opts: opts}
}

// Handle removes the target account. Deleting oneself is refused before any
// storage access.
func (h DeleteUserCommandHandler) Handle(ctx context.Context, command DeleteUserCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}
	if command.Actor().ID().IsEqual(command.Target()) {
		return errs.NewForbiddenError("cannot delete your own account")
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	users := uow.UserRepository()

	if _, err := loadActiveActor(ctx, users, command.Actor()); err != nil {
		return err
	}

	target, err := users.Get(ctx, command.Target())
	if err != nil {
		return err
	}

	if err = users.Delete(ctx, target.ID()); err != nil {
		return err
	}

	if err = recordAudit(ctx, uow.SystemLogRepository(), command.Actor(), services.AuditRecord{
		Action:      services.ActionDeleteUser,
		TargetType:  services.TargetUser,
		TargetID:    target.ID().String(),
		Description: fmt.Sprintf("Deleted user: %s", target.Account()),
	}, h.opts); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
