package commands

import (
	"context"
	"fmt"

	"rfidship/internal/core/domain/model/kernel"
	"rfidship/internal/core/domain/model/user"
	"rfidship/internal/core/domain/services"
	"rfidship/internal/core/ports"
)

// CreateUserCommandHandler registers an account after the strength and
// uniqueness checks. Only admins reach it; the HTTP layer enforces the role.
type CreateUserCommandHandler struct {
	uowFactory UserUoWFactory
	hasher     ports.PasswordHasher
	opts       []services.Option
}

func NewCreateUserCommandHandler(
	uowFactory UserUoWFactory,
	hasher ports.PasswordHasher,
	opts ...services.Option,
) CreateUserCommandHandler {
	return CreateUserCommandHandler{uowFactory: uowFactory, hasher: hasher, opts: opts}
}

func (h CreateUserCommandHandler) Handle(ctx context.Context, command CreateUserCommand) (UserResult, error) {
	if err := command.Validate(); err != nil {
		return UserResult{}, err
	}
	if err := checkPasswordStrength(h.hasher, command.Password()); err != nil {
		return UserResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return UserResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	users := uow.UserRepository()

	if _, err := loadActiveActor(ctx, users, command.Actor()); err != nil {
		return UserResult{}, err
	}

	id := kernel.NewUUID()
	if err := ensureAccountFree(ctx, users, command.Account(), id); err != nil {
		return UserResult{}, err
	}
	if err := ensureCodeFree(ctx, users, command.Code(), id); err != nil {
		return UserResult{}, err
	}

	hash, err := h.hasher.Hash(command.Password())
	if err != nil {
		return UserResult{}, err
	}

	u, err := user.NewUser(id, command.Account(), hash, command.Code(), command.Name(), command.UserType(),
		user.WithClock(services.ResolveClock(h.opts...)))
	if err != nil {
		return UserResult{}, err
	}

	if err = users.Add(ctx, u); err != nil {
		return UserResult{}, err
	}

	if err = recordAudit(ctx, uow.SystemLogRepository(), command.Actor(), services.AuditRecord{
		Action:      services.ActionCreateUser,
		TargetType:  services.TargetUser,
		TargetID:    u.ID().String(),
		Description: fmt.Sprintf("Created user: %s", u.Account()),
	}, h.opts); err != nil {
		return UserResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return UserResult{}, err
	}

	return newUserResult(u), nil
}
