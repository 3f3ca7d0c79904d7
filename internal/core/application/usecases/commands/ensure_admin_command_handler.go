package commands

import (
	"context"
	"errors"
	"fmt"

	"rfidship/internal/core/domain/model/kernel"
	"rfidship/internal/core/domain/model/user"
	"rfidship/internal/core/domain/services"
	"rfidship/internal/core/ports"
	"rfidship/internal/pkg/errs"
)

// EnsureAdminCommandHandler creates the administrator account unless one
// with the same login already exists. Running it again is a no-op.
type EnsureAdminCommandHandler struct {
	uowFactory UserUoWFactory
	hasher     ports.PasswordHasher
	opts       []services.Option
}

func NewEnsureAdminCommandHandler(
	uowFactory UserUoWFactory,
	hasher ports.PasswordHasher,
	opts ...services.Option,
) EnsureAdminCommandHandler {
	return EnsureAdminCommandHandler{uowFactory: uowFactory, hasher: hasher, opts: opts}
}

func (h EnsureAdminCommandHandler) Handle(ctx context.Context, command EnsureAdminCommand) (EnsureAdminResult, error) {
	if err := command.Validate(); err != nil {
		return EnsureAdminResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return EnsureAdminResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	users := uow.UserRepository()

	existing, err := users.GetByAccount(ctx, command.Account())
	switch {
	case err == nil:
		if !existing.IsAdmin() {
			return EnsureAdminResult{}, errs.NewConflictError("account exists and is not an admin")
		}
		return EnsureAdminResult{User: newUserResult(existing)}, nil
	case !errors.Is(err, errs.ErrObjectNotFound):
		return EnsureAdminResult{}, err
	}

	if err = checkPasswordStrength(h.hasher, command.Password()); err != nil {
		return EnsureAdminResult{}, err
	}

	id := kernel.NewUUID()
	if err = ensureCodeFree(ctx, users, command.Code(), id); err != nil {
		return EnsureAdminResult{}, err
	}

	hash, err := h.hasher.Hash(command.Password())
	if err != nil {
		return EnsureAdminResult{}, err
	}

	admin, err := user.NewUser(id, command.Account(), hash, command.Code(), command.Name(), user.Admin,
		user.WithClock(services.ResolveClock(h.opts...)))
	if err != nil {
		return EnsureAdminResult{}, err
	}

	if err = users.Add(ctx, admin); err != nil {
		return EnsureAdminResult{}, err
	}

	if _, err = services.NewAuditTrail(uow.SystemLogRepository(), h.opts...).Record(ctx, services.AuditRecord{
		Actor:       admin.ID(),
		Action:      services.ActionCreateUser,
		TargetType:  services.TargetUser,
		TargetID:    admin.ID().String(),
		Description: fmt.Sprintf("Provisioned admin: %s", admin.Account()),
	}); err != nil {
		return EnsureAdminResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return EnsureAdminResult{}, err
	}

	return EnsureAdminResult{User: newUserResult(admin), Created: true}, nil
}
