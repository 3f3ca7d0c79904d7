package commands

import (
	"context"
	"fmt"

	"rfidship/internal/core/domain/model/user"
	"rfidship/internal/core/domain/services"
	"rfidship/internal/core/ports"
)

// UpdateUserCommandHandler applies a partial update. Account and code
// uniqueness is re-checked only when the value changes.
type UpdateUserCommandHandler struct {
	uowFactory UserUoWFactory
	hasher     ports.PasswordHasher
	opts       []services.Option
}

func NewUpdateUserCommandHandler(
	uowFactory UserUoWFactory,
	hasher ports.PasswordHasher,
	opts ...services.Option,
) UpdateUserCommandHandler {
	return UpdateUserCommandHandler{uowFactory: uowFactory, hasher: hasher, opts: opts}
}

func (h UpdateUserCommandHandler) Handle(ctx context.Context, command UpdateUserCommand) (UserResult, error) {
	if err := command.Validate(); err != nil {
		return UserResult{}, err
	}
	if password := command.Password(); password != nil {
		if err := checkPasswordStrength(h.hasher, *password); err != nil {
			return UserResult{}, err
		}
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

	loaded, err := users.Get(ctx, command.Target())
	if err != nil {
		return UserResult{}, err
	}

	// Rebuild with the handler clock so updatedAt follows it.
	u, err := user.RestoreUser(loaded.ID(), loaded.Account(), loaded.PasswordHash(), loaded.Code(),
		loaded.Name(), loaded.Type(), loaded.IsActive(), loaded.LastLoginAt(), loaded.CreatedAt(),
		loaded.UpdatedAt(), user.WithClock(services.ResolveClock(h.opts...)))
	if err != nil {
		return UserResult{}, err
	}

	if err = h.apply(ctx, users, u, command); err != nil {
		return UserResult{}, err
	}

	if err = users.Update(ctx, u); err != nil {
		return UserResult{}, err
	}

	if err = recordAudit(ctx, uow.SystemLogRepository(), command.Actor(), services.AuditRecord{
		Action:      services.ActionUpdateUser,
		TargetType:  services.TargetUser,
		TargetID:    u.ID().String(),
		Description: fmt.Sprintf("Updated user: %s", u.Account()),
	}, h.opts); err != nil {
		return UserResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return UserResult{}, err
	}

	return newUserResult(u), nil
}

func (h UpdateUserCommandHandler) apply(
	ctx context.Context,
	users ports.UserRepository,
	u *user.User,
	command UpdateUserCommand,
) error {
	if account := command.Account(); account != nil && *account != u.Account() {
		if err := ensureAccountFree(ctx, users, *account, u.ID()); err != nil {
			return err
		}
		if err := u.ChangeAccount(*account); err != nil {
			return err
		}
	}

	if code := command.Code(); code != nil && code.String() != u.Code().String() {
		if err := ensureCodeFree(ctx, users, *code, u.ID()); err != nil {
			return err
		}
		if err := u.ChangeCode(*code); err != nil {
			return err
		}
	}

	if password := command.Password(); password != nil {
		hash, err := h.hasher.Hash(*password)
		if err != nil {
			return err
		}
		if err = u.ChangePasswordHash(hash); err != nil {
			return err
		}
	}

	if name := command.Name(); name != nil {
		if err := u.Rename(*name); err != nil {
			return err
		}
	}

	if userType := command.UserType(); userType != nil {
		if err := u.ChangeType(*userType); err != nil {
			return err
		}
	}

	if isActive := command.IsActive(); isActive != nil {
		if *isActive {
			u.Activate()
		} else {
			u.Deactivate()
		}
	}

	return nil
}
