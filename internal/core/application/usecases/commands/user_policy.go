package commands

import (
	"context"
	"errors"
	"strings"

	"rfidship/internal/core/domain/model/kernel"
	"rfidship/internal/core/ports"
	"rfidship/internal/pkg/errs"
)

// checkPasswordStrength folds every violated rule into one invalid value
// error.
func checkPasswordStrength(hasher ports.PasswordHasher, password string) error {
	problems := hasher.ValidateStrength(password)
	if len(problems) == 0 {
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause("password", errors.New(strings.Join(problems, "; ")))
}

// ensureAccountFree reports a conflict when another user holds account.
func ensureAccountFree(ctx context.Context, repo ports.UserRepository, account string, self kernel.UUID) error {
	existing, err := repo.GetByAccount(ctx, account)
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return nil
	case err != nil:
		return err
	case existing.ID().IsEqual(self):
		return nil
	}
	return errs.NewConflictError("account already exists")
}

// ensureCodeFree reports a conflict when another user holds code.
func ensureCodeFree(ctx context.Context, repo ports.UserRepository, code kernel.UserCode, self kernel.UUID) error {
	existing, err := repo.GetByCode(ctx, code)
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return nil
	case err != nil:
		return err
	case existing.ID().IsEqual(self):
		return nil
	}
	return errs.NewConflictError("user code already exists")
}
