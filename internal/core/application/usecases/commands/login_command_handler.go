package commands

import (
	"context"
	"errors"
	"fmt"

	"rfidship/internal/core/domain/model/user"
	"rfidship/internal/core/domain/services"
	"rfidship/internal/core/ports"
	"rfidship/internal/pkg/errs"
)

const tokenTypeBearer = "Bearer"

// TokenResult is the token pair handed to a client.
type TokenResult struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	TokenType    string `json:"tokenType"`
	ExpiresIn    int64  `json:"expiresIn"`
}

// LoginResult adds the authenticated account to the token pair.
type LoginResult struct {
	TokenResult
	User UserResult `json:"user"`
}

// LoginCommandHandler authenticates an account.
//
// Business rules:
//   - unknown account and wrong password look the same to the caller
//   - a wrong password for a known account is audited as LOGIN_FAILED
//   - a deactivated account is refused even with the right password
type LoginCommandHandler struct {
	uowFactory UserUoWFactory
	hasher     ports.PasswordHasher
	tokens     ports.TokenIssuer
	opts       []services.Option
}

func NewLoginCommandHandler(
	uowFactory UserUoWFactory,
	hasher ports.PasswordHasher,
	tokens ports.TokenIssuer,
	opts ...services.Option,
) LoginCommandHandler {
	return LoginCommandHandler{uowFactory: uowFactory, hasher: hasher, tokens: tokens, opts: opts}
}

func (h LoginCommandHandler) Handle(ctx context.Context, command LoginCommand) (LoginResult, error) {
	if err := command.Validate(); err != nil {
		return LoginResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return LoginResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	users := uow.UserRepository()

	loaded, err := users.GetByAccount(ctx, command.Account())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return LoginResult{}, errs.NewUnauthorizedError("invalid credentials")
	}
	if err != nil {
		return LoginResult{}, err
	}

	clock := services.ResolveClock(h.opts...)
	u, err := user.RestoreUser(loaded.ID(), loaded.Account(), loaded.PasswordHash(), loaded.Code(),
		loaded.Name(), loaded.Type(), loaded.IsActive(), loaded.LastLoginAt(), loaded.CreatedAt(),
		loaded.UpdatedAt(), user.WithClock(clock))
	if err != nil {
		return LoginResult{}, err
	}

	actor := Actor{id: u.ID(), ipAddress: command.IPAddress()}
	logs := uow.SystemLogRepository()

	if !h.hasher.Compare(command.Password(), u.PasswordHash()) {
		if err = recordAudit(ctx, logs, actor, services.AuditRecord{
			Action:      services.ActionLoginFailed,
			TargetType:  services.TargetUser,
			TargetID:    u.ID().String(),
			Description: fmt.Sprintf("Failed login for account: %s", u.Account()),
		}, h.opts); err != nil {
			return LoginResult{}, err
		}
		if err = uow.Commit(ctx); err != nil {
			return LoginResult{}, err
		}
		return LoginResult{}, errs.NewUnauthorizedError("invalid credentials")
	}

	if !u.IsActive() {
		return LoginResult{}, errs.NewForbiddenError("account is disabled")
	}

	u.RecordLogin(clock())
	if err = users.Update(ctx, u); err != nil {
		return LoginResult{}, err
	}

	if err = recordAudit(ctx, logs, actor, services.AuditRecord{
		Action:      services.ActionLoginSuccess,
		TargetType:  services.TargetUser,
		TargetID:    u.ID().String(),
		Description: fmt.Sprintf("User logged in: %s", u.Account()),
	}, h.opts); err != nil {
		return LoginResult{}, err
	}

	pair, err := h.tokens.IssuePair(subjectOf(u))
	if err != nil {
		return LoginResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return LoginResult{}, err
	}

	return LoginResult{TokenResult: newTokenResult(pair), User: newUserResult(u)}, nil
}

func subjectOf(u *user.User) ports.TokenSubject {
	return ports.TokenSubject{
		UserID:   u.ID(),
		Account:  u.Account(),
		UserType: u.Type().String(),
		Code:     u.Code().String(),
	}
}

func newTokenResult(pair ports.TokenPair) TokenResult {
	return TokenResult{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		TokenType:    tokenTypeBearer,
		ExpiresIn:    int64(pair.ExpiresIn.Seconds()),
	}
}
