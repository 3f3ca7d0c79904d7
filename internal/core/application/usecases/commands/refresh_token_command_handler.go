package commands

import (
	"context"

	"rfidship/internal/core/ports"
	"rfidship/internal/pkg/errs"
)

// RefreshTokenCommandHandler reissues a token pair for a still active user.
// Every failure reaches the caller as the same unauthorized error.
type RefreshTokenCommandHandler struct {
	uowFactory UserUoWFactory
	tokens     ports.TokenIssuer
}

func NewRefreshTokenCommandHandler(uowFactory UserUoWFactory, tokens ports.TokenIssuer) RefreshTokenCommandHandler {
	return RefreshTokenCommandHandler{uowFactory: uowFactory, tokens: tokens}
}

func (h RefreshTokenCommandHandler) Handle(ctx context.Context, command RefreshTokenCommand) (TokenResult, error) {
	if err := command.Validate(); err != nil {
		return TokenResult{}, err
	}

	pair, err := h.refresh(ctx, command.RefreshToken())
	if err != nil {
		return TokenResult{}, errs.NewUnauthorizedErrorWithCause("invalid refresh token", err)
	}
	return newTokenResult(pair), nil
}

func (h RefreshTokenCommandHandler) refresh(ctx context.Context, token string) (ports.TokenPair, error) {
	userID, err := h.tokens.ParseRefresh(token)
	if err != nil {
		return ports.TokenPair{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return ports.TokenPair{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	u, err := uow.UserRepository().Get(ctx, userID)
	if err != nil {
		return ports.TokenPair{}, err
	}
	if err = u.EnsureActive(); err != nil {
		return ports.TokenPair{}, err
	}

	return h.tokens.IssuePair(subjectOf(u))
}
