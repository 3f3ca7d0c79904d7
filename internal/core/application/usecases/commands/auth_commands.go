package commands

import (
	"errors"
	"strings"

	"rfidship/internal/pkg/guard"
)

var (
	ErrLoginCommandIsNotConstructed = errors.New(
		"LoginCommand must be created via NewLoginCommand constructor",
	)
	ErrRefreshTokenCommandIsNotConstructed = errors.New(
		"RefreshTokenCommand must be created via NewRefreshTokenCommand constructor",
	)
)

// LoginCommand carries the credentials of an anonymous caller.
type LoginCommand struct {
	account   string
	password  string
	ipAddress string
	guard     guard.ConstructorGuard
}

func NewLoginCommand(account, password, ipAddress string) (LoginCommand, error) {
	if err := errors.Join(
		requireText("account", account),
		requireText("password", password),
	); err != nil {
		return LoginCommand{}, err
	}

	return LoginCommand{
		account:   strings.TrimSpace(account),
		password:  password,
		ipAddress: ipAddress,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c LoginCommand) Validate() error {
	return c.guard.Validate(ErrLoginCommandIsNotConstructed)
}

func (c LoginCommand) Account() string   { return c.account }
func (c LoginCommand) Password() string  { return c.password }
func (c LoginCommand) IPAddress() string { return c.ipAddress }

// RefreshTokenCommand exchanges a refresh token for a new pair.
type RefreshTokenCommand struct {
	refreshToken string
	guard        guard.ConstructorGuard
}

func NewRefreshTokenCommand(refreshToken string) (RefreshTokenCommand, error) {
	if err := requireText("refresh token", refreshToken); err != nil {
		return RefreshTokenCommand{}, err
	}

	return RefreshTokenCommand{
		refreshToken: refreshToken,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c RefreshTokenCommand) Validate() error {
	return c.guard.Validate(ErrRefreshTokenCommandIsNotConstructed)
}

func (c RefreshTokenCommand) RefreshToken() string { return c.refreshToken }
