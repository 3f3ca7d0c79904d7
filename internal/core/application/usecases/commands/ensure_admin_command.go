package commands

import (
	"errors"
	"strings"

	"rfidship/internal/core/domain/model/kernel"
	"rfidship/internal/pkg/guard"
)

var ErrEnsureAdminCommandIsNotConstructed = errors.New(
	"EnsureAdminCommand must be created via NewEnsureAdminCommand constructor",
)

// EnsureAdminCommand provisions the first administrator at startup. It has
// no actor: the created account audits its own creation.
type EnsureAdminCommand struct {
	account  string
	password string
	code     kernel.UserCode
	name     string
	guard    guard.ConstructorGuard
}

func NewEnsureAdminCommand(account, password, code, name string) (EnsureAdminCommand, error) {
	parsedCode, codeErr := kernel.NewUserCode(code)

	if err := errors.Join(
		requireText("account", account),
		requireText("password", password),
		codeErr,
		requireText("name", name),
	); err != nil {
		return EnsureAdminCommand{}, err
	}

	return EnsureAdminCommand{
		account:  strings.TrimSpace(account),
		password: password,
		code:     parsedCode,
		name:     strings.TrimSpace(name),
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c EnsureAdminCommand) Validate() error {
	return c.guard.Validate(ErrEnsureAdminCommandIsNotConstructed)
}

func (c EnsureAdminCommand) Account() string       { return c.account }
func (c EnsureAdminCommand) Password() string      { return c.password }
func (c EnsureAdminCommand) Code() kernel.UserCode { return c.code }
func (c EnsureAdminCommand) Name() string          { return c.name }

// EnsureAdminResult reports the administrator account and whether this call
// created it.
type EnsureAdminResult struct {
	User    UserResult
	Created bool
}
