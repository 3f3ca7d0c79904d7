package commands

import (
	"errors"
	"strings"

	"rfidship/internal/core/domain/model/kernel"
	"rfidship/internal/core/domain/model/user"
	"rfidship/internal/pkg/errs"
	"rfidship/internal/pkg/guard"
)

var (
	ErrCreateUserCommandIsNotConstructed = errors.New(
		"CreateUserCommand must be created via NewCreateUserCommand constructor",
	)
	ErrUpdateUserCommandIsNotConstructed = errors.New(
		"UpdateUserCommand must be created via NewUpdateUserCommand constructor",
	)
	ErrDeleteUserCommandIsNotConstructed = errors.New(
		"DeleteUserCommand must be created via NewDeleteUserCommand constructor",
	)
)

// CreateUserCommand registers a new account. The password is kept in plain
// text only until the handler hashes it.
type CreateUserCommand struct {
	actor    Actor
	account  string
	password string
	code     kernel.UserCode
	name     string
	userType user.Type
	guard    guard.ConstructorGuard
}

func NewCreateUserCommand(
	actor Actor,
	account, password, code, name, userType string,
) (CreateUserCommand, error) {
	parsedCode, codeErr := kernel.NewUserCode(code)
	parsedType, typeErr := user.ParseType(userType)

	if err := errors.Join(
		actor.Validate(),
		requireText("account", account),
		requireText("password", password),
		codeErr,
		requireText("name", name),
		typeErr,
	); err != nil {
		return CreateUserCommand{}, err
	}

	return CreateUserCommand{
		actor:    actor,
		account:  strings.TrimSpace(account),
		password: password,
		code:     parsedCode,
		name:     strings.TrimSpace(name),
		userType: parsedType,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c CreateUserCommand) Validate() error {
	return c.guard.Validate(ErrCreateUserCommandIsNotConstructed)
}

func (c CreateUserCommand) Actor() Actor          { return c.actor }
func (c CreateUserCommand) Account() string       { return c.account }
func (c CreateUserCommand) Password() string      { return c.password }
func (c CreateUserCommand) Code() kernel.UserCode { return c.code }
func (c CreateUserCommand) Name() string          { return c.name }
func (c CreateUserCommand) UserType() user.Type   { return c.userType }

// UpdateUserParams carries the optional changes of UpdateUserCommand.
// A nil field is left untouched.
type UpdateUserParams struct {
	Account  *string
	Password *string
	Code     *string
	Name     *string
	UserType *string
	IsActive *bool
}

// UpdateUserCommand applies a partial update to an account.
type UpdateUserCommand struct {
	actor    Actor
	target   kernel.UUID
	account  *string
	password *string
	code     *kernel.UserCode
	name     *string
	userType *user.Type
	isActive *bool
	guard    guard.ConstructorGuard
}

func NewUpdateUserCommand(actor Actor, target string, params UpdateUserParams) (UpdateUserCommand, error) {
	targetID, targetErr := kernel.UUIDFromString(target)

	cmd := UpdateUserCommand{
		actor:    actor,
		target:   targetID,
		password: params.Password,
		isActive: params.IsActive,
	}

	var accountErr, passwordErr, nameErr, codeErr, typeErr error
	if params.Account != nil {
		accountErr = requireText("account", *params.Account)
		account := strings.TrimSpace(*params.Account)
		cmd.account = &account
	}
	if params.Password != nil {
		passwordErr = requireText("password", *params.Password)
	}
	if params.Name != nil {
		nameErr = requireText("name", *params.Name)
		name := strings.TrimSpace(*params.Name)
		cmd.name = &name
	}
	if params.Code != nil {
		var code kernel.UserCode
		code, codeErr = kernel.NewUserCode(*params.Code)
		cmd.code = &code
	}
	if params.UserType != nil {
		var userType user.Type
		userType, typeErr = user.ParseType(*params.UserType)
		cmd.userType = &userType
	}

	if err := errors.Join(actor.Validate(), targetErr, accountErr, passwordErr, nameErr, codeErr, typeErr); err != nil {
		return UpdateUserCommand{}, err
	}

	cmd.guard = guard.NewConstructorGuard()
	return cmd, nil
}

func (c UpdateUserCommand) Validate() error {
	return c.guard.Validate(ErrUpdateUserCommandIsNotConstructed)
}

func (c UpdateUserCommand) Actor() Actor           { return c.actor }
func (c UpdateUserCommand) Target() kernel.UUID    { return c.target }
func (c UpdateUserCommand) Account() *string       { return c.account }
func (c UpdateUserCommand) Password() *string      { return c.password }
func (c UpdateUserCommand) Code() *kernel.UserCode { return c.code }
func (c UpdateUserCommand) Name() *string          { return c.name }
func (c UpdateUserCommand) UserType() *user.Type   { return c.userType }
func (c UpdateUserCommand) IsActive() *bool        { return c.isActive }

// DeleteUserCommand removes an account permanently.
type DeleteUserCommand struct {
	actor  Actor
	target kernel.UUID
	guard  guard.ConstructorGuard
}

func NewDeleteUserCommand(actor Actor, target string) (DeleteUserCommand, error) {
	targetID, targetErr := kernel.UUIDFromString(target)
	if err := errors.Join(actor.Validate(), targetErr); err != nil {
		return DeleteUserCommand{}, err
	}

	return DeleteUserCommand{
		actor:  actor,
		target: targetID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (c DeleteUserCommand) Validate() error {
	return c.guard.Validate(ErrDeleteUserCommandIsNotConstructed)
}

func (c DeleteUserCommand) Actor() Actor        { return c.actor }
func (c DeleteUserCommand) Target() kernel.UUID { return c.target }

func requireText(paramName, value string) error {
	if strings.TrimSpace(value) == "" {
		return errs.NewValueIsRequiredError(paramName)
	}
	return nil
}
