package commands

import (
	"errors"

	"rfidship/internal/core/domain/model/kernel"
	"rfidship/internal/core/domain/services"
	"rfidship/internal/pkg/guard"
)

var ErrCreateBoxCommandIsNotConstructed = errors.New(
	"CreateBoxCommand must be created via NewCreateBoxCommand constructor",
)

// CreateBoxCommand requests the next box number for a 3 digit code in the
// current year.
type CreateBoxCommand struct {
	actor Actor
	code  kernel.UserCode
	guard guard.ConstructorGuard
}

func NewCreateBoxCommand(actor Actor, code string) (CreateBoxCommand, error) {
	boxCode, codeErr := services.ParseBoxCode(code)
	if err := errors.Join(actor.Validate(), codeErr); err != nil {
		return CreateBoxCommand{}, err
	}

	return CreateBoxCommand{
		actor: actor,
		code:  boxCode,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c CreateBoxCommand) Validate() error {
	return c.guard.Validate(ErrCreateBoxCommandIsNotConstructed)
}

func (c CreateBoxCommand) Actor() Actor          { return c.actor }
func (c CreateBoxCommand) Code() kernel.UserCode { return c.code }
