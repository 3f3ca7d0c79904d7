package commands_test

import (
	"testing"

	"rfidship/internal/core/application/usecases/commands"
	"rfidship/internal/core/domain/model/user"
	"rfidship/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShipmentCommands_RejectMalformedNumbers(t *testing.T) {
	actor := mustActor(t, mustUser(t, "001", user.Regular))

	_, err := commands.NewShipShipmentCommand(actor, "001")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = commands.NewAddBoxToShipmentCommand(actor, "001LOYW3V280123Z", "B00120250001")
	require.Error(t, err)

	var zero commands.AddBoxToShipmentCommand
	assert.Equal(t, commands.ErrAddBoxToShipmentCommandIsNotConstructed, zero.Validate())
}
