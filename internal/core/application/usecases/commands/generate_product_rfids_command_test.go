package commands_test

import (
	"testing"

	"rfidship/internal/core/application/usecases/commands"
	"rfidship/internal/core/domain/model/user"
	"rfidship/internal/pkg/errs"

	"github.com/stretchr/testify/require"
)

func TestNewGenerateProductRfidsCommand_QuantityRange(t *testing.T) {
	actor := mustActor(t, mustUser(t, "001", user.Regular))

	_, err := commands.NewGenerateProductRfidsCommand(actor, testSKU, 0)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

	_, err = commands.NewGenerateProductRfidsCommand(actor, testSKU, commands.MaxRfidBatch+1)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

	_, err = commands.NewGenerateProductRfidsCommand(actor, testSKU, commands.MaxRfidBatch)
	require.NoError(t, err)
}
