package commands_test

import (
	"testing"

	"rfidship/internal/core/application/usecases/commands"
	"rfidship/internal/core/domain/model/user"
	"rfidship/internal/core/domain/services"
	"rfidship/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemoveRfidFromBoxCommandHandler_Handle(t *testing.T) {
	actorUser := mustUser(t, "001", user.Regular)

	t.Run("success", func(t *testing.T) {
		ctx := t.Context()
		unit := mustUnit(t, testSKU, 1)
		b := mustPackedBox(t, "001", 1, unit)
		cmd, err := commands.NewRemoveRfidFromBoxCommand(mustActor(t, actorUser), b.BoxNo().String(), unit.Rfid().String())
		require.NoError(t, err)

		uow := new(MockUoW)
		r := newRepos(uow)
		factory := new(MockBoxUoWFactory)
		factory.On("Create").Return(uow).Once()

		uow.On("Begin", ctx).Return(nil).Once()
		r.users.On("Get", ctx, actorUser.ID()).Return(actorUser, nil).Once()
		r.boxes.On("Get", ctx, b.BoxNo()).Return(b, nil).Once()
		r.rfids.On("Get", ctx, unit.Rfid()).Return(unit, nil).Once()
		r.boxes.On("Update", ctx, b).Return(nil).Once()
		r.rfids.On("Update", ctx, unit).Return(nil).Once()
		r.expectAudit(ctx, services.ActionRemoveRfidFromBox).Once()
		uow.On("Commit", ctx).Return(nil).Once()

		h := commands.NewRemoveRfidFromBoxCommandHandler(factory, testOpts()...)
		result, err := h.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, 0, result.ProductCount)
		assert.False(t, unit.IsAssignedToBox())
		r.assertExpectations(t)
	})

	t.Run("unit not in any box", func(t *testing.T) {
		ctx := t.Context()
		unit := mustUnit(t, testSKU, 1)
		b := mustPackedBox(t, "001", 1, mustUnit(t, testSKU, 2))
		cmd, err := commands.NewRemoveRfidFromBoxCommand(mustActor(t, actorUser), b.BoxNo().String(), unit.Rfid().String())
		require.NoError(t, err)

		uow := new(MockUoW)
		r := newRepos(uow)
		factory := new(MockBoxUoWFactory)
		factory.On("Create").Return(uow).Once()

		uow.On("Begin", ctx).Return(nil).Once()
		r.users.On("Get", ctx, actorUser.ID()).Return(actorUser, nil).Once()
		r.boxes.On("Get", ctx, b.BoxNo()).Return(b, nil).Once()
		r.rfids.On("Get", ctx, unit.Rfid()).Return(unit, nil).Once()

		h := commands.NewRemoveRfidFromBoxCommandHandler(factory)
		_, err = h.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrConflict)
		assert.Contains(t, err.Error(), "RFID is not assigned to any box")
	})

	t.Run("unit in another box", func(t *testing.T) {
		ctx := t.Context()
		unit := mustUnit(t, testSKU, 1)
		mustPackedBox(t, "001", 2, unit)
		b := mustPackedBox(t, "001", 1, mustUnit(t, testSKU, 2))
		cmd, err := commands.NewRemoveRfidFromBoxCommand(mustActor(t, actorUser), b.BoxNo().String(), unit.Rfid().String())
		require.NoError(t, err)

		uow := new(MockUoW)
		r := newRepos(uow)
		factory := new(MockBoxUoWFactory)
		factory.On("Create").Return(uow).Once()

		uow.On("Begin", ctx).Return(nil).Once()
		r.users.On("Get", ctx, actorUser.ID()).Return(actorUser, nil).Once()
		r.boxes.On("Get", ctx, b.BoxNo()).Return(b, nil).Once()
		r.rfids.On("Get", ctx, unit.Rfid()).Return(unit, nil).Once()

		h := commands.NewRemoveRfidFromBoxCommandHandler(factory)
		_, err = h.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrConflict)
		assert.Contains(t, err.Error(), "RFID is not assigned to this box")
		assert.Equal(t, 1, b.ProductCount())
	})
}
