package commands_test

import (
	"testing"

	"rfidship/internal/core/application/usecases/commands"
	"rfidship/internal/core/domain/model/shipment"
	"rfidship/internal/core/domain/model/systemlog"
	"rfidship/internal/core/domain/model/user"
	"rfidship/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestShipShipmentCommandHandler_Handle(t *testing.T) {
	actorUser := mustUser(t, "001", user.Regular)

	t.Run("ships and audits box count", func(t *testing.T) {
		ctx := t.Context()
		s := mustShipment(t, "001LOYW3V280123Z")
		require.NoError(t, s.AddBox(mustPackedBox(t, "001", 1, mustUnit(t, testSKU, 1))))
		require.NoError(t, s.AddBox(mustPackedBox(t, "001", 2, mustUnit(t, testSKU, 2))))

		cmd, err := commands.NewShipShipmentCommand(mustActor(t, actorUser), s.ShipmentNo().String())
		require.NoError(t, err)

		uow := new(MockUoW)
		r := newRepos(uow)
		factory := new(MockShipmentUoWFactory)
		factory.On("Create").Return(uow).Once()

		uow.On("Begin", ctx).Return(nil).Once()
		r.users.On("Get", ctx, actorUser.ID()).Return(actorUser, nil).Once()
		r.shipments.On("Get", ctx, s.ShipmentNo()).Return(s, nil).Once()
		r.shipments.On("Update", ctx, s).Return(nil).Once()
		r.logs.On("Add", ctx, mock.Anything).Return(nil).Once()
		uow.On("Commit", ctx).Return(nil).Once()

		h := commands.NewShipShipmentCommandHandler(factory, testOpts()...)
		result, err := h.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, shipment.Shipped.String(), result.Status)
		assert.Equal(t, 2, result.BoxCount)

		r.logs.AssertCalled(t, "Add", ctx, mock.MatchedBy(func(e *systemlog.Entry) bool {
			return e.Description() == "Shipped shipment with 2 boxes"
		}))
	})

	t.Run("already shipped", func(t *testing.T) {
		ctx := t.Context()
		s := mustShipment(t, "001LOYW3V280123Z")
		require.NoError(t, s.AddBox(mustPackedBox(t, "001", 1, mustUnit(t, testSKU, 1))))
		require.NoError(t, s.Ship())

		cmd, err := commands.NewShipShipmentCommand(mustActor(t, actorUser), s.ShipmentNo().String())
		require.NoError(t, err)

		uow := new(MockUoW)
		r := newRepos(uow)
		factory := new(MockShipmentUoWFactory)
		factory.On("Create").Return(uow).Once()

		uow.On("Begin", ctx).Return(nil).Once()
		r.users.On("Get", ctx, actorUser.ID()).Return(actorUser, nil).Once()
		r.shipments.On("Get", ctx, s.ShipmentNo()).Return(s, nil).Once()

		h := commands.NewShipShipmentCommandHandler(factory)
		_, err = h.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrConflict)
		uow.AssertNotCalled(t, "Commit", mock.Anything)
	})
}
