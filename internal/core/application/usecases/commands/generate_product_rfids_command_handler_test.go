package commands_test

import (
	"testing"

	"rfidship/internal/core/application/usecases/commands"
	"rfidship/internal/core/domain/model/kernel"
	"rfidship/internal/core/domain/model/productrfid"
	"rfidship/internal/core/domain/model/user"
	"rfidship/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGenerateProductRfidsCommandHandler_Handle_SkipsTakenTags(t *testing.T) {
	ctx := t.Context()
	actorUser := mustUser(t, "001", user.Regular)
	cmd, err := commands.NewGenerateProductRfidsCommand(mustActor(t, actorUser), testSKU, 3)
	require.NoError(t, err)

	taken, err := kernel.NewRfidTag("A2526002012340002")
	require.NoError(t, err)

	uow := new(MockUoW)
	r := newRepos(uow)
	factory := new(MockRfidUoWFactory)
	factory.On("Create").Return(uow).Once()

	uow.On("Begin", ctx).Return(nil).Once()
	r.users.On("Get", ctx, actorUser.ID()).Return(actorUser, nil).Once()
	r.rfids.On("Exists", ctx, taken).Return(true, nil).Once()
	r.rfids.On("Exists", ctx, mock.Anything).Return(false, nil).Twice()
	r.rfids.On("Add", ctx, mock.MatchedBy(func(p *productrfid.ProductRfid) bool {
		return !p.Rfid().IsEqual(taken)
	})).Return(nil).Twice()
	r.expectAudit(ctx, services.ActionCreateRfid).Twice()
	uow.On("Commit", ctx).Return(nil).Once()

	h := commands.NewGenerateProductRfidsCommandHandler(factory, nil, nil, testOpts()...)
	result, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 2, result.GeneratedCount)
	assert.Equal(t, "0001", result.StartSerial)
	assert.Equal(t, "0003", result.EndSerial)
	assert.Equal(t, []string{"A2526002012340001", "A2526002012340003"}, result.Rfids)
	r.assertExpectations(t)
	uow.AssertExpectations(t)
}
