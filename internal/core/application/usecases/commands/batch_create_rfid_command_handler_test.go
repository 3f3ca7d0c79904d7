package commands_test

import (
	"errors"
	"testing"

	"rfidship/internal/core/application/usecases/commands"
	"rfidship/internal/core/domain/model/kernel"
	"rfidship/internal/core/domain/model/user"
	"rfidship/internal/core/domain/services"
	"rfidship/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestBatchCreateRfidCommandHandler_Handle_SkipsSerialsPastMaximum(t *testing.T) {
	ctx := t.Context()
	actorUser := mustUser(t, "001", user.Regular)
	cmd, err := commands.NewBatchCreateRfidCommand(mustActor(t, actorUser), testSKU, "", "9998", 5)
	require.NoError(t, err)

	uow := new(MockUoW)
	r := newRepos(uow)
	factory := new(MockRfidUoWFactory)
	factory.On("Create").Return(uow).Once()

	uow.On("Begin", ctx).Return(nil).Once()
	r.users.On("Get", ctx, actorUser.ID()).Return(actorUser, nil).Once()
	r.rfids.On("GetBySkuAndSerial", ctx, mock.Anything, mock.Anything).
		Return(nil, errs.NewObjectNotFoundError("rfid", testSKU)).Twice()
	r.rfids.On("Exists", ctx, mock.Anything).Return(false, nil).Twice()
	r.rfids.On("Add", ctx, mock.AnythingOfType("*productrfid.ProductRfid")).Return(nil).Twice()
	r.expectAudit(ctx, services.ActionBatchCreateRfid).Once()
	uow.On("Commit", ctx).Return(nil).Once()

	h := commands.NewBatchCreateRfidCommandHandler(factory, nil, testOpts()...)
	result, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 5, result.TotalRequested)
	assert.Equal(t, 2, result.TotalCreated)
	assert.Equal(t, 3, result.Failed)
	require.Len(t, result.Items, 5)
	assert.Equal(t, commands.ItemCreated, result.Items[0].Status)
	assert.Equal(t, "A2526002012349999", result.Items[1].Rfid)
	for _, item := range result.Items[2:] {
		assert.Equal(t, commands.ItemSkipped, item.Status)
		assert.Equal(t, commands.ReasonSerialOverflow, item.Reason)
	}
	assert.Equal(t, "10002", result.Items[4].SerialNo)
	r.assertExpectations(t)
	uow.AssertExpectations(t)
}

func TestBatchCreateRfidCommandHandler_Handle_ReportsExistingSerial(t *testing.T) {
	ctx := t.Context()
	actorUser := mustUser(t, "001", user.Regular)
	cmd, err := commands.NewBatchCreateRfidCommand(mustActor(t, actorUser), testSKU, "", "0001", 2)
	require.NoError(t, err)

	existing := mustUnit(t, testSKU, 1)
	second, err := kernel.NewSerialNumberFromInt(2)
	require.NoError(t, err)

	uow := new(MockUoW)
	r := newRepos(uow)
	factory := new(MockRfidUoWFactory)
	factory.On("Create").Return(uow).Once()

	uow.On("Begin", ctx).Return(nil).Once()
	r.users.On("Get", ctx, actorUser.ID()).Return(actorUser, nil).Once()
	r.rfids.On("GetBySkuAndSerial", ctx, cmd.SKU(), cmd.StartSerial()).Return(existing, nil).Once()
	r.rfids.On("GetBySkuAndSerial", ctx, cmd.SKU(), second).
		Return(nil, errs.NewObjectNotFoundError("rfid", testSKU)).Once()
	r.rfids.On("Exists", ctx, mock.Anything).Return(false, nil).Once()
	r.rfids.On("Add", ctx, mock.Anything).Return(nil).Once()
	r.expectAudit(ctx, services.ActionBatchCreateRfid).Once()
	uow.On("Commit", ctx).Return(nil).Once()

	h := commands.NewBatchCreateRfidCommandHandler(factory, nil, testOpts()...)
	result, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 1, result.TotalCreated)
	assert.Equal(t, 1, result.Failed)
	assert.Equal(t, commands.ReasonSerialExists, result.Items[0].Reason)
	assert.Equal(t, existing.Rfid().String(), result.Items[0].Rfid)
	assert.Equal(t, result.TotalRequested, result.TotalCreated+result.Failed)
}

func TestBatchCreateRfidCommandHandler_Handle_StorageErrorAbortsBatch(t *testing.T) {
	ctx := t.Context()
	actorUser := mustUser(t, "001", user.Regular)
	cmd, err := commands.NewBatchCreateRfidCommand(mustActor(t, actorUser), testSKU, "", "0001", 3)
	require.NoError(t, err)

	uow := new(MockUoW)
	r := newRepos(uow)
	factory := new(MockRfidUoWFactory)
	factory.On("Create").Return(uow).Once()

	uow.On("Begin", ctx).Return(nil).Once()
	r.users.On("Get", ctx, actorUser.ID()).Return(actorUser, nil).Once()
	r.rfids.On("GetBySkuAndSerial", ctx, mock.Anything, mock.Anything).
		Return(nil, errors.New("connection reset")).Once()

	h := commands.NewBatchCreateRfidCommandHandler(factory, nil)
	_, err = h.Handle(ctx, cmd)

	require.EqualError(t, err, "connection reset")
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	r.logs.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}
