package commands_test

import (
	"testing"

	"rfidship/internal/core/application/usecases/commands"
	"rfidship/internal/core/domain/model/systemlog"
	"rfidship/internal/core/domain/model/user"
	"rfidship/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestEnsureAdminCommandHandler_Handle_CreatesAdmin(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewEnsureAdminCommand("root", "Secret123", "ADM", "Administrator")
	require.NoError(t, err)

	hasher := new(MockPasswordHasher)
	hasher.On("ValidateStrength", "Secret123").Return(nil).Once()
	hasher.On("Hash", "Secret123").Return("$2a$hash", nil).Once()

	uow := new(MockUoW)
	r := newRepos(uow)
	factory := new(MockUserUoWFactory)
	factory.On("Create").Return(uow).Once()

	var created *user.User
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		r.users.On("GetByAccount", ctx, "root").Return(nil, errs.NewObjectNotFoundError("user", "root")).Once(),
		r.users.On("GetByCode", ctx, cmd.Code()).Return(nil, errs.NewObjectNotFoundError("user", "ADM")).Once(),
		r.users.On("Add", ctx, mock.AnythingOfType("*user.User")).Run(func(args mock.Arguments) {
			created = args.Get(1).(*user.User)
		}).Return(nil).Once(),
		r.logs.On("Add", ctx, mock.MatchedBy(func(e *systemlog.Entry) bool {
			return e.Action() == "CREATE_USER" && created != nil && e.UserUUID().IsEqual(created.ID())
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
	)

	h := commands.NewEnsureAdminCommandHandler(factory, hasher, testOpts()...)
	result, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, result.Created)
	assert.Equal(t, "admin", result.User.UserType)
	assert.Equal(t, "root", result.User.Account)
	r.assertExpectations(t)
	hasher.AssertExpectations(t)
}

func TestEnsureAdminCommandHandler_Handle_ExistingAdminIsKept(t *testing.T) {
	ctx := t.Context()
	admin := mustUser(t, "ADM", user.Admin)
	cmd, err := commands.NewEnsureAdminCommand(admin.Account(), "Secret123", "ADM", "Administrator")
	require.NoError(t, err)

	hasher := new(MockPasswordHasher)
	uow := new(MockUoW)
	r := newRepos(uow)
	factory := new(MockUserUoWFactory)
	factory.On("Create").Return(uow).Once()

	uow.On("Begin", ctx).Return(nil).Once()
	r.users.On("GetByAccount", ctx, admin.Account()).Return(admin, nil).Once()

	result, err := commands.NewEnsureAdminCommandHandler(factory, hasher).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.False(t, result.Created)
	assert.Equal(t, admin.ID().String(), result.User.UUID)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	hasher.AssertNotCalled(t, "Hash", mock.Anything)
}

func TestEnsureAdminCommandHandler_Handle_AccountHeldByRegularUser(t *testing.T) {
	ctx := t.Context()
	regular := mustUser(t, "002", user.Regular)
	cmd, err := commands.NewEnsureAdminCommand(regular.Account(), "Secret123", "ADM", "Administrator")
	require.NoError(t, err)

	uow := new(MockUoW)
	r := newRepos(uow)
	factory := new(MockUserUoWFactory)
	factory.On("Create").Return(uow).Once()

	uow.On("Begin", ctx).Return(nil).Once()
	r.users.On("GetByAccount", ctx, regular.Account()).Return(regular, nil).Once()

	_, err = commands.NewEnsureAdminCommandHandler(factory, new(MockPasswordHasher)).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrConflict)
}

func TestEnsureAdminCommandHandler_RejectsZeroValueCommand(t *testing.T) {
	_, err := commands.NewEnsureAdminCommandHandler(new(MockUserUoWFactory), new(MockPasswordHasher)).
		Handle(t.Context(), commands.EnsureAdminCommand{})

	require.ErrorIs(t, err, commands.ErrEnsureAdminCommandIsNotConstructed)
}
