package commands_test

import (
	"testing"

	"lorrylink/internal/core/application/usecases/commands"
	"lorrylink/internal/core/domain/model/account"
	"lorrylink/internal/core/domain/model/kernel"
	"lorrylink/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func storedAccount(t *testing.T, id kernel.UUID, role account.Role) *account.Account {
	t.Helper()
	acc, err := account.NewAccount(id, "suresh", "suresh@example.com", "$2a$10$hash", role)
	require.NoError(t, err)
	return acc
}

func TestRemoveAccountCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	admin := actorWithRole(t, account.Admin)
	targetID := kernel.NewUUID()
	target := storedAccount(t, targetID, account.Driver)

	cmd, err := commands.NewRemoveAccountCommand(admin, targetID)
	require.NoError(t, err)

	repo := new(MockAccountRepository)
	uow := new(MockAccountUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AccountRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, targetID).Return(target, nil).Once(),
		repo.On("Delete", mock.Anything, targetID).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAccountUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRemoveAccountCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestRemoveAccountCommandHandler_Handle_NonAdminForbidden(t *testing.T) {
	ctx := t.Context()
	owner := actorWithRole(t, account.GoodsOwner)

	cmd, err := commands.NewRemoveAccountCommand(owner, kernel.NewUUID())
	require.NoError(t, err)

	factory := new(MockAccountUoWFactory)
	h := commands.NewRemoveAccountCommandHandler(factory)

	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrForbidden)
	factory.AssertNotCalled(t, "Create")
}

func TestRemoveAccountCommandHandler_Handle_SelfRemovalForbidden(t *testing.T) {
	ctx := t.Context()
	admin := actorWithRole(t, account.Admin)

	cmd, err := commands.NewRemoveAccountCommand(admin, admin.ID())
	require.NoError(t, err)

	factory := new(MockAccountUoWFactory)
	h := commands.NewRemoveAccountCommandHandler(factory)

	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrForbidden)
	factory.AssertNotCalled(t, "Create")
}

func TestRemoveAccountCommandHandler_Handle_AccountNotFound(t *testing.T) {
	ctx := t.Context()
	admin := actorWithRole(t, account.Admin)
	targetID := kernel.NewUUID()

	cmd, err := commands.NewRemoveAccountCommand(admin, targetID)
	require.NoError(t, err)

	repo := new(MockAccountRepository)
	uow := new(MockAccountUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AccountRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, targetID).
			Return(nil, errs.NewObjectNotFoundError("account", targetID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAccountUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRemoveAccountCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}
