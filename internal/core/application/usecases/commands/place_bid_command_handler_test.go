package commands_test

import (
	"testing"

	"lorrylink/internal/core/application/usecases/commands"
	"lorrylink/internal/core/domain/model/account"
	"lorrylink/internal/core/domain/model/bid"
	"lorrylink/internal/core/domain/model/kernel"
	"lorrylink/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPlaceBidCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	driver := actorWithRole(t, account.Driver)
	l := pendingLoad(t, kernel.NewUUID())
	amount := money(t, 1200)
	cmd, err := commands.NewPlaceBidCommand(driver, kernel.NewUUID(), l.ID(), amount)
	require.NoError(t, err)

	loadRepo := new(MockLoadRepository)
	bidRepo := new(MockBidRepository)
	uow := new(MockBiddingUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("LoadRepository").Return(loadRepo).Once(),
		uow.On("BidRepository").Return(bidRepo).Once(),
		loadRepo.On("Get", mock.Anything, l.ID()).Return(l, nil).Once(),
		bidRepo.On("GetByLoadAndDriver", mock.Anything, l.ID(), driver.ID()).
			Return(nil, errs.NewObjectNotFoundError("bid", l.ID())).Once(),
		bidRepo.On("Add", mock.Anything, mock.AnythingOfType("*bid.Bid")).Return(nil).Once(),
		loadRepo.On("RaiseHighestBid", mock.Anything, l.ID(), amount).Return(true, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockBiddingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPlaceBidCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	loadRepo.AssertExpectations(t)
	bidRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestPlaceBidCommandHandler_Handle_NonDriverForbidden(t *testing.T) {
	ctx := t.Context()
	owner := actorWithRole(t, account.GoodsOwner)
	cmd, err := commands.NewPlaceBidCommand(owner, kernel.NewUUID(), kernel.NewUUID(), money(t, 500))
	require.NoError(t, err)

	factory := new(MockBiddingUoWFactory)
	h := commands.NewPlaceBidCommandHandler(factory)

	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrForbidden)
	factory.AssertNotCalled(t, "Create")
}

func TestPlaceBidCommandHandler_Handle_LiveBidConflict(t *testing.T) {
	ctx := t.Context()
	driver := actorWithRole(t, account.Driver)
	l := pendingLoad(t, kernel.NewUUID())
	existing := pendingBid(t, l.ID(), driver.ID(), 900)
	cmd, err := commands.NewPlaceBidCommand(driver, kernel.NewUUID(), l.ID(), money(t, 1100))
	require.NoError(t, err)

	loadRepo := new(MockLoadRepository)
	bidRepo := new(MockBidRepository)
	uow := new(MockBiddingUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("LoadRepository").Return(loadRepo).Once(),
		uow.On("BidRepository").Return(bidRepo).Once(),
		loadRepo.On("Get", mock.Anything, l.ID()).Return(l, nil).Once(),
		bidRepo.On("GetByLoadAndDriver", mock.Anything, l.ID(), driver.ID()).
			Return(existing, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockBiddingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPlaceBidCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrConflict)
	bidRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	bidRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}

func TestPlaceBidCommandHandler_Handle_ReopensWithdrawnBid(t *testing.T) {
	ctx := t.Context()
	driver := actorWithRole(t, account.Driver)
	l := pendingLoad(t, kernel.NewUUID())
	existing := pendingBid(t, l.ID(), driver.ID(), 900)
	require.NoError(t, existing.Decline())
	amount := money(t, 1100)
	cmd, err := commands.NewPlaceBidCommand(driver, kernel.NewUUID(), l.ID(), amount)
	require.NoError(t, err)

	loadRepo := new(MockLoadRepository)
	bidRepo := new(MockBidRepository)
	uow := new(MockBiddingUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("LoadRepository").Return(loadRepo).Once(),
		uow.On("BidRepository").Return(bidRepo).Once(),
		loadRepo.On("Get", mock.Anything, l.ID()).Return(l, nil).Once(),
		bidRepo.On("GetByLoadAndDriver", mock.Anything, l.ID(), driver.ID()).
			Return(existing, nil).Once(),
		bidRepo.On("Update", mock.Anything, existing).Return(nil).Once(),
		loadRepo.On("RaiseHighestBid", mock.Anything, l.ID(), amount).Return(true, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockBiddingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPlaceBidCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	require.Equal(t, bid.Pending, existing.Status())
	require.Equal(t, amount, existing.Amount())
	bidRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}

func TestPlaceBidCommandHandler_Handle_LoadNotBiddable(t *testing.T) {
	ctx := t.Context()
	driver := actorWithRole(t, account.Driver)
	l := pendingLoad(t, kernel.NewUUID())
	require.NoError(t, l.Hire(kernel.NewUUID()))
	cmd, err := commands.NewPlaceBidCommand(driver, kernel.NewUUID(), l.ID(), money(t, 700))
	require.NoError(t, err)

	loadRepo := new(MockLoadRepository)
	bidRepo := new(MockBidRepository)
	uow := new(MockBiddingUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("LoadRepository").Return(loadRepo).Once(),
		uow.On("BidRepository").Return(bidRepo).Once(),
		loadRepo.On("Get", mock.Anything, l.ID()).Return(l, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockBiddingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPlaceBidCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrInvalidState)
	uow.AssertExpectations(t)
}

func TestPlaceBidCommandHandler_Handle_LoadNotFound(t *testing.T) {
	ctx := t.Context()
	driver := actorWithRole(t, account.Driver)
	loadID := kernel.NewUUID()
	cmd, err := commands.NewPlaceBidCommand(driver, kernel.NewUUID(), loadID, money(t, 700))
	require.NoError(t, err)

	loadRepo := new(MockLoadRepository)
	bidRepo := new(MockBidRepository)
	uow := new(MockBiddingUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("LoadRepository").Return(loadRepo).Once(),
		uow.On("BidRepository").Return(bidRepo).Once(),
		loadRepo.On("Get", mock.Anything, loadID).
			Return(nil, errs.NewObjectNotFoundError("load", loadID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockBiddingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPlaceBidCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertExpectations(t)
}

func TestPlaceBidCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.PlaceBidCommand{} // not constructed properly
	factory := new(MockBiddingUoWFactory)
	h := commands.NewPlaceBidCommandHandler(factory)
	require.Error(t, h.Handle(ctx, cmd))
}
