package commands_test

import (
	"testing"

	"lorrylink/internal/core/application/usecases/commands"
	"lorrylink/internal/core/domain/model/account"
	"lorrylink/internal/core/domain/model/bid"
	"lorrylink/internal/core/domain/model/kernel"
	"lorrylink/internal/core/domain/model/load"
	"lorrylink/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeclineBidCommandHandler_Handle_HiredDriverDeclineRevertsLoad(t *testing.T) {
	ctx := t.Context()
	driver := actorWithRole(t, account.Driver)
	l := pendingLoad(t, kernel.NewUUID())
	b := pendingBid(t, l.ID(), driver.ID(), 1600)
	require.NoError(t, l.Hire(driver.ID()))
	require.NoError(t, b.MarkAwaitingDriver())

	cmd, err := commands.NewDeclineBidCommand(driver, b.ID())
	require.NoError(t, err)

	loadRepo := new(MockLoadRepository)
	bidRepo := new(MockBidRepository)
	uow := new(MockBiddingUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("LoadRepository").Return(loadRepo).Once(),
		uow.On("BidRepository").Return(bidRepo).Once(),
		bidRepo.On("Get", mock.Anything, b.ID()).Return(b, nil).Once(),
		bidRepo.On("Update", mock.Anything, b).Return(nil).Once(),
		loadRepo.On("Get", mock.Anything, l.ID()).Return(l, nil).Once(),
		loadRepo.On("Update", mock.Anything, l).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockBiddingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeclineBidCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, bid.Declined, b.Status())
	assert.Equal(t, load.Pending, l.Status())
	assert.Nil(t, l.AcceptedDriver())
	uow.AssertExpectations(t)
}

func TestDeclineBidCommandHandler_Handle_PendingBidWithdrawnNoRevert(t *testing.T) {
	ctx := t.Context()
	driver := actorWithRole(t, account.Driver)
	l := pendingLoad(t, kernel.NewUUID())
	b := pendingBid(t, l.ID(), driver.ID(), 1600)

	cmd, err := commands.NewDeclineBidCommand(driver, b.ID())
	require.NoError(t, err)

	loadRepo := new(MockLoadRepository)
	bidRepo := new(MockBidRepository)
	uow := new(MockBiddingUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("LoadRepository").Return(loadRepo).Once(),
		uow.On("BidRepository").Return(bidRepo).Once(),
		bidRepo.On("Get", mock.Anything, b.ID()).Return(b, nil).Once(),
		bidRepo.On("Update", mock.Anything, b).Return(nil).Once(),
		loadRepo.On("Get", mock.Anything, l.ID()).Return(l, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockBiddingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeclineBidCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, bid.Declined, b.Status())
	assert.Equal(t, load.Pending, l.Status())
	loadRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}

func TestDeclineBidCommandHandler_Handle_Idempotent(t *testing.T) {
	ctx := t.Context()
	driver := actorWithRole(t, account.Driver)
	l := pendingLoad(t, kernel.NewUUID())
	b := pendingBid(t, l.ID(), driver.ID(), 1600)
	require.NoError(t, b.Decline())

	cmd, err := commands.NewDeclineBidCommand(driver, b.ID())
	require.NoError(t, err)

	loadRepo := new(MockLoadRepository)
	bidRepo := new(MockBidRepository)
	uow := new(MockBiddingUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("LoadRepository").Return(loadRepo).Once(),
		uow.On("BidRepository").Return(bidRepo).Once(),
		bidRepo.On("Get", mock.Anything, b.ID()).Return(b, nil).Once(),
		bidRepo.On("Update", mock.Anything, b).Return(nil).Once(),
		loadRepo.On("Get", mock.Anything, l.ID()).Return(l, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockBiddingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeclineBidCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	assert.Equal(t, bid.Declined, b.Status())
	uow.AssertExpectations(t)
}

func TestDeclineBidCommandHandler_Handle_NotBidOwnerForbidden(t *testing.T) {
	ctx := t.Context()
	rival := actorWithRole(t, account.Driver)
	l := pendingLoad(t, kernel.NewUUID())
	b := pendingBid(t, l.ID(), kernel.NewUUID(), 1600)

	cmd, err := commands.NewDeclineBidCommand(rival, b.ID())
	require.NoError(t, err)

	loadRepo := new(MockLoadRepository)
	bidRepo := new(MockBidRepository)
	uow := new(MockBiddingUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("LoadRepository").Return(loadRepo).Once(),
		uow.On("BidRepository").Return(bidRepo).Once(),
		bidRepo.On("Get", mock.Anything, b.ID()).Return(b, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockBiddingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeclineBidCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrForbidden)
	assert.Equal(t, bid.Pending, b.Status())
	uow.AssertExpectations(t)
}
