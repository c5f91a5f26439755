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

func TestAcceptBidCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	driver := actorWithRole(t, account.Driver)
	l := pendingLoad(t, kernel.NewUUID())
	b := pendingBid(t, l.ID(), driver.ID(), 1800)
	require.NoError(t, l.Hire(driver.ID()))
	require.NoError(t, b.MarkAwaitingDriver())

	cmd, err := commands.NewAcceptBidCommand(driver, b.ID())
	require.NoError(t, err)

	loadRepo := new(MockLoadRepository)
	bidRepo := new(MockBidRepository)
	uow := new(MockBiddingUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("LoadRepository").Return(loadRepo).Once(),
		uow.On("BidRepository").Return(bidRepo).Once(),
		bidRepo.On("Get", mock.Anything, b.ID()).Return(b, nil).Once(),
		loadRepo.On("Get", mock.Anything, l.ID()).Return(l, nil).Once(),
		bidRepo.On("Update", mock.Anything, b).Return(nil).Once(),
		loadRepo.On("Update", mock.Anything, l).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockBiddingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAcceptBidCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, bid.Accepted, b.Status())
	assert.Equal(t, load.Assigned, l.Status())
	assert.True(t, l.AcceptedDriver().IsEqual(driver.ID()))
	uow.AssertExpectations(t)
}

func TestAcceptBidCommandHandler_Handle_WrongDriverForbidden(t *testing.T) {
	ctx := t.Context()
	rival := actorWithRole(t, account.Driver)
	l := pendingLoad(t, kernel.NewUUID())
	b := pendingBid(t, l.ID(), kernel.NewUUID(), 1800)
	require.NoError(t, b.MarkAwaitingDriver())

	cmd, err := commands.NewAcceptBidCommand(rival, b.ID())
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

	h := commands.NewAcceptBidCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrForbidden)
	assert.Equal(t, bid.AwaitingDriverResponse, b.Status())
	uow.AssertExpectations(t)
}

func TestAcceptBidCommandHandler_Handle_BidNotHired(t *testing.T) {
	ctx := t.Context()
	driver := actorWithRole(t, account.Driver)
	l := pendingLoad(t, kernel.NewUUID())
	b := pendingBid(t, l.ID(), driver.ID(), 1800)

	cmd, err := commands.NewAcceptBidCommand(driver, b.ID())
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

	h := commands.NewAcceptBidCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrInvalidState)
	uow.AssertExpectations(t)
}

func TestAcceptBidCommandHandler_Handle_BidNotFound(t *testing.T) {
	ctx := t.Context()
	driver := actorWithRole(t, account.Driver)
	bidID := kernel.NewUUID()

	cmd, err := commands.NewAcceptBidCommand(driver, bidID)
	require.NoError(t, err)

	loadRepo := new(MockLoadRepository)
	bidRepo := new(MockBidRepository)
	uow := new(MockBiddingUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("LoadRepository").Return(loadRepo).Once(),
		uow.On("BidRepository").Return(bidRepo).Once(),
		bidRepo.On("Get", mock.Anything, bidID).
			Return(nil, errs.NewObjectNotFoundError("bid", bidID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockBiddingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAcceptBidCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertExpectations(t)
}
