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

func TestHireDriverCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	owner := actorWithRole(t, account.GoodsOwner)
	driverID := kernel.NewUUID()
	l := pendingLoad(t, owner.ID())
	chosen := pendingBid(t, l.ID(), driverID, 1500)
	rival := pendingBid(t, l.ID(), kernel.NewUUID(), 1300)

	cmd, err := commands.NewHireDriverCommand(owner, l.ID(), &driverID)
	require.NoError(t, err)

	loadRepo := new(MockLoadRepository)
	bidRepo := new(MockBidRepository)
	uow := new(MockBiddingUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("LoadRepository").Return(loadRepo).Once(),
		uow.On("BidRepository").Return(bidRepo).Once(),
		loadRepo.On("Get", mock.Anything, l.ID()).Return(l, nil).Once(),
		bidRepo.On("GetByLoadAndDriver", mock.Anything, l.ID(), driverID).Return(chosen, nil).Once(),
		bidRepo.On("GetAllPendingByLoad", mock.Anything, l.ID()).
			Return([]*bid.Bid{chosen, rival}, nil).Once(),
		bidRepo.On("Update", mock.Anything, rival).Return(nil).Once(),
		bidRepo.On("Update", mock.Anything, chosen).Return(nil).Once(),
		loadRepo.On("Update", mock.Anything, l).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockBiddingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewHireDriverCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, load.AwaitingDriverResponse, l.Status())
	assert.True(t, l.AcceptedDriver().IsEqual(driverID))
	assert.Equal(t, bid.AwaitingDriverResponse, chosen.Status())
	assert.Equal(t, bid.NotHiredByOwner, rival.Status())
	loadRepo.AssertExpectations(t)
	bidRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestHireDriverCommandHandler_Handle_AutoSelectsCheapestBid(t *testing.T) {
	ctx := t.Context()
	owner := actorWithRole(t, account.GoodsOwner)
	l := pendingLoad(t, owner.ID())
	cheap := pendingBid(t, l.ID(), kernel.NewUUID(), 1100)
	pricey := pendingBid(t, l.ID(), kernel.NewUUID(), 1900)

	cmd, err := commands.NewHireDriverCommand(owner, l.ID(), nil)
	require.NoError(t, err)

	loadRepo := new(MockLoadRepository)
	bidRepo := new(MockBidRepository)
	uow := new(MockBiddingUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("LoadRepository").Return(loadRepo).Once(),
		uow.On("BidRepository").Return(bidRepo).Once(),
		loadRepo.On("Get", mock.Anything, l.ID()).Return(l, nil).Once(),
		bidRepo.On("GetAllPendingByLoad", mock.Anything, l.ID()).
			Return([]*bid.Bid{pricey, cheap}, nil).Once(),
		bidRepo.On("Update", mock.Anything, pricey).Return(nil).Once(),
		bidRepo.On("Update", mock.Anything, cheap).Return(nil).Once(),
		loadRepo.On("Update", mock.Anything, l).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockBiddingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewHireDriverCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, load.AwaitingDriverResponse, l.Status())
	assert.True(t, l.AcceptedDriver().IsEqual(cheap.DriverID()))
	assert.Equal(t, bid.AwaitingDriverResponse, cheap.Status())
	assert.Equal(t, bid.NotHiredByOwner, pricey.Status())
	loadRepo.AssertExpectations(t)
	bidRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestHireDriverCommandHandler_Handle_AutoSelectWithoutBids(t *testing.T) {
	ctx := t.Context()
	owner := actorWithRole(t, account.GoodsOwner)
	l := pendingLoad(t, owner.ID())

	cmd, err := commands.NewHireDriverCommand(owner, l.ID(), nil)
	require.NoError(t, err)

	loadRepo := new(MockLoadRepository)
	bidRepo := new(MockBidRepository)
	uow := new(MockBiddingUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("LoadRepository").Return(loadRepo).Once(),
		uow.On("BidRepository").Return(bidRepo).Once(),
		loadRepo.On("Get", mock.Anything, l.ID()).Return(l, nil).Once(),
		bidRepo.On("GetAllPendingByLoad", mock.Anything, l.ID()).
			Return([]*bid.Bid{}, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockBiddingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewHireDriverCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	assert.Equal(t, load.Pending, l.Status())
	uow.AssertExpectations(t)
}

func TestHireDriverCommandHandler_Handle_NotOwnerForbidden(t *testing.T) {
	ctx := t.Context()
	stranger := actorWithRole(t, account.GoodsOwner)
	driverID := kernel.NewUUID()
	l := pendingLoad(t, kernel.NewUUID())

	cmd, err := commands.NewHireDriverCommand(stranger, l.ID(), &driverID)
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

	h := commands.NewHireDriverCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrForbidden)
	assert.Equal(t, load.Pending, l.Status())
	uow.AssertExpectations(t)
}

func TestHireDriverCommandHandler_Handle_NoMatchingBid(t *testing.T) {
	ctx := t.Context()
	owner := actorWithRole(t, account.GoodsOwner)
	driverID := kernel.NewUUID()
	l := pendingLoad(t, owner.ID())

	cmd, err := commands.NewHireDriverCommand(owner, l.ID(), &driverID)
	require.NoError(t, err)

	loadRepo := new(MockLoadRepository)
	bidRepo := new(MockBidRepository)
	uow := new(MockBiddingUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("LoadRepository").Return(loadRepo).Once(),
		uow.On("BidRepository").Return(bidRepo).Once(),
		loadRepo.On("Get", mock.Anything, l.ID()).Return(l, nil).Once(),
		bidRepo.On("GetByLoadAndDriver", mock.Anything, l.ID(), driverID).
			Return(nil, errs.NewObjectNotFoundError("bid", driverID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockBiddingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewHireDriverCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertExpectations(t)
}

func TestHireDriverCommandHandler_Handle_LoadAlreadyInHandshake(t *testing.T) {
	ctx := t.Context()
	owner := actorWithRole(t, account.GoodsOwner)
	driverID := kernel.NewUUID()
	l := pendingLoad(t, owner.ID())
	require.NoError(t, l.Hire(kernel.NewUUID()))
	chosen := pendingBid(t, l.ID(), driverID, 1500)

	cmd, err := commands.NewHireDriverCommand(owner, l.ID(), &driverID)
	require.NoError(t, err)

	loadRepo := new(MockLoadRepository)
	bidRepo := new(MockBidRepository)
	uow := new(MockBiddingUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("LoadRepository").Return(loadRepo).Once(),
		uow.On("BidRepository").Return(bidRepo).Once(),
		loadRepo.On("Get", mock.Anything, l.ID()).Return(l, nil).Once(),
		bidRepo.On("GetByLoadAndDriver", mock.Anything, l.ID(), driverID).Return(chosen, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockBiddingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewHireDriverCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrInvalidState)
	assert.Equal(t, bid.Pending, chosen.Status())
	uow.AssertExpectations(t)
}
