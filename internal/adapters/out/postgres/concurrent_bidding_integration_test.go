package postgres_test

import (
	"context"
	"fmt"

	"lorrylink/internal/core/application/usecases/commands"
	"lorrylink/internal/core/domain/model/bid"
	"lorrylink/internal/core/domain/model/kernel"

	"golang.org/x/sync/errgroup"
)

// biddingUoWFactoryFunc adapts a closure to the bidding unit of work factory
// used by command handlers.
type biddingUoWFactoryFunc func() commands.BiddingUoW

func (f biddingUoWFactoryFunc) Create() commands.BiddingUoW {
	return f()
}

// TestConcurrentBidding_HighestBidWins races several drivers bidding on the
// same load and verifies the recorded highest bid converges to the maximum
// regardless of commit order.
func (suite *UnitOfWorkIntegrationTestSuite) TestConcurrentBidding_HighestBidWins() {
	ctx := context.Background()

	setup := suite.factory.Create()
	owner := suite.createTestOwner("bhaskar", "bhaskar@example.com")
	testLoad := suite.createTestLoad(owner.ID())
	suite.Require().NoError(setup.AccountRepository().Add(ctx, owner))
	suite.Require().NoError(setup.LoadRepository().Add(ctx, testLoad))

	handler := commands.NewPlaceBidCommandHandler(biddingUoWFactoryFunc(func() commands.BiddingUoW {
		return suite.factory.Create()
	}))

	const drivers = 6
	amounts := make([]int64, drivers)
	for i := range amounts {
		amounts[i] = int64(1000 + i*150)
	}

	g, gctx := errgroup.WithContext(ctx)
	for i := range drivers {
		driver := suite.createTestDriver(
			fmt.Sprintf("driver%d", i), fmt.Sprintf("driver%d@example.com", i))
		suite.Require().NoError(setup.AccountRepository().Add(ctx, driver))
		actor, err := driver.Actor()
		suite.Require().NoError(err)

		amount, err := kernel.NewMoney(amounts[i])
		suite.Require().NoError(err)

		cmd, err := commands.NewPlaceBidCommand(actor, kernel.NewUUID(), testLoad.ID(), amount)
		suite.Require().NoError(err)

		g.Go(func() error {
			return handler.Handle(gctx, cmd)
		})
	}
	suite.Require().NoError(g.Wait())

	reloaded, err := suite.factory.Create().LoadRepository().Get(ctx, testLoad.ID())
	suite.Require().NoError(err)
	suite.Require().NotNil(reloaded.CurrentHighestBid())
	suite.Equal(amounts[drivers-1], reloaded.CurrentHighestBid().Amount())

	var count int64
	err = suite.db.Table("bids").
		Where("load_id = ? AND status = ?", testLoad.ID().Bytes(), bid.Pending.String()).
		Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(drivers), count)
}
