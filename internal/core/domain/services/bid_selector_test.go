package services_test

import (
	"testing"
	"time"

	"lorrylink/internal/core/domain/model/bid"
	"lorrylink/internal/core/domain/model/kernel"
	"lorrylink/internal/core/domain/model/load"
	"lorrylink/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func biddableLoad(t *testing.T) *load.Load {
	t.Helper()

	l, err := load.NewLoad(kernel.NewUUID(), kernel.NewUUID(), load.Details{
		GoodsType:        "cement bags",
		WeightKg:         5000,
		PickupLocation:   "Pune",
		DeliveryLocation: "Nagpur",
		PickupDate:       time.Now().AddDate(0, 0, 1),
		DeliveryDate:     time.Now().AddDate(0, 0, 4),
	})
	require.NoError(t, err)
	return l
}

func restoredBid(
	t *testing.T, loadID kernel.UUID, amount int64, status bid.Status, createdAt time.Time,
) *bid.Bid {
	t.Helper()

	money, err := kernel.NewMoney(amount)
	require.NoError(t, err)

	b, err := bid.RestoreBid(kernel.NewUUID(), loadID, kernel.NewUUID(), money, status, createdAt)
	require.NoError(t, err)
	return b
}

func TestBidSelector_SelectCheapest(t *testing.T) {
	selector := services.NewBidSelector()
	now := time.Now().UTC()

	t.Run("picks the cheapest pending bid", func(t *testing.T) {
		l := biddableLoad(t)
		cheap := restoredBid(t, l.ID(), 1200, bid.Pending, now)
		pricey := restoredBid(t, l.ID(), 1800, bid.Pending, now.Add(-time.Hour))

		best, err := selector.SelectCheapest(l, []*bid.Bid{pricey, cheap})
		require.NoError(t, err)
		assert.True(t, best.IsEqual(cheap))
	})

	t.Run("breaks amount ties by earliest placement", func(t *testing.T) {
		l := biddableLoad(t)
		late := restoredBid(t, l.ID(), 1500, bid.Pending, now)
		early := restoredBid(t, l.ID(), 1500, bid.Pending, now.Add(-time.Hour))

		best, err := selector.SelectCheapest(l, []*bid.Bid{late, early})
		require.NoError(t, err)
		assert.True(t, best.IsEqual(early))
	})

	t.Run("skips parked and declined bids", func(t *testing.T) {
		l := biddableLoad(t)
		parked := restoredBid(t, l.ID(), 900, bid.NotHiredByOwner, now)
		declined := restoredBid(t, l.ID(), 1000, bid.Declined, now)
		pending := restoredBid(t, l.ID(), 1600, bid.Pending, now)

		best, err := selector.SelectCheapest(l, []*bid.Bid{parked, declined, pending})
		require.NoError(t, err)
		assert.True(t, best.IsEqual(pending))
	})

	t.Run("skips bids on other loads", func(t *testing.T) {
		l := biddableLoad(t)
		foreign := restoredBid(t, kernel.NewUUID(), 800, bid.Pending, now)

		_, err := selector.SelectCheapest(l, []*bid.Bid{foreign})
		require.ErrorIs(t, err, services.ErrNoEligibleBids)
	})

	t.Run("reports no eligible bids for an empty slice", func(t *testing.T) {
		l := biddableLoad(t)

		_, err := selector.SelectCheapest(l, nil)
		require.ErrorIs(t, err, services.ErrNoEligibleBids)
	})
}
