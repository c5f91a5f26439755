package commands_test

import (
	"testing"
	"time"

	"lorrylink/internal/core/domain/model/account"
	"lorrylink/internal/core/domain/model/bid"
	"lorrylink/internal/core/domain/model/kernel"
	"lorrylink/internal/core/domain/model/load"

	"github.com/stretchr/testify/require"
)

func actorWithRole(t *testing.T, role account.Role) account.Actor {
	t.Helper()
	a, err := account.NewActor(kernel.NewUUID(), role)
	require.NoError(t, err)
	return a
}

func money(t *testing.T, amount int64) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoney(amount)
	require.NoError(t, err)
	return m
}

func pendingLoad(t *testing.T, ownerID kernel.UUID) *load.Load {
	t.Helper()
	l, err := load.NewLoad(kernel.NewUUID(), ownerID, load.Details{
		GoodsType:        "cement bags",
		WeightKg:         8000,
		PickupLocation:   "Pune",
		DeliveryLocation: "Nagpur",
		PickupDate:       time.Date(2025, 7, 1, 6, 0, 0, 0, time.UTC),
		DeliveryDate:     time.Date(2025, 7, 2, 20, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	return l
}

func pendingBid(t *testing.T, loadID, driverID kernel.UUID, amount int64) *bid.Bid {
	t.Helper()
	b, err := bid.NewBid(kernel.NewUUID(), loadID, driverID, money(t, amount))
	require.NoError(t, err)
	return b
}
