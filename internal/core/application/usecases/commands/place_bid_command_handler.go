package commands

import (
	"context"
	"errors"
	"fmt"

	"lorrylink/internal/core/domain/model/account"
	"lorrylink/internal/core/domain/model/bid"
	"lorrylink/internal/pkg/errs"
)

// PlaceBidCommandHandler handles bid placement. A driver may hold one live
// bid per load; a withdrawn or parked bid is reopened in place, so the
// (load, driver) row is reused across repeat bids. The load's highest-bid
// record is lifted with a conditional update, so concurrent bids never lose
// the maximum.
type PlaceBidCommandHandler struct {
	uowFactory BiddingUoWFactory
}

// NewPlaceBidCommandHandler creates a handler for bid placement operations.
func NewPlaceBidCommandHandler(uowFactory BiddingUoWFactory) PlaceBidCommandHandler {
	return PlaceBidCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the bid placement command.
//
// Rejections, in order: the caller must be a driver; the load must exist and
// be biddable; the driver must not already have a live or accepted bid on
// the load.
func (h PlaceBidCommandHandler) Handle(ctx context.Context, cmd PlaceBidCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !cmd.Actor().Is(account.Driver) {
		return errs.NewForbiddenError("only drivers can place bids")
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	loadRepo := uow.LoadRepository()
	bidRepo := uow.BidRepository()

	l, err := loadRepo.Get(ctx, cmd.LoadID())
	if err != nil {
		return err
	}

	if err = l.ValidateBiddable(); err != nil {
		return err
	}

	existing, err := bidRepo.GetByLoadAndDriver(ctx, cmd.LoadID(), cmd.Actor().ID())
	switch {
	case err == nil:
		if existing.Status().IsActive() {
			return errs.NewConflictError(fmt.Sprintf(
				"driver %s already has a live bid on load %s", cmd.Actor().ID(), cmd.LoadID()))
		}
		// Dead bid: reuse the row. Reopen rejects accepted bids itself.
		if err = existing.Reopen(cmd.Amount()); err != nil {
			return err
		}
		if err = bidRepo.Update(ctx, existing); err != nil {
			return err
		}
	case errors.Is(err, errs.ErrObjectNotFound):
		var b *bid.Bid
		if b, err = bid.NewBid(cmd.BidID(), cmd.LoadID(), cmd.Actor().ID(), cmd.Amount()); err != nil {
			return err
		}
		if err = bidRepo.Add(ctx, b); err != nil {
			return err
		}
	default:
		return err
	}

	if _, err = loadRepo.RaiseHighestBid(ctx, cmd.LoadID(), cmd.Amount()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
