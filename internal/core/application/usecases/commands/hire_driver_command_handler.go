package commands

import (
	"context"
	"errors"

	"lorrylink/internal/core/domain/model/bid"
	"lorrylink/internal/core/domain/services"
	"lorrylink/internal/pkg/errs"
)

// HireDriverCommandHandler handles the owner's side of the hiring handshake.
// The load and the chosen driver's bid both move to awaiting_driver_response,
// and every rival bid still pending on the load is parked as
// not_hired_by_owner. All of it commits in one transaction.
type HireDriverCommandHandler struct {
	uowFactory BiddingUoWFactory
	selector   services.BidSelector
}

// NewHireDriverCommandHandler creates a handler for hire operations.
func NewHireDriverCommandHandler(uowFactory BiddingUoWFactory) HireDriverCommandHandler {
	return HireDriverCommandHandler{
		uowFactory: uowFactory,
		selector:   services.NewBidSelector(),
	}
}

// Handle processes the hire command. When the command names no driver, the
// cheapest pending bid is hired instead.
//
// Rejections, in order: the load must exist; the caller must own it; the
// chosen driver must have a pending bid on it; the load must still be open
// for hiring.
func (h HireDriverCommandHandler) Handle(ctx context.Context, cmd HireDriverCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
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

	if !l.IsOwnedBy(cmd.Actor().ID()) {
		return errs.NewForbiddenError("only the load's owner can hire a driver")
	}

	var (
		chosen  *bid.Bid
		pending []*bid.Bid
	)

	if driverID := cmd.DriverID(); driverID != nil {
		chosen, err = bidRepo.GetByLoadAndDriver(ctx, cmd.LoadID(), *driverID)
		if err != nil {
			return err
		}
	} else {
		pending, err = bidRepo.GetAllPendingByLoad(ctx, cmd.LoadID())
		if err != nil {
			return err
		}

		chosen, err = h.selector.SelectCheapest(l, pending)
		if errors.Is(err, services.ErrNoEligibleBids) {
			return errs.NewObjectNotFoundError("pending bid for load", cmd.LoadID())
		}
		if err != nil {
			return err
		}
	}

	if err = l.Hire(chosen.DriverID()); err != nil {
		return err
	}

	if err = chosen.MarkAwaitingDriver(); err != nil {
		return err
	}

	if pending == nil {
		pending, err = bidRepo.GetAllPendingByLoad(ctx, cmd.LoadID())
		if err != nil {
			return err
		}
	}

	for _, rival := range pending {
		if rival.IsEqual(chosen) {
			continue
		}
		if err = rival.MarkNotHired(); err != nil {
			return err
		}
		if err = bidRepo.Update(ctx, rival); err != nil {
			return err
		}
	}

	if err = bidRepo.Update(ctx, chosen); err != nil {
		return err
	}

	if err = loadRepo.Update(ctx, l); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
