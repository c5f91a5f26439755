package commands

import (
	"context"

	"lorrylink/internal/pkg/errs"
)

// DeclineBidCommandHandler handles the driver's side of backing out. The bid
// becomes declined; if the declining driver was the provisionally hired one,
// the load reverts to pending and is freed for rehire. Declining an
// already-declined bid is a no-op success, so retries are harmless.
type DeclineBidCommandHandler struct {
	uowFactory BiddingUoWFactory
}

// NewDeclineBidCommandHandler creates a handler for decline operations.
func NewDeclineBidCommandHandler(uowFactory BiddingUoWFactory) DeclineBidCommandHandler {
	return DeclineBidCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the decline command.
func (h DeclineBidCommandHandler) Handle(ctx context.Context, cmd DeclineBidCommand) error {
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

	b, err := bidRepo.Get(ctx, cmd.BidID())
	if err != nil {
		return err
	}

	if !b.IsOwnedBy(cmd.Actor().ID()) {
		return errs.NewForbiddenError("only the bidding driver can decline the bid")
	}

	if err = b.Decline(); err != nil {
		return err
	}

	if err = bidRepo.Update(ctx, b); err != nil {
		return err
	}

	l, err := loadRepo.Get(ctx, b.LoadID())
	if err != nil {
		return err
	}

	reverted, err := l.DeclineHire(b.DriverID())
	if err != nil {
		return err
	}

	if reverted {
		if err = loadRepo.Update(ctx, l); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
