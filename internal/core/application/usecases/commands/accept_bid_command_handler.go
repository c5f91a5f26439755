package commands

import (
	"context"

	"lorrylink/internal/pkg/errs"
)

// AcceptBidCommandHandler handles the driver's confirmation of a hire. The
// bid becomes accepted and its load assigned, in one transaction. Only the
// bid's own driver may accept it.
type AcceptBidCommandHandler struct {
	uowFactory BiddingUoWFactory
}

// NewAcceptBidCommandHandler creates a handler for accept operations.
func NewAcceptBidCommandHandler(uowFactory BiddingUoWFactory) AcceptBidCommandHandler {
	return AcceptBidCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the accept command.
func (h AcceptBidCommandHandler) Handle(ctx context.Context, cmd AcceptBidCommand) error {
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
		return errs.NewForbiddenError("only the bidding driver can accept the bid")
	}

	if err = b.Accept(); err != nil {
		return err
	}

	l, err := loadRepo.Get(ctx, b.LoadID())
	if err != nil {
		return err
	}

	if err = l.AcceptHire(b.DriverID()); err != nil {
		return err
	}

	if err = bidRepo.Update(ctx, b); err != nil {
		return err
	}

	if err = loadRepo.Update(ctx, l); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
