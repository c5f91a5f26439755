package commands

import (
	"context"

	"lorrylink/internal/core/domain/model/account"
	"lorrylink/internal/core/domain/model/dispute"
	"lorrylink/internal/pkg/errs"
)

// RaiseDisputeCommandHandler handles filing a new dispute. When the dispute
// references a load, the load must exist, and a goods owner may only
// reference loads they posted.
type RaiseDisputeCommandHandler struct {
	uowFactory DisputeUoWFactory
}

// NewRaiseDisputeCommandHandler creates a handler for dispute filing.
func NewRaiseDisputeCommandHandler(uowFactory DisputeUoWFactory) RaiseDisputeCommandHandler {
	return RaiseDisputeCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the dispute filing command.
func (h RaiseDisputeCommandHandler) Handle(ctx context.Context, cmd RaiseDisputeCommand) error {
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

	if cmd.LoadID() != nil {
		l, err := uow.LoadRepository().Get(ctx, *cmd.LoadID())
		if err != nil {
			return err
		}
		if cmd.Actor().Is(account.GoodsOwner) && !l.IsOwnedBy(cmd.Actor().ID()) {
			return errs.NewForbiddenError("goods owners can only dispute their own loads")
		}
	}

	d, err := dispute.NewDispute(cmd.DisputeID(), cmd.Actor().ID(),
		cmd.DisputeType(), cmd.Message(), cmd.LoadID(), cmd.DriverID())
	if err != nil {
		return err
	}

	if err = uow.DisputeRepository().Add(ctx, d); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
