package commands

import (
	"context"

	"lorrylink/internal/core/domain/model/account"
	"lorrylink/internal/pkg/errs"
)

// ResolveDisputeCommandHandler handles dispute arbitration. Only
// administrators may resolve; the terminal status comes from the command's
// explicit status, or is inferred from the resolution text by the aggregate.
type ResolveDisputeCommandHandler struct {
	uowFactory DisputeUoWFactory
}

// NewResolveDisputeCommandHandler creates a handler for dispute resolution.
func NewResolveDisputeCommandHandler(uowFactory DisputeUoWFactory) ResolveDisputeCommandHandler {
	return ResolveDisputeCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the resolution command.
func (h ResolveDisputeCommandHandler) Handle(ctx context.Context, cmd ResolveDisputeCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !cmd.Actor().Is(account.Admin) {
		return errs.NewForbiddenError("only administrators can resolve disputes")
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	disputeRepo := uow.DisputeRepository()

	d, err := disputeRepo.Get(ctx, cmd.DisputeID())
	if err != nil {
		return err
	}

	if err = d.Resolve(cmd.Resolution(), cmd.Status()); err != nil {
		return err
	}

	if err = disputeRepo.Update(ctx, d); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
