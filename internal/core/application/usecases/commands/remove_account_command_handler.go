package commands

import (
	"context"

	"lorrylink/internal/core/domain/model/account"
	"lorrylink/internal/pkg/errs"
)

// RemoveAccountCommandHandler handles account removal. Admin-only, and an
// administrator cannot remove their own account. The schema's cascade rules
// take the account's loads, bids, and disputes with it.
type RemoveAccountCommandHandler struct {
	uowFactory AccountUoWFactory
}

// NewRemoveAccountCommandHandler creates a handler for account removal.
func NewRemoveAccountCommandHandler(uowFactory AccountUoWFactory) RemoveAccountCommandHandler {
	return RemoveAccountCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the removal command.
func (h RemoveAccountCommandHandler) Handle(ctx context.Context, cmd RemoveAccountCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !cmd.Actor().Is(account.Admin) {
		return errs.NewForbiddenError("only administrators can remove accounts")
	}

	if cmd.Actor().ID().IsEqual(cmd.AccountID()) {
		return errs.NewForbiddenError("administrators cannot remove their own account")
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	accountRepo := uow.AccountRepository()

	// Get first so a missing account surfaces as ObjectNotFound rather than
	// a silent no-op delete.
	if _, err := accountRepo.Get(ctx, cmd.AccountID()); err != nil {
		return err
	}

	if err := accountRepo.Delete(ctx, cmd.AccountID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
