package commands

import (
	"context"

	"lorrylink/internal/core/domain/model/account"
	"lorrylink/internal/pkg/errs"
)

// UpdateProfileCommandHandler handles profile edits. An account holder may
// edit their own profile; administrators may edit anyone's. The aggregate
// rejects a payload that does not match the account's role.
type UpdateProfileCommandHandler struct {
	uowFactory AccountUoWFactory
}

// NewUpdateProfileCommandHandler creates a handler for profile updates.
func NewUpdateProfileCommandHandler(uowFactory AccountUoWFactory) UpdateProfileCommandHandler {
	return UpdateProfileCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the profile update command.
func (h UpdateProfileCommandHandler) Handle(ctx context.Context, cmd UpdateProfileCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !cmd.Actor().Is(account.Admin) && !cmd.Actor().ID().IsEqual(cmd.AccountID()) {
		return errs.NewForbiddenError("only the account holder or an admin can edit a profile")
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	accountRepo := uow.AccountRepository()

	acc, err := accountRepo.Get(ctx, cmd.AccountID())
	if err != nil {
		return err
	}

	if p := cmd.DriverProfile(); p != nil {
		if err = acc.AttachDriverProfile(*p); err != nil {
			return err
		}
	}
	if p := cmd.OwnerProfile(); p != nil {
		if err = acc.AttachOwnerProfile(*p); err != nil {
			return err
		}
	}

	if err = accountRepo.Update(ctx, acc); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
