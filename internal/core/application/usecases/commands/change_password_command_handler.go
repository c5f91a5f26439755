package commands

import (
	"context"

	"lorrylink/internal/pkg/errs"
)

// ChangePasswordCommandHandler handles password rotation. The old password
// must verify against the stored hash before the new one is hashed and
// stored.
type ChangePasswordCommandHandler struct {
	uowFactory AccountUoWFactory
	hasher     PasswordHasher
}

// NewChangePasswordCommandHandler creates a handler for password changes.
func NewChangePasswordCommandHandler(
	uowFactory AccountUoWFactory, hasher PasswordHasher,
) ChangePasswordCommandHandler {
	return ChangePasswordCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
	}
}

// Handle processes the password change command.
func (h ChangePasswordCommandHandler) Handle(ctx context.Context, cmd ChangePasswordCommand) error {
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

	accountRepo := uow.AccountRepository()

	acc, err := accountRepo.Get(ctx, cmd.Actor().ID())
	if err != nil {
		return err
	}

	if err = h.hasher.Compare(acc.PasswordHash(), cmd.OldPassword()); err != nil {
		return errs.NewForbiddenErrorWithCause("old password does not match", err)
	}

	hash, err := h.hasher.Hash(cmd.NewPassword())
	if err != nil {
		return err
	}

	if err = acc.ChangePasswordHash(hash); err != nil {
		return err
	}

	if err = accountRepo.Update(ctx, acc); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
