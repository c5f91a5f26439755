package commands

import (
	"context"

	"lorrylink/internal/core/domain/model/account"
)

// RegisterAccountCommandHandler handles account signup. Hashes the password,
// builds the aggregate with its role-specific profile, and persists it. The
// repository reports a ConflictError when the username or email is taken.
type RegisterAccountCommandHandler struct {
	uowFactory AccountUoWFactory
	hasher     PasswordHasher
}

// NewRegisterAccountCommandHandler creates a handler for account registration.
func NewRegisterAccountCommandHandler(
	uowFactory AccountUoWFactory, hasher PasswordHasher,
) RegisterAccountCommandHandler {
	return RegisterAccountCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
	}
}

// Handle processes the registration command.
func (h RegisterAccountCommandHandler) Handle(ctx context.Context, cmd RegisterAccountCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	hash, err := h.hasher.Hash(cmd.Password())
	if err != nil {
		return err
	}

	acc, err := account.NewAccount(cmd.AccountID(), cmd.Username(), cmd.Email(), hash, cmd.Role())
	if err != nil {
		return err
	}

	if cmd.DriverProfile() != nil {
		if err = acc.AttachDriverProfile(*cmd.DriverProfile()); err != nil {
			return err
		}
	}
	if cmd.OwnerProfile() != nil {
		if err = acc.AttachOwnerProfile(*cmd.OwnerProfile()); err != nil {
			return err
		}
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.AccountRepository().Add(ctx, acc); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
