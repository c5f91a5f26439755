package commands

import (
	"errors"

	"lorrylink/internal/core/domain/model/account"
	"lorrylink/internal/core/domain/model/kernel"
	"lorrylink/internal/pkg/guard"
)

var ErrRemoveAccountCommandIsNotConstructed = errors.New(
	"RemoveAccountCommand must be created via NewRemoveAccountCommand constructor",
)

// RemoveAccountCommand represents an administrator removing a user account.
// The account's loads, bids, and disputes go with it.
type RemoveAccountCommand struct { //nolint:recvcheck //using for validation
	actor     account.Actor
	accountID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveAccountCommand creates a command to remove an account.
func NewRemoveAccountCommand(actor account.Actor, accountID kernel.UUID) (RemoveAccountCommand, error) {
	cmd := RemoveAccountCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setAccountID(accountID),
	); err != nil {
		return RemoveAccountCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveAccountCommand) Validate() error {
	return c.guard.Validate(ErrRemoveAccountCommandIsNotConstructed)
}

// Actor returns the authenticated caller.
func (c RemoveAccountCommand) Actor() account.Actor {
	return c.actor
}

// AccountID returns the identifier of the account to remove.
func (c RemoveAccountCommand) AccountID() kernel.UUID {
	return c.accountID
}

func (c *RemoveAccountCommand) setActor(actor account.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}

func (c *RemoveAccountCommand) setAccountID(accountID kernel.UUID) error {
	if err := accountID.Validate(); err != nil {
		return err
	}
	c.accountID = accountID
	return nil
}
