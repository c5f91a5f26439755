package commands

import (
	"errors"

	"lorrylink/internal/core/domain/model/account"
	"lorrylink/internal/core/domain/model/kernel"
	"lorrylink/internal/pkg/guard"
)

var ErrDeclineBidCommandIsNotConstructed = errors.New(
	"DeclineBidCommand must be created via NewDeclineBidCommand constructor",
)

// DeclineBidCommand represents a driver withdrawing a bid or turning down
// a hire.
type DeclineBidCommand struct { //nolint:recvcheck //using for validation
	actor account.Actor
	bidID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeclineBidCommand creates a command for a driver to decline a bid.
func NewDeclineBidCommand(actor account.Actor, bidID kernel.UUID) (DeclineBidCommand, error) {
	cmd := DeclineBidCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setBidID(bidID),
	); err != nil {
		return DeclineBidCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeclineBidCommand) Validate() error {
	return c.guard.Validate(ErrDeclineBidCommandIsNotConstructed)
}

// Actor returns the authenticated caller.
func (c DeclineBidCommand) Actor() account.Actor {
	return c.actor
}

// BidID returns the identifier of the bid being declined.
func (c DeclineBidCommand) BidID() kernel.UUID {
	return c.bidID
}

func (c *DeclineBidCommand) setActor(actor account.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}

func (c *DeclineBidCommand) setBidID(bidID kernel.UUID) error {
	if err := bidID.Validate(); err != nil {
		return err
	}
	c.bidID = bidID
	return nil
}
