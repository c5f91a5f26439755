package commands

import (
	"errors"

	"lorrylink/internal/core/domain/model/account"
	"lorrylink/internal/core/domain/model/kernel"
	"lorrylink/internal/pkg/guard"
)

var ErrAcceptBidCommandIsNotConstructed = errors.New(
	"AcceptBidCommand must be created via NewAcceptBidCommand constructor",
)

// AcceptBidCommand represents a hired driver's confirmation of the job.
type AcceptBidCommand struct { //nolint:recvcheck //using for validation
	actor account.Actor
	bidID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAcceptBidCommand creates a command for a driver to accept a hire.
func NewAcceptBidCommand(actor account.Actor, bidID kernel.UUID) (AcceptBidCommand, error) {
	cmd := AcceptBidCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setBidID(bidID),
	); err != nil {
		return AcceptBidCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AcceptBidCommand) Validate() error {
	return c.guard.Validate(ErrAcceptBidCommandIsNotConstructed)
}

// Actor returns the authenticated caller.
func (c AcceptBidCommand) Actor() account.Actor {
	return c.actor
}

// BidID returns the identifier of the bid being accepted.
func (c AcceptBidCommand) BidID() kernel.UUID {
	return c.bidID
}

func (c *AcceptBidCommand) setActor(actor account.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}

func (c *AcceptBidCommand) setBidID(bidID kernel.UUID) error {
	if err := bidID.Validate(); err != nil {
		return err
	}
	c.bidID = bidID
	return nil
}
