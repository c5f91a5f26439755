package commands

import (
	"errors"

	"lorrylink/internal/core/domain/model/account"
	"lorrylink/internal/core/domain/model/kernel"
	"lorrylink/internal/pkg/guard"
)

var ErrPlaceBidCommandIsNotConstructed = errors.New(
	"PlaceBidCommand must be created via NewPlaceBidCommand constructor",
)

// PlaceBidCommand represents a driver's priced offer against a posted load.
type PlaceBidCommand struct { //nolint:recvcheck //using for validation
	actor  account.Actor
	bidID  kernel.UUID
	loadID kernel.UUID
	amount kernel.Money

	guard guard.ConstructorGuard
}

// NewPlaceBidCommand creates a command to place a bid on a load.
func NewPlaceBidCommand(
	actor account.Actor, bidID, loadID kernel.UUID, amount kernel.Money,
) (PlaceBidCommand, error) {
	cmd := PlaceBidCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setBidID(bidID),
		cmd.setLoadID(loadID),
		cmd.setAmount(amount),
	); err != nil {
		return PlaceBidCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceBidCommand) Validate() error {
	return c.guard.Validate(ErrPlaceBidCommandIsNotConstructed)
}

// Actor returns the authenticated caller.
func (c PlaceBidCommand) Actor() account.Actor {
	return c.actor
}

// BidID returns the unique identifier for the new bid.
func (c PlaceBidCommand) BidID() kernel.UUID {
	return c.bidID
}

// LoadID returns the target load's identifier.
func (c PlaceBidCommand) LoadID() kernel.UUID {
	return c.loadID
}

// Amount returns the offered price.
func (c PlaceBidCommand) Amount() kernel.Money {
	return c.amount
}

func (c *PlaceBidCommand) setActor(actor account.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}

func (c *PlaceBidCommand) setBidID(bidID kernel.UUID) error {
	if err := bidID.Validate(); err != nil {
		return err
	}
	c.bidID = bidID
	return nil
}

func (c *PlaceBidCommand) setLoadID(loadID kernel.UUID) error {
	if err := loadID.Validate(); err != nil {
		return err
	}
	c.loadID = loadID
	return nil
}

func (c *PlaceBidCommand) setAmount(amount kernel.Money) error {
	if err := amount.Validate(); err != nil {
		return err
	}
	c.amount = amount
	return nil
}
