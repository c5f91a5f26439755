package commands

import (
	"errors"

	"lorrylink/internal/core/domain/model/account"
	"lorrylink/internal/core/domain/model/kernel"
	"lorrylink/internal/pkg/guard"
)

var ErrHireDriverCommandIsNotConstructed = errors.New(
	"HireDriverCommand must be created via NewHireDriverCommand constructor",
)

// HireDriverCommand represents a goods owner's decision to provisionally hire
// one of the bidding drivers for a load. A nil driverID leaves the choice to
// the system, which hires the cheapest pending bid.
type HireDriverCommand struct { //nolint:recvcheck //using for validation
	actor    account.Actor
	loadID   kernel.UUID
	driverID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewHireDriverCommand creates a command to hire a driver for a load.
func NewHireDriverCommand(
	actor account.Actor, loadID kernel.UUID, driverID *kernel.UUID,
) (HireDriverCommand, error) {
	cmd := HireDriverCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setLoadID(loadID),
		cmd.setDriverID(driverID),
	); err != nil {
		return HireDriverCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c HireDriverCommand) Validate() error {
	return c.guard.Validate(ErrHireDriverCommandIsNotConstructed)
}

// Actor returns the authenticated caller.
func (c HireDriverCommand) Actor() account.Actor {
	return c.actor
}

// LoadID returns the target load's identifier.
func (c HireDriverCommand) LoadID() kernel.UUID {
	return c.loadID
}

// DriverID returns the identifier of the driver to hire, or nil when the
// system should pick one.
func (c HireDriverCommand) DriverID() *kernel.UUID {
	return c.driverID
}

func (c *HireDriverCommand) setActor(actor account.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}

func (c *HireDriverCommand) setLoadID(loadID kernel.UUID) error {
	if err := loadID.Validate(); err != nil {
		return err
	}
	c.loadID = loadID
	return nil
}

func (c *HireDriverCommand) setDriverID(driverID *kernel.UUID) error {
	if driverID == nil {
		return nil
	}
	if err := driverID.Validate(); err != nil {
		return err
	}
	c.driverID = driverID
	return nil
}
