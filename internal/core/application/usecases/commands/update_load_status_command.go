package commands

import (
	"errors"

	"lorrylink/internal/core/domain/model/account"
	"lorrylink/internal/core/domain/model/kernel"
	"lorrylink/internal/core/domain/model/load"
	"lorrylink/internal/pkg/guard"
)

var ErrUpdateLoadStatusCommandIsNotConstructed = errors.New(
	"UpdateLoadStatusCommand must be created via NewUpdateLoadStatusCommand constructor",
)

// UpdateLoadStatusCommand represents a direct status write on a load,
// bypassing the bidding handshake. Used by admins for corrections and by
// drivers to report transit progress on their assigned loads.
type UpdateLoadStatusCommand struct { //nolint:recvcheck //using for validation
	actor     account.Actor
	loadID    kernel.UUID
	newStatus load.Status

	guard guard.ConstructorGuard
}

// NewUpdateLoadStatusCommand creates a command to overwrite a load's status.
// The status must be a recognized member of the closed set; arbitrary values
// are rejected here, before any handler runs.
func NewUpdateLoadStatusCommand(
	actor account.Actor, loadID kernel.UUID, newStatus load.Status,
) (UpdateLoadStatusCommand, error) {
	cmd := UpdateLoadStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setLoadID(loadID),
		cmd.setNewStatus(newStatus),
	); err != nil {
		return UpdateLoadStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateLoadStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateLoadStatusCommandIsNotConstructed)
}

// Actor returns the authenticated caller.
func (c UpdateLoadStatusCommand) Actor() account.Actor {
	return c.actor
}

// LoadID returns the target load's identifier.
func (c UpdateLoadStatusCommand) LoadID() kernel.UUID {
	return c.loadID
}

// NewStatus returns the status to write.
func (c UpdateLoadStatusCommand) NewStatus() load.Status {
	return c.newStatus
}

func (c *UpdateLoadStatusCommand) setActor(actor account.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}

func (c *UpdateLoadStatusCommand) setLoadID(loadID kernel.UUID) error {
	if err := loadID.Validate(); err != nil {
		return err
	}
	c.loadID = loadID
	return nil
}

func (c *UpdateLoadStatusCommand) setNewStatus(newStatus load.Status) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}
	c.newStatus = newStatus
	return nil
}
