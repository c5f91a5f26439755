package commands

import (
	"errors"

	"lorrylink/internal/core/domain/model/account"
	"lorrylink/internal/core/domain/model/kernel"
	"lorrylink/internal/core/domain/model/load"
	"lorrylink/internal/pkg/guard"
)

var ErrPostLoadCommandIsNotConstructed = errors.New(
	"PostLoadCommand must be created via NewPostLoadCommand constructor",
)

// PostLoadCommand represents a goods owner's request to publish a new load
// on the marketplace. Field-level validation of the details happens in the
// Load constructor; the command only carries them.
type PostLoadCommand struct { //nolint:recvcheck //using for validation
	actor   account.Actor
	loadID  kernel.UUID
	details load.Details

	guard guard.ConstructorGuard
}

// NewPostLoadCommand creates a command to post a new load.
func NewPostLoadCommand(actor account.Actor, loadID kernel.UUID, details load.Details) (PostLoadCommand, error) {
	cmd := PostLoadCommand{
		details: details,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setLoadID(loadID),
	); err != nil {
		return PostLoadCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PostLoadCommand) Validate() error {
	return c.guard.Validate(ErrPostLoadCommandIsNotConstructed)
}

// Actor returns the authenticated caller.
func (c PostLoadCommand) Actor() account.Actor {
	return c.actor
}

// LoadID returns the unique identifier for the new load.
func (c PostLoadCommand) LoadID() kernel.UUID {
	return c.loadID
}

// Details returns the descriptive fields of the posting.
func (c PostLoadCommand) Details() load.Details {
	return c.details
}

func (c *PostLoadCommand) setActor(actor account.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}

func (c *PostLoadCommand) setLoadID(loadID kernel.UUID) error {
	if err := loadID.Validate(); err != nil {
		return err
	}
	c.loadID = loadID
	return nil
}
