package commands

import (
	"errors"

	"lorrylink/internal/core/domain/model/account"
	"lorrylink/internal/core/domain/model/dispute"
	"lorrylink/internal/core/domain/model/kernel"
	"lorrylink/internal/pkg/guard"
)

var (
	ErrResolveDisputeCommandIsNotConstructed = errors.New(
		"ResolveDisputeCommand must be created via NewResolveDisputeCommand constructor",
	)
	ErrResolutionIsRequired = errors.New("resolution is required")
)

// ResolveDisputeCommand represents an administrator closing a dispute with
// a resolution text and, optionally, an explicit terminal status.
type ResolveDisputeCommand struct { //nolint:recvcheck //using for validation
	actor      account.Actor
	disputeID  kernel.UUID
	resolution string
	status     *dispute.Status

	guard guard.ConstructorGuard
}

// NewResolveDisputeCommand creates a command to resolve a dispute. A nil
// status leaves the terminal status to be inferred from the resolution text.
func NewResolveDisputeCommand(
	actor account.Actor,
	disputeID kernel.UUID,
	resolution string,
	status *dispute.Status,
) (ResolveDisputeCommand, error) {
	cmd := ResolveDisputeCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setDisputeID(disputeID),
		cmd.setResolution(resolution),
		cmd.setStatus(status),
	); err != nil {
		return ResolveDisputeCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ResolveDisputeCommand) Validate() error {
	return c.guard.Validate(ErrResolveDisputeCommandIsNotConstructed)
}

// Actor returns the authenticated caller.
func (c ResolveDisputeCommand) Actor() account.Actor {
	return c.actor
}

// DisputeID returns the identifier of the dispute being resolved.
func (c ResolveDisputeCommand) DisputeID() kernel.UUID {
	return c.disputeID
}

// Resolution returns the administrator's resolution text.
func (c ResolveDisputeCommand) Resolution() string {
	return c.resolution
}

// Status returns the explicit terminal status, or nil to infer it.
func (c ResolveDisputeCommand) Status() *dispute.Status {
	return c.status
}

func (c *ResolveDisputeCommand) setActor(actor account.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}

func (c *ResolveDisputeCommand) setDisputeID(disputeID kernel.UUID) error {
	if err := disputeID.Validate(); err != nil {
		return err
	}
	c.disputeID = disputeID
	return nil
}

func (c *ResolveDisputeCommand) setResolution(resolution string) error {
	if resolution == "" {
		return ErrResolutionIsRequired
	}
	c.resolution = resolution
	return nil
}

func (c *ResolveDisputeCommand) setStatus(status *dispute.Status) error {
	if status == nil {
		return nil
	}
	if err := status.Validate(); err != nil {
		return err
	}
	c.status = status
	return nil
}
