package commands

import (
	"errors"

	"lorrylink/internal/core/domain/model/account"
	"lorrylink/internal/core/domain/model/kernel"
	"lorrylink/internal/pkg/guard"
)

var (
	ErrRaiseDisputeCommandIsNotConstructed = errors.New(
		"RaiseDisputeCommand must be created via NewRaiseDisputeCommand constructor",
	)
	ErrDisputeTypeIsRequired    = errors.New("dispute type is required")
	ErrDisputeMessageIsRequired = errors.New("dispute message is required")
)

// RaiseDisputeCommand represents a grievance filed by a driver or goods
// owner, optionally referencing a load and a driver.
type RaiseDisputeCommand struct { //nolint:recvcheck //using for validation
	actor       account.Actor
	disputeID   kernel.UUID
	disputeType string
	message     string
	loadID      *kernel.UUID
	driverID    *kernel.UUID

	guard guard.ConstructorGuard
}

// NewRaiseDisputeCommand creates a command to raise a dispute.
func NewRaiseDisputeCommand(
	actor account.Actor,
	disputeID kernel.UUID,
	disputeType, message string,
	loadID, driverID *kernel.UUID,
) (RaiseDisputeCommand, error) {
	cmd := RaiseDisputeCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setDisputeID(disputeID),
		cmd.setDisputeType(disputeType),
		cmd.setMessage(message),
		cmd.setLoadID(loadID),
		cmd.setDriverID(driverID),
	); err != nil {
		return RaiseDisputeCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RaiseDisputeCommand) Validate() error {
	return c.guard.Validate(ErrRaiseDisputeCommandIsNotConstructed)
}

// Actor returns the authenticated caller.
func (c RaiseDisputeCommand) Actor() account.Actor {
	return c.actor
}

// DisputeID returns the unique identifier for the new dispute.
func (c RaiseDisputeCommand) DisputeID() kernel.UUID {
	return c.disputeID
}

// DisputeType returns the free-form category of the dispute.
func (c RaiseDisputeCommand) DisputeType() string {
	return c.disputeType
}

// Message returns the raiser's description of the grievance.
func (c RaiseDisputeCommand) Message() string {
	return c.message
}

// LoadID returns the referenced load's identifier, or nil.
func (c RaiseDisputeCommand) LoadID() *kernel.UUID {
	return c.loadID
}

// DriverID returns the identifier of the driver the dispute is against, or nil.
func (c RaiseDisputeCommand) DriverID() *kernel.UUID {
	return c.driverID
}

func (c *RaiseDisputeCommand) setActor(actor account.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}

func (c *RaiseDisputeCommand) setDisputeID(disputeID kernel.UUID) error {
	if err := disputeID.Validate(); err != nil {
		return err
	}
	c.disputeID = disputeID
	return nil
}

func (c *RaiseDisputeCommand) setDisputeType(disputeType string) error {
	if disputeType == "" {
		return ErrDisputeTypeIsRequired
	}
	c.disputeType = disputeType
	return nil
}

func (c *RaiseDisputeCommand) setMessage(message string) error {
	if message == "" {
		return ErrDisputeMessageIsRequired
	}
	c.message = message
	return nil
}

func (c *RaiseDisputeCommand) setLoadID(loadID *kernel.UUID) error {
	if loadID == nil {
		return nil
	}
	if err := loadID.Validate(); err != nil {
		return err
	}
	c.loadID = loadID
	return nil
}

func (c *RaiseDisputeCommand) setDriverID(driverID *kernel.UUID) error {
	if driverID == nil {
		return nil
	}
	if err := driverID.Validate(); err != nil {
		return err
	}
	c.driverID = driverID
	return nil
}
