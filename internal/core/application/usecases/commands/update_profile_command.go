package commands

import (
	"errors"

	"lorrylink/internal/core/domain/model/account"
	"lorrylink/internal/core/domain/model/kernel"
	"lorrylink/internal/pkg/errs"
	"lorrylink/internal/pkg/guard"
)

var ErrUpdateProfileCommandIsNotConstructed = errors.New(
	"UpdateProfileCommand must be created via NewUpdateProfileCommand constructor",
)

// UpdateProfileCommand represents a request to replace the role-specific
// profile of an account. Exactly one profile payload must be present; which
// one must match the target account's role.
type UpdateProfileCommand struct { //nolint:recvcheck //using for validation
	actor     account.Actor
	accountID kernel.UUID

	driverProfile *account.DriverProfile
	ownerProfile  *account.OwnerProfile

	guard guard.ConstructorGuard
}

// NewUpdateProfileCommand creates a command to update an account's profile.
func NewUpdateProfileCommand(
	actor account.Actor,
	accountID kernel.UUID,
	driverProfile *account.DriverProfile,
	ownerProfile *account.OwnerProfile,
) (UpdateProfileCommand, error) {
	cmd := UpdateProfileCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setAccountID(accountID),
		cmd.setProfiles(driverProfile, ownerProfile),
	); err != nil {
		return UpdateProfileCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateProfileCommand) Validate() error {
	return c.guard.Validate(ErrUpdateProfileCommandIsNotConstructed)
}

// Actor returns the authenticated caller.
func (c UpdateProfileCommand) Actor() account.Actor {
	return c.actor
}

// AccountID returns the account whose profile is replaced.
func (c UpdateProfileCommand) AccountID() kernel.UUID {
	return c.accountID
}

// DriverProfile returns the driver profile payload, or nil.
func (c UpdateProfileCommand) DriverProfile() *account.DriverProfile {
	return c.driverProfile
}

// OwnerProfile returns the goods owner profile payload, or nil.
func (c UpdateProfileCommand) OwnerProfile() *account.OwnerProfile {
	return c.ownerProfile
}

func (c *UpdateProfileCommand) setActor(actor account.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}

func (c *UpdateProfileCommand) setAccountID(accountID kernel.UUID) error {
	if err := accountID.Validate(); err != nil {
		return err
	}
	c.accountID = accountID
	return nil
}

func (c *UpdateProfileCommand) setProfiles(
	driverProfile *account.DriverProfile, ownerProfile *account.OwnerProfile,
) error {
	if driverProfile == nil && ownerProfile == nil {
		return errs.NewValueIsRequiredError("profile")
	}
	if driverProfile != nil && ownerProfile != nil {
		return errs.NewValueIsInvalidError("profile: driver and owner payloads are mutually exclusive")
	}
	c.driverProfile = driverProfile
	c.ownerProfile = ownerProfile
	return nil
}
