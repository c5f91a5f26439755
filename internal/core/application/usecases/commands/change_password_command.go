package commands

import (
	"errors"

	"lorrylink/internal/core/domain/model/account"
	"lorrylink/internal/pkg/guard"
)

var (
	ErrChangePasswordCommandIsNotConstructed = errors.New(
		"ChangePasswordCommand must be created via NewChangePasswordCommand constructor",
	)
	ErrOldPasswordIsRequired = errors.New("old password is required")
	ErrNewPasswordIsRequired = errors.New("new password is required")
)

// ChangePasswordCommand represents a user rotating their own password.
type ChangePasswordCommand struct { //nolint:recvcheck //using for validation
	actor       account.Actor
	oldPassword string
	newPassword string

	guard guard.ConstructorGuard
}

// NewChangePasswordCommand creates a command to change the caller's password.
func NewChangePasswordCommand(actor account.Actor, oldPassword, newPassword string) (ChangePasswordCommand, error) {
	cmd := ChangePasswordCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setOldPassword(oldPassword),
		cmd.setNewPassword(newPassword),
	); err != nil {
		return ChangePasswordCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangePasswordCommand) Validate() error {
	return c.guard.Validate(ErrChangePasswordCommandIsNotConstructed)
}

// Actor returns the authenticated caller.
func (c ChangePasswordCommand) Actor() account.Actor {
	return c.actor
}

// OldPassword returns the current plaintext password for verification.
func (c ChangePasswordCommand) OldPassword() string {
	return c.oldPassword
}

// NewPassword returns the replacement plaintext password.
func (c ChangePasswordCommand) NewPassword() string {
	return c.newPassword
}

func (c *ChangePasswordCommand) setActor(actor account.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}

func (c *ChangePasswordCommand) setOldPassword(oldPassword string) error {
	if oldPassword == "" {
		return ErrOldPasswordIsRequired
	}
	c.oldPassword = oldPassword
	return nil
}

func (c *ChangePasswordCommand) setNewPassword(newPassword string) error {
	if newPassword == "" {
		return ErrNewPasswordIsRequired
	}
	c.newPassword = newPassword
	return nil
}
