package commands

import (
	"errors"

	"lorrylink/internal/core/domain/model/account"
	"lorrylink/internal/core/domain/model/kernel"
	"lorrylink/internal/pkg/guard"
)

var (
	ErrRegisterAccountCommandIsNotConstructed = errors.New(
		"RegisterAccountCommand must be created via NewRegisterAccountCommand constructor",
	)
	ErrUsernameIsRequired = errors.New("username is required")
	ErrEmailIsRequired    = errors.New("email is required")
	ErrPasswordIsRequired = errors.New("password is required")
)

// RegisterAccountCommand represents a signup request for a driver, goods
// owner, or administrator account. Profile payloads travel with the command
// and are attached according to the requested role.
type RegisterAccountCommand struct { //nolint:recvcheck //using for validation
	accountID kernel.UUID
	username  string
	email     string
	password  string
	role      account.Role

	driverProfile *account.DriverProfile
	ownerProfile  *account.OwnerProfile

	guard guard.ConstructorGuard
}

// NewRegisterAccountCommand creates a command to register a new account.
// Validates that the identifier, credentials, and role are present; profile
// payloads are optional and may be nil.
func NewRegisterAccountCommand(
	accountID kernel.UUID,
	username, email, password string,
	role account.Role,
	driverProfile *account.DriverProfile,
	ownerProfile *account.OwnerProfile,
) (RegisterAccountCommand, error) {
	cmd := RegisterAccountCommand{
		driverProfile: driverProfile,
		ownerProfile:  ownerProfile,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setAccountID(accountID),
		cmd.setUsername(username),
		cmd.setEmail(email),
		cmd.setPassword(password),
		cmd.setRole(role),
	); err != nil {
		return RegisterAccountCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterAccountCommand) Validate() error {
	return c.guard.Validate(ErrRegisterAccountCommandIsNotConstructed)
}

// AccountID returns the unique identifier for the new account.
func (c RegisterAccountCommand) AccountID() kernel.UUID {
	return c.accountID
}

// Username returns the requested login name.
func (c RegisterAccountCommand) Username() string {
	return c.username
}

// Email returns the signup email address.
func (c RegisterAccountCommand) Email() string {
	return c.email
}

// Password returns the plaintext password to be hashed by the handler.
func (c RegisterAccountCommand) Password() string {
	return c.password
}

// Role returns the requested account role.
func (c RegisterAccountCommand) Role() account.Role {
	return c.role
}

// DriverProfile returns the driver profile payload, or nil.
func (c RegisterAccountCommand) DriverProfile() *account.DriverProfile {
	return c.driverProfile
}

// OwnerProfile returns the goods owner profile payload, or nil.
func (c RegisterAccountCommand) OwnerProfile() *account.OwnerProfile {
	return c.ownerProfile
}

func (c *RegisterAccountCommand) setAccountID(accountID kernel.UUID) error {
	if err := accountID.Validate(); err != nil {
		return err
	}
	c.accountID = accountID
	return nil
}

func (c *RegisterAccountCommand) setUsername(username string) error {
	if username == "" {
		return ErrUsernameIsRequired
	}
	c.username = username
	return nil
}

func (c *RegisterAccountCommand) setEmail(email string) error {
	if email == "" {
		return ErrEmailIsRequired
	}
	c.email = email
	return nil
}

func (c *RegisterAccountCommand) setPassword(password string) error {
	if password == "" {
		return ErrPasswordIsRequired
	}
	c.password = password
	return nil
}

func (c *RegisterAccountCommand) setRole(role account.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	c.role = role
	return nil
}
