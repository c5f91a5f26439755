package account

import (
	"errors"
	"time"

	"lorrylink/internal/core/domain/model/kernel"
	"lorrylink/internal/pkg/errs"
)

var (
	// ErrAccountIsNotConstructed is returned when an Account instance was not created
	// through the NewAccount or RestoreAccount factory methods.
	ErrAccountIsNotConstructed = errors.New("Account must be created via NewAccount constructor")
)

// DriverProfile carries driver-specific registration data. All fields are
// optional at signup and can be completed later through profile updates.
type DriverProfile struct {
	Phone          string
	LicenceNumber  string
	VehicleType    string
	LoadCapacityKg int
}

// OwnerProfile carries goods-owner-specific registration data.
type OwnerProfile struct {
	CompanyName string
	GSTNumber   string
	Phone       string
}

// Account represents a registered user of the marketplace: an administrator,
// a driver, or a goods owner.
//
// Account follows these invariants:
//   - Must have a valid unique identifier
//   - Username and email are non-empty (uniqueness is enforced by persistence)
//   - Role is a member of the closed role set
//   - A driver profile is only present on driver accounts, an owner profile
//     only on goods owner accounts
//   - Can only be created through NewAccount or RestoreAccount
type Account struct {
	id            kernel.UUID
	username      string
	email         string
	passwordHash  string
	role          Role
	active        bool
	driverProfile *DriverProfile
	ownerProfile  *OwnerProfile
	createdAt     time.Time

	isConstructed bool
}

// NewAccount creates a new active Account with validation. The password hash
// must already be computed by the auth layer; the domain never sees plaintext.
func NewAccount(id kernel.UUID, username, email, passwordHash string, role Role) (*Account, error) {
	a := &Account{
		active:        true,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		a.setID(id),
		a.setUsername(username),
		a.setEmail(email),
		a.setPasswordHash(passwordHash),
		a.setRole(role),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// RestoreAccount reconstructs an Account from persistence without regenerating
// its creation timestamp.
func RestoreAccount(
	id kernel.UUID,
	username, email, passwordHash string,
	role Role,
	active bool,
	driverProfile *DriverProfile,
	ownerProfile *OwnerProfile,
	createdAt time.Time,
) (*Account, error) {
	a := &Account{
		active:        active,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		a.setID(id),
		a.setUsername(username),
		a.setEmail(email),
		a.setPasswordHash(passwordHash),
		a.setRole(role),
	); err != nil {
		return nil, err
	}

	a.driverProfile = driverProfile
	a.ownerProfile = ownerProfile
	if err := a.validateProfiles(); err != nil {
		return nil, err
	}

	return a, nil
}

// Validate ensures the Account instance was properly constructed.
func (a *Account) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAccountIsNotConstructed
	}
	return nil
}

// IsEqual compares two accounts by their unique identifiers.
func (a *Account) IsEqual(other *Account) bool {
	return other != nil && a.id.IsEqual(other.id)
}

// ID returns the account's unique identifier.
func (a *Account) ID() kernel.UUID {
	return a.id
}

// Username returns the unique login name.
func (a *Account) Username() string {
	return a.username
}

// Email returns the account's email address.
func (a *Account) Email() string {
	return a.email
}

// PasswordHash returns the bcrypt hash of the account's password.
func (a *Account) PasswordHash() string {
	return a.passwordHash
}

// Role returns the account's role.
func (a *Account) Role() Role {
	return a.role
}

// IsActive reports whether the account may authenticate.
func (a *Account) IsActive() bool {
	return a.active
}

// DriverProfile returns the driver profile, or nil for non-driver accounts.
func (a *Account) DriverProfile() *DriverProfile {
	return a.driverProfile
}

// OwnerProfile returns the goods owner profile, or nil for other accounts.
func (a *Account) OwnerProfile() *OwnerProfile {
	return a.ownerProfile
}

// CreatedAt returns the account creation time.
func (a *Account) CreatedAt() time.Time {
	return a.createdAt
}

// Actor returns the caller identity for this account.
func (a *Account) Actor() (Actor, error) {
	return NewActor(a.id, a.role)
}

// AttachDriverProfile sets the driver profile on a driver account.
// Returns an error for accounts of any other role.
func (a *Account) AttachDriverProfile(p DriverProfile) error {
	if a.role != Driver {
		return errs.NewValueIsInvalidError("driver profile on non-driver account")
	}
	a.driverProfile = &p
	return nil
}

// AttachOwnerProfile sets the goods owner profile on a goods owner account.
// Returns an error for accounts of any other role.
func (a *Account) AttachOwnerProfile(p OwnerProfile) error {
	if a.role != GoodsOwner {
		return errs.NewValueIsInvalidError("owner profile on non-owner account")
	}
	a.ownerProfile = &p
	return nil
}

// ChangePasswordHash replaces the stored password hash.
func (a *Account) ChangePasswordHash(hash string) error {
	return a.setPasswordHash(hash)
}

// Deactivate marks the account as unable to authenticate.
func (a *Account) Deactivate() {
	a.active = false
}

func (a *Account) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Account) setUsername(username string) error {
	if username == "" {
		return errs.NewValueIsRequiredError("username")
	}
	a.username = username
	return nil
}

func (a *Account) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	a.email = email
	return nil
}

func (a *Account) setPasswordHash(hash string) error {
	if hash == "" {
		return errs.NewValueIsRequiredError("passwordHash")
	}
	a.passwordHash = hash
	return nil
}

func (a *Account) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	a.role = role
	return nil
}

func (a *Account) validateProfiles() error {
	if a.driverProfile != nil && a.role != Driver {
		return errs.NewValueIsInvalidError("driver profile on non-driver account")
	}
	if a.ownerProfile != nil && a.role != GoodsOwner {
		return errs.NewValueIsInvalidError("owner profile on non-owner account")
	}
	return nil
}
