// Package accountrepo provides data transfer objects and mapping functions for
// account persistence. It implements the repository pattern for the account
// domain aggregate, handling the conversion between domain entities and their
// database representation.
package accountrepo

import (
	"time"

	"lorrylink/internal/core/domain/model/account"
	"lorrylink/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// AccountDTO represents the database structure for persisting account aggregates.
// Profile columns are nullable: driver columns are only populated for driver
// accounts, owner columns only for goods owner accounts. Uniqueness of username
// and email is enforced at the schema level.
type AccountDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username     string    `gorm:"uniqueIndex;not null"`
	Email        string    `gorm:"uniqueIndex;not null"`
	PasswordHash string    `gorm:"not null"`
	Role         string    `gorm:"index;not null"`
	Active       bool

	DriverPhone    *string
	LicenceNumber  *string
	VehicleType    *string
	LoadCapacityKg *int

	CompanyName *string
	GSTNumber   *string `gorm:"column:gst_number"`
	OwnerPhone  *string

	CreatedAt time.Time
}

// TableName specifies the database table name for account entities.
func (AccountDTO) TableName() string {
	return "accounts"
}

// fromDomain converts an account domain aggregate to its database representation.
// All profile columns of the matching role are written, including empty ones,
// so profile presence survives a round trip.
func fromDomain(a *account.Account) AccountDTO {
	dto := AccountDTO{
		ID:           a.ID().Bytes(),
		Username:     a.Username(),
		Email:        a.Email(),
		PasswordHash: a.PasswordHash(),
		Role:         a.Role().String(),
		Active:       a.IsActive(),
		CreatedAt:    a.CreatedAt(),
	}

	if p := a.DriverProfile(); p != nil {
		dto.DriverPhone = &p.Phone
		dto.LicenceNumber = &p.LicenceNumber
		dto.VehicleType = &p.VehicleType
		dto.LoadCapacityKg = &p.LoadCapacityKg
	}

	if p := a.OwnerProfile(); p != nil {
		dto.CompanyName = &p.CompanyName
		dto.GSTNumber = &p.GSTNumber
		dto.OwnerPhone = &p.Phone
	}

	return dto
}

// toDomain converts a database DTO to an account domain aggregate.
func toDomain(dto AccountDTO) (*account.Account, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	role, err := account.ParseRole(dto.Role)
	if err != nil {
		return nil, err
	}

	var driverProfile *account.DriverProfile
	if dto.DriverPhone != nil || dto.LicenceNumber != nil ||
		dto.VehicleType != nil || dto.LoadCapacityKg != nil {
		driverProfile = &account.DriverProfile{
			Phone:          deref(dto.DriverPhone),
			LicenceNumber:  deref(dto.LicenceNumber),
			VehicleType:    deref(dto.VehicleType),
			LoadCapacityKg: deref(dto.LoadCapacityKg),
		}
	}

	var ownerProfile *account.OwnerProfile
	if dto.CompanyName != nil || dto.GSTNumber != nil || dto.OwnerPhone != nil {
		ownerProfile = &account.OwnerProfile{
			CompanyName: deref(dto.CompanyName),
			GSTNumber:   deref(dto.GSTNumber),
			Phone:       deref(dto.OwnerPhone),
		}
	}

	return account.RestoreAccount(
		id,
		dto.Username,
		dto.Email,
		dto.PasswordHash,
		role,
		dto.Active,
		driverProfile,
		ownerProfile,
		dto.CreatedAt,
	)
}

func deref[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}
